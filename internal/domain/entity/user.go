package entity

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
)

// Username length bounds
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 8
)

// User represents an account holder and its verification flags
type User struct {
	ID                      uint64
	Username                string
	Email                   string
	PasswordHash            string
	FirstName               *string
	LastName                *string
	IsEmailVerified         bool
	IsVerified              bool // KYC approved
	IsAdmin                 bool
	VerificationToken       *string
	VerificationTokenExpiry *time.Time
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// NewUser creates an unverified user. The password must already be hashed.
func NewUser(username, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	username = strings.TrimSpace(username)
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}

	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	if passwordHash == "" {
		return nil, errs.NewValidationError("password", errs.ErrWeakPassword)
	}

	now := timeProvider.Now()
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ValidateUsername checks the username length
func ValidateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	if n < MinUsernameLength || n > MaxUsernameLength {
		return errs.ErrInvalidUsername
	}
	return nil
}

// ValidatePassword checks the plaintext password before hashing
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return errs.ErrWeakPassword
	}
	return nil
}

// NormalizeEmail lowercases and validates an email address
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", errs.ErrInvalidEmail
	}
	return email, nil
}

// SetProfile sets the optional name fields, storing blanks as nil
func (u *User) SetProfile(firstName, lastName string) {
	u.FirstName = optionalString(firstName)
	u.LastName = optionalString(lastName)
}

// IssueVerificationToken stores a single-use email verification token
func (u *User) IssueVerificationToken(token string, ttl time.Duration, timeProvider coreport.TimeProvider) {
	expiry := timeProvider.Now().Add(ttl)
	u.VerificationToken = &token
	u.VerificationTokenExpiry = &expiry
}

// ConfirmEmail consumes the verification token. The token is cleared on success.
func (u *User) ConfirmEmail(token string, timeProvider coreport.TimeProvider) error {
	if u.VerificationToken == nil || *u.VerificationToken != token {
		return errs.ErrVerificationTokenNotFound
	}

	now := timeProvider.Now()
	if u.VerificationTokenExpiry != nil && now.After(*u.VerificationTokenExpiry) {
		return errs.ErrVerificationExpired
	}

	u.IsEmailVerified = true
	u.VerificationToken = nil
	u.VerificationTokenExpiry = nil
	u.UpdatedAt = now
	return nil
}

// CanTransact reports whether the user may withdraw or trade
func (u *User) CanTransact() bool {
	return u.IsVerified
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
