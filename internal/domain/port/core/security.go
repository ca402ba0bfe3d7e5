package core

import "time"

// PasswordHasher hashes and checks user passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash
	Compare(hash, password string) error
}

// Identity is the authenticated principal carried by access tokens
type Identity struct {
	UserID   uint64
	Username string
	IsAdmin  bool
}

// TokenIssuer issues and parses access tokens
type TokenIssuer interface {
	Issue(identity Identity) (token string, expiresAt time.Time, err error)
	Parse(token string) (*Identity, error)
}

// TokenGenerator produces opaque single-use tokens such as email verification codes
type TokenGenerator interface {
	Generate() (string, error)
}
