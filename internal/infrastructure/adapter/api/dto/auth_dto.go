package dto

import (
	"time"

	"github.com/simplecyberhub/txc/internal/domain/entity"
	"github.com/simplecyberhub/txc/internal/domain/port/usecase"
)

// RegisterRequest represents POST /api/auth/register
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ToUseCase maps the body
func (r RegisterRequest) ToUseCase() usecase.RegisterRequest {
	return usecase.RegisterRequest{
		Username:  r.Username,
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// LoginRequest represents POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VerifyEmailRequest represents POST /api/auth/verify-email
type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

// UserResponse is the public view of a user. Secrets never leave the server.
type UserResponse struct {
	ID              uint64    `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	FirstName       *string   `json:"firstName,omitempty"`
	LastName        *string   `json:"lastName,omitempty"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	IsVerified      bool      `json:"isVerified"`
	IsAdmin         bool      `json:"isAdmin"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewUserResponse maps a user
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		IsEmailVerified: u.IsEmailVerified,
		IsVerified:      u.IsVerified,
		IsAdmin:         u.IsAdmin,
		CreatedAt:       u.CreatedAt,
	}
}

// NewUserList maps users
func NewUserList(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// LoginResponse carries the access token
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// MessageResponse is a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}
