package dto

import "github.com/nivaro/account_service/internal/domain"

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=30"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthSuccess is returned by both register and login.
type AuthSuccess struct {
	User        *domain.Account `json:"user"`
	AccessToken string          `json:"access_token"`
	ExpiresIn   int64           `json:"expires_in"`
}

// AuthUser is the identity the auth middleware extracts from an access
// token and stores on the request context.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
