package user

import "clipcast/internal/core/user"

// UserRepository is the outbound port for account storage
type UserRepository interface {
	Create(user *user.User) (*user.User, error)
	FindByEmail(email string) (*user.User, error)
	FindByID(id string) (*user.User, error)
}

// DTOs for the use cases
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type UserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
