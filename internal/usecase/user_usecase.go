// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"vitae/internal/domain/entity"
)

// TokenTypeBearer is the token_type reported with every issued session token.
const TokenTypeBearer = "bearer"

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Username string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// SignupOutput returns the newly created account.
type SignupOutput struct {
	User *entity.User
}

// LoginOutput returns the session token issued after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	User        *entity.User
}

// UserUsecase defines the account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Signup registers a new account with a hashed credential.
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)

	// Login verifies the credential and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Authenticate validates a session token and resolves the account it names.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
