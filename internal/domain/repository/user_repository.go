// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"vitae/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user. ID and timestamps are filled in on success.
	Create(ctx context.Context, user *entity.User) error

	// Update persists the profile fields and credential of an existing user.
	Update(ctx context.Context, user *entity.User) error
}
