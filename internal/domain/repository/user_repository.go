// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindAll retrieves every user.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindAllByType retrieves every user of the given type.
	FindAllByType(ctx context.Context, userType entity.UserType) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update applies the user's mutable fields and returns the number of rows
	// touched. A zero count with a nil error means the row existed but the
	// update was a no-op; absence is reported as ErrUserNotFound by callers
	// that looked the row up first.
	Update(ctx context.Context, user *entity.User) (int64, error)

	// Delete removes a user row and returns the number of rows removed.
	// It does not cascade by itself; cascading is the lifecycle manager's job.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
