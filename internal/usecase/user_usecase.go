package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create a new user account.
type CreateUserInput struct {
	Username string          `json:"username"`
	Password string          `json:"password"`
	UserType entity.UserType `json:"user_type"`
}

// UpdateUserInput defines the data required to update a user account.
// Nil fields are left unchanged.
type UpdateUserInput struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
}

// IsEmpty reports whether the update carries no changes at all.
func (in *UpdateUserInput) IsEmpty() bool {
	return in.Username == nil && in.Password == nil
}

// UserUsecase defines the interface for user account lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// CreateUser registers a new user account of the given type.
	CreateUser(ctx context.Context, input CreateUserInput) (*UserView, error)

	// GetUser retrieves a user with its typed profile and images.
	GetUser(ctx context.Context, userID uuid.UUID) (*UserView, error)

	// GetUserByUsername retrieves a user by its unique username.
	GetUserByUsername(ctx context.Context, username string) (*UserView, error)

	// ListUsers retrieves all users with their typed profiles and images.
	ListUsers(ctx context.Context) ([]UserView, error)

	// ListUsersByType retrieves all users of the given type.
	ListUsersByType(ctx context.Context, userType entity.UserType) ([]UserView, error)

	// UpdateUser applies a partial update. An empty input is rejected before
	// touching the store.
	UpdateUser(ctx context.Context, userID uuid.UUID, input *UpdateUserInput) (*UserView, error)

	// DeleteUser removes a user, its profile and every dependent record in a
	// single transaction.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}
