package storage

import (
	"context"

	"github.com/iudanet/gophmedia/internal/models"
)

// UserStorage defines interface for user data persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage and fills user.ID
	// Returns ErrUserAlreadyExists if username is taken
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves user by username
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)

	// UpdatePassword replaces the password hash of a user
	// Returns ErrUserNotFound if user doesn't exist
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}
