package repositories

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// GetOneByID retrieves a specific user by their ID.
	GetOneByID(ctx context.Context, userID string) (*domain.UserDTO, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// UpsertOne creates the user or refreshes their profile.
	UpsertOne(ctx context.Context, user domain.UserDTO) (domain.UserDTO, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
// This is a facade for clients that need access to all operations
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
