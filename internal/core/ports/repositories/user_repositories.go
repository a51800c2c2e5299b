package repositories

import (
	"context"

	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
)

// UserReader defines read operations for operator accounts
type UserReader interface {
	// FindUserByID retrieves a specific user by its unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user together with its stored password
	// hash for credential verification.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, string, error)
}

// UserWriter defines write operations for operator accounts
type UserWriter interface {
	// SaveUser persists a new user with its password hash.
	SaveUser(ctx context.Context, user domain.User, passwordHash string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
