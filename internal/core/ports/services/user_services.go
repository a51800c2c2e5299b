package services

import (
	"context"

	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	"github.com/PasalPOS/pasal_pos_app/internal/dto"
)

// UserReaderSvc defines read operations for operator accounts
type UserReaderSvc interface {
	// GetUserByID retrieves a specific user by its ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for operator accounts
type UserWriterSvc interface {
	// RegisterUser creates a new operator account with a hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// EnsureDefaultUser creates the bootstrap admin account when the users
	// table is empty, so a fresh install is usable immediately.
	EnsureDefaultUser(ctx context.Context) error
}

// AuthSvc defines credential verification and token issuance
type AuthSvc interface {
	// Login verifies a username and password and returns the user with a
	// signed token.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	AuthSvc
}
