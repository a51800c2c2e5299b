package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/PasalPOS/pasal_pos_app/internal/apperrors"
	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	portsrepo "github.com/PasalPOS/pasal_pos_app/internal/core/ports/repositories"
	portssvc "github.com/PasalPOS/pasal_pos_app/internal/core/ports/services"
	"github.com/PasalPOS/pasal_pos_app/internal/dto"
	"github.com/PasalPOS/pasal_pos_app/internal/middleware"
	"github.com/PasalPOS/pasal_pos_app/internal/platform/config"
	"github.com/PasalPOS/pasal_pos_app/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// defaultAdminUsername is the bootstrap account created on an empty install.
const defaultAdminUsername = "admin"

// userService provides operator account management and authentication.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, cfg *config.Config) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, cfg: cfg}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// RegisterUser creates a new operator account.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	userID := uuid.NewString()
	user := domain.User{
		UserID:    userID,
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user, passwordHash); err != nil {
		logger.Error("Failed to save user", slog.String("error", err.Error()), slog.String("username", req.Username))
		return nil, err
	}

	logger.Info("User registered", slog.String("user_id", user.UserID), slog.String("username", user.Username))
	return &user, nil
}

// GetUserByID retrieves a user by its ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// Login verifies credentials and returns the user with a signed token.
func (s *userService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, passwordHash, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !utils.CheckPasswordHash(req.Password, passwordHash) {
		logger.Warn("Failed login attempt", slog.String("username", req.Username))
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// EnsureDefaultUser seeds the bootstrap admin account when no admin exists
// yet, so a fresh install can log in immediately.
func (s *userService) EnsureDefaultUser(ctx context.Context) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	_, _, err := s.userRepo.FindUserByUsername(ctx, defaultAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check for default user: %w", err)
	}

	_, err = s.RegisterUser(ctx, dto.RegisterUserRequest{
		Username:  defaultAdminUsername,
		Email:     "admin@localhost",
		Password:  s.cfg.DefaultAdminPassword,
		FirstName: "Default",
		LastName:  "Admin",
	})
	if err != nil {
		// A concurrent boot may have won the race; that is fine.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("failed to seed default user: %w", err)
	}

	logger.Info("Default admin user created", slog.String("username", defaultAdminUsername))
	return nil
}
