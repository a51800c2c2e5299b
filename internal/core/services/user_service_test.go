package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/PasalPOS/pasal_pos_app/internal/apperrors"
	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	portsrepo "github.com/PasalPOS/pasal_pos_app/internal/core/ports/repositories"
	portssvc "github.com/PasalPOS/pasal_pos_app/internal/core/ports/services"
	"github.com/PasalPOS/pasal_pos_app/internal/core/services"
	"github.com/PasalPOS/pasal_pos_app/internal/dto"
	"github.com/PasalPOS/pasal_pos_app/internal/platform/config"
	"github.com/PasalPOS/pasal_pos_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, string, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User, passwordHash string) error {
	args := m.Called(ctx, user, passwordHash)
	return args.Error(0)
}

// --- Test Suite Setup ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	cfg          *config.Config
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.cfg = &config.Config{
		JWTSecret:            "test-secret-key",
		JWTExpiryDuration:    time.Hour,
		JWTIssuer:            "pasal-pos-test",
		DefaultAdminPassword: "admin123",
	}
	suite.service = services.NewUserService(suite.mockUserRepo, suite.cfg)
}

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Username:  "pasale",
		Email:     "pasale@example.com",
		Password:  "strong-password",
		FirstName: "Ram",
		LastName:  "Shrestha",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User"), mock.AnythingOfType("string")).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal("pasale", user.Username)
	suite.Equal(user.UserID, user.CreatedBy)

	// The stored hash verifies against the submitted password and is never
	// the plaintext itself.
	savedHash := suite.mockUserRepo.Calls[0].Arguments.String(2)
	suite.NotEqual(req.Password, savedHash)
	suite.True(utils.CheckPasswordHash(req.Password, savedHash))

	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Username: "pasale",
		Email:    "pasale@example.com",
		Password: "strong-password",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	password := "strong-password"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	user := &domain.User{UserID: uuid.NewString(), Username: "pasale"}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "pasale").Return(user, hash, nil).Once()

	loggedIn, token, err := suite.service.Login(ctx, dto.LoginRequest{Username: "pasale", Password: password})

	suite.Require().NoError(err)
	suite.Equal(user.UserID, loggedIn.UserID)
	suite.NotEmpty(token)

	// The token round-trips through validation.
	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)

	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("the-right-password")
	suite.Require().NoError(err)

	user := &domain.User{UserID: uuid.NewString(), Username: "pasale"}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "pasale").Return(user, hash, nil).Once()

	loggedIn, token, err := suite.service.Login(ctx, dto.LoginRequest{Username: "pasale", Password: "the-wrong-password"})

	suite.Require().Error(err)
	suite.Nil(loggedIn)
	suite.Empty(token)
	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func (suite *UserServiceTestSuite) TestLogin_UnknownUsername() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, "", apperrors.ErrNotFound).Once()

	loggedIn, token, err := suite.service.Login(ctx, dto.LoginRequest{Username: "ghost", Password: "whatever"})

	suite.Require().Error(err)
	suite.Nil(loggedIn)
	suite.Empty(token)
	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func (suite *UserServiceTestSuite) TestEnsureDefaultUser_AlreadyExists() {
	ctx := context.Background()
	admin := &domain.User{UserID: uuid.NewString(), Username: "admin"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "admin").Return(admin, "some-hash", nil).Once()

	err := suite.service.EnsureDefaultUser(ctx)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestEnsureDefaultUser_SeedsWhenMissing() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "admin").Return(nil, "", apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User"), mock.AnythingOfType("string")).Return(nil).Once()

	err := suite.service.EnsureDefaultUser(ctx)

	suite.Require().NoError(err)
	savedUser := suite.mockUserRepo.Calls[1].Arguments.Get(1).(domain.User)
	suite.Equal("admin", savedUser.Username)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
