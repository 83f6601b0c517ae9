package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tulu-g559/talkheal-backend/internal/apperrors"
	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
	portsrepo "github.com/tulu-g559/talkheal-backend/internal/core/ports/repositories"
	portssvc "github.com/tulu-g559/talkheal-backend/internal/core/ports/services"
	"github.com/tulu-g559/talkheal-backend/internal/core/services"
	"github.com/tulu-g559/talkheal-backend/internal/dto"
	"github.com/tulu-g559/talkheal-backend/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, authProvider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiry time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiry)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{Name: "Ada", Email: " Ada@Example.COM ", Password: "correct-horse"}

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "ada@example.com" &&
			u.Name == "Ada" &&
			u.PasswordHash != "" &&
			u.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	// The stored hash must verify against the original password.
	suite.True(utils.CheckPasswordHash("correct-horse", user.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.Register(ctx, dto.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "pw123456"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Email: "ada@example.com", PasswordHash: hash}

	suite.mockRepo.On("FindUserByEmail", ctx, "ada@example.com").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "Ada@Example.com", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Email: "ada@example.com", PasswordHash: hash}

	suite.mockRepo.On("FindUserByEmail", ctx, "ada@example.com").Return(stored, nil).Once()

	user, authErr := suite.service.Authenticate(ctx, "ada@example.com", "wrong")

	suite.Require().Error(authErr)
	suite.ErrorIs(authErr, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmail() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	// Unknown email presents the same error as a bad password.
	user, err := suite.service.Authenticate(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticate_OAuthOnlyAccount() {
	ctx := context.Background()
	// Accounts created through Google have no password hash and can never
	// authenticate with a password.
	stored := &domain.User{UserID: uuid.NewString(), Email: "ada@example.com", AuthProvider: "google"}

	suite.mockRepo.On("FindUserByEmail", ctx, "ada@example.com").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "ada@example.com", "anything")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_ExistingUser() {
	ctx := context.Background()
	stored := &domain.User{UserID: uuid.NewString(), AuthProvider: "google", ProviderUserID: "g-123"}

	suite.mockRepo.On("FindUserByProviderDetails", ctx, "google", "g-123").Return(stored, nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, "google", "g-123", "ada@example.com", "Ada")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_CreatesOnFirstSignIn() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByProviderDetails", ctx, "google", "g-456").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.AuthProvider == "google" && u.ProviderUserID == "g-456" && u.Email == "new@example.com" && u.PasswordHash == ""
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, "google", "g-456", "New@Example.com", "New User")

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
