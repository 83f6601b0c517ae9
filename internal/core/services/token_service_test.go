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
	portssvc "github.com/tulu-g559/talkheal-backend/internal/core/ports/services"
	"github.com/tulu-g559/talkheal-backend/internal/core/services"
	"github.com/tulu-g559/talkheal-backend/internal/platform/config"
	"github.com/tulu-g559/talkheal-backend/internal/utils"
)

// --- Test Suite Setup ---
type TokenServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.TokenSvcFacade
	user     *domain.User
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	cfg := &config.Config{
		JWTSecret:     "test-secret-key-that-is-long-enough",
		JWTExpiry:     time.Hour,
		JWTIssuer:     "talkheal-test",
		RefreshExpiry: 24 * time.Hour,
	}
	suite.service = services.NewTokenService(cfg, suite.mockRepo)
	suite.user = &domain.User{UserID: uuid.NewString(), Email: "ada@example.com"}
}

// --- Test Cases ---

func (suite *TokenServiceTestSuite) TestGenerateAccessToken() {
	token, expiresAt, err := suite.service.GenerateAccessToken(context.Background(), suite.user)

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.WithinDuration(time.Now().Add(time.Hour), expiresAt, time.Minute)

	// The token must parse back and name the user as subject.
	claims, err := utils.ParseAndValidateJWT(token, "test-secret-key-that-is-long-enough")
	suite.Require().NoError(err)
	suite.Equal(suite.user.UserID, claims.Subject)
	suite.Equal("talkheal-test", claims.Issuer)
}

func (suite *TokenServiceTestSuite) TestGenerateAccessToken_WrongSecretRejected() {
	token, _, err := suite.service.GenerateAccessToken(context.Background(), suite.user)
	suite.Require().NoError(err)

	_, err = utils.ParseAndValidateJWT(token, "a-different-secret")
	suite.Error(err)
}

func (suite *TokenServiceTestSuite) TestGenerateAndStoreRefreshToken() {
	ctx := context.Background()

	var storedHash string
	suite.mockRepo.On("UpdateRefreshToken", ctx, suite.user.UserID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			storedHash = args.String(2)
		}).Return(nil).Once()

	raw, expiresAt, err := suite.service.GenerateAndStoreRefreshToken(ctx, suite.user)

	suite.Require().NoError(err)
	suite.NotEmpty(raw)
	suite.WithinDuration(time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	// Only the hash is persisted, and it must verify the raw token.
	suite.NotEqual(raw, storedHash)
	suite.True(utils.CompareRefreshTokenHash(raw, storedHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Success() {
	ctx := context.Background()
	raw := "some-raw-refresh-token"
	expiry := time.Now().Add(time.Hour)
	stored := &domain.User{
		UserID:                 suite.user.UserID,
		RefreshTokenHash:       utils.HashRefreshToken(raw),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockRepo.On("FindUserByID", ctx, suite.user.UserID).Return(stored, nil).Once()

	user, err := suite.service.ValidateRefreshToken(ctx, suite.user.UserID, raw)

	suite.Require().NoError(err)
	suite.Equal(suite.user.UserID, user.UserID)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Expired() {
	ctx := context.Background()
	raw := "some-raw-refresh-token"
	expiry := time.Now().Add(-time.Minute)
	stored := &domain.User{
		UserID:                 suite.user.UserID,
		RefreshTokenHash:       utils.HashRefreshToken(raw),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockRepo.On("FindUserByID", ctx, suite.user.UserID).Return(stored, nil).Once()

	user, err := suite.service.ValidateRefreshToken(ctx, suite.user.UserID, raw)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRefreshTokenExpired)
	suite.Nil(user)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Mismatch() {
	ctx := context.Background()
	expiry := time.Now().Add(time.Hour)
	stored := &domain.User{
		UserID:                 suite.user.UserID,
		RefreshTokenHash:       utils.HashRefreshToken("the-real-token"),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockRepo.On("FindUserByID", ctx, suite.user.UserID).Return(stored, nil).Once()

	user, err := suite.service.ValidateRefreshToken(ctx, suite.user.UserID, "a-forged-token")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_NoStoredToken() {
	ctx := context.Background()
	stored := &domain.User{UserID: suite.user.UserID}

	suite.mockRepo.On("FindUserByID", ctx, suite.user.UserID).Return(stored, nil).Once()

	user, err := suite.service.ValidateRefreshToken(ctx, suite.user.UserID, "anything")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

// --- Run Test Suite ---
func TestTokenService(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
