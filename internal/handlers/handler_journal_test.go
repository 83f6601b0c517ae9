package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tulu-g559/talkheal-backend/internal/apperrors"
	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
	portssvc "github.com/tulu-g559/talkheal-backend/internal/core/ports/services"
	"github.com/tulu-g559/talkheal-backend/internal/dto"
	"github.com/tulu-g559/talkheal-backend/internal/handlers"
	"github.com/tulu-g559/talkheal-backend/internal/platform/config"
)

// --- Mock JournalSvcFacade ---
type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func (m *MockJournalService) SaveEntry(ctx context.Context, owner string, req dto.CreateEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, owner, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) UpdateEntry(ctx context.Context, owner string, entryID string, req dto.UpdateEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, owner, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) DeleteEntry(ctx context.Context, owner string, entryID string) error {
	args := m.Called(ctx, owner, entryID)
	return args.Error(0)
}

func (m *MockJournalService) GetEntry(ctx context.Context, owner string, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, owner, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) QueryEntries(ctx context.Context, owner string, filter domain.JournalFilter) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, owner, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) RandomPrompt() string {
	args := m.Called()
	return args.String(0)
}

// --- Mock TrendSvcFacade ---
type MockTrendService struct {
	mock.Mock
}

var _ portssvc.TrendSvcFacade = (*MockTrendService)(nil)

func (m *MockTrendService) MoodTrend(ctx context.Context, owner string, filter domain.JournalFilter) (*dto.MoodTrendResponse, error) {
	args := m.Called(ctx, owner, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MoodTrendResponse), args.Error(1)
}

func (m *MockTrendService) MoodStats(ctx context.Context, owner string, filter domain.JournalFilter) (*dto.JournalStatsResponse, error) {
	args := m.Called(ctx, owner, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.JournalStatsResponse), args.Error(1)
}

// --- Mock ExportSvcFacade ---
type MockExportService struct {
	mock.Mock
}

var _ portssvc.ExportSvcFacade = (*MockExportService)(nil)

func (m *MockExportService) ExportCSV(ctx context.Context, owner string, filter domain.JournalFilter) ([]byte, error) {
	args := m.Called(ctx, owner, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockExportService) ExportPDF(ctx context.Context, owner string, filter domain.JournalFilter) ([]byte, error) {
	args := m.Called(ctx, owner, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// --- Test Suite Setup ---
type JournalHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockJournal *MockJournalService
	mockTrend   *MockTrendService
	mockExport  *MockExportService
	jwtSecret   string
	userID      string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *JournalHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "talkheal-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *JournalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.mockJournal = new(MockJournalService)
	suite.mockTrend = new(MockTrendService)
	suite.mockExport = new(MockExportService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // keep swagger out of the test router
	}
	container := &portssvc.ServiceContainer{
		Journal: suite.mockJournal,
		Trend:   suite.mockTrend,
		Export:  suite.mockExport,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

// doRequest performs an authenticated request against the test router.
func (suite *JournalHandlerTestSuite) doRequest(method, url, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req, _ = http.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *JournalHandlerTestSuite) TestCreateEntry_Success() {
	entry := &domain.JournalEntry{
		EntryID:   uuid.NewString(),
		Owner:     suite.userID,
		Text:      "A good day",
		Sentiment: domain.SentimentPositive,
		EntryDate: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Tags:      "walk",
	}

	suite.mockJournal.On("SaveEntry", mock.Anything, suite.userID, dto.CreateEntryRequest{Text: "A good day", Tags: "walk"}).
		Return(entry, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/journal/entries", `{"text":"A good day","tags":"walk"}`)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.EntryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(entry.EntryID, resp.EntryID)
	suite.Equal("Positive", resp.Sentiment)
	suite.Equal("2026-08-30", resp.Date)

	suite.mockJournal.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_MissingText() {
	w := suite.doRequest(http.MethodPost, "/api/v1/journal/entries", `{"tags":"walk"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJournal.AssertNotCalled(suite.T(), "SaveEntry")
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_Unauthenticated() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/journal/entries", strings.NewReader(`{"text":"hi"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockJournal.AssertNotCalled(suite.T(), "SaveEntry")
}

func (suite *JournalHandlerTestSuite) TestListEntries_FilterParsing() {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	suite.mockJournal.On("QueryEntries", mock.Anything, suite.userID, mock.MatchedBy(func(f domain.JournalFilter) bool {
		return f.Sentiment == domain.SentimentPositive &&
			f.From != nil && f.From.Equal(from) &&
			f.To != nil && f.To.Equal(to) &&
			len(f.Tags) == 2 && f.Tags[0] == "family" && f.Tags[1] == "work" &&
			f.Search == "river"
	})).Return([]domain.JournalEntry{}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/journal/entries?sentiment=Positive&from=2026-08-01&to=2026-08-31&tags=work,family&q=river", "")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListEntriesResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(0, resp.Total)

	suite.mockJournal.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestListEntries_AllSentimentMeansNoFilter() {
	suite.mockJournal.On("QueryEntries", mock.Anything, suite.userID, mock.MatchedBy(func(f domain.JournalFilter) bool {
		return f.Sentiment == ""
	})).Return([]domain.JournalEntry{}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/journal/entries?sentiment=All", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockJournal.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestListEntries_InvalidSentiment() {
	w := suite.doRequest(http.MethodGet, "/api/v1/journal/entries?sentiment=happy", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJournal.AssertNotCalled(suite.T(), "QueryEntries")
}

func (suite *JournalHandlerTestSuite) TestListEntries_InvalidDate() {
	w := suite.doRequest(http.MethodGet, "/api/v1/journal/entries?from=08-01-2026", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJournal.AssertNotCalled(suite.T(), "QueryEntries")
}

func (suite *JournalHandlerTestSuite) TestGetEntry_NotFound() {
	entryID := uuid.NewString()

	suite.mockJournal.On("GetEntry", mock.Anything, suite.userID, entryID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/journal/entries/"+entryID, "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *JournalHandlerTestSuite) TestUpdateEntry_NotFound() {
	entryID := uuid.NewString()

	suite.mockJournal.On("UpdateEntry", mock.Anything, suite.userID, entryID, mock.AnythingOfType("dto.UpdateEntryRequest")).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/journal/entries/"+entryID, `{"text":"edited"}`)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *JournalHandlerTestSuite) TestDeleteEntry_Idempotent() {
	entryID := uuid.NewString()

	// The second delete of the same entry reports not-found from the service,
	// but the endpoint still answers 204 so clients can retry safely.
	suite.mockJournal.On("DeleteEntry", mock.Anything, suite.userID, entryID).Return(apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/journal/entries/"+entryID, "")

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockJournal.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestMoodTrend_InsufficientData() {
	suite.mockTrend.On("MoodTrend", mock.Anything, suite.userID, mock.AnythingOfType("domain.JournalFilter")).
		Return(nil, apperrors.ErrInsufficientData).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/journal/trend", "")

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *JournalHandlerTestSuite) TestMoodStats_Success() {
	stats := &dto.JournalStatsResponse{Total: 3, Positive: 2, Negative: 1, AverageScore: "0.33"}

	suite.mockTrend.On("MoodStats", mock.Anything, suite.userID, mock.AnythingOfType("domain.JournalFilter")).
		Return(stats, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/journal/stats", "")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.JournalStatsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("0.33", resp.AverageScore)
}

func (suite *JournalHandlerTestSuite) TestExport_CSV() {
	suite.mockExport.On("ExportCSV", mock.Anything, suite.userID, mock.AnythingOfType("domain.JournalFilter")).
		Return([]byte("Date,Sentiment,Entry,Tags\n"), nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/journal/export?format=csv", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "text/csv")
	suite.Contains(w.Header().Get("Content-Disposition"), "journal_export.csv")
	suite.Equal("Date,Sentiment,Entry,Tags\n", w.Body.String())
}

func (suite *JournalHandlerTestSuite) TestExport_UnsupportedFormat() {
	w := suite.doRequest(http.MethodGet, "/api/v1/journal/export?format=xml", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockExport.AssertNotCalled(suite.T(), "ExportCSV")
	suite.mockExport.AssertNotCalled(suite.T(), "ExportPDF")
}

func (suite *JournalHandlerTestSuite) TestRandomPrompt() {
	suite.mockJournal.On("RandomPrompt").Return("What are you grateful for today?").Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/journal/prompt", "")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.PromptResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("What are you grateful for today?", resp.Prompt)
}

// --- Run Test Suite ---
func TestJournalHandler(t *testing.T) {
	suite.Run(t, new(JournalHandlerTestSuite))
}
