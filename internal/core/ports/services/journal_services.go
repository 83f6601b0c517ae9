package services

import (
	"context"

	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
	"github.com/tulu-g559/talkheal-backend/internal/dto"
)

// SentimentClassifier maps free text to a mood label. Implementations must be
// pure: the same text always yields the same label.
type SentimentClassifier interface {
	// Classify returns the label for the text's compound polarity score.
	// Empty text scores 0 and is Neutral.
	Classify(text string) domain.Sentiment

	// Score returns the raw compound polarity in [-1, 1].
	Score(text string) float64
}

// JournalReaderSvc defines owner-scoped read operations for journal entries.
type JournalReaderSvc interface {
	// GetEntry retrieves one entry belonging to owner.
	GetEntry(ctx context.Context, owner string, entryID string) (*domain.JournalEntry, error)

	// QueryEntries retrieves the owner's entries matching every supplied
	// filter, ordered ascending by entry date.
	QueryEntries(ctx context.Context, owner string, filter domain.JournalFilter) ([]domain.JournalEntry, error)
}

// JournalWriterSvc defines owner-scoped write operations for journal entries.
type JournalWriterSvc interface {
	// SaveEntry classifies the text, stamps today's date and persists a new
	// entry. Blank text fails with apperrors.ErrValidation.
	SaveEntry(ctx context.Context, owner string, req dto.CreateEntryRequest) (*domain.JournalEntry, error)

	// UpdateEntry replaces text and tags, recomputing sentiment from the new
	// text before persisting.
	UpdateEntry(ctx context.Context, owner string, entryID string, req dto.UpdateEntryRequest) (*domain.JournalEntry, error)

	// DeleteEntry removes the owner's entry, surfacing apperrors.ErrNotFound
	// for unknown ids; callers decide whether that is an error.
	DeleteEntry(ctx context.Context, owner string, entryID string) error
}

// JournalPromptSvc hands out journaling prompts.
type JournalPromptSvc interface {
	RandomPrompt() string
}

// JournalSvcFacade combines all journal-related service interfaces.
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
	JournalPromptSvc
}

// TrendSvcFacade produces the plottable mood series and summary statistics
// over a filtered entry set.
type TrendSvcFacade interface {
	// MoodTrend returns the time-ordered series for the owner's filtered
	// entries. Zero matching entries fail with apperrors.ErrInsufficientData.
	MoodTrend(ctx context.Context, owner string, filter domain.JournalFilter) (*dto.MoodTrendResponse, error)

	// MoodStats returns per-label counts and the fixed-precision average
	// score. Zero matching entries fail with apperrors.ErrInsufficientData.
	MoodStats(ctx context.Context, owner string, filter domain.JournalFilter) (*dto.JournalStatsResponse, error)
}

// ExportSvcFacade serializes a filtered entry set into download formats.
// Export never mutates the store.
type ExportSvcFacade interface {
	// ExportCSV renders the filtered set as RFC 4180 CSV with header
	// Date,Sentiment,Entry,Tags.
	ExportCSV(ctx context.Context, owner string, filter domain.JournalFilter) ([]byte, error)

	// ExportPDF renders one block per entry (Date, Sentiment, Tags, text).
	// Characters outside the PDF font encoding are substituted, not fatal.
	ExportPDF(ctx context.Context, owner string, filter domain.JournalFilter) ([]byte, error)
}
