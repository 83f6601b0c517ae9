package dto

import (
	"time"

	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
)

// CreateEntryRequest is the payload for saving a new journal entry.
type CreateEntryRequest struct {
	Text string `json:"text" binding:"required"`
	Tags string `json:"tags"` // Comma-separated
}

// UpdateEntryRequest is the payload for editing an existing entry.
// Sentiment is recomputed from Text server-side and cannot be supplied.
type UpdateEntryRequest struct {
	Text string `json:"text" binding:"required"`
	Tags string `json:"tags"`
}

// ListEntriesParams carries the conjunctive query filters.
type ListEntriesParams struct {
	Sentiment string `form:"sentiment"` // Positive|Neutral|Negative; empty or "All" means no filter
	From      string `form:"from"`      // YYYY-MM-DD, inclusive
	To        string `form:"to"`        // YYYY-MM-DD, inclusive
	Tags      string `form:"tags"`      // Comma-separated; entry must carry every tag
	Search    string `form:"q"`         // Case-insensitive substring over text or tags
}

// EntryResponse is the API shape of a journal entry.
type EntryResponse struct {
	EntryID   string   `json:"entryID"`
	Text      string   `json:"text"`
	Sentiment string   `json:"sentiment"`
	Date      string   `json:"date"` // YYYY-MM-DD
	Tags      string   `json:"tags"`
	TagList   []string `json:"tagList"`
}

// ListEntriesResponse wraps a filtered entry set.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
	Total   int             `json:"total"`
}

// TrendPointResponse is one point of the mood trend series.
type TrendPointResponse struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Score     int    `json:"score"`
	Sentiment string `json:"sentiment"`
	Tags      string `json:"tags"`
}

// MoodTrendResponse is the plottable series for the dashboard line chart.
type MoodTrendResponse struct {
	Points []TrendPointResponse `json:"points"`
}

// JournalStatsResponse summarizes a filtered entry set.
type JournalStatsResponse struct {
	Total        int    `json:"total"`
	Positive     int    `json:"positive"`
	Neutral      int    `json:"neutral"`
	Negative     int    `json:"negative"`
	AverageScore string `json:"averageScore"` // Fixed-precision decimal, 2 places
}

// PromptResponse carries one journaling prompt.
type PromptResponse struct {
	Prompt string `json:"prompt"`
}

// ToEntryResponse converts a domain entry to its API shape.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	return EntryResponse{
		EntryID:   e.EntryID,
		Text:      e.Text,
		Sentiment: string(e.Sentiment),
		Date:      e.EntryDate.Format(time.DateOnly),
		Tags:      e.Tags,
		TagList:   e.TagList(),
	}
}

// ToListEntriesResponse converts a filtered entry set to its API shape.
func ToListEntriesResponse(entries []domain.JournalEntry) ListEntriesResponse {
	out := ListEntriesResponse{Entries: make([]EntryResponse, 0, len(entries)), Total: len(entries)}
	for i := range entries {
		out.Entries = append(out.Entries, ToEntryResponse(&entries[i]))
	}
	return out
}
