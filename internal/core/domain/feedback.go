package domain

import "time"

// FeedbackRating is a thumbs-up/down verdict on a model message.
type FeedbackRating string

const (
	FeedbackPositive FeedbackRating = "positive"
	FeedbackNegative FeedbackRating = "negative"
)

// Feedback records one user's verdict on a single model message.
type Feedback struct {
	FeedbackID     string         `json:"feedbackID"` // Primary Key (UUID)
	Owner          string         `json:"owner"`
	ConversationID string         `json:"conversationID"`
	MessageID      string         `json:"messageID"`
	Rating         FeedbackRating `json:"rating"`
	Comment        string         `json:"comment,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// FeedbackStats aggregates feedback counts for one owner.
type FeedbackStats struct {
	Total    int `json:"total"`
	Positive int `json:"positive"`
	Negative int `json:"negative"`
}
