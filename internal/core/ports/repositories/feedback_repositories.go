package repositories

import (
	"context"

	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
)

// FeedbackRepository defines persistence operations for message feedback.
type FeedbackRepository interface {
	// SaveFeedback upserts the owner's verdict on a message; a second verdict
	// on the same message replaces the first.
	SaveFeedback(ctx context.Context, fb domain.Feedback) error

	FindFeedbackByMessage(ctx context.Context, owner string, messageID string) (*domain.Feedback, error)

	// CountFeedback aggregates the owner's feedback counts.
	CountFeedback(ctx context.Context, owner string) (domain.FeedbackStats, error)
}
