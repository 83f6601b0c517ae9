package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tulu-g559/talkheal-backend/internal/apperrors"
	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
	portsrepo "github.com/tulu-g559/talkheal-backend/internal/core/ports/repositories"
	"github.com/tulu-g559/talkheal-backend/internal/models"
)

type PgxFeedbackRepository struct {
	db *pgxpool.Pool
}

func newPgxFeedbackRepository(db *pgxpool.Pool) portsrepo.FeedbackRepository {
	return &PgxFeedbackRepository{db: db}
}

// Ensure PgxFeedbackRepository implements portsrepo.FeedbackRepository
var _ portsrepo.FeedbackRepository = (*PgxFeedbackRepository)(nil)

func toDomainFeedback(m models.Feedback) domain.Feedback {
	return domain.Feedback{
		FeedbackID:     m.FeedbackID,
		Owner:          m.Owner,
		ConversationID: m.ConversationID,
		MessageID:      m.MessageID,
		Rating:         domain.FeedbackRating(m.Rating),
		Comment:        m.Comment,
		CreatedAt:      m.CreatedAt,
	}
}

func (r *PgxFeedbackRepository) SaveFeedback(ctx context.Context, fb domain.Feedback) error {
	// One verdict per (owner, message); a repeat vote replaces the first.
	query := `
		INSERT INTO message_feedback (feedback_id, owner, conversation_id, message_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (owner, message_id) DO UPDATE SET
			rating = EXCLUDED.rating,
			comment = EXCLUDED.comment,
			created_at = EXCLUDED.created_at;
	`
	_, err := r.db.Exec(ctx, query,
		fb.FeedbackID,
		fb.Owner,
		fb.ConversationID,
		fb.MessageID,
		string(fb.Rating),
		fb.Comment,
		fb.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}
	return nil
}

func (r *PgxFeedbackRepository) FindFeedbackByMessage(ctx context.Context, owner string, messageID string) (*domain.Feedback, error) {
	query := `
		SELECT feedback_id, owner, conversation_id, message_id, rating, comment, created_at
		FROM message_feedback
		WHERE owner = $1 AND message_id = $2;
	`
	var m models.Feedback
	err := r.db.QueryRow(ctx, query, owner, messageID).Scan(
		&m.FeedbackID,
		&m.Owner,
		&m.ConversationID,
		&m.MessageID,
		&m.Rating,
		&m.Comment,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find feedback for message %s: %w", messageID, err)
	}

	d := toDomainFeedback(m)
	return &d, nil
}

func (r *PgxFeedbackRepository) CountFeedback(ctx context.Context, owner string) (domain.FeedbackStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE rating = 'positive'),
			COUNT(*) FILTER (WHERE rating = 'negative')
		FROM message_feedback
		WHERE owner = $1;
	`
	var stats domain.FeedbackStats
	err := r.db.QueryRow(ctx, query, owner).Scan(&stats.Total, &stats.Positive, &stats.Negative)
	if err != nil {
		return domain.FeedbackStats{}, fmt.Errorf("failed to count feedback: %w", err)
	}
	return stats, nil
}
