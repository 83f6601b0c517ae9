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

type PgxConversationRepository struct {
	db *pgxpool.Pool
}

func newPgxConversationRepository(db *pgxpool.Pool) portsrepo.ConversationRepository {
	return &PgxConversationRepository{db: db}
}

// Ensure PgxConversationRepository implements portsrepo.ConversationRepository
var _ portsrepo.ConversationRepository = (*PgxConversationRepository)(nil)

func toDomainConversation(m models.Conversation) domain.Conversation {
	return domain.Conversation{
		ConversationID: m.ConversationID,
		Owner:          m.Owner,
		Title:          m.Title,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func toDomainMessage(m models.Message) domain.Message {
	return domain.Message{
		MessageID:      m.MessageID,
		ConversationID: m.ConversationID,
		Sender:         domain.MessageSender(m.Sender),
		Content:        m.Content,
		CreatedAt:      m.CreatedAt,
	}
}

func (r *PgxConversationRepository) SaveConversation(ctx context.Context, convo domain.Conversation) error {
	query := `
		INSERT INTO conversations (conversation_id, owner, title, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.db.Exec(ctx, query,
		convo.ConversationID,
		convo.Owner,
		convo.Title,
		convo.CreatedAt,
		convo.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save conversation: %w", err)
	}
	return nil
}

func (r *PgxConversationRepository) FindConversationByID(ctx context.Context, owner string, conversationID string) (*domain.Conversation, error) {
	query := `
		SELECT conversation_id, owner, title, created_at, last_updated_at
		FROM conversations
		WHERE owner = $1 AND conversation_id = $2;
	`
	var m models.Conversation
	err := r.db.QueryRow(ctx, query, owner, conversationID).Scan(
		&m.ConversationID,
		&m.Owner,
		&m.Title,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find conversation %s: %w", conversationID, err)
	}

	d := toDomainConversation(m)
	return &d, nil
}

func (r *PgxConversationRepository) FindConversations(ctx context.Context, owner string, search string) ([]domain.Conversation, error) {
	query := `
		SELECT conversation_id, owner, title, created_at, last_updated_at
		FROM conversations
		WHERE owner = $1
		ORDER BY created_at DESC;
	`
	args := []any{owner}
	if search != "" {
		query = `
			SELECT DISTINCT c.conversation_id, c.owner, c.title, c.created_at, c.last_updated_at
			FROM conversations c
			LEFT JOIN messages m ON m.conversation_id = c.conversation_id
			WHERE c.owner = $1 AND (c.title ILIKE $2 OR m.content ILIKE $2)
			ORDER BY c.created_at DESC;
		`
		args = append(args, "%"+search+"%")
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversations: %w", err)
	}
	defer rows.Close()

	convos := []domain.Conversation{}
	for rows.Next() {
		var m models.Conversation
		if err := rows.Scan(&m.ConversationID, &m.Owner, &m.Title, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversation row: %w", err)
		}
		convos = append(convos, toDomainConversation(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating conversation rows: %w", rows.Err())
	}

	return convos, nil
}

func (r *PgxConversationRepository) UpdateConversationTitle(ctx context.Context, owner string, conversationID string, title string) error {
	query := `
		UPDATE conversations
		SET title = $1, last_updated_at = now()
		WHERE owner = $2 AND conversation_id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, title, owner, conversationID)
	if err != nil {
		return fmt.Errorf("failed to update conversation title %s: %w", conversationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxConversationRepository) DeleteConversation(ctx context.Context, owner string, conversationID string) error {
	query := `DELETE FROM conversations WHERE owner = $1 AND conversation_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, owner, conversationID)
	if err != nil {
		return fmt.Errorf("failed to delete conversation %s: %w", conversationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxConversationRepository) SaveMessage(ctx context.Context, msg domain.Message) error {
	query := `
		INSERT INTO messages (message_id, conversation_id, sender, content, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.db.Exec(ctx, query,
		msg.MessageID,
		msg.ConversationID,
		string(msg.Sender),
		msg.Content,
		msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}
	return nil
}

func (r *PgxConversationRepository) FindMessages(ctx context.Context, conversationID string) ([]domain.Message, error) {
	query := `
		SELECT message_id, conversation_id, sender, content, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages for conversation %s: %w", conversationID, err)
	}
	defer rows.Close()

	msgs := []domain.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.MessageID, &m.ConversationID, &m.Sender, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		msgs = append(msgs, toDomainMessage(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", rows.Err())
	}

	return msgs, nil
}
