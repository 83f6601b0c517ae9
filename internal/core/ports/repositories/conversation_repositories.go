package repositories

import (
	"context"

	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
)

// ConversationRepository defines persistence operations for chat threads and
// their messages. All reads are owner-parameterized.
type ConversationRepository interface {
	SaveConversation(ctx context.Context, convo domain.Conversation) error

	FindConversationByID(ctx context.Context, owner string, conversationID string) (*domain.Conversation, error)

	// FindConversations lists the owner's threads newest first. A non-empty
	// search term matches titles and message content, case-insensitively.
	FindConversations(ctx context.Context, owner string, search string) ([]domain.Conversation, error)

	UpdateConversationTitle(ctx context.Context, owner string, conversationID string, title string) error

	// DeleteConversation removes the thread and, via cascade, its messages.
	DeleteConversation(ctx context.Context, owner string, conversationID string) error

	SaveMessage(ctx context.Context, msg domain.Message) error

	// FindMessages returns the thread's messages in send order.
	FindMessages(ctx context.Context, conversationID string) ([]domain.Message, error)
}
