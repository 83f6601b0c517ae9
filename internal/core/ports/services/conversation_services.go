package services

import (
	"context"

	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
	"github.com/tulu-g559/talkheal-backend/internal/dto"
)

// SupportResponder generates model-side conversation content. Implementations
// wrap an LLM; tests substitute a canned responder.
type SupportResponder interface {
	// Reply produces the model response to the latest user message given the
	// conversation history.
	Reply(ctx context.Context, history []domain.Message, userMessage string) (string, error)

	// Title produces a short thread title from the opening exchange.
	Title(ctx context.Context, firstMessage string) (string, error)
}

// ConversationSvcFacade defines chat-support thread operations, all scoped to
// the authenticated owner.
type ConversationSvcFacade interface {
	// CreateConversation starts a thread; a non-empty first message is stored
	// and answered immediately.
	CreateConversation(ctx context.Context, owner string, req dto.CreateConversationRequest) (*domain.Conversation, []domain.Message, error)

	// ListConversations returns the owner's threads newest first, optionally
	// narrowed by a search term over titles and message content.
	ListConversations(ctx context.Context, owner string, search string) ([]domain.Conversation, error)

	// GetConversation returns the thread and its messages in send order.
	GetConversation(ctx context.Context, owner string, conversationID string) (*domain.Conversation, []domain.Message, error)

	// SendMessage appends the user message, generates and appends the model
	// reply, and returns both.
	SendMessage(ctx context.Context, owner string, conversationID string, content string) ([]domain.Message, error)

	RenameConversation(ctx context.Context, owner string, conversationID string, title string) error

	DeleteConversation(ctx context.Context, owner string, conversationID string) error

	// ExportConversation serializes the thread as "json" or "txt".
	ExportConversation(ctx context.Context, owner string, conversationID string, format string) ([]byte, string, error)
}

// FeedbackSvcFacade records and aggregates verdicts on model messages.
type FeedbackSvcFacade interface {
	SubmitFeedback(ctx context.Context, owner string, req dto.SubmitFeedbackRequest) (*domain.Feedback, error)

	Stats(ctx context.Context, owner string) (*dto.FeedbackStatsResponse, error)
}
