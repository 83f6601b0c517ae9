package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tulu-g559/talkheal-backend/internal/apperrors"
	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
	portsrepo "github.com/tulu-g559/talkheal-backend/internal/core/ports/repositories"
	portssvc "github.com/tulu-g559/talkheal-backend/internal/core/ports/services"
	"github.com/tulu-g559/talkheal-backend/internal/dto"
)

const defaultConversationTitle = "New Conversation"

type conversationService struct {
	convoRepo portsrepo.ConversationRepository
	responder portssvc.SupportResponder
}

// NewConversationService creates the chat-support service.
func NewConversationService(convoRepo portsrepo.ConversationRepository, responder portssvc.SupportResponder) portssvc.ConversationSvcFacade {
	return &conversationService{
		convoRepo: convoRepo,
		responder: responder,
	}
}

var _ portssvc.ConversationSvcFacade = (*conversationService)(nil)

func (s *conversationService) CreateConversation(ctx context.Context, owner string, req dto.CreateConversationRequest) (*domain.Conversation, []domain.Message, error) {
	now := time.Now()
	convo := domain.Conversation{
		ConversationID: uuid.NewString(),
		Owner:          owner,
		Title:          defaultConversationTitle,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.convoRepo.SaveConversation(ctx, convo); err != nil {
		return nil, nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	var messages []domain.Message
	if strings.TrimSpace(req.FirstMessage) != "" {
		msgs, err := s.appendExchange(ctx, convo.ConversationID, nil, req.FirstMessage)
		if err != nil {
			return nil, nil, err
		}
		messages = msgs

		// Title generation happens off the request path; a failed or slow
		// title never delays the first reply.
		go s.generateAndSaveTitle(convo.Owner, convo.ConversationID, req.FirstMessage)
	}

	return &convo, messages, nil
}

func (s *conversationService) ListConversations(ctx context.Context, owner string, search string) ([]domain.Conversation, error) {
	return s.convoRepo.FindConversations(ctx, owner, search)
}

func (s *conversationService) GetConversation(ctx context.Context, owner string, conversationID string) (*domain.Conversation, []domain.Message, error) {
	convo, err := s.convoRepo.FindConversationByID(ctx, owner, conversationID)
	if err != nil {
		return nil, nil, err
	}
	msgs, err := s.convoRepo.FindMessages(ctx, conversationID)
	if err != nil {
		return nil, nil, err
	}
	return convo, msgs, nil
}

func (s *conversationService) SendMessage(ctx context.Context, owner string, conversationID string, content string) ([]domain.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("message content must not be blank: %w", apperrors.ErrValidation)
	}

	// Ownership check before any write.
	if _, err := s.convoRepo.FindConversationByID(ctx, owner, conversationID); err != nil {
		return nil, err
	}

	history, err := s.convoRepo.FindMessages(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	return s.appendExchange(ctx, conversationID, history, content)
}

// appendExchange stores the user message, generates the model reply and
// stores that too, returning both in send order.
func (s *conversationService) appendExchange(ctx context.Context, conversationID string, history []domain.Message, content string) ([]domain.Message, error) {
	userMsg := domain.Message{
		MessageID:      uuid.NewString(),
		ConversationID: conversationID,
		Sender:         domain.SenderUser,
		Content:        content,
		CreatedAt:      time.Now(),
	}
	if err := s.convoRepo.SaveMessage(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("failed to store user message: %w", err)
	}

	reply, err := s.responder.Reply(ctx, history, content)
	if err != nil {
		return nil, fmt.Errorf("failed to generate model reply: %w", err)
	}

	modelMsg := domain.Message{
		MessageID:      uuid.NewString(),
		ConversationID: conversationID,
		Sender:         domain.SenderModel,
		Content:        reply,
		CreatedAt:      time.Now(),
	}
	if err := s.convoRepo.SaveMessage(ctx, modelMsg); err != nil {
		return nil, fmt.Errorf("failed to store model message: %w", err)
	}

	return []domain.Message{userMsg, modelMsg}, nil
}

func (s *conversationService) generateAndSaveTitle(owner string, conversationID string, firstMessage string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	title, err := s.responder.Title(ctx, firstMessage)
	if err != nil {
		// Fall back to a truncated first message.
		title = firstMessage
		if len(title) > 50 {
			title = title[:50] + "..."
		}
	}

	if err := s.convoRepo.UpdateConversationTitle(ctx, owner, conversationID, title); err != nil {
		slog.Warn("Failed to save generated conversation title",
			slog.String("conversation_id", conversationID),
			slog.String("error", err.Error()))
	}
}

func (s *conversationService) RenameConversation(ctx context.Context, owner string, conversationID string, title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title must not be blank: %w", apperrors.ErrValidation)
	}
	return s.convoRepo.UpdateConversationTitle(ctx, owner, conversationID, title)
}

func (s *conversationService) DeleteConversation(ctx context.Context, owner string, conversationID string) error {
	return s.convoRepo.DeleteConversation(ctx, owner, conversationID)
}

func (s *conversationService) ExportConversation(ctx context.Context, owner string, conversationID string, format string) ([]byte, string, error) {
	convo, msgs, err := s.GetConversation(ctx, owner, conversationID)
	if err != nil {
		return nil, "", err
	}

	switch format {
	case "json":
		payload := dto.ToConversationResponse(convo, msgs)
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal conversation: %w", err)
		}
		return data, "application/json", nil
	case "txt":
		var sb strings.Builder
		sb.WriteString("Conversation: " + convo.Title + "\n")
		sb.WriteString("Started: " + convo.CreatedAt.Format(time.RFC3339) + "\n\n")
		for _, m := range msgs {
			sb.WriteString(fmt.Sprintf("[%s] %s: %s\n", m.CreatedAt.Format(time.RFC3339), m.Sender, m.Content))
		}
		return []byte(sb.String()), "text/plain; charset=utf-8", nil
	default:
		return nil, "", fmt.Errorf("unsupported export format %q: %w", format, apperrors.ErrValidation)
	}
}
