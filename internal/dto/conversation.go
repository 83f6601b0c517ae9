package dto

import (
	"time"

	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
)

// CreateConversationRequest starts a new chat thread, optionally with a first
// user message that triggers an immediate model reply.
type CreateConversationRequest struct {
	FirstMessage string `json:"firstMessage"`
}

// SendMessageRequest posts one user message to an existing thread.
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// RenameConversationRequest replaces the thread title.
type RenameConversationRequest struct {
	Title string `json:"title" binding:"required,max=200"`
}

// MessageResponse is the API shape of one conversation turn.
type MessageResponse struct {
	MessageID string `json:"messageID"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"` // RFC 3339
}

// ConversationResponse is the API shape of a chat thread.
type ConversationResponse struct {
	ConversationID string            `json:"conversationID"`
	Title          string            `json:"title"`
	CreatedAt      string            `json:"createdAt"`
	Messages       []MessageResponse `json:"messages,omitempty"`
}

// ListConversationsResponse wraps the owner's threads.
type ListConversationsResponse struct {
	Conversations []ConversationResponse `json:"conversations"`
	Total         int                    `json:"total"`
}

// SubmitFeedbackRequest records a verdict on a model message.
type SubmitFeedbackRequest struct {
	ConversationID string `json:"conversationID" binding:"required"`
	MessageID      string `json:"messageID" binding:"required"`
	Rating         string `json:"rating" binding:"required,oneof=positive negative"`
	Comment        string `json:"comment"`
}

// FeedbackStatsResponse aggregates the owner's feedback.
type FeedbackStatsResponse struct {
	Total              int    `json:"total"`
	Positive           int    `json:"positive"`
	Negative           int    `json:"negative"`
	PositivePercentage string `json:"positivePercentage"` // Fixed-precision decimal, 1 place
}

// ToMessageResponse converts a domain message to its API shape.
func ToMessageResponse(m *domain.Message) MessageResponse {
	return MessageResponse{
		MessageID: m.MessageID,
		Sender:    string(m.Sender),
		Content:   m.Content,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

// ToConversationResponse converts a domain conversation and its messages to
// the API shape. Messages may be nil for list views.
func ToConversationResponse(c *domain.Conversation, msgs []domain.Message) ConversationResponse {
	resp := ConversationResponse{
		ConversationID: c.ConversationID,
		Title:          c.Title,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
	for i := range msgs {
		resp.Messages = append(resp.Messages, ToMessageResponse(&msgs[i]))
	}
	return resp
}
