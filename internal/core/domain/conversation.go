package domain

import "time"

// MessageSender identifies who authored a conversation message.
type MessageSender string

const (
	SenderUser  MessageSender = "user"
	SenderModel MessageSender = "model"
)

// Conversation is a chat-support thread owned by a single user.
type Conversation struct {
	ConversationID string `json:"conversationID"` // Primary Key (UUID)
	Owner          string `json:"owner"`
	Title          string `json:"title"`
	AuditFields
}

// Message is one turn of a conversation.
type Message struct {
	MessageID      string        `json:"messageID"` // Primary Key (UUID)
	ConversationID string        `json:"conversationID"`
	Sender         MessageSender `json:"sender"`
	Content        string        `json:"content"`
	CreatedAt      time.Time     `json:"createdAt"`
}
