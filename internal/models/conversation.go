package models

import "time"

// Conversation is the persistence-facing shape of a chat thread.
type Conversation struct {
	ConversationID string `json:"conversationID"`
	Owner          string `json:"owner"`
	Title          string `json:"title"`
	AuditFields
}

// Message is one stored conversation turn.
type Message struct {
	MessageID      string    `json:"messageID"`
	ConversationID string    `json:"conversationID"`
	Sender         string    `json:"sender" db:"sender"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// Feedback is one stored verdict on a model message.
type Feedback struct {
	FeedbackID     string    `json:"feedbackID"`
	Owner          string    `json:"owner"`
	ConversationID string    `json:"conversationID"`
	MessageID      string    `json:"messageID"`
	Rating         string    `json:"rating"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
