package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
	portssvc "github.com/tulu-g559/talkheal-backend/internal/core/ports/services"
	"github.com/tulu-g559/talkheal-backend/internal/utils"
)

const (
	defaultChatModelName  = "gemini-1.5-flash-latest"
	defaultTitleModelName = "gemini-1.5-flash-latest"

	chatSystemInstruction = "You are a compassionate mental health support chatbot named TalkHeal. " +
		"Provide empathetic, supportive responses; encourage professional help when needed; " +
		"never diagnose or provide medical advice; be warm, understanding and non-judgmental; " +
		"ask follow-up questions to better understand the user's situation; " +
		"offer coping strategies and resources when appropriate. " +
		"Do not assume the user is always in an overwhelming state; they may also be joyful or curious. " +
		"Respond with plain text only, no HTML or markdown, and keep responses under 150 words."

	titleSystemInstruction = "You are a helpful assistant that generates concise titles for chat conversations. " +
		"The title should be 3-5 words maximum. Just return the title itself, nothing else."

	// fallbackReply is used when the model cannot produce a response, so the
	// user is never left without an answer.
	fallbackReply = "I'm here to listen and support you. Sometimes I have trouble connecting, " +
		"but I want you to know that your feelings are valid and you're not alone. " +
		"Would you like to share more about what you're experiencing?"
)

// LLMService generates model-side conversation content via Gemini.
type LLMService struct {
	client *genai.Client
}

// NewLLMService creates the Gemini-backed responder.
func NewLLMService(ctx context.Context, apiKey string) (*LLMService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &LLMService{client: client}, nil
}

var _ portssvc.SupportResponder = (*LLMService)(nil)

// Close releases the underlying client.
func (s *LLMService) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// Reply produces the model response to the latest user message. When a crisis
// keyword is detected, helpline resources are prepended to the reply. Model
// failures degrade to a supportive fallback rather than an error to the user.
func (s *LLMService) Reply(ctx context.Context, history []domain.Message, userMessage string) (string, error) {
	model := s.client.GenerativeModel(defaultChatModelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(chatSystemInstruction)},
	}

	session := model.StartChat()
	session.History = toGenaiHistory(history)

	reply := fallbackReply
	resp, err := session.SendMessage(ctx, genai.Text(userMessage))
	if err == nil {
		if text := extractText(resp); text != "" {
			reply = text
		}
	}

	if inCrisis, _ := utils.DetectCrisisKeywords(userMessage); inCrisis {
		reply = utils.CrisisResources + "\n\n" + reply
	}
	return reply, nil
}

// Title produces a short thread title from the opening message.
func (s *LLMService) Title(ctx context.Context, firstMessage string) (string, error) {
	model := s.client.GenerativeModel(defaultTitleModelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(titleSystemInstruction)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text("Generate a title for a conversation that starts with: "+firstMessage))
	if err != nil {
		return "", fmt.Errorf("gemini title request failed: %w", err)
	}

	title := strings.TrimSpace(strings.Trim(extractText(resp), `"`))
	if title == "" {
		return "", fmt.Errorf("no title text received from gemini")
	}
	return title, nil
}

func toGenaiHistory(history []domain.Message) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		out = append(out, &genai.Content{
			Role:  string(m.Sender),
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}
	return out
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
