package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tulu-g559/talkheal-backend/internal/apperrors"
	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
	portsrepo "github.com/tulu-g559/talkheal-backend/internal/core/ports/repositories"
	portssvc "github.com/tulu-g559/talkheal-backend/internal/core/ports/services"
	"github.com/tulu-g559/talkheal-backend/internal/dto"
)

// journalPrompts are offered to users who don't know what to write about.
var journalPrompts = []string{
	"What are you grateful for today?",
	"What's one thing you want to remember from today?",
	"Describe a challenge you faced today and how you handled it.",
	"What's on your mind right now?",
	"Write about something that made you smile today.",
	"What is one thing you can do to make tomorrow better?",
	"Describe a recent dream you had.",
	"What are your goals for the upcoming week?",
	"Write about a person who has had a positive impact on your life.",
	"What is a skill you would like to learn and why?",
}

type journalService struct {
	journalRepo portsrepo.JournalRepository
	classifier  portssvc.SentimentClassifier
}

// NewJournalService creates the journal entry service.
func NewJournalService(journalRepo portsrepo.JournalRepository, classifier portssvc.SentimentClassifier) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		classifier:  classifier,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) SaveEntry(ctx context.Context, owner string, req dto.CreateEntryRequest) (*domain.JournalEntry, error) {
	text := req.Text
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("entry text must not be blank: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	entry := domain.JournalEntry{
		EntryID:   uuid.NewString(),
		Owner:     owner,
		Text:      text,
		Sentiment: s.classifier.Classify(text),
		EntryDate: truncateToDate(now),
		Tags:      domain.JoinTags(strings.Split(req.Tags, ",")),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save entry in service: %w", err)
	}
	return &entry, nil
}

func (s *journalService) UpdateEntry(ctx context.Context, owner string, entryID string, req dto.UpdateEntryRequest) (*domain.JournalEntry, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("entry text must not be blank: %w", apperrors.ErrValidation)
	}

	entry, err := s.journalRepo.FindEntryByID(ctx, owner, entryID)
	if err != nil {
		return nil, err
	}

	// Sentiment must be recomputed from the new text before anything is
	// persisted, so text and sentiment never disagree in storage.
	entry.Text = req.Text
	entry.Sentiment = s.classifier.Classify(req.Text)
	entry.Tags = domain.JoinTags(strings.Split(req.Tags, ","))
	entry.LastUpdatedAt = time.Now()

	if err := s.journalRepo.UpdateEntry(ctx, *entry); err != nil {
		return nil, fmt.Errorf("failed to update entry in service: %w", err)
	}
	return entry, nil
}

func (s *journalService) DeleteEntry(ctx context.Context, owner string, entryID string) error {
	return s.journalRepo.DeleteEntry(ctx, owner, entryID)
}

func (s *journalService) GetEntry(ctx context.Context, owner string, entryID string) (*domain.JournalEntry, error) {
	return s.journalRepo.FindEntryByID(ctx, owner, entryID)
}

func (s *journalService) QueryEntries(ctx context.Context, owner string, filter domain.JournalFilter) ([]domain.JournalEntry, error) {
	if filter.Sentiment != "" && !filter.Sentiment.Valid() {
		return nil, fmt.Errorf("unknown sentiment %q: %w", filter.Sentiment, apperrors.ErrValidation)
	}
	entries, err := s.journalRepo.FindEntries(ctx, owner, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries in service: %w", err)
	}
	return entries, nil
}

func (s *journalService) RandomPrompt() string {
	return journalPrompts[rand.Intn(len(journalPrompts))]
}

// truncateToDate drops the time-of-day, keeping the calendar date in local time.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
