package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
	portsrepo "github.com/tulu-g559/talkheal-backend/internal/core/ports/repositories"
	portssvc "github.com/tulu-g559/talkheal-backend/internal/core/ports/services"
	"github.com/tulu-g559/talkheal-backend/internal/dto"
)

type feedbackService struct {
	feedbackRepo portsrepo.FeedbackRepository
}

// NewFeedbackService creates the message feedback service.
func NewFeedbackService(feedbackRepo portsrepo.FeedbackRepository) portssvc.FeedbackSvcFacade {
	return &feedbackService{feedbackRepo: feedbackRepo}
}

var _ portssvc.FeedbackSvcFacade = (*feedbackService)(nil)

func (s *feedbackService) SubmitFeedback(ctx context.Context, owner string, req dto.SubmitFeedbackRequest) (*domain.Feedback, error) {
	fb := domain.Feedback{
		FeedbackID:     uuid.NewString(),
		Owner:          owner,
		ConversationID: req.ConversationID,
		MessageID:      req.MessageID,
		Rating:         domain.FeedbackRating(req.Rating),
		Comment:        req.Comment,
		CreatedAt:      time.Now(),
	}
	if err := s.feedbackRepo.SaveFeedback(ctx, fb); err != nil {
		return nil, fmt.Errorf("failed to submit feedback: %w", err)
	}
	return &fb, nil
}

func (s *feedbackService) Stats(ctx context.Context, owner string) (*dto.FeedbackStatsResponse, error) {
	stats, err := s.feedbackRepo.CountFeedback(ctx, owner)
	if err != nil {
		return nil, err
	}

	resp := &dto.FeedbackStatsResponse{
		Total:              stats.Total,
		Positive:           stats.Positive,
		Negative:           stats.Negative,
		PositivePercentage: "0.0",
	}
	if stats.Total > 0 {
		resp.PositivePercentage = decimal.NewFromInt(int64(stats.Positive)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(stats.Total))).
			StringFixed(1)
	}
	return resp, nil
}
