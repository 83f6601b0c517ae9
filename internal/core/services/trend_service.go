package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tulu-g559/talkheal-backend/internal/apperrors"
	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
	portssvc "github.com/tulu-g559/talkheal-backend/internal/core/ports/services"
	"github.com/tulu-g559/talkheal-backend/internal/dto"
)

type trendService struct {
	journal portssvc.JournalReaderSvc
}

// NewTrendService creates the mood trend aggregator.
func NewTrendService(journal portssvc.JournalReaderSvc) portssvc.TrendSvcFacade {
	return &trendService{journal: journal}
}

var _ portssvc.TrendSvcFacade = (*trendService)(nil)

// BuildTrendPoints maps a time-ordered entry set onto the mood axis. Only
// entries that exist appear as points; days without entries are not filled in.
func BuildTrendPoints(entries []domain.JournalEntry) []domain.TrendPoint {
	points := make([]domain.TrendPoint, 0, len(entries))
	for _, e := range entries {
		points = append(points, domain.TrendPoint{
			Date:      e.EntryDate,
			Score:     e.Sentiment.Score(),
			Sentiment: e.Sentiment,
			Tags:      e.Tags,
		})
	}
	return points
}

func (s *trendService) MoodTrend(ctx context.Context, owner string, filter domain.JournalFilter) (*dto.MoodTrendResponse, error) {
	entries, err := s.journal.QueryEntries(ctx, owner, filter)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no entries match the filter: %w", apperrors.ErrInsufficientData)
	}

	resp := &dto.MoodTrendResponse{Points: make([]dto.TrendPointResponse, 0, len(entries))}
	for _, p := range BuildTrendPoints(entries) {
		resp.Points = append(resp.Points, dto.TrendPointResponse{
			Date:      p.Date.Format(time.DateOnly),
			Score:     p.Score,
			Sentiment: string(p.Sentiment),
			Tags:      p.Tags,
		})
	}
	return resp, nil
}

func (s *trendService) MoodStats(ctx context.Context, owner string, filter domain.JournalFilter) (*dto.JournalStatsResponse, error) {
	entries, err := s.journal.QueryEntries(ctx, owner, filter)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no entries match the filter: %w", apperrors.ErrInsufficientData)
	}

	stats := &dto.JournalStatsResponse{Total: len(entries)}
	sum := decimal.Zero
	for _, e := range entries {
		switch e.Sentiment {
		case domain.SentimentPositive:
			stats.Positive++
		case domain.SentimentNegative:
			stats.Negative++
		default:
			stats.Neutral++
		}
		sum = sum.Add(decimal.NewFromInt(int64(e.Sentiment.Score())))
	}
	stats.AverageScore = sum.Div(decimal.NewFromInt(int64(len(entries)))).StringFixed(2)
	return stats, nil
}
