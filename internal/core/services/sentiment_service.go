package services

import (
	"strings"

	"github.com/jonreiter/govader"

	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
	portssvc "github.com/tulu-g559/talkheal-backend/internal/core/ports/services"
)

// Compound-score thresholds for the three-way label split.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// vaderClassifier is a lexicon/rule-based sentiment classifier. It carries no
// mutable state after construction, so one instance serves all requests.
type vaderClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewSentimentClassifier creates the VADER-backed classifier.
func NewSentimentClassifier() portssvc.SentimentClassifier {
	return &vaderClassifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

var _ portssvc.SentimentClassifier = (*vaderClassifier)(nil)

func (c *vaderClassifier) Score(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return c.analyzer.PolarityScores(text).Compound
}

func (c *vaderClassifier) Classify(text string) domain.Sentiment {
	score := c.Score(text)
	switch {
	case score >= positiveThreshold:
		return domain.SentimentPositive
	case score <= negativeThreshold:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}
