package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
	"github.com/tulu-g559/talkheal-backend/internal/core/services"
)

func TestClassify_Labels(t *testing.T) {
	classifier := services.NewSentimentClassifier()

	testCases := []struct {
		name     string
		text     string
		expected domain.Sentiment
	}{
		{name: "ClearlyPositive", text: "I had a wonderful day and I feel really happy and grateful!", expected: domain.SentimentPositive},
		{name: "ClearlyNegative", text: "Today was terrible, I feel awful and everything went wrong.", expected: domain.SentimentNegative},
		{name: "Neutral", text: "I went to the store and bought some bread.", expected: domain.SentimentNeutral},
		{name: "EmptyText", text: "", expected: domain.SentimentNeutral},
		{name: "WhitespaceOnly", text: "   \n\t  ", expected: domain.SentimentNeutral},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, classifier.Classify(tc.text))
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	classifier := services.NewSentimentClassifier()
	text := "Work was stressful but the evening walk helped me relax."

	first := classifier.Classify(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, classifier.Classify(text))
	}
}

func TestScore_Range(t *testing.T) {
	classifier := services.NewSentimentClassifier()

	for _, text := range []string{
		"", "ok", "I love this so much!!!", "I hate everything about this.",
		"The meeting is at three o'clock.",
	} {
		score := classifier.Score(text)
		assert.GreaterOrEqual(t, score, -1.0)
		assert.LessOrEqual(t, score, 1.0)
	}

	assert.Zero(t, classifier.Score(""))
}

func TestClassify_ScoreAgreement(t *testing.T) {
	classifier := services.NewSentimentClassifier()

	// The label must follow from the same compound score the Score method
	// reports, using the 0.05 band around zero for Neutral.
	for _, text := range []string{
		"I feel amazing today!",
		"This is the worst day of my life.",
		"I wrote three pages in my notebook.",
	} {
		score := classifier.Score(text)
		label := classifier.Classify(text)
		switch {
		case score >= 0.05:
			assert.Equal(t, domain.SentimentPositive, label, "text: %s", text)
		case score <= -0.05:
			assert.Equal(t, domain.SentimentNegative, label, "text: %s", text)
		default:
			assert.Equal(t, domain.SentimentNeutral, label, "text: %s", text)
		}
	}
}
