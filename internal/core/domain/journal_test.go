package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
)

func TestSplitTags(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "Empty", input: "", expected: nil},
		{name: "Single", input: "work", expected: []string{"work"}},
		{name: "Multiple", input: "work,family", expected: []string{"family", "work"}},
		{name: "WhitespaceTrimmed", input: " work , family ", expected: []string{"family", "work"}},
		{name: "EmptySegmentsDropped", input: "work,,family,", expected: []string{"family", "work"}},
		{name: "DuplicatesDropped", input: "work,work,family", expected: []string{"family", "work"}},
		{name: "SortedOutput", input: "zebra,apple,mango", expected: []string{"apple", "mango", "zebra"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, domain.SplitTags(tc.input))
		})
	}
}

func TestJoinTags(t *testing.T) {
	assert.Equal(t, "family,work", domain.JoinTags([]string{"work", "family"}))
	assert.Equal(t, "", domain.JoinTags(nil))
	assert.Equal(t, "work", domain.JoinTags([]string{" work ", "work"}))
}

func TestJournalEntryTagList(t *testing.T) {
	entry := domain.JournalEntry{Tags: "gratitude, sleep ,gratitude"}
	assert.Equal(t, []string{"gratitude", "sleep"}, entry.TagList())
}

func TestSentimentValid(t *testing.T) {
	assert.True(t, domain.SentimentPositive.Valid())
	assert.True(t, domain.SentimentNeutral.Valid())
	assert.True(t, domain.SentimentNegative.Valid())
	assert.False(t, domain.Sentiment("").Valid())
	assert.False(t, domain.Sentiment("happy").Valid())
}

func TestSentimentScore(t *testing.T) {
	assert.Equal(t, 1, domain.SentimentPositive.Score())
	assert.Equal(t, 0, domain.SentimentNeutral.Score())
	assert.Equal(t, -1, domain.SentimentNegative.Score())
	// Unknown labels fall back to the neutral score.
	assert.Equal(t, 0, domain.Sentiment("happy").Score())
}
