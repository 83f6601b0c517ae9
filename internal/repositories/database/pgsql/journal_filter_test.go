package pgsql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestBuildEntryFilter_OwnerOnly(t *testing.T) {
	where, args := buildEntryFilter("user-1", domain.JournalFilter{})

	assert.Equal(t, "owner = $1", where)
	assert.Equal(t, []any{"user-1"}, args)
}

func TestBuildEntryFilter_Sentiment(t *testing.T) {
	where, args := buildEntryFilter("user-1", domain.JournalFilter{Sentiment: domain.SentimentNegative})

	assert.Equal(t, "owner = $1 AND sentiment = $2", where)
	assert.Equal(t, []any{"user-1", "Negative"}, args)
}

func TestBuildEntryFilter_DateRange(t *testing.T) {
	from := datePtr(2026, 8, 1)
	to := datePtr(2026, 8, 31)

	where, args := buildEntryFilter("user-1", domain.JournalFilter{From: from, To: to})

	assert.Equal(t, "owner = $1 AND entry_date BETWEEN $2 AND $3", where)
	require.Len(t, args, 3)
	assert.Equal(t, *from, args[1])
	assert.Equal(t, *to, args[2])
}

func TestBuildEntryFilter_OpenEndedRange(t *testing.T) {
	from := datePtr(2026, 8, 1)

	where, args := buildEntryFilter("user-1", domain.JournalFilter{From: from})
	assert.Equal(t, "owner = $1 AND entry_date >= $2", where)
	assert.Len(t, args, 2)

	to := datePtr(2026, 8, 31)
	where, args = buildEntryFilter("user-1", domain.JournalFilter{To: to})
	assert.Equal(t, "owner = $1 AND entry_date <= $2", where)
	assert.Len(t, args, 2)
}

func TestBuildEntryFilter_TagsAreExactMembers(t *testing.T) {
	where, args := buildEntryFilter("user-1", domain.JournalFilter{Tags: []string{"work", "sleep"}})

	// Each tag must match a whole comma-delimited member, so "work" cannot
	// match an entry tagged "workout".
	assert.Equal(t, "owner = $1 AND (',' || tags || ',') LIKE $2 AND (',' || tags || ',') LIKE $3", where)
	assert.Equal(t, []any{"user-1", "%,work,%", "%,sleep,%"}, args)
}

func TestBuildEntryFilter_BlankTagSkipped(t *testing.T) {
	where, args := buildEntryFilter("user-1", domain.JournalFilter{Tags: []string{" ", "calm"}})

	assert.Equal(t, "owner = $1 AND (',' || tags || ',') LIKE $2", where)
	assert.Equal(t, []any{"user-1", "%,calm,%"}, args)
}

func TestBuildEntryFilter_Search(t *testing.T) {
	where, args := buildEntryFilter("user-1", domain.JournalFilter{Search: "river"})

	assert.Equal(t, "owner = $1 AND (entry ILIKE $2 OR tags ILIKE $3)", where)
	assert.Equal(t, []any{"user-1", "%river%", "%river%"}, args)
}

func TestBuildEntryFilter_AllConjunctive(t *testing.T) {
	from := datePtr(2026, 8, 1)
	to := datePtr(2026, 8, 31)
	filter := domain.JournalFilter{
		Sentiment: domain.SentimentPositive,
		From:      from,
		To:        to,
		Tags:      []string{"walk"},
		Search:    "river",
	}

	where, args := buildEntryFilter("user-1", filter)

	assert.Equal(t,
		"owner = $1 AND sentiment = $2 AND entry_date BETWEEN $3 AND $4 AND (',' || tags || ',') LIKE $5 AND (entry ILIKE $6 OR tags ILIKE $7)",
		where)
	assert.Equal(t, []any{"user-1", "Positive", *from, *to, "%,walk,%", "%river%", "%river%"}, args)
}

func TestEntryModelRoundTrip(t *testing.T) {
	d := domain.JournalEntry{
		EntryID:   "e1",
		Owner:     "user-1",
		Text:      "text",
		Sentiment: domain.SentimentNeutral,
		EntryDate: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		Tags:      "a,b",
	}

	assert.Equal(t, d, toDomainEntry(toModelEntry(d)))
}
