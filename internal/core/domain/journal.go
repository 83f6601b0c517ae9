package domain

import (
	"sort"
	"strings"
	"time"
)

// JournalEntry is a single dated journal record. Sentiment is always derived
// from Text at write time; it is never set by the caller directly.
type JournalEntry struct {
	EntryID   string    `json:"entryID"` // Primary Key (UUID)
	Owner     string    `json:"owner"`   // Owning principal; sole access-partition key
	Text      string    `json:"text"`
	Sentiment Sentiment `json:"sentiment"`
	EntryDate time.Time `json:"entryDate"` // Calendar date only, no time-of-day
	Tags      string    `json:"tags"`      // Comma-joined set of labels
	AuditFields
}

// TagList splits the stored comma-joined tag string into trimmed, de-duplicated
// labels, sorted for stable output. Empty segments are dropped.
func (e JournalEntry) TagList() []string {
	return SplitTags(e.Tags)
}

// SplitTags normalizes a comma-joined tag string into a sorted label set.
func SplitTags(tags string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, t := range strings.Split(tags, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// JoinTags renders a label set back into the comma-joined storage form.
func JoinTags(tags []string) string {
	return strings.Join(SplitTags(strings.Join(tags, ",")), ",")
}

// JournalFilter is the composable, conjunctive filter accepted by the
// query layer. Zero values mean "not supplied".
type JournalFilter struct {
	Sentiment Sentiment  // exact label match
	From      *time.Time // inclusive lower bound on EntryDate
	To        *time.Time // inclusive upper bound on EntryDate
	Tags      []string   // entry must carry every listed tag
	Search    string     // case-insensitive substring over text or tags
}

// TrendPoint is one plottable point of the mood trend series.
type TrendPoint struct {
	Date      time.Time `json:"date"`
	Score     int       `json:"score"`
	Sentiment Sentiment `json:"sentiment"`
	Tags      string    `json:"tags"`
}
