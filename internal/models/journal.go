package models

import "time"

// JournalEntry is the persistence-facing shape of a journal record.
// The sentiment column always reflects the entry column; both are written in
// the same statement.
type JournalEntry struct {
	EntryID   string    `json:"entryID"`
	Owner     string    `json:"owner"`
	Text      string    `json:"text"`
	Sentiment string    `json:"sentiment"`
	EntryDate time.Time `json:"entryDate"` // DATE column, date-only
	Tags      string    `json:"tags"`      // Comma-joined
	AuditFields
}
