package repositories

import (
	"context"

	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
)

// JournalRepository defines persistence operations for journal entries.
// Every read is owner-parameterized; the repository never returns an entry
// belonging to a different owner.
type JournalRepository interface {
	// SaveEntry persists a new entry in a single statement.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error

	// FindEntryByID retrieves one entry scoped to the owner.
	// Returns apperrors.ErrNotFound when no such entry exists for that owner.
	FindEntryByID(ctx context.Context, owner string, entryID string) (*domain.JournalEntry, error)

	// FindEntries retrieves the owner's entries matching every supplied
	// filter, ordered ascending by entry date.
	FindEntries(ctx context.Context, owner string, filter domain.JournalFilter) ([]domain.JournalEntry, error)

	// UpdateEntry overwrites text, sentiment and tags for the owner's entry.
	// Returns apperrors.ErrNotFound when the id does not exist for that owner.
	UpdateEntry(ctx context.Context, entry domain.JournalEntry) error

	// DeleteEntry removes the owner's entry.
	// Returns apperrors.ErrNotFound when the id does not exist for that owner.
	DeleteEntry(ctx context.Context, owner string, entryID string) error
}
