package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tulu-g559/talkheal-backend/internal/apperrors"
	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
	portsrepo "github.com/tulu-g559/talkheal-backend/internal/core/ports/repositories"
	"github.com/tulu-g559/talkheal-backend/internal/models"
)

type PgxJournalRepository struct {
	db *pgxpool.Pool
}

func newPgxJournalRepository(db *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{db: db}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepository
var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

// Helper to convert domain.JournalEntry to models.JournalEntry
func toModelEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:   d.EntryID,
		Owner:     d.Owner,
		Text:      d.Text,
		Sentiment: string(d.Sentiment),
		EntryDate: d.EntryDate,
		Tags:      d.Tags,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// Helper to convert models.JournalEntry to domain.JournalEntry
func toDomainEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:   m.EntryID,
		Owner:     m.Owner,
		Text:      m.Text,
		Sentiment: domain.Sentiment(m.Sentiment),
		EntryDate: m.EntryDate,
		Tags:      m.Tags,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	m := toModelEntry(entry)
	query := `
		INSERT INTO journal_entries (entry_id, owner, entry, sentiment, entry_date, tags, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		m.EntryID,
		m.Owner,
		m.Text,
		m.Sentiment,
		m.EntryDate,
		m.Tags,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save journal entry: %w", err)
	}
	return nil
}

func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, owner string, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT entry_id, owner, entry, sentiment, entry_date, tags, created_at, last_updated_at
		FROM journal_entries
		WHERE owner = $1 AND entry_id = $2;
	`
	var m models.JournalEntry
	err := r.db.QueryRow(ctx, query, owner, entryID).Scan(
		&m.EntryID,
		&m.Owner,
		&m.Text,
		&m.Sentiment,
		&m.EntryDate,
		&m.Tags,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}

	d := toDomainEntry(m)
	return &d, nil
}

// buildEntryFilter renders the conjunctive WHERE clause for FindEntries.
// The owner predicate is always first; every supplied filter adds one AND
// term. Tags match as exact members of the comma-joined tag column, search
// matches case-insensitively against entry text or tags.
func buildEntryFilter(owner string, filter domain.JournalFilter) (string, []any) {
	clauses := []string{"owner = $1"}
	args := []any{owner}

	next := func() string { return fmt.Sprintf("$%d", len(args)+1) }

	if filter.Sentiment != "" {
		clauses = append(clauses, "sentiment = "+next())
		args = append(args, string(filter.Sentiment))
	}
	if filter.From != nil && filter.To != nil {
		clauses = append(clauses, fmt.Sprintf("entry_date BETWEEN %s AND $%d", next(), len(args)+2))
		args = append(args, *filter.From, *filter.To)
	} else if filter.From != nil {
		clauses = append(clauses, "entry_date >= "+next())
		args = append(args, *filter.From)
	} else if filter.To != nil {
		clauses = append(clauses, "entry_date <= "+next())
		args = append(args, *filter.To)
	}
	for _, tag := range filter.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		// Exact tag membership against the comma-joined column.
		clauses = append(clauses, "(',' || tags || ',') LIKE "+next())
		args = append(args, "%,"+tag+",%")
	}
	if filter.Search != "" {
		p := "%" + filter.Search + "%"
		clauses = append(clauses, fmt.Sprintf("(entry ILIKE %s OR tags ILIKE $%d)", next(), len(args)+2))
		args = append(args, p, p)
	}

	return strings.Join(clauses, " AND "), args
}

func (r *PgxJournalRepository) FindEntries(ctx context.Context, owner string, filter domain.JournalFilter) ([]domain.JournalEntry, error) {
	where, args := buildEntryFilter(owner, filter)
	query := `
		SELECT entry_id, owner, entry, sentiment, entry_date, tags, created_at, last_updated_at
		FROM journal_entries
		WHERE ` + where + `
		ORDER BY entry_date ASC, created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		var m models.JournalEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.Owner,
			&m.Text,
			&m.Sentiment,
			&m.EntryDate,
			&m.Tags,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, toDomainEntry(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", rows.Err())
	}

	return entries, nil
}

func (r *PgxJournalRepository) UpdateEntry(ctx context.Context, entry domain.JournalEntry) error {
	m := toModelEntry(entry)
	query := `
		UPDATE journal_entries
		SET entry = $1, sentiment = $2, tags = $3, last_updated_at = $4
		WHERE owner = $5 AND entry_id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Text,
		m.Sentiment,
		m.Tags,
		m.LastUpdatedAt,
		m.Owner,
		m.EntryID,
	)
	if err != nil {
		return fmt.Errorf("failed to update journal entry %s: %w", entry.EntryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxJournalRepository) DeleteEntry(ctx context.Context, owner string, entryID string) error {
	query := `DELETE FROM journal_entries WHERE owner = $1 AND entry_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, owner, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry %s: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
