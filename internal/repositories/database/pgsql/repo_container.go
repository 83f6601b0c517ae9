package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/tulu-g559/talkheal-backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		JournalRepo:      newPgxJournalRepository(dbPool),
		ConversationRepo: newPgxConversationRepository(dbPool),
		FeedbackRepo:     newPgxFeedbackRepository(dbPool),
	}
}
