package repositories

// RepositoryProvider holds instances of all repositories, constructed once at
// startup and handed to the service container.
type RepositoryProvider struct {
	UserRepo         UserRepository
	JournalRepo      JournalRepository
	ConversationRepo ConversationRepository
	FeedbackRepo     FeedbackRepository
}
