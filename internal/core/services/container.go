package services

import (
	portsrepo "github.com/tulu-g559/talkheal-backend/internal/core/ports/repositories"
	portssvc "github.com/tulu-g559/talkheal-backend/internal/core/ports/services"
	"github.com/tulu-g559/talkheal-backend/internal/platform/config"
)

// NewContainer creates the service container with properly initialized
// dependencies. The responder is passed in so main controls its lifecycle.
func NewContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, responder portssvc.SupportResponder) *portssvc.ServiceContainer {
	classifier := NewSentimentClassifier()

	journal := NewJournalService(repos.JournalRepo, classifier)
	user := NewUserService(repos.UserRepo)

	return &portssvc.ServiceContainer{
		User:         user,
		Token:        NewTokenService(cfg, repos.UserRepo),
		GoogleOAuth:  NewGoogleOAuthService(cfg, user),
		Journal:      journal,
		Trend:        NewTrendService(journal),
		Export:       NewExportService(journal),
		Conversation: NewConversationService(repos.ConversationRepo, responder),
		Feedback:     NewFeedbackService(repos.FeedbackRepo),
	}
}
