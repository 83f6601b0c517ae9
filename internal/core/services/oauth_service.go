package services

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/tulu-g559/talkheal-backend/internal/apperrors"
	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
	portssvc "github.com/tulu-g559/talkheal-backend/internal/core/ports/services"
	"github.com/tulu-g559/talkheal-backend/internal/platform/config"
)

const googleProvider = "google"

// googleOAuthService implements GoogleOAuthSvcFacade.
type googleOAuthService struct {
	cfg          *config.Config
	userService  portssvc.UserSvcFacade
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates the Google sign-in service.
func NewGoogleOAuthService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg:         cfg,
		userService: userService,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

func (s *googleOAuthService) AuthCodeURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (s *googleOAuthService) ExchangeAndVerify(ctx context.Context, code string) (*domain.User, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, fmt.Errorf("no id_token in token response: %w", apperrors.ErrUnauthorized)
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate ID token: %w", apperrors.ErrUnauthorized)
	}

	sub, _ := payload.Claims["sub"].(string)
	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if sub == "" || email == "" {
		return nil, fmt.Errorf("ID token missing required claims: %w", apperrors.ErrUnauthorized)
	}

	return s.userService.FindOrCreateOAuthUser(ctx, googleProvider, sub, email, name)
}
