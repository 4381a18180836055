package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"emcee.events/emcee/common/id"
	"emcee.events/emcee/common/secret"
	"emcee.events/emcee/core/config"
	"emcee.events/emcee/internal/model"
	"emcee.events/emcee/internal/store"
)

var (
	ErrIntegrationNotFound  = errors.New("storage integration not found")
	ErrStorageNotConfigured = errors.New("storage provider is not configured")
)

type IntegrationService interface {
	BuildAuthURL(state string) (string, error)
	HandleCallback(ctx context.Context, workspaceID int64, code string, connectedBy int64) (*model.StorageIntegration, error)
	Get(ctx context.Context, workspaceID int64) (*model.StorageIntegration, error)
	Disconnect(ctx context.Context, workspaceID int64) error
}

type integrationService struct {
	integrationStore store.IntegrationStore
	sealer           *secret.Sealer
	cfg              config.StorageConfig
	oauth            *oauth2.Config
	httpClient       *http.Client
}

func NewIntegrationService(integrationStore store.IntegrationStore, sealer *secret.Sealer, cfg config.StorageConfig) IntegrationService {
	return &integrationService{
		integrationStore: integrationStore,
		sealer:           sealer,
		cfg:              cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       splitScopes(cfg.Scopes),
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
		},
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *integrationService) BuildAuthURL(state string) (string, error) {
	if !s.cfg.Enabled() {
		return "", ErrStorageNotConfigured
	}
	// AccessTypeOffline asks the provider for a refresh token, so the
	// connection outlives the first access token.
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

func (s *integrationService) HandleCallback(ctx context.Context, workspaceID int64, code string, connectedBy int64) (*model.StorageIntegration, error) {
	if !s.cfg.Enabled() {
		return nil, ErrStorageNotConfigured
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		slog.WarnContext(ctx, "storage token exchange failed",
			"error", err,
			"workspace_id", workspaceID,
		)
		return nil, ErrInvalidCode
	}

	sealedAccess, sealedRefresh, expiresAt, err := s.sealTokens(token)
	if err != nil {
		return nil, err
	}

	var accountEmail *string
	if email, ok := token.Extra("email").(string); ok && email != "" {
		accountEmail = &email
	}

	integration := &model.StorageIntegration{
		ID:                 id.New(),
		WorkspaceID:        workspaceID,
		Provider:           s.cfg.Provider,
		Status:             model.IntegrationStatusConnected,
		AccountEmail:       accountEmail,
		SealedAccessToken:  sealedAccess,
		SealedRefreshToken: sealedRefresh,
		TokenExpiresAt:     expiresAt,
		ConnectedBy:        connectedBy,
	}

	if err := s.integrationStore.Upsert(ctx, integration); err != nil {
		return nil, fmt.Errorf("storing integration: %w", err)
	}

	slog.InfoContext(ctx, "storage integration connected",
		"workspace_id", workspaceID,
		"provider", s.cfg.Provider,
		"connected_by", connectedBy,
	)

	return integration, nil
}

func (s *integrationService) Get(ctx context.Context, workspaceID int64) (*model.StorageIntegration, error) {
	integration, err := s.integrationStore.GetByWorkspace(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrIntegrationNotFound
		}
		return nil, fmt.Errorf("getting integration: %w", err)
	}
	return integration, nil
}

func (s *integrationService) Disconnect(ctx context.Context, workspaceID int64) error {
	integration, err := s.integrationStore.GetByWorkspace(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrIntegrationNotFound
		}
		return fmt.Errorf("getting integration: %w", err)
	}

	// Revoke is best-effort. A provider that is down or has already dropped
	// the grant must not leave the workspace stuck with a connection it
	// cannot remove.
	s.revoke(ctx, integration)

	if err := s.integrationStore.Delete(ctx, workspaceID); err != nil {
		return fmt.Errorf("deleting integration: %w", err)
	}

	slog.InfoContext(ctx, "storage integration disconnected",
		"workspace_id", workspaceID,
		"provider", integration.Provider,
	)

	return nil
}

func (s *integrationService) revoke(ctx context.Context, integration *model.StorageIntegration) {
	if s.cfg.RevokeURL == "" || integration.Status == model.IntegrationStatusRevoked {
		return
	}

	access, err := s.freshAccessToken(ctx, integration)
	if err != nil {
		slog.WarnContext(ctx, "failed to prepare token for revocation",
			"error", err,
			"workspace_id", integration.WorkspaceID,
		)
		return
	}

	form := url.Values{"token": {access}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.RevokeURL, strings.NewReader(form.Encode()))
	if err != nil {
		slog.WarnContext(ctx, "failed to build revoke request",
			"error", err,
			"workspace_id", integration.WorkspaceID,
		)
		return
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.cfg.ClientID, s.cfg.ClientSecret)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "storage token revocation failed",
			"error", err,
			"workspace_id", integration.WorkspaceID,
		)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		slog.WarnContext(ctx, "storage token revocation rejected",
			"status", resp.StatusCode,
			"workspace_id", integration.WorkspaceID,
		)
	}
}

// freshAccessToken unseals the stored access token and refreshes it through
// the provider when it has expired, persisting the rotated tokens.
func (s *integrationService) freshAccessToken(ctx context.Context, integration *model.StorageIntegration) (string, error) {
	access, err := s.sealer.Open(integration.SealedAccessToken)
	if err != nil {
		return "", fmt.Errorf("unsealing access token: %w", err)
	}

	token := &oauth2.Token{AccessToken: access}
	if integration.TokenExpiresAt != nil {
		token.Expiry = *integration.TokenExpiresAt
	}
	if integration.SealedRefreshToken != nil {
		refresh, err := s.sealer.Open(*integration.SealedRefreshToken)
		if err != nil {
			return "", fmt.Errorf("unsealing refresh token: %w", err)
		}
		token.RefreshToken = refresh
	}

	if token.Valid() || token.RefreshToken == "" {
		return access, nil
	}

	refreshed, err := s.oauth.TokenSource(ctx, token).Token()
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			// The provider rejected the grant outright, not a transient
			// failure. Record that the connection is dead.
			if markErr := s.integrationStore.MarkRevoked(ctx, integration.WorkspaceID); markErr != nil {
				slog.ErrorContext(ctx, "failed to mark integration revoked",
					"error", markErr,
					"workspace_id", integration.WorkspaceID,
				)
			}
		}
		return "", fmt.Errorf("refreshing token: %w", err)
	}

	if refreshed.AccessToken != access {
		sealedAccess, sealedRefresh, expiresAt, err := s.sealTokens(refreshed)
		if err != nil {
			return "", err
		}
		if err := s.integrationStore.UpdateTokens(ctx, integration.WorkspaceID, sealedAccess, sealedRefresh, expiresAt); err != nil {
			return "", fmt.Errorf("storing refreshed tokens: %w", err)
		}
	}

	return refreshed.AccessToken, nil
}

func (s *integrationService) sealTokens(token *oauth2.Token) (string, *string, *time.Time, error) {
	sealedAccess, err := s.sealer.Seal(token.AccessToken)
	if err != nil {
		return "", nil, nil, fmt.Errorf("sealing access token: %w", err)
	}

	var sealedRefresh *string
	if token.RefreshToken != "" {
		sealed, err := s.sealer.Seal(token.RefreshToken)
		if err != nil {
			return "", nil, nil, fmt.Errorf("sealing refresh token: %w", err)
		}
		sealedRefresh = &sealed
	}

	var expiresAt *time.Time
	if !token.Expiry.IsZero() {
		expiry := token.Expiry.UTC()
		expiresAt = &expiry
	}

	return sealedAccess, sealedRefresh, expiresAt, nil
}

func splitScopes(raw string) []string {
	parts := strings.Split(raw, ",")
	scopes := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			scopes = append(scopes, part)
		}
	}
	return scopes
}
