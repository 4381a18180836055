package store

import (
	"context"
	"time"

	"emcee.events/emcee/core/db"
	"emcee.events/emcee/internal/model"
)

type integrationStore struct {
	db *db.DB
}

func newIntegrationStore(database *db.DB) IntegrationStore {
	return &integrationStore{db: database}
}

func (s *integrationStore) GetByWorkspace(ctx context.Context, workspaceID int64) (*model.StorageIntegration, error) {
	query := `
		FOR i IN storage_integrations
			FILTER i.workspace_id == @workspaceID
			LIMIT 1
			RETURN i
	`
	return queryOne[model.StorageIntegration](ctx, s.db, query, map[string]any{"workspaceID": workspaceID})
}

func (s *integrationStore) Upsert(ctx context.Context, integration *model.StorageIntegration) error {
	now := time.Now().UTC()
	integration.CreatedAt = now
	integration.UpdatedAt = now

	// One integration per workspace. Reconnecting overwrites tokens.
	query := `
		UPSERT { workspace_id: @workspaceID }
		INSERT MERGE(@doc, { _key: TO_STRING(@doc.id) })
		UPDATE {
			provider: @doc.provider,
			status: @doc.status,
			account_email: @doc.account_email,
			sealed_access_token: @doc.sealed_access_token,
			sealed_refresh_token: @doc.sealed_refresh_token,
			token_expires_at: @doc.token_expires_at,
			connected_by: @doc.connected_by,
			updated_at: @doc.updated_at
		} IN storage_integrations
		RETURN NEW
	`
	upserted, err := queryOne[model.StorageIntegration](ctx, s.db, query, map[string]any{
		"workspaceID": integration.WorkspaceID,
		"doc":         integration,
	})
	if err != nil {
		return err
	}
	*integration = *upserted
	return nil
}

func (s *integrationStore) UpdateTokens(ctx context.Context, workspaceID int64, sealedAccess string, sealedRefresh *string, expiresAt *time.Time) error {
	query := `
		FOR i IN storage_integrations
			FILTER i.workspace_id == @workspaceID
			UPDATE i WITH {
				sealed_access_token: @sealedAccess,
				sealed_refresh_token: @sealedRefresh != null ? @sealedRefresh : i.sealed_refresh_token,
				token_expires_at: @expiresAt,
				status: "connected",
				updated_at: @now
			} IN storage_integrations
			RETURN NEW._key
	`
	_, err := queryOne[string](ctx, s.db, query, map[string]any{
		"workspaceID":   workspaceID,
		"sealedAccess":  sealedAccess,
		"sealedRefresh": sealedRefresh,
		"expiresAt":     expiresAt,
		"now":           time.Now().UTC(),
	})
	return err
}

func (s *integrationStore) MarkRevoked(ctx context.Context, workspaceID int64) error {
	query := `
		FOR i IN storage_integrations
			FILTER i.workspace_id == @workspaceID
			UPDATE i WITH { status: "revoked", updated_at: @now } IN storage_integrations
			RETURN NEW._key
	`
	_, err := queryOne[string](ctx, s.db, query, map[string]any{
		"workspaceID": workspaceID,
		"now":         time.Now().UTC(),
	})
	return err
}

func (s *integrationStore) Delete(ctx context.Context, workspaceID int64) error {
	query := `
		FOR i IN storage_integrations
			FILTER i.workspace_id == @workspaceID
			REMOVE i IN storage_integrations
			RETURN OLD._key
	`
	_, err := queryOne[string](ctx, s.db, query, map[string]any{"workspaceID": workspaceID})
	return err
}
