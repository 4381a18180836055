package store

import (
	"context"
	"time"

	"emcee.events/emcee/core/db"
	"emcee.events/emcee/internal/model"
)

type memberStore struct {
	db *db.DB
}

func newMemberStore(database *db.DB) MemberStore {
	return &memberStore{db: database}
}

func (s *memberStore) GetByWorkspaceAndUser(ctx context.Context, workspaceID, userID int64) (*model.WorkspaceMember, error) {
	query := `
		FOR m IN workspace_members
			FILTER m.workspace_id == @workspaceID AND m.user_id == @userID
			LIMIT 1
			RETURN m
	`
	return queryOne[model.WorkspaceMember](ctx, s.db, query, map[string]any{
		"workspaceID": workspaceID,
		"userID":      userID,
	})
}

func (s *memberStore) Create(ctx context.Context, member *model.WorkspaceMember) error {
	now := time.Now().UTC()
	member.CreatedAt = now
	member.UpdatedAt = now

	query := `
		INSERT MERGE(@doc, { _key: TO_STRING(@doc.id) }) INTO workspace_members
		RETURN NEW
	`
	created, err := queryOne[model.WorkspaceMember](ctx, s.db, query, map[string]any{"doc": member})
	if err != nil {
		return err
	}
	*member = *created
	return nil
}

func (s *memberStore) UpdateRole(ctx context.Context, workspaceID, userID int64, role model.Role) (*model.WorkspaceMember, error) {
	query := `
		FOR m IN workspace_members
			FILTER m.workspace_id == @workspaceID AND m.user_id == @userID
			UPDATE m WITH { role: @role, updated_at: @now } IN workspace_members
			RETURN NEW
	`
	return queryOne[model.WorkspaceMember](ctx, s.db, query, map[string]any{
		"workspaceID": workspaceID,
		"userID":      userID,
		"role":        role,
		"now":         time.Now().UTC(),
	})
}

func (s *memberStore) Delete(ctx context.Context, workspaceID, userID int64) error {
	query := `
		FOR m IN workspace_members
			FILTER m.workspace_id == @workspaceID AND m.user_id == @userID
			REMOVE m IN workspace_members
			RETURN OLD._key
	`
	_, err := queryOne[string](ctx, s.db, query, map[string]any{
		"workspaceID": workspaceID,
		"userID":      userID,
	})
	return err
}

func (s *memberStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.WorkspaceMember, error) {
	query := `
		FOR m IN workspace_members
			FILTER m.workspace_id == @workspaceID
			SORT m.created_at ASC
			RETURN m
	`
	return queryAll[model.WorkspaceMember](ctx, s.db, query, map[string]any{"workspaceID": workspaceID})
}

func (s *memberStore) CountByRole(ctx context.Context, workspaceID int64, role model.Role) (int64, error) {
	query := `
		FOR m IN workspace_members
			FILTER m.workspace_id == @workspaceID AND m.role == @role
			COLLECT WITH COUNT INTO total
			RETURN total
	`
	count, err := queryOne[int64](ctx, s.db, query, map[string]any{
		"workspaceID": workspaceID,
		"role":        role,
	})
	if err != nil {
		return 0, err
	}
	return *count, nil
}
