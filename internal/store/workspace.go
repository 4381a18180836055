package store

import (
	"context"
	"time"

	"emcee.events/emcee/core/db"
	"emcee.events/emcee/internal/model"
)

type workspaceStore struct {
	db *db.DB
}

func newWorkspaceStore(database *db.DB) WorkspaceStore {
	return &workspaceStore{db: database}
}

func (s *workspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	query := `
		FOR w IN workspaces
			FILTER w.id == @id AND w.status != "deleted"
			LIMIT 1
			RETURN w
	`
	return queryOne[model.Workspace](ctx, s.db, query, map[string]any{"id": id})
}

func (s *workspaceStore) GetBySlug(ctx context.Context, slug string) (*model.Workspace, error) {
	query := `
		FOR w IN workspaces
			FILTER w.slug == @slug AND w.status != "deleted"
			LIMIT 1
			RETURN w
	`
	return queryOne[model.Workspace](ctx, s.db, query, map[string]any{"slug": slug})
}

func (s *workspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	now := time.Now().UTC()
	ws.CreatedAt = now
	ws.UpdatedAt = now

	query := `
		INSERT MERGE(@doc, { _key: TO_STRING(@doc.id) }) INTO workspaces
		RETURN NEW
	`
	created, err := queryOne[model.Workspace](ctx, s.db, query, map[string]any{"doc": ws})
	if err != nil {
		return err
	}
	*ws = *created
	return nil
}

func (s *workspaceStore) Update(ctx context.Context, ws *model.Workspace) error {
	query := `
		FOR w IN workspaces
			FILTER w.id == @id AND w.status != "deleted"
			UPDATE w WITH {
				name: @name,
				slug: @slug,
				description: @description,
				updated_at: @now
			} IN workspaces
			RETURN NEW
	`
	updated, err := queryOne[model.Workspace](ctx, s.db, query, map[string]any{
		"id":          ws.ID,
		"name":        ws.Name,
		"slug":        ws.Slug,
		"description": ws.Description,
		"now":         time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	*ws = *updated
	return nil
}

func (s *workspaceStore) Delete(ctx context.Context, id int64) error {
	query := `
		FOR w IN workspaces
			FILTER w.id == @id AND w.status != "deleted"
			UPDATE w WITH {
				status: "deleted",
				deleted_at: @now,
				updated_at: @now
			} IN workspaces
			RETURN NEW._key
	`
	_, err := queryOne[string](ctx, s.db, query, map[string]any{
		"id":  id,
		"now": time.Now().UTC(),
	})
	return err
}

func (s *workspaceStore) ListByUser(ctx context.Context, userID int64) ([]model.Workspace, error) {
	query := `
		FOR m IN workspace_members
			FILTER m.user_id == @userID
			FOR w IN workspaces
				FILTER w.id == m.workspace_id AND w.status != "deleted"
				SORT w.created_at ASC
				RETURN w
	`
	return queryAll[model.Workspace](ctx, s.db, query, map[string]any{"userID": userID})
}
