package store

import (
	"context"
	"time"

	"emcee.events/emcee/core/db"
	"emcee.events/emcee/internal/model"
)

const projectCollection = "projects"

type projectStore struct {
	db *db.DB
}

func newProjectStore(database *db.DB) ProjectStore {
	return &projectStore{db: database}
}

func (s *projectStore) GetByID(ctx context.Context, workspaceID, id int64) (*model.Project, error) {
	return versionedGet[model.Project](ctx, s.db, projectCollection, workspaceID, id)
}

func (s *projectStore) Create(ctx context.Context, project *model.Project) error {
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	query := `
		INSERT MERGE(@doc, { _key: TO_STRING(@doc.id) }) INTO projects
		RETURN NEW
	`
	created, err := queryOne[model.Project](ctx, s.db, query, map[string]any{"doc": project})
	if err != nil {
		return err
	}
	*project = *created
	return nil
}

func (s *projectStore) List(ctx context.Context, workspaceID int64) ([]model.Project, error) {
	query := `
		FOR p IN projects
			FILTER p.workspace_id == @workspaceID AND p.status != "deleted"
			SORT p.created_at ASC
			RETURN p
	`
	return queryAll[model.Project](ctx, s.db, query, map[string]any{"workspaceID": workspaceID})
}

func (s *projectStore) UpdateName(ctx context.Context, workspaceID, id int64, name string) (*model.Project, error) {
	return versionedRename[model.Project](ctx, s.db, projectCollection, workspaceID, id, name)
}

func (s *projectStore) UpdateDraft(ctx context.Context, workspaceID, id int64, patch map[string]any) (*model.Project, error) {
	return versionedUpdateDraft[model.Project](ctx, s.db, projectCollection, workspaceID, id, patch)
}

func (s *projectStore) Publish(ctx context.Context, workspaceID, id int64) (*model.Project, error) {
	return versionedPublish[model.Project](ctx, s.db, projectCollection, workspaceID, id)
}

func (s *projectStore) Delete(ctx context.Context, workspaceID, id int64) error {
	return versionedDelete(ctx, s.db, projectCollection, workspaceID, id)
}
