package store

import (
	"context"
	"time"

	"emcee.events/emcee/core/db"
	"emcee.events/emcee/internal/model"
)

const experienceCollection = "experiences"

type experienceStore struct {
	db *db.DB
}

func newExperienceStore(database *db.DB) ExperienceStore {
	return &experienceStore{db: database}
}

func (s *experienceStore) GetByID(ctx context.Context, workspaceID, id int64) (*model.Experience, error) {
	return versionedGet[model.Experience](ctx, s.db, experienceCollection, workspaceID, id)
}

func (s *experienceStore) GetManyByIDs(ctx context.Context, workspaceID int64, ids []int64) ([]model.Experience, error) {
	query := `
		FOR x IN experiences
			FILTER x.workspace_id == @workspaceID AND x.id IN @ids AND x.status != "deleted"
			RETURN x
	`
	return queryAll[model.Experience](ctx, s.db, query, map[string]any{
		"workspaceID": workspaceID,
		"ids":         ids,
	})
}

func (s *experienceStore) Create(ctx context.Context, experience *model.Experience) error {
	now := time.Now().UTC()
	experience.CreatedAt = now
	experience.UpdatedAt = now

	query := `
		INSERT MERGE(@doc, { _key: TO_STRING(@doc.id) }) INTO experiences
		RETURN NEW
	`
	created, err := queryOne[model.Experience](ctx, s.db, query, map[string]any{"doc": experience})
	if err != nil {
		return err
	}
	*experience = *created
	return nil
}

func (s *experienceStore) ListByProject(ctx context.Context, workspaceID, projectID int64) ([]model.Experience, error) {
	query := `
		FOR x IN experiences
			FILTER x.workspace_id == @workspaceID AND x.project_id == @projectID AND x.status != "deleted"
			SORT x.created_at ASC
			RETURN x
	`
	return queryAll[model.Experience](ctx, s.db, query, map[string]any{
		"workspaceID": workspaceID,
		"projectID":   projectID,
	})
}

func (s *experienceStore) UpdateName(ctx context.Context, workspaceID, id int64, name string) (*model.Experience, error) {
	return versionedRename[model.Experience](ctx, s.db, experienceCollection, workspaceID, id, name)
}

func (s *experienceStore) UpdateDraft(ctx context.Context, workspaceID, id int64, patch map[string]any) (*model.Experience, error) {
	return versionedUpdateDraft[model.Experience](ctx, s.db, experienceCollection, workspaceID, id, patch)
}

func (s *experienceStore) Publish(ctx context.Context, workspaceID, id int64) (*model.Experience, error) {
	return versionedPublish[model.Experience](ctx, s.db, experienceCollection, workspaceID, id)
}

func (s *experienceStore) Delete(ctx context.Context, workspaceID, id int64) error {
	return versionedDelete(ctx, s.db, experienceCollection, workspaceID, id)
}
