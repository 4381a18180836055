package store

import (
	"context"
	"time"

	"emcee.events/emcee/core/db"
	"emcee.events/emcee/internal/model"
)

const presetCollection = "ai_presets"

type presetStore struct {
	db *db.DB
}

func newPresetStore(database *db.DB) PresetStore {
	return &presetStore{db: database}
}

func (s *presetStore) GetByID(ctx context.Context, workspaceID, id int64) (*model.AIPreset, error) {
	return versionedGet[model.AIPreset](ctx, s.db, presetCollection, workspaceID, id)
}

func (s *presetStore) Create(ctx context.Context, preset *model.AIPreset) error {
	now := time.Now().UTC()
	preset.CreatedAt = now
	preset.UpdatedAt = now

	query := `
		INSERT MERGE(@doc, { _key: TO_STRING(@doc.id) }) INTO ai_presets
		RETURN NEW
	`
	created, err := queryOne[model.AIPreset](ctx, s.db, query, map[string]any{"doc": preset})
	if err != nil {
		return err
	}
	*preset = *created
	return nil
}

func (s *presetStore) List(ctx context.Context, workspaceID int64) ([]model.AIPreset, error) {
	query := `
		FOR p IN ai_presets
			FILTER p.workspace_id == @workspaceID AND p.status != "deleted"
			SORT p.created_at ASC
			RETURN p
	`
	return queryAll[model.AIPreset](ctx, s.db, query, map[string]any{"workspaceID": workspaceID})
}

func (s *presetStore) UpdateName(ctx context.Context, workspaceID, id int64, name string) (*model.AIPreset, error) {
	return versionedRename[model.AIPreset](ctx, s.db, presetCollection, workspaceID, id, name)
}

func (s *presetStore) UpdateDraft(ctx context.Context, workspaceID, id int64, patch map[string]any) (*model.AIPreset, error) {
	return versionedUpdateDraft[model.AIPreset](ctx, s.db, presetCollection, workspaceID, id, patch)
}

func (s *presetStore) Publish(ctx context.Context, workspaceID, id int64) (*model.AIPreset, error) {
	return versionedPublish[model.AIPreset](ctx, s.db, presetCollection, workspaceID, id)
}

func (s *presetStore) Delete(ctx context.Context, workspaceID, id int64) error {
	return versionedDelete(ctx, s.db, presetCollection, workspaceID, id)
}
