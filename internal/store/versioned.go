package store

import (
	"context"
	"time"

	"emcee.events/emcee/core/db"
)

// Projects, events, experiences and AI presets share one draft/publish
// lifecycle. Draft mutations merge a patch into draft_config and bump
// draft_version; publishing copies the draft over the published side. Each
// runs as a single statement so readers never see a half-applied document.

const versionedGetQuery = `
	FOR d IN @@col
		FILTER d.id == @id AND d.workspace_id == @workspaceID AND d.status != "deleted"
		LIMIT 1
		RETURN d
`

const versionedUpdateDraftQuery = `
	FOR d IN @@col
		FILTER d.id == @id AND d.workspace_id == @workspaceID AND d.status != "deleted"
		UPDATE d WITH {
			draft_config: MERGE_RECURSIVE(d.draft_config, @patch),
			draft_version: d.draft_version + 1,
			updated_at: @now
		} IN @@col
		RETURN NEW
`

const versionedPublishQuery = `
	FOR d IN @@col
		FILTER d.id == @id AND d.workspace_id == @workspaceID AND d.status != "deleted"
		UPDATE d WITH {
			status: "active",
			published_config: d.draft_config,
			published_version: d.draft_version,
			published_at: @now,
			updated_at: @now
		} IN @@col
		RETURN NEW
`

const versionedRenameQuery = `
	FOR d IN @@col
		FILTER d.id == @id AND d.workspace_id == @workspaceID AND d.status != "deleted"
		UPDATE d WITH { name: @name, updated_at: @now } IN @@col
		RETURN NEW
`

const versionedDeleteQuery = `
	FOR d IN @@col
		FILTER d.id == @id AND d.workspace_id == @workspaceID AND d.status != "deleted"
		UPDATE d WITH { status: "deleted", updated_at: @now } IN @@col
		RETURN NEW._key
`

func versionedGet[T any](ctx context.Context, database *db.DB, col string, workspaceID, id int64) (*T, error) {
	return queryOne[T](ctx, database, versionedGetQuery, map[string]any{
		"@col":        col,
		"id":          id,
		"workspaceID": workspaceID,
	})
}

func versionedUpdateDraft[T any](ctx context.Context, database *db.DB, col string, workspaceID, id int64, patch map[string]any) (*T, error) {
	return queryOne[T](ctx, database, versionedUpdateDraftQuery, map[string]any{
		"@col":        col,
		"id":          id,
		"workspaceID": workspaceID,
		"patch":       patch,
		"now":         time.Now().UTC(),
	})
}

func versionedPublish[T any](ctx context.Context, database *db.DB, col string, workspaceID, id int64) (*T, error) {
	return queryOne[T](ctx, database, versionedPublishQuery, map[string]any{
		"@col":        col,
		"id":          id,
		"workspaceID": workspaceID,
		"now":         time.Now().UTC(),
	})
}

func versionedRename[T any](ctx context.Context, database *db.DB, col string, workspaceID, id int64, name string) (*T, error) {
	return queryOne[T](ctx, database, versionedRenameQuery, map[string]any{
		"@col":        col,
		"id":          id,
		"workspaceID": workspaceID,
		"name":        name,
		"now":         time.Now().UTC(),
	})
}

func versionedDelete(ctx context.Context, database *db.DB, col string, workspaceID, id int64) error {
	_, err := queryOne[string](ctx, database, versionedDeleteQuery, map[string]any{
		"@col":        col,
		"id":          id,
		"workspaceID": workspaceID,
		"now":         time.Now().UTC(),
	})
	return err
}
