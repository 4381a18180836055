package store

import (
	"context"
	"time"

	"emcee.events/emcee/core/db"
	"emcee.events/emcee/internal/model"
)

type transformJobStore struct {
	db *db.DB
}

func newTransformJobStore(database *db.DB) TransformJobStore {
	return &transformJobStore{db: database}
}

func (s *transformJobStore) GetByID(ctx context.Context, workspaceID, id int64) (*model.TransformJob, error) {
	query := `
		FOR t IN transform_jobs
			FILTER t.id == @id AND t.workspace_id == @workspaceID
			LIMIT 1
			RETURN t
	`
	return queryOne[model.TransformJob](ctx, s.db, query, map[string]any{
		"id":          id,
		"workspaceID": workspaceID,
	})
}

func (s *transformJobStore) Create(ctx context.Context, job *model.TransformJob) error {
	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now

	query := `
		INSERT MERGE(@doc, { _key: TO_STRING(@doc.id) }) INTO transform_jobs
		RETURN NEW
	`
	created, err := queryOne[model.TransformJob](ctx, s.db, query, map[string]any{"doc": job})
	if err != nil {
		return err
	}
	*job = *created
	return nil
}

func (s *transformJobStore) Claim(ctx context.Context, id int64) (*model.TransformJob, error) {
	// Running is claimable again so a redelivered message from a crashed
	// consumer can pick the job back up. Terminal states stay terminal.
	query := `
		FOR t IN transform_jobs
			FILTER t.id == @id AND t.status IN ["queued", "running"]
			UPDATE t WITH {
				status: "running",
				attempt: t.attempt + 1,
				started_at: @now,
				updated_at: @now
			} IN transform_jobs
			RETURN NEW
	`
	return queryOne[model.TransformJob](ctx, s.db, query, map[string]any{
		"id":  id,
		"now": time.Now().UTC(),
	})
}

func (s *transformJobStore) MarkSucceeded(ctx context.Context, id int64, result *model.TransformResult) error {
	query := `
		FOR t IN transform_jobs
			FILTER t.id == @id
			UPDATE t WITH {
				status: "succeeded",
				result: @result,
				error_message: null,
				finished_at: @now,
				updated_at: @now
			} IN transform_jobs
			RETURN NEW._key
	`
	_, err := queryOne[string](ctx, s.db, query, map[string]any{
		"id":     id,
		"result": result,
		"now":    time.Now().UTC(),
	})
	return err
}

func (s *transformJobStore) MarkFailed(ctx context.Context, id int64, errMsg string) error {
	query := `
		FOR t IN transform_jobs
			FILTER t.id == @id
			UPDATE t WITH {
				status: "failed",
				error_message: @errMsg,
				finished_at: @now,
				updated_at: @now
			} IN transform_jobs
			RETURN NEW._key
	`
	_, err := queryOne[string](ctx, s.db, query, map[string]any{
		"id":     id,
		"errMsg": errMsg,
		"now":    time.Now().UTC(),
	})
	return err
}

func (s *transformJobStore) ListByWorkspace(ctx context.Context, workspaceID int64, limit int) ([]model.TransformJob, error) {
	query := `
		FOR t IN transform_jobs
			FILTER t.workspace_id == @workspaceID
			SORT t.created_at DESC
			LIMIT @limit
			RETURN t
	`
	return queryAll[model.TransformJob](ctx, s.db, query, map[string]any{
		"workspaceID": workspaceID,
		"limit":       limit,
	})
}
