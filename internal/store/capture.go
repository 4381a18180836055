package store

import (
	"context"
	"time"

	"emcee.events/emcee/core/db"
	"emcee.events/emcee/internal/model"
)

type captureStore struct {
	db *db.DB
}

func newCaptureStore(database *db.DB) CaptureStore {
	return &captureStore{db: database}
}

func (s *captureStore) GetByID(ctx context.Context, id int64) (*model.Capture, error) {
	query := `
		FOR c IN captures
			FILTER c.id == @id
			LIMIT 1
			RETURN c
	`
	return queryOne[model.Capture](ctx, s.db, query, map[string]any{"id": id})
}

func (s *captureStore) GetByShareCode(ctx context.Context, shareCode string) (*model.Capture, error) {
	query := `
		FOR c IN captures
			FILTER c.share_code == @shareCode
			LIMIT 1
			RETURN c
	`
	return queryOne[model.Capture](ctx, s.db, query, map[string]any{"shareCode": shareCode})
}

func (s *captureStore) Create(ctx context.Context, capture *model.Capture) error {
	now := time.Now().UTC()
	capture.CreatedAt = now
	capture.UpdatedAt = now

	query := `
		INSERT MERGE(@doc, { _key: TO_STRING(@doc.id) }) INTO captures
		RETURN NEW
	`
	created, err := queryOne[model.Capture](ctx, s.db, query, map[string]any{"doc": capture})
	if err != nil {
		return err
	}
	*capture = *created
	return nil
}

func (s *captureStore) ListByEvent(ctx context.Context, eventID int64) ([]model.Capture, error) {
	query := `
		FOR c IN captures
			FILTER c.event_id == @eventID
			SORT c.created_at DESC
			RETURN c
	`
	return queryAll[model.Capture](ctx, s.db, query, map[string]any{"eventID": eventID})
}

func (s *captureStore) ListByGuest(ctx context.Context, guestID int64) ([]model.Capture, error) {
	query := `
		FOR c IN captures
			FILTER c.guest_id == @guestID
			SORT c.created_at ASC
			RETURN c
	`
	return queryAll[model.Capture](ctx, s.db, query, map[string]any{"guestID": guestID})
}

func (s *captureStore) SetTransformJob(ctx context.Context, id, jobID int64) error {
	query := `
		FOR c IN captures
			FILTER c.id == @id
			UPDATE c WITH { transform_job_id: @jobID, updated_at: @now } IN captures
			RETURN NEW._key
	`
	_, err := queryOne[string](ctx, s.db, query, map[string]any{
		"id":    id,
		"jobID": jobID,
		"now":   time.Now().UTC(),
	})
	return err
}

func (s *captureStore) MarkShared(ctx context.Context, id, guestID int64) (*model.Capture, error) {
	// Guests can only mark their own captures.
	query := `
		FOR c IN captures
			FILTER c.id == @id AND c.guest_id == @guestID
			UPDATE c WITH { shared_at: @now, updated_at: @now } IN captures
			RETURN NEW
	`
	return queryOne[model.Capture](ctx, s.db, query, map[string]any{
		"id":      id,
		"guestID": guestID,
		"now":     time.Now().UTC(),
	})
}
