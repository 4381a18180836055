package store

import (
	"context"
	"time"

	"emcee.events/emcee/core/db"
	"emcee.events/emcee/internal/model"
)

const eventCollection = "events"

type eventStore struct {
	db *db.DB
}

func newEventStore(database *db.DB) EventStore {
	return &eventStore{db: database}
}

func (s *eventStore) GetByID(ctx context.Context, workspaceID, id int64) (*model.Event, error) {
	return versionedGet[model.Event](ctx, s.db, eventCollection, workspaceID, id)
}

func (s *eventStore) Get(ctx context.Context, id int64) (*model.Event, error) {
	query := `
		FOR e IN events
			FILTER e.id == @id AND e.status != "deleted"
			LIMIT 1
			RETURN e
	`
	return queryOne[model.Event](ctx, s.db, query, map[string]any{"id": id})
}

func (s *eventStore) GetByShortCode(ctx context.Context, shortCode string) (*model.Event, error) {
	query := `
		FOR e IN events
			FILTER e.short_code == @shortCode AND e.status != "deleted"
			LIMIT 1
			RETURN e
	`
	return queryOne[model.Event](ctx, s.db, query, map[string]any{"shortCode": shortCode})
}

func (s *eventStore) ShortCodeExists(ctx context.Context, shortCode string) (bool, error) {
	// Deleted events keep their code reserved so stale QR prints never point
	// at a different event.
	query := `
		RETURN LENGTH(
			FOR e IN events
				FILTER e.short_code == @shortCode
				LIMIT 1
				RETURN 1
		) > 0
	`
	exists, err := queryOne[bool](ctx, s.db, query, map[string]any{"shortCode": shortCode})
	if err != nil {
		return false, err
	}
	return *exists, nil
}

func (s *eventStore) Create(ctx context.Context, event *model.Event) error {
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	query := `
		INSERT MERGE(@doc, { _key: TO_STRING(@doc.id) }) INTO events
		RETURN NEW
	`
	created, err := queryOne[model.Event](ctx, s.db, query, map[string]any{"doc": event})
	if err != nil {
		return err
	}
	*event = *created
	return nil
}

func (s *eventStore) ListByProject(ctx context.Context, workspaceID, projectID int64) ([]model.Event, error) {
	query := `
		FOR e IN events
			FILTER e.workspace_id == @workspaceID AND e.project_id == @projectID AND e.status != "deleted"
			SORT e.created_at ASC
			RETURN e
	`
	return queryAll[model.Event](ctx, s.db, query, map[string]any{
		"workspaceID": workspaceID,
		"projectID":   projectID,
	})
}

func (s *eventStore) UpdateMeta(ctx context.Context, workspaceID, id int64, name string, startsAt, endsAt *time.Time, venue *string) (*model.Event, error) {
	query := `
		FOR e IN events
			FILTER e.id == @id AND e.workspace_id == @workspaceID AND e.status != "deleted"
			UPDATE e WITH {
				name: @name,
				starts_at: @startsAt,
				ends_at: @endsAt,
				venue: @venue,
				updated_at: @now
			} IN events
			RETURN NEW
	`
	return queryOne[model.Event](ctx, s.db, query, map[string]any{
		"id":          id,
		"workspaceID": workspaceID,
		"name":        name,
		"startsAt":    startsAt,
		"endsAt":      endsAt,
		"venue":       venue,
		"now":         time.Now().UTC(),
	})
}

func (s *eventStore) UpdateDraft(ctx context.Context, workspaceID, id int64, patch map[string]any) (*model.Event, error) {
	return versionedUpdateDraft[model.Event](ctx, s.db, eventCollection, workspaceID, id, patch)
}

func (s *eventStore) Publish(ctx context.Context, workspaceID, id int64) (*model.Event, error) {
	return versionedPublish[model.Event](ctx, s.db, eventCollection, workspaceID, id)
}

func (s *eventStore) Delete(ctx context.Context, workspaceID, id int64) error {
	return versionedDelete(ctx, s.db, eventCollection, workspaceID, id)
}
