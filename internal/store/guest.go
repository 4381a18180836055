package store

import (
	"context"
	"time"

	"emcee.events/emcee/core/db"
	"emcee.events/emcee/internal/model"
)

type guestStore struct {
	db *db.DB
}

func newGuestStore(database *db.DB) GuestStore {
	return &guestStore{db: database}
}

func (s *guestStore) GetByID(ctx context.Context, id int64) (*model.Guest, error) {
	query := `
		FOR g IN guests
			FILTER g.id == @id
			LIMIT 1
			RETURN g
	`
	return queryOne[model.Guest](ctx, s.db, query, map[string]any{"id": id})
}

func (s *guestStore) Create(ctx context.Context, guest *model.Guest) error {
	now := time.Now().UTC()
	guest.CreatedAt = now
	guest.UpdatedAt = now
	guest.LastSeenAt = now

	query := `
		INSERT MERGE(@doc, { _key: TO_STRING(@doc.id) }) INTO guests
		RETURN NEW
	`
	created, err := queryOne[model.Guest](ctx, s.db, query, map[string]any{"doc": guest})
	if err != nil {
		return err
	}
	*guest = *created
	return nil
}

func (s *guestStore) UpdatePregate(ctx context.Context, id int64, displayName, email *string, answers map[string]string, consentedAt *time.Time) (*model.Guest, error) {
	query := `
		FOR g IN guests
			FILTER g.id == @id
			UPDATE g WITH {
				display_name: @displayName != null ? @displayName : g.display_name,
				email: @email != null ? @email : g.email,
				pregate_answers: MERGE(NOT_NULL(g.pregate_answers, {}), @answers),
				consented_at: @consentedAt != null ? @consentedAt : g.consented_at,
				last_seen_at: @now,
				updated_at: @now
			} IN guests
			RETURN NEW
	`
	return queryOne[model.Guest](ctx, s.db, query, map[string]any{
		"id":          id,
		"displayName": displayName,
		"email":       email,
		"answers":     answers,
		"consentedAt": consentedAt,
		"now":         time.Now().UTC(),
	})
}

func (s *guestStore) AdvanceFlow(ctx context.Context, id int64, from, to model.FlowState) (*model.Guest, error) {
	// The from filter makes this a compare-and-set, so two racing advances
	// cannot both win.
	query := `
		FOR g IN guests
			FILTER g.id == @id AND g.flow_state == @from
			UPDATE g WITH { flow_state: @to, last_seen_at: @now, updated_at: @now } IN guests
			RETURN NEW
	`
	return queryOne[model.Guest](ctx, s.db, query, map[string]any{
		"id":   id,
		"from": from,
		"to":   to,
		"now":  time.Now().UTC(),
	})
}

func (s *guestStore) CompleteExperience(ctx context.Context, id, experienceID int64) (*model.Guest, error) {
	query := `
		FOR g IN guests
			FILTER g.id == @id
			UPDATE g WITH {
				completed_experiences: UNION_DISTINCT(NOT_NULL(g.completed_experiences, []), [@experienceID]),
				last_seen_at: @now,
				updated_at: @now
			} IN guests
			RETURN NEW
	`
	return queryOne[model.Guest](ctx, s.db, query, map[string]any{
		"id":           id,
		"experienceID": experienceID,
		"now":          time.Now().UTC(),
	})
}

func (s *guestStore) ListByEvent(ctx context.Context, eventID int64) ([]model.Guest, error) {
	query := `
		FOR g IN guests
			FILTER g.event_id == @eventID
			SORT g.created_at DESC
			RETURN g
	`
	return queryAll[model.Guest](ctx, s.db, query, map[string]any{"eventID": eventID})
}
