package store

import (
	"context"
	"time"

	"emcee.events/emcee/core/db"
	"emcee.events/emcee/internal/model"
)

type sessionStore struct {
	db *db.DB
}

func newSessionStore(database *db.DB) SessionStore {
	return &sessionStore{db: database}
}

func (s *sessionStore) GetValid(ctx context.Context, id int64) (*model.Session, error) {
	query := `
		FOR s IN sessions
			FILTER s.id == @id AND DATE_TIMESTAMP(s.expires_at) > DATE_TIMESTAMP(@now)
			LIMIT 1
			RETURN s
	`
	return queryOne[model.Session](ctx, s.db, query, map[string]any{
		"id":  id,
		"now": time.Now().UTC(),
	})
}

func (s *sessionStore) Create(ctx context.Context, session *model.Session) error {
	session.CreatedAt = time.Now().UTC()

	query := `
		INSERT MERGE(@doc, { _key: TO_STRING(@doc.id) }) INTO sessions
		RETURN NEW
	`
	created, err := queryOne[model.Session](ctx, s.db, query, map[string]any{"doc": session})
	if err != nil {
		return err
	}
	*session = *created
	return nil
}

func (s *sessionStore) Delete(ctx context.Context, id int64) error {
	query := `
		FOR s IN sessions
			FILTER s.id == @id
			REMOVE s IN sessions
	`
	return s.db.Execute(ctx, query, map[string]any{"id": id})
}

func (s *sessionStore) DeleteByUser(ctx context.Context, userID int64) error {
	query := `
		FOR s IN sessions
			FILTER s.user_id == @userID
			REMOVE s IN sessions
	`
	return s.db.Execute(ctx, query, map[string]any{"userID": userID})
}

func (s *sessionStore) DeleteExpired(ctx context.Context) error {
	query := `
		FOR s IN sessions
			FILTER DATE_TIMESTAMP(s.expires_at) <= DATE_TIMESTAMP(@now)
			REMOVE s IN sessions
	`
	return s.db.Execute(ctx, query, map[string]any{"now": time.Now().UTC()})
}
