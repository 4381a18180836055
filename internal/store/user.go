package store

import (
	"context"
	"time"

	"emcee.events/emcee/core/db"
	"emcee.events/emcee/internal/model"
)

type userStore struct {
	db *db.DB
}

func newUserStore(database *db.DB) UserStore {
	return &userStore{db: database}
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `
		FOR u IN users
			FILTER u.id == @id
			LIMIT 1
			RETURN u
	`
	return queryOne[model.User](ctx, s.db, query, map[string]any{"id": id})
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		FOR u IN users
			FILTER LOWER(u.email) == LOWER(@email)
			LIMIT 1
			RETURN u
	`
	return queryOne[model.User](ctx, s.db, query, map[string]any{"email": email})
}

func (s *userStore) UpsertByWorkOSID(ctx context.Context, user *model.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	// On the update path NEW keeps the stored id, so the caller always ends
	// up with the canonical user.
	query := `
		UPSERT { workos_id: @workosID }
		INSERT MERGE(@doc, { _key: TO_STRING(@doc.id) })
		UPDATE { name: @doc.name, email: @doc.email, avatar_url: @doc.avatar_url, updated_at: @doc.updated_at }
		IN users
		RETURN NEW
	`
	upserted, err := queryOne[model.User](ctx, s.db, query, map[string]any{
		"workosID": user.WorkOSID,
		"doc":      user,
	})
	if err != nil {
		return err
	}
	*user = *upserted
	return nil
}
