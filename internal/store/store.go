package store

import (
	"context"
	"errors"

	"emcee.events/emcee/core/db"
)

// queryOne runs a query expected to yield a single document and maps the
// database not-found error to the store sentinel.
func queryOne[T any](ctx context.Context, database *db.DB, query string, bindVars map[string]any) (*T, error) {
	var doc T
	if err := database.QueryOne(ctx, query, bindVars, &doc); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// queryAll runs a query and collects every document into a slice.
func queryAll[T any](ctx context.Context, database *db.DB, query string, bindVars map[string]any) ([]T, error) {
	cursor, err := database.Query(ctx, query, bindVars)
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	docs := make([]T, 0)
	for cursor.HasMore() {
		var doc T
		if _, err := cursor.ReadDocument(ctx, &doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
