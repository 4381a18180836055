package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"emcee.events/emcee/internal/search"
)

// Draft patches arrive as raw JSON objects from the studio. The cap keeps a
// single misbehaving editor from inflating a config document indefinitely.
const maxDraftPatchBytes = 64 * 1024

var (
	ErrEmptyPatch    = errors.New("draft patch must be a non-empty object")
	ErrPatchTooLarge = errors.New("draft patch is too large")
	ErrNoDraft       = errors.New("draft config is empty, nothing to publish")
)

func validateDraftPatch(patch map[string]any) error {
	if len(patch) == 0 {
		return ErrEmptyPatch
	}
	encoded, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("encoding patch: %w", err)
	}
	if len(encoded) > maxDraftPatchBytes {
		return ErrPatchTooLarge
	}
	return nil
}

// cloneConfig deep-copies a config through JSON so the copy shares nothing
// with the original.
func cloneConfig(config map[string]any) map[string]any {
	if len(config) == 0 {
		return map[string]any{}
	}
	encoded, err := json.Marshal(config)
	if err != nil {
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal(encoded, &out); err != nil {
		return map[string]any{}
	}
	return out
}

func contentDocument(contentID, workspaceID int64, contentType, name, shortCode string, publishedAt *time.Time) search.Document {
	var published int64
	if publishedAt != nil {
		published = publishedAt.Unix()
	}
	return search.Document{
		ID:          strconv.FormatInt(contentID, 10),
		WorkspaceID: workspaceID,
		Type:        contentType,
		Name:        name,
		ShortCode:   shortCode,
		PublishedAt: published,
	}
}

// Search sync is best-effort. A down Typesense never blocks a publish.
func indexContent(ctx context.Context, index search.Client, doc search.Document) {
	if err := index.Upsert(ctx, doc); err != nil {
		slog.WarnContext(ctx, "failed to index content",
			"error", err,
			"doc_id", doc.ID,
			"type", doc.Type,
		)
	}
}

func deindexContent(ctx context.Context, index search.Client, id int64) {
	if err := index.Delete(ctx, strconv.FormatInt(id, 10)); err != nil {
		slog.WarnContext(ctx, "failed to remove content from index",
			"error", err,
			"doc_id", id,
		)
	}
}
