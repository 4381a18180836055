// Package search indexes published content into Typesense so the studio
// can find projects, events, experiences and presets by name or code.
package search

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/typesense/typesense-go/v4/typesense"
	"github.com/typesense/typesense-go/v4/typesense/api"
	"github.com/typesense/typesense-go/v4/typesense/api/pointer"
)

type Config struct {
	URL        string
	APIKey     string
	Collection string
}

// Document is one indexed piece of content. ID is the content's snowflake
// rendered as a string because Typesense document ids are strings.
type Document struct {
	ID          string `json:"id"`
	WorkspaceID int64  `json:"workspace_id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	ShortCode   string `json:"short_code,omitempty"`
	PublishedAt int64  `json:"published_at"`
}

type Hit struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Name      string `json:"name"`
	ShortCode string `json:"short_code,omitempty"`
}

type Client interface {
	EnsureCollection(ctx context.Context) error
	Upsert(ctx context.Context, doc Document) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, workspaceID int64, query string, limit int) ([]Hit, error)
}

type client struct {
	ts   *typesense.Client
	name string
}

func New(cfg Config) (Client, error) {
	if cfg.URL == "" || cfg.APIKey == "" {
		return nil, fmt.Errorf("search requires URL and API key")
	}
	ts := typesense.NewClient(
		typesense.WithServer(cfg.URL),
		typesense.WithAPIKey(cfg.APIKey),
		typesense.WithConnectionTimeout(5*time.Second),
	)
	return &client{ts: ts, name: cfg.Collection}, nil
}

func (c *client) EnsureCollection(ctx context.Context) error {
	schema := &api.CollectionSchema{
		Name: c.name,
		Fields: []api.Field{
			{Name: "workspace_id", Type: "int64", Facet: pointer.True()},
			{Name: "type", Type: "string", Facet: pointer.True()},
			{Name: "name", Type: "string"},
			{Name: "short_code", Type: "string", Optional: pointer.True()},
			{Name: "published_at", Type: "int64"},
		},
		DefaultSortingField: pointer.String("published_at"),
	}

	// Typesense answers 409 when the collection already exists, so a failed
	// create is fine as long as the collection is there afterwards.
	if _, err := c.ts.Collections().Create(ctx, schema); err != nil {
		if _, getErr := c.ts.Collection(c.name).Retrieve(ctx); getErr != nil {
			return fmt.Errorf("creating collection %q: %w", c.name, err)
		}
	}
	return nil
}

func (c *client) Upsert(ctx context.Context, doc Document) error {
	if _, err := c.ts.Collection(c.name).Documents().Upsert(ctx, doc, &api.DocumentIndexParameters{}); err != nil {
		return fmt.Errorf("upserting document %s: %w", doc.ID, err)
	}
	return nil
}

func (c *client) Delete(ctx context.Context, id string) error {
	if _, err := c.ts.Collection(c.name).Document(id).Delete(ctx); err != nil {
		return fmt.Errorf("deleting document %s: %w", id, err)
	}
	return nil
}

func (c *client) Search(ctx context.Context, workspaceID int64, query string, limit int) ([]Hit, error) {
	params := &api.SearchCollectionParams{
		Q:        pointer.String(query),
		QueryBy:  pointer.String("name,short_code"),
		FilterBy: pointer.String(fmt.Sprintf("workspace_id:=%d", workspaceID)),
		PerPage:  pointer.Int(limit),
	}

	res, err := c.ts.Collection(c.name).Documents().Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", c.name, err)
	}
	if res.Hits == nil {
		return nil, nil
	}

	hits := make([]Hit, 0, len(*res.Hits))
	for _, h := range *res.Hits {
		if h.Document == nil {
			continue
		}
		doc := *h.Document
		hit := Hit{
			Type:      docString(doc, "type"),
			Name:      docString(doc, "name"),
			ShortCode: docString(doc, "short_code"),
		}
		if id, err := strconv.ParseInt(docString(doc, "id"), 10, 64); err == nil {
			hit.ID = id
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

func docString(doc map[string]any, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}

// NewDisabled returns a client that indexes nothing and finds nothing,
// for deployments without a search backend.
func NewDisabled() Client {
	return disabled{}
}

type disabled struct{}

func (disabled) EnsureCollection(context.Context) error { return nil }

func (disabled) Upsert(context.Context, Document) error { return nil }

func (disabled) Delete(context.Context, string) error { return nil }

func (disabled) Search(context.Context, int64, string, int) ([]Hit, error) {
	return nil, nil
}
