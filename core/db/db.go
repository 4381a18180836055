package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/arangodb/go-driver/v2/connection"
)

// ErrNotFound is returned by QueryOne when the query yields no documents.
var ErrNotFound = errors.New("document not found")

// Collections holds every collection the service reads or writes. EnsureSchema
// creates the missing ones on boot, so a fresh database needs no manual setup.
var Collections = []string{
	"users",
	"sessions",
	"workspaces",
	"workspace_members",
	"projects",
	"events",
	"experiences",
	"ai_presets",
	"guests",
	"captures",
	"storage_integrations",
	"transform_jobs",
}

// DB wraps an ArangoDB connection and provides query helpers.
// It serves as the main entry point for database operations.
type DB struct {
	conn     connection.Connection
	client   arangodb.Client
	database arangodb.Database
	cfg      Config
}

type Config struct {
	URL      string
	Username string
	Password string
	Database string
}

func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("arangodb URL is required")
	}
	if c.Username == "" {
		return fmt.Errorf("arangodb username is required")
	}
	if c.Database == "" {
		return fmt.Errorf("arangodb database name is required")
	}
	return nil
}

// New creates a new DB instance with the given configuration. The connection
// is lazy; call EnsureSchema before issuing queries.
func New(ctx context.Context, cfg Config) (*DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("arangodb config: %w", err)
	}

	endpoint := connection.NewRoundRobinEndpoints([]string{cfg.URL}) // round robins from the urls. we just have one for now
	conn := connection.NewHttp2Connection(connection.DefaultHTTP2ConfigurationWrapper(endpoint, true))

	auth := connection.NewBasicAuth(cfg.Username, cfg.Password)
	if err := conn.SetAuthentication(auth); err != nil {
		return nil, fmt.Errorf("arangodb auth: %w", err)
	}

	return &DB{
		conn:   conn,
		client: arangodb.NewClient(conn),
		cfg:    cfg,
	}, nil
}

func (d *DB) Close() error {
	return nil
}

// EnsureSchema creates the database and every collection in Collections if
// they do not exist yet.
func (d *DB) EnsureSchema(ctx context.Context) error {
	start := time.Now()

	exists, err := d.client.DatabaseExists(ctx, d.cfg.Database)
	if err != nil {
		return fmt.Errorf("check database exists: %w", err)
	}

	if !exists {
		if _, err = d.client.CreateDatabase(ctx, d.cfg.Database, nil); err != nil {
			return fmt.Errorf("create database: %w", err)
		}
		slog.InfoContext(ctx, "arangodb database created",
			"database", d.cfg.Database,
			"duration_ms", time.Since(start).Milliseconds())
	}

	database, err := d.client.GetDatabase(ctx, d.cfg.Database, nil)
	if err != nil {
		return fmt.Errorf("get database: %w", err)
	}
	d.database = database

	for _, name := range Collections {
		if err := d.ensureCollection(ctx, name); err != nil {
			return err
		}
	}

	return nil
}

func (d *DB) ensureCollection(ctx context.Context, name string) error {
	exists, err := d.database.CollectionExists(ctx, name)
	if err != nil {
		return fmt.Errorf("check collection %s exists: %w", name, err)
	}

	if !exists {
		colType := arangodb.CollectionTypeDocument
		_, err = d.database.CreateCollectionV2(ctx, name, &arangodb.CreateCollectionPropertiesV2{
			Type: &colType,
		})
		if err != nil {
			return fmt.Errorf("create collection %s: %w", name, err)
		}
		slog.InfoContext(ctx, "arangodb collection created", "collection", name)
	}

	return nil
}

// Query runs an AQL query and returns the raw cursor. Callers own the cursor
// and must Close it.
func (d *DB) Query(ctx context.Context, query string, bindVars map[string]any) (arangodb.Cursor, error) {
	if d.database == nil {
		return nil, fmt.Errorf("database not initialized, call EnsureSchema first")
	}
	return d.database.Query(ctx, query, &arangodb.QueryOptions{BindVars: bindVars})
}

// QueryOne runs an AQL query expected to yield at most one document and
// decodes it into out. Returns ErrNotFound when the cursor is empty.
func (d *DB) QueryOne(ctx context.Context, query string, bindVars map[string]any, out any) error {
	cursor, err := d.Query(ctx, query, bindVars)
	if err != nil {
		return fmt.Errorf("execute query: %w", err)
	}
	defer cursor.Close()

	if !cursor.HasMore() {
		return ErrNotFound
	}

	if _, err := cursor.ReadDocument(ctx, out); err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	return nil
}

// Execute runs an AQL mutation and discards any result rows.
func (d *DB) Execute(ctx context.Context, query string, bindVars map[string]any) error {
	cursor, err := d.Query(ctx, query, bindVars)
	if err != nil {
		return fmt.Errorf("execute query: %w", err)
	}
	return cursor.Close()
}
