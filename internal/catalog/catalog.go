// Package catalog is a best-effort secondary index over generated
// crosswords: a durable Postgres table plus a Redis cache of the most
// recent entries (filled by Record, not by List), backing
// GET /api/crossword/list. The core
// generation pipeline never reads from it; it is write-only from the
// pipeline's perspective.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

const (
	recentListKey  = "crossword:recent"
	recentListSize = 100
	cacheTTL       = 10 * time.Minute
)

// CatalogEntry is one row of the index.
type CatalogEntry struct {
	CrosswordID string    `json:"crosswordId"`
	Theme       string    `json:"theme"`
	Language    string    `json:"language"`
	GridSize    string    `json:"gridSize"`
	Mode        string    `json:"mode"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Catalog struct {
	db    *sql.DB
	redis *redis.Client
}

func New(postgresURL, redisURL string) (*Catalog, error) {
	db, err := sql.Open("postgres", postgresURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &Catalog{db: db, redis: rdb}, nil
}

func (c *Catalog) Close() error {
	if err := c.db.Close(); err != nil {
		return err
	}
	return c.redis.Close()
}

func (c *Catalog) InitSchema() error {
	_, err := c.db.Exec(`
	CREATE TABLE IF NOT EXISTS crossword_catalog (
		crossword_id VARCHAR(32) PRIMARY KEY,
		theme TEXT NOT NULL,
		language VARCHAR(16) NOT NULL,
		grid_size VARCHAR(16) NOT NULL,
		mode VARCHAR(20) NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_crossword_catalog_created_at ON crossword_catalog(created_at);
	`)
	return err
}

// Record writes an entry to Postgres and refreshes the Redis-cached recent
// list. Both steps are best-effort from the caller's point of view — a
// failed Record never fails the generation request it followed.
func (c *Catalog) Record(ctx context.Context, entry CatalogEntry) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO crossword_catalog (crossword_id, theme, language, grid_size, mode, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (crossword_id) DO NOTHING
	`, entry.CrosswordID, entry.Theme, entry.Language, entry.GridSize, entry.Mode, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("catalog: postgres insert failed: %w", err)
	}

	encoded, err := json.Marshal(entry)
	if err == nil {
		c.redis.LPush(ctx, recentListKey, encoded)
		c.redis.LTrim(ctx, recentListKey, 0, recentListSize-1)
		c.redis.Expire(ctx, recentListKey, cacheTTL)
	}
	return nil
}

// List returns the most recent entries, reading Redis first and falling
// back to Postgres on a cache miss or Redis error.
func (c *Catalog) List(ctx context.Context, limit int) ([]CatalogEntry, error) {
	if cached, err := c.listFromCache(ctx, limit); err == nil && len(cached) > 0 {
		return cached, nil
	}
	return c.listFromPostgres(ctx, limit)
}

func (c *Catalog) listFromCache(ctx context.Context, limit int) ([]CatalogEntry, error) {
	raw, err := c.redis.LRange(ctx, recentListKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]CatalogEntry, 0, len(raw))
	for _, r := range raw {
		var e CatalogEntry
		if err := json.Unmarshal([]byte(r), &e); err == nil {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (c *Catalog) listFromPostgres(ctx context.Context, limit int) ([]CatalogEntry, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT crossword_id, theme, language, grid_size, mode, created_at
		FROM crossword_catalog ORDER BY created_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("catalog: postgres query failed: %w", err)
	}
	defer rows.Close()

	var entries []CatalogEntry
	for rows.Next() {
		var e CatalogEntry
		if err := rows.Scan(&e.CrosswordID, &e.Theme, &e.Language, &e.GridSize, &e.Mode, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
