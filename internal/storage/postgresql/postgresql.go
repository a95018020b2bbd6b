package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

type Storage struct {
	db *pgxpool.Pool
}

// One gallery per channel, posts cascade-deleted with their gallery,
// message_id indexed for the edit-path replace deletes.
const schema = `
CREATE TABLE IF NOT EXISTS galleries (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name TEXT NOT NULL,
	channel_id TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_galleries_channel_id ON galleries (channel_id);

CREATE TABLE IF NOT EXISTS gallery_posts (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	gallery_id UUID NOT NULL,
	message_id TEXT NOT NULL,
	source_url TEXT,
	media_url TEXT,
	media_width INTEGER,
	media_height INTEGER,
	thumbnail_url TEXT,
	thumbnail_width INTEGER,
	thumbnail_height INTEGER,
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	CONSTRAINT fk_gallery FOREIGN KEY (gallery_id) REFERENCES galleries (id)
		ON DELETE CASCADE
		ON UPDATE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_gallery_posts_message_id ON gallery_posts (message_id);
`

func New(ctx context.Context, dsn string) (*Storage, error) {
	const op = "storage.postgresql.New"

	db, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// Bootstrap applies the schema. Idempotent, safe to run on every start.
func (s *Storage) Bootstrap(ctx context.Context) error {
	const op = "storage.postgresql.Bootstrap"

	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.db
}

func (s *Storage) Stop() {
	s.db.Close()
}
