package store

import (
	"context"
	"database/sql"
)

type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS documents (
			id            BIGSERIAL PRIMARY KEY,
			content       TEXT NOT NULL,
			generated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_documents_generated_at ON documents (generated_at DESC);
	`
	_, err := p.db.ExecContext(ctx, query)
	return err
}

func (p *Postgres) SaveDocument(ctx context.Context, content []byte) error {
	_, err := p.db.ExecContext(ctx,
		"INSERT INTO documents (content) VALUES ($1)",
		string(content),
	)
	return err
}

func (p *Postgres) LatestDocument(ctx context.Context) ([]byte, error) {
	var content string
	err := p.db.QueryRowContext(ctx,
		"SELECT content FROM documents ORDER BY generated_at DESC LIMIT 1",
	).Scan(&content)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(content), nil
}
