package store

import "context"

// Store is the repository interface for the document archive. The archive is
// write-only from the pipeline's point of view: rendering never reads from
// it, so a failed source always falls back to static text, never stale data.
type Store interface {
	// SaveDocument archives one rendered document.
	SaveDocument(ctx context.Context, content []byte) error
	// LatestDocument returns the most recently archived document, or nil
	// when the archive is empty.
	LatestDocument(ctx context.Context) ([]byte, error)
	// Migrate runs database migrations.
	Migrate(ctx context.Context) error
}
