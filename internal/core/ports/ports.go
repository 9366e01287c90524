package ports

import (
	"context"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
)

// DraftRepository defines the port for ad draft persistence operations
type DraftRepository interface {
	// List returns all drafts, sorted by slug
	List(ctx context.Context) ([]domain.Draft, error)

	// Save persists a draft to storage
	Save(ctx context.Context, draft *domain.Draft) error

	// Get retrieves a draft by slug
	Get(ctx context.Context, slug string) (*domain.Draft, error)

	// Exists checks if a draft with the given slug exists
	Exists(ctx context.Context, slug string) bool

	// Delete removes a draft by slug
	Delete(ctx context.Context, slug string) error
}

// BatchRepository keeps the records accepted into the export batch
type BatchRepository interface {
	// Load returns the accepted records in insertion order
	Load(ctx context.Context) ([]domain.ExportRecord, error)

	// Append stores one more accepted record
	Append(ctx context.Context, record domain.ExportRecord) error

	// Reset discards every stored record
	Reset(ctx context.Context) error
}

// Sink defines the port for delivering an export payload (file, clipboard, ...)
type Sink interface {
	// Deliver hands the payload to its destination
	Deliver(ctx context.Context, payload domain.Payload) error
}
