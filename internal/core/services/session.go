package services

import (
	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
)

// Session is the state of one interactive composition: the ad being edited,
// where it links to, and the records accepted so far.
type Session struct {
	Assets      *domain.AssetCollection
	Destination domain.DestinationSpec
	Batch       *ExportBatch

	composer *PreviewComposer
}

// NewSession creates a session. Nil arguments get fresh defaults.
func NewSession(assets *domain.AssetCollection, dest domain.DestinationSpec, batch *ExportBatch, composer *PreviewComposer) *Session {
	if assets == nil {
		assets = domain.NewAssetCollection()
	}
	if batch == nil {
		batch = NewExportBatch()
	}
	if composer == nil {
		composer = NewPreviewComposer(nil)
	}
	return &Session{
		Assets:      assets,
		Destination: dest,
		Batch:       batch,
		composer:    composer,
	}
}

// Preview composes the current ad
func (s *Session) Preview(randomize bool) domain.PreviewResult {
	return s.composer.Compose(s.Assets, s.Destination, randomize)
}

// AddToBatch validates the current ad and appends it to the batch
func (s *Session) AddToBatch() (domain.ExportRecord, error) {
	return s.Batch.TryAppend(s.Assets, s.Destination)
}

// CSV renders the accumulated batch
func (s *Session) CSV() (string, error) {
	return Serialize(s.Batch)
}
