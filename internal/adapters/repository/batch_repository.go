package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
	"github.com/kamal-hamza/rsa-cli/internal/core/ports"
)

// batchManifest is the on-disk layout of the batch file
type batchManifest struct {
	Records []domain.ExportRecord `yaml:"records"`
}

// BatchRepository keeps the accepted export records in a YAML manifest
type BatchRepository struct {
	path string
	mu   sync.Mutex
}

// NewBatchRepository creates a repository backed by the manifest at path
func NewBatchRepository(path string) *BatchRepository {
	return &BatchRepository{path: path}
}

var _ ports.BatchRepository = (*BatchRepository)(nil)

// Load returns the stored records; a missing manifest is an empty batch
func (r *BatchRepository) Load(ctx context.Context) ([]domain.ExportRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, err := r.read()
	if err != nil {
		return nil, err
	}
	return m.Records, nil
}

// Append adds a record at the end of the manifest
func (r *BatchRepository) Append(ctx context.Context, record domain.ExportRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, err := r.read()
	if err != nil {
		return err
	}
	m.Records = append(m.Records, record)
	return r.write(m)
}

// Reset removes the manifest
func (r *BatchRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (r *BatchRepository) read() (*batchManifest, error) {
	m := &batchManifest{}
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return nil, fmt.Errorf("failed to read batch manifest: %w", err)
	}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to parse batch manifest: %w", err)
	}
	return m, nil
}

func (r *BatchRepository) write(m *batchManifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal batch manifest: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create batch directory: %w", err)
	}

	// Written next to the manifest and renamed into place
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write batch manifest: %w", err)
	}
	return os.Rename(tmp, r.path)
}
