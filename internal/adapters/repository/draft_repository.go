package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
	"github.com/kamal-hamza/rsa-cli/internal/core/ports"
	"github.com/kamal-hamza/rsa-cli/pkg/workspace"
)

// DraftRepository stores each draft as a YAML file in the workspace drafts directory
type DraftRepository struct {
	ws *workspace.Workspace
	mu sync.RWMutex
}

// NewDraftRepository creates a new file-based draft repository
func NewDraftRepository(ws *workspace.Workspace) *DraftRepository {
	return &DraftRepository{ws: ws}
}

// Ensure it implements the interface
var _ ports.DraftRepository = (*DraftRepository)(nil)

// List returns every readable draft, sorted by slug. Unparsable files are skipped.
func (r *DraftRepository) List(ctx context.Context) ([]domain.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, err := os.ReadDir(r.ws.DraftsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read drafts directory: %w", err)
	}

	var drafts []domain.Draft
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		draft, err := r.read(entry.Name())
		if err != nil {
			continue
		}
		drafts = append(drafts, *draft)
	}

	sort.Slice(drafts, func(i, j int) bool { return drafts[i].Slug < drafts[j].Slug })
	return drafts, nil
}

// Get retrieves a draft by slug
func (r *DraftRepository) Get(ctx context.Context, slug string) (*domain.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.read(domain.GenerateFilename(slug))
}

// Load reads a draft from an arbitrary path (used by watch mode and explicit file arguments)
func (r *DraftRepository) Load(path string) (*domain.Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read draft: %w", err)
	}
	return decodeDraft(data, filepath.Base(path))
}

func (r *DraftRepository) read(filename string) (*domain.Draft, error) {
	data, err := os.ReadFile(r.ws.DraftPath(filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("draft not found: %s", domain.ParseFilename(filename))
		}
		return nil, fmt.Errorf("failed to read draft: %w", err)
	}
	return decodeDraft(data, filename)
}

func decodeDraft(data []byte, filename string) (*domain.Draft, error) {
	var draft domain.Draft
	if err := yaml.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to parse draft %s: %w", filename, err)
	}
	draft.Slug = domain.ParseFilename(filename)
	draft.Filename = filename
	if draft.Name == "" {
		draft.Name = draft.Slug
	}
	return &draft, nil
}

// Save writes a draft to disk
func (r *DraftRepository) Save(ctx context.Context, draft *domain.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if draft.Filename == "" {
		draft.Filename = domain.GenerateFilename(draft.Slug)
	}

	data, err := yaml.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	if err := os.MkdirAll(r.ws.DraftsPath, 0755); err != nil {
		return fmt.Errorf("failed to create drafts directory: %w", err)
	}
	if err := os.WriteFile(r.ws.DraftPath(draft.Filename), data, 0644); err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}
	return nil
}

// Exists checks if a draft with the given slug exists
func (r *DraftRepository) Exists(ctx context.Context, slug string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, err := os.Stat(r.ws.DraftPath(domain.GenerateFilename(slug)))
	return err == nil
}

// Delete removes a draft by slug
func (r *DraftRepository) Delete(ctx context.Context, slug string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.ws.DraftPath(domain.GenerateFilename(slug))
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("draft not found: %s", slug)
		}
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}
