package mocks

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
)

// MockDraftRepository is a mock implementation of the DraftRepository interface for testing
type MockDraftRepository struct {
	mu     sync.RWMutex
	drafts map[string]domain.Draft
}

// NewMockDraftRepository creates a new mock draft repository
func NewMockDraftRepository() *MockDraftRepository {
	return &MockDraftRepository{
		drafts: make(map[string]domain.Draft),
	}
}

// List returns all drafts sorted by slug
func (m *MockDraftRepository) List(ctx context.Context) ([]domain.Draft, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	drafts := make([]domain.Draft, 0, len(m.drafts))
	for _, d := range m.drafts {
		drafts = append(drafts, copyDraft(d))
	}
	sort.Slice(drafts, func(i, j int) bool { return drafts[i].Slug < drafts[j].Slug })
	return drafts, nil
}

// Save persists a draft
func (m *MockDraftRepository) Save(ctx context.Context, draft *domain.Draft) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.drafts[draft.Slug] = copyDraft(*draft)
	return nil
}

// Get retrieves a draft by slug
func (m *MockDraftRepository) Get(ctx context.Context, slug string) (*domain.Draft, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.drafts[slug]
	if !ok {
		return nil, fmt.Errorf("draft not found: %s", slug)
	}
	out := copyDraft(d)
	return &out, nil
}

// Exists checks if a draft with the given slug exists
func (m *MockDraftRepository) Exists(ctx context.Context, slug string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.drafts[slug]
	return ok
}

// Delete removes a draft by slug
func (m *MockDraftRepository) Delete(ctx context.Context, slug string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.drafts[slug]; !ok {
		return fmt.Errorf("draft not found: %s", slug)
	}
	delete(m.drafts, slug)
	return nil
}

func copyDraft(d domain.Draft) domain.Draft {
	d.Headlines = append([]string(nil), d.Headlines...)
	d.Descriptions = append([]string(nil), d.Descriptions...)
	return d
}

// MockBatchRepository keeps batch records in memory
type MockBatchRepository struct {
	mu      sync.Mutex
	records []domain.ExportRecord

	// AppendErr, when set, is returned by Append
	AppendErr error
}

// NewMockBatchRepository creates a new mock batch repository
func NewMockBatchRepository() *MockBatchRepository {
	return &MockBatchRepository{}
}

// Load returns the stored records
func (m *MockBatchRepository) Load(ctx context.Context) ([]domain.ExportRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]domain.ExportRecord(nil), m.records...), nil
}

// Append stores a record
func (m *MockBatchRepository) Append(ctx context.Context, record domain.ExportRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.records = append(m.records, record)
	return nil
}

// Reset clears all records
func (m *MockBatchRepository) Reset(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = nil
	return nil
}

// ErrSinkFailed is returned by a MockSink created with Fail set
var ErrSinkFailed = errors.New("sink failed")

// MockSink records every payload it receives
type MockSink struct {
	mu       sync.Mutex
	Payloads []domain.Payload
	Fail     bool
}

// NewMockSink creates a new mock sink
func NewMockSink() *MockSink {
	return &MockSink{}
}

// Deliver records the payload
func (m *MockSink) Deliver(ctx context.Context, payload domain.Payload) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Fail {
		return ErrSinkFailed
	}
	m.Payloads = append(m.Payloads, payload)
	return nil
}
