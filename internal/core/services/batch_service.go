package services

import (
	"context"
	"fmt"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
	"github.com/kamal-hamza/rsa-cli/internal/core/ports"
)

// BatchService moves drafts into the stored export batch
type BatchService struct {
	draftRepo ports.DraftRepository
	batchRepo ports.BatchRepository
}

// NewBatchService creates a new batch service
func NewBatchService(draftRepo ports.DraftRepository, batchRepo ports.BatchRepository) *BatchService {
	return &BatchService{
		draftRepo: draftRepo,
		batchRepo: batchRepo,
	}
}

// AddRequest represents a request to add a draft to the batch
type AddRequest struct {
	Slug string
}

// AddResponse represents the response from adding a draft
type AddResponse struct {
	Record domain.ExportRecord
	Total  int
}

// Add validates the draft and appends its record to the stored batch
func (s *BatchService) Add(ctx context.Context, req AddRequest) (*AddResponse, error) {
	draft, err := s.draftRepo.Get(ctx, req.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	batch, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	record, err := batch.TryAppend(draft.Collection(), draft.Destination)
	if err != nil {
		return nil, err
	}

	if err := s.batchRepo.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store record: %w", err)
	}

	return &AddResponse{Record: record, Total: batch.Len()}, nil
}

// Load returns the stored batch
func (s *BatchService) Load(ctx context.Context) (*ExportBatch, error) {
	records, err := s.batchRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load batch: %w", err)
	}
	return NewExportBatch(records...), nil
}

// Reset clears the stored batch
func (s *BatchService) Reset(ctx context.Context) error {
	if err := s.batchRepo.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset batch: %w", err)
	}
	return nil
}
