package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
	"github.com/kamal-hamza/rsa-cli/internal/core/ports"
)

// DownloadService serializes a batch and hands it to one or more sinks
type DownloadService struct {
	sinks    []ports.Sink
	filename string
}

// NewDownloadService creates a download service. An empty filename uses
// domain.ExportFilename.
func NewDownloadService(filename string, sinks ...ports.Sink) *DownloadService {
	if filename == "" {
		filename = domain.ExportFilename
	}
	return &DownloadService{sinks: sinks, filename: filename}
}

// DownloadResponse describes what was delivered
type DownloadResponse struct {
	Payload domain.Payload
	Records int
}

// Prepare builds the payload without delivering it
func (s *DownloadService) Prepare(batch *ExportBatch) (domain.Payload, error) {
	content, err := Serialize(batch)
	if err != nil {
		return domain.Payload{}, err
	}
	return domain.Payload{
		Filename: s.filename,
		MIMEType: domain.ExportMIMEType,
		Content:  []byte(content),
	}, nil
}

// Deliver serializes the batch and passes the payload to every sink.
// All sinks are attempted; their failures are joined.
func (s *DownloadService) Deliver(ctx context.Context, batch *ExportBatch) (*DownloadResponse, error) {
	payload, err := s.Prepare(batch)
	if err != nil {
		return nil, err
	}

	var errs []error
	for _, sink := range s.sinks {
		if err := sink.Deliver(ctx, payload); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("failed to deliver export: %w", err)
	}

	return &DownloadResponse{Payload: payload, Records: batch.Len()}, nil
}
