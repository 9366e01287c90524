package sink

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"

	"github.com/kamal-hamza/rsa-cli/internal/core/domain"
	"github.com/kamal-hamza/rsa-cli/internal/core/ports"
)

// FileSink writes the payload into a directory under the payload's filename
type FileSink struct {
	Dir string

	// Written holds the path of the last written file
	Written string
}

// NewFileSink creates a sink writing into dir
func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir}
}

var _ ports.Sink = (*FileSink)(nil)

// Deliver writes the payload content verbatim
func (s *FileSink) Deliver(ctx context.Context, p domain.Payload) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(s.Dir, p.Filename)
	if err := os.WriteFile(path, p.Content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	s.Written = path
	return nil
}

// WriterSink streams the payload to an io.Writer such as stdout
type WriterSink struct {
	W io.Writer
}

var _ ports.Sink = WriterSink{}

// Deliver writes the payload content to the writer
func (s WriterSink) Deliver(ctx context.Context, p domain.Payload) error {
	_, err := s.W.Write(p.Content)
	return err
}

// ClipboardSink copies the payload to the system clipboard
type ClipboardSink struct {
	write func(string) error
}

// NewClipboardSink creates a sink backed by the system clipboard
func NewClipboardSink() *ClipboardSink {
	return &ClipboardSink{write: clipboard.WriteAll}
}

var _ ports.Sink = (*ClipboardSink)(nil)

// Available reports whether a clipboard utility is present
func (s *ClipboardSink) Available() bool {
	return !clipboard.Unsupported
}

// Deliver copies the payload content to the clipboard
func (s *ClipboardSink) Deliver(ctx context.Context, p domain.Payload) error {
	if err := s.write(string(p.Content)); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
