// Package extract pulls plain text out of document files ahead of
// classification. Extraction failures are surfaced as sentinel errors so
// callers can fall back to treating the document as empty.
package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/docuflow/docuflow/internal/common"
)

// maxFileSize caps how much of a document is read. Anything larger is
// almost certainly not a text document worth classifying whole.
const maxFileSize = 10 << 20 // 10 MiB

// defaultTimeout bounds a single extraction when the caller's context
// carries no deadline of its own.
const defaultTimeout = 30 * time.Second

// Extractor converts a document file into classifiable text.
type Extractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// TextExtractor reads plain-text document formats directly.
type TextExtractor struct {
	timeout time.Duration
}

// supportedExtensions lists the formats TextExtractor handles.
var supportedExtensions = map[string]bool{
	".txt": true,
	".md":  true,
	".csv": true,
	".log": true,
}

// NewTextExtractor creates an extractor for plain-text formats.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{timeout: defaultTimeout}
}

// Supported reports whether the file's extension is a format this
// extractor can read.
func (e *TextExtractor) Supported(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// Extract reads the file's contents. It returns common.ErrUnsupportedFormat
// for unknown extensions, common.ErrNoTextFound when the file holds no
// usable text, and common.ErrExtractionTimeout when the context expires.
func (e *TextExtractor) Extract(ctx context.Context, path string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	if !e.Supported(path) {
		return "", fmt.Errorf("%w: %s", common.ErrUnsupportedFormat, filepath.Ext(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat document: %w", err)
	}
	if info.Size() > maxFileSize {
		return "", fmt.Errorf("%w: file exceeds %d bytes", common.ErrUnsupportedFormat, maxFileSize)
	}

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %s", common.ErrExtractionTimeout, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %s", common.ErrExtractionTimeout, path)
		}
		return "", fmt.Errorf("failed to read document: %w", err)
	}

	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: %s", common.ErrNoTextFound, path)
	}
	return text, nil
}
