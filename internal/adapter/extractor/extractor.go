// Package extractor turns report files into lowercase plain text. Extraction
// failures are ordinary errors; the scan layer logs and skips the document
// rather than aborting the batch.
package extractor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// extractFunc is the shared shape of the per-format extractors.
type extractFunc func(ctx context.Context, path string) (string, error)

// Composite dispatches extraction by file extension.
type Composite struct {
	byExt map[string]extractFunc
}

// NewComposite creates an extractor handling .pdf via pdftotext and .txt as
// plain files.
func NewComposite(pdf *PDFToText, plain *PlainText) *Composite {
	return &Composite{
		byExt: map[string]extractFunc{
			".pdf": pdf.Extract,
			".txt": plain.Extract,
		},
	}
}

// Extract implements port.TextExtractor.
func (c *Composite) Extract(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	fn, ok := c.byExt[ext]
	if !ok {
		return "", fmt.Errorf("unsupported report format: %s", ext)
	}
	return fn(ctx, path)
}
