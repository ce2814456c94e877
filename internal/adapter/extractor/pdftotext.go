package extractor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// PDFToText extracts report text by shelling out to the poppler pdftotext
// binary. Corrupt or password-protected files surface as errors and are
// skipped upstream.
type PDFToText struct {
	binary  string
	timeout time.Duration
}

// NewPDFToText creates a PDF extractor. binary defaults to "pdftotext" on
// PATH; timeout bounds a single extraction.
func NewPDFToText(binary string, timeout time.Duration) *PDFToText {
	if binary == "" {
		binary = "pdftotext"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &PDFToText{binary: binary, timeout: timeout}
}

// Extract runs pdftotext and returns the lowercased output.
func (p *PDFToText) Extract(ctx context.Context, path string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, p.binary, "-layout", path, "-")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("pdftotext failed: %s: %w", msg, err)
		}
		return "", fmt.Errorf("pdftotext failed: %w", err)
	}

	return strings.ToLower(stdout.String()), nil
}
