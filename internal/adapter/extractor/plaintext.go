package extractor

import (
	"context"
	"os"
	"strings"
)

// PlainText reads a text report directly from disk.
type PlainText struct{}

// NewPlainText creates a plain-text extractor.
func NewPlainText() *PlainText {
	return &PlainText{}
}

// Extract returns the file content lowercased.
func (p *PlainText) Extract(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToLower(string(data)), nil
}
