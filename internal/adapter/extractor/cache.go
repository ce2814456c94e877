package extractor

import (
	"context"
	"os"

	"radscan/internal/adapter/store"
	"radscan/internal/port"
)

// Caching wraps an extractor with the bbolt extraction cache. A cached entry
// is reused only while the file's modtime is unchanged.
type Caching struct {
	inner port.TextExtractor
	cache *store.CacheStore
}

// NewCaching creates a caching extractor.
func NewCaching(inner port.TextExtractor, cache *store.CacheStore) *Caching {
	return &Caching{inner: inner, cache: cache}
}

// Extract implements port.TextExtractor.
func (c *Caching) Extract(ctx context.Context, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	modTime := info.ModTime().Unix()

	if text, ok := c.cache.Get(path, modTime); ok {
		return text, nil
	}

	text, err := c.inner.Extract(ctx, path)
	if err != nil {
		return "", err
	}

	// A write failure only costs a re-extraction next run.
	_ = c.cache.Put(path, modTime, text)

	return text, nil
}
