package extractor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"radscan/internal/adapter/store"
)

func TestPlainTextLowercases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	if err := os.WriteFile(path, []byte("IMPRESSION: Acute Appendicitis"), 0644); err != nil {
		t.Fatal(err)
	}

	text, err := NewPlainText().Extract(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if text != "impression: acute appendicitis" {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestPlainTextMissingFile(t *testing.T) {
	_, err := NewPlainText().Extract(context.Background(), "/nonexistent/report.txt")
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCompositeUnsupportedFormat(t *testing.T) {
	c := NewComposite(NewPDFToText("", 0), NewPlainText())
	if _, err := c.Extract(context.Background(), "/reports/scan.dcm"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestCompositeDispatchesText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Report.TXT")
	if err := os.WriteFile(path, []byte("Normal Study."), 0644); err != nil {
		t.Fatal(err)
	}

	c := NewComposite(NewPDFToText("", 0), NewPlainText())
	text, err := c.Extract(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if text != "normal study." {
		t.Errorf("unexpected text: %q", text)
	}
}

// countingExtractor counts how often the inner extractor actually runs.
type countingExtractor struct {
	calls int
	fail  bool
}

func (e *countingExtractor) Extract(_ context.Context, path string) (string, error) {
	e.calls++
	if e.fail {
		return "", errors.New("extraction failed")
	}
	return "extracted text", nil
}

func newCache(t *testing.T) *store.CacheStore {
	t.Helper()
	cache, err := store.NewCacheStore(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestCachingSkipsRepeatExtraction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	if err := os.WriteFile(path, []byte("text"), 0644); err != nil {
		t.Fatal(err)
	}

	inner := &countingExtractor{}
	caching := NewCaching(inner, newCache(t))

	for i := 0; i < 3; i++ {
		text, err := caching.Extract(context.Background(), path)
		if err != nil {
			t.Fatal(err)
		}
		if text != "extracted text" {
			t.Errorf("unexpected text: %q", text)
		}
	}

	if inner.calls != 1 {
		t.Errorf("inner extractor ran %d times, want 1", inner.calls)
	}
}

func TestCachingDoesNotCacheFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	if err := os.WriteFile(path, []byte("text"), 0644); err != nil {
		t.Fatal(err)
	}

	inner := &countingExtractor{fail: true}
	caching := NewCaching(inner, newCache(t))

	if _, err := caching.Extract(context.Background(), path); err == nil {
		t.Fatal("expected extraction error")
	}

	inner.fail = false
	text, err := caching.Extract(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if text != "extracted text" {
		t.Errorf("unexpected text: %q", text)
	}
	if inner.calls != 2 {
		t.Errorf("inner extractor ran %d times, want 2", inner.calls)
	}
}

func TestCachingMissingFile(t *testing.T) {
	caching := NewCaching(&countingExtractor{}, newCache(t))
	if _, err := caching.Extract(context.Background(), "/nonexistent/report.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}
