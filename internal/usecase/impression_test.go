package usecase

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"radscan/internal/adapter/impression"
	"radscan/internal/domain"
)

func TestImpressionExtract(t *testing.T) {
	source, extractor := newCorpus(map[string]string{
		"/r/a.txt": "findings: normal liver.\nimpression: acute appendicitis.\ndr. someone",
		"/r/b.txt": "findings only, no concluding section",
	})
	sections := impression.NewExtractor([]string{"dr."})

	uc := NewImpressionUseCase(source, extractor, sections, zerolog.Nop())
	result, err := uc.Extract(context.Background(), "/r", "", nil)
	if err != nil {
		t.Fatal(err)
	}

	if result.DocsScanned != 2 {
		t.Errorf("DocsScanned = %d, want 2", result.DocsScanned)
	}
	if result.NoSection != 1 {
		t.Errorf("NoSection = %d, want 1", result.NoSection)
	}
	if len(result.Impressions) != 1 {
		t.Fatalf("expected 1 impression, got %d", len(result.Impressions))
	}
	imp := result.Impressions[0]
	if imp.Path != "/r/a.txt" || imp.Text != "acute appendicitis." {
		t.Errorf("unexpected impression: %+v", imp)
	}
}

func TestImpressionSkipsUnreadable(t *testing.T) {
	source, extractor := newCorpus(map[string]string{
		"/r/a.txt": "impression: splenomegaly",
	})
	source.docs = append(source.docs, domain.Document{Path: "/r/corrupt.pdf"})
	sections := impression.NewExtractor(nil)

	uc := NewImpressionUseCase(source, extractor, sections, zerolog.Nop())
	result, err := uc.Extract(context.Background(), "/r", "", nil)
	if err != nil {
		t.Fatal(err)
	}

	if result.DocsSkipped != 1 {
		t.Errorf("DocsSkipped = %d, want 1", result.DocsSkipped)
	}
	if len(result.Impressions) != 1 {
		t.Errorf("expected 1 impression, got %d", len(result.Impressions))
	}
}

func TestImpressionFilterKeyword(t *testing.T) {
	source, extractor := newCorpus(map[string]string{
		"/r/ct-abdomen.txt": "impression: acute pancreatitis",
		"/r/ct-head.txt":    "impression: no intracranial bleed",
	})
	sections := impression.NewExtractor(nil)

	uc := NewImpressionUseCase(source, extractor, sections, zerolog.Nop())
	result, err := uc.Extract(context.Background(), "/r", "abdomen", nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Impressions) != 1 {
		t.Fatalf("expected 1 impression, got %d", len(result.Impressions))
	}
	if result.Impressions[0].Path != "/r/ct-abdomen.txt" {
		t.Errorf("unexpected path: %s", result.Impressions[0].Path)
	}
}
