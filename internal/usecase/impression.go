package usecase

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"radscan/internal/adapter/impression"
	"radscan/internal/domain"
	"radscan/internal/port"
)

// ImpressionUseCase extracts impression sections across a corpus.
type ImpressionUseCase struct {
	source    port.DocumentSource
	extractor port.TextExtractor
	sections  *impression.Extractor
	log       zerolog.Logger
}

// NewImpressionUseCase creates a new impression use case.
func NewImpressionUseCase(
	source port.DocumentSource,
	extractor port.TextExtractor,
	sections *impression.Extractor,
	log zerolog.Logger,
) *ImpressionUseCase {
	return &ImpressionUseCase{
		source:    source,
		extractor: extractor,
		sections:  sections,
		log:       log,
	}
}

// ImpressionResult summarizes an impression extraction run.
type ImpressionResult struct {
	Impressions []domain.Impression
	DocsScanned int
	DocsSkipped int
	NoSection   int
}

// Extract walks the corpus under root and pulls the impression section out
// of every readable report. Results are sorted by path; unreadable reports
// are logged and skipped.
func (u *ImpressionUseCase) Extract(ctx context.Context, root, filterKeyword string, progress port.ProgressFunc) (*ImpressionResult, error) {
	docs, err := u.source.List(root)
	if err != nil {
		return nil, err
	}

	result := &ImpressionResult{}
	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, err := u.extractor.Extract(ctx, doc.Path)
		if err != nil || text == "" {
			u.log.Warn().Str("path", doc.Path).Err(err).Msg("skipping unreadable report")
			result.DocsSkipped++
		} else if filterKeyword != "" &&
			!strings.Contains(strings.ToLower(filepath.Base(doc.Path)), filterKeyword) &&
			!strings.Contains(text, filterKeyword) {
			// Pre-filter, same filename-then-content rule as scanning.
		} else {
			result.DocsScanned++
			if section, ok := u.sections.Extract(text); ok {
				result.Impressions = append(result.Impressions, domain.Impression{
					Path: doc.Path,
					Text: section,
				})
			} else {
				result.NoSection++
			}
		}

		if progress != nil {
			progress(i+1, len(docs), doc.Path)
		}
	}

	sort.Slice(result.Impressions, func(i, j int) bool {
		return result.Impressions[i].Path < result.Impressions[j].Path
	})

	return result, nil
}
