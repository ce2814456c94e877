package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"radscan/internal/domain"
	"radscan/internal/port"
)

// ErrNoTerms is returned when a scan is requested with an empty term set.
var ErrNoTerms = errors.New("no search terms configured")

// ScanUseCase runs the negation-aware term matcher over a corpus of report
// files and aggregates per-term match counts and file sets.
type ScanUseCase struct {
	source    port.DocumentSource
	extractor port.TextExtractor
	strategy  port.MatchStrategy
	workers   int
	log       zerolog.Logger
}

// NewScanUseCase creates a new scan use case. workers <= 1 evaluates
// documents sequentially.
func NewScanUseCase(
	source port.DocumentSource,
	extractor port.TextExtractor,
	strategy port.MatchStrategy,
	workers int,
	log zerolog.Logger,
) *ScanUseCase {
	if workers < 1 {
		workers = 1
	}
	return &ScanUseCase{
		source:    source,
		extractor: extractor,
		strategy:  strategy,
		workers:   workers,
		log:       log,
	}
}

// ScanOptions holds per-run parameters.
type ScanOptions struct {
	Terms []string
	// FilterKeyword restricts the corpus to documents whose filename or text
	// contains the keyword. Empty means no filtering.
	FilterKeyword string
	Progress      port.ProgressFunc
}

// docResult is the outcome of evaluating one document.
type docResult struct {
	path     string
	skipped  bool
	filtered bool
	matched  []string // terms with a positive match
}

// Scan walks the corpus under root and builds the aggregate match report.
// A document whose text cannot be extracted is logged and skipped; it never
// aborts the run. The report is identical for any ordering of the corpus.
func (u *ScanUseCase) Scan(ctx context.Context, root string, opts ScanOptions) (*domain.MatchReport, error) {
	if len(opts.Terms) == 0 {
		return nil, ErrNoTerms
	}

	docs, err := u.source.List(root)
	if err != nil {
		return nil, err
	}

	jobs := make(chan domain.Document)
	// Buffered so workers can finish in-flight documents without blocking
	// when the run is cancelled mid-scan.
	results := make(chan docResult, len(docs))

	workers := u.workers
	if workers > len(docs) {
		workers = len(docs)
	}

	for i := 0; i < workers; i++ {
		go func() {
			for doc := range jobs {
				results <- u.evaluate(ctx, doc, opts)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, doc := range docs {
			select {
			case jobs <- doc:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Merge partial results in the single collector below; workers never
	// touch shared state.
	matchFiles := make(map[string]map[string]struct{}, len(opts.Terms))
	for _, term := range opts.Terms {
		matchFiles[term] = make(map[string]struct{})
	}

	report := &domain.MatchReport{Mode: u.strategy.Name()}
	for i := 0; i < len(docs); i++ {
		var res docResult
		select {
		case res = <-results:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		switch {
		case res.skipped:
			report.DocsSkipped++
		case res.filtered:
			report.DocsFiltered++
		default:
			report.DocsScanned++
			for _, term := range res.matched {
				matchFiles[term][res.path] = struct{}{}
			}
		}
		if opts.Progress != nil {
			opts.Progress(i+1, len(docs), res.path)
		}
	}

	unique := make(map[string]struct{})
	for _, term := range opts.Terms {
		files := make([]string, 0, len(matchFiles[term]))
		for path := range matchFiles[term] {
			files = append(files, path)
			unique[path] = struct{}{}
		}
		sort.Strings(files)
		report.Terms = append(report.Terms, domain.TermResult{
			Term:  term,
			Count: len(files),
			Files: files,
		})
	}
	report.TotalUnique = len(unique)

	return report, nil
}

// evaluate extracts one document's text and checks every term against it.
func (u *ScanUseCase) evaluate(ctx context.Context, doc domain.Document, opts ScanOptions) docResult {
	res := docResult{path: doc.Path}

	// Filename check first: a keyword hit in the name keeps the document
	// without reading it at all.
	nameMatch := opts.FilterKeyword != "" &&
		strings.Contains(strings.ToLower(filepath.Base(doc.Path)), opts.FilterKeyword)

	text, err := u.extractor.Extract(ctx, doc.Path)
	if err != nil {
		u.log.Warn().Str("path", doc.Path).Err(err).Msg("skipping unreadable report")
		res.skipped = true
		return res
	}
	if text == "" {
		u.log.Warn().Str("path", doc.Path).Msg("skipping report with no text")
		res.skipped = true
		return res
	}

	if opts.FilterKeyword != "" && !nameMatch && !strings.Contains(text, opts.FilterKeyword) {
		res.filtered = true
		return res
	}

	prepared := u.strategy.Prepare(text)
	for _, term := range opts.Terms {
		if prepared.Match(term) {
			res.matched = append(res.matched, term)
		}
	}
	return res
}
