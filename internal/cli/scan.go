package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"radscan/config"
	"radscan/internal/adapter/extractor"
	"radscan/internal/adapter/fs"
	"radscan/internal/adapter/matcher"
	"radscan/internal/adapter/report"
	"radscan/internal/adapter/store"
	"radscan/internal/domain"
	"radscan/internal/logging"
	"radscan/internal/port"
	"radscan/internal/usecase"
)

var (
	scanTerms   []string
	scanMode    string
	scanFilter  string
	scanOutput  string
	scanJSON    bool
	scanWorkers int
	scanNoCache bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan report files for clinical terms",
	Long: `Scan every report file under the given folder, extract its text and
search for the configured clinical terms, suppressing negated mentions.

Examples:
  radscan scan ./reports --term "acute appendicitis" --term pancreatitis
  radscan scan ./reports --filter abdomen --json
  radscan scan ./reports --mode whole_document -o results.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringArrayVarP(&scanTerms, "term", "t", nil, "search term (repeatable; default from config)")
	scanCmd.Flags().StringVar(&scanMode, "mode", "", "matching mode: sentence_scoped or whole_document (default from config)")
	scanCmd.Flags().StringVar(&scanFilter, "filter", "", "only analyze reports whose filename or text contains this keyword")
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "write the report to a file instead of stdout")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output as JSON")
	scanCmd.Flags().IntVar(&scanWorkers, "workers", 0, "number of parallel workers (default from config)")
	scanCmd.Flags().BoolVar(&scanNoCache, "no-cache", false, "disable the extraction cache")
}

func runScan(cmd *cobra.Command, args []string) error {
	path, err := scanPath(args)
	if err != nil {
		return err
	}

	cfg := GetConfig()
	log := logging.New(os.Stderr, cfg.Logging.Level)

	terms, err := resolveTerms(cfg, scanTerms)
	if err != nil {
		return err
	}

	mode := cfg.Match.Mode
	if scanMode != "" {
		mode = scanMode
	}
	strategy, err := matcher.NewStrategy(mode, cfg.Match.NegationPhrases)
	if err != nil {
		return err
	}

	workers := cfg.Scan.Workers
	if scanWorkers > 0 {
		workers = scanWorkers
	}

	ext, cache, err := buildExtractor(cfg, !scanNoCache)
	if err != nil {
		return err
	}
	if cache != nil {
		defer cache.Close()
	}

	walker := fs.NewWalker(cfg.Scan.Includes, cfg.Scan.Excludes)
	scanUC := usecase.NewScanUseCase(walker, ext, strategy, workers, log)

	fmt.Fprintf(os.Stderr, "Scanning %s...\n", path)

	result, err := scanUC.Scan(cmd.Context(), path, usecase.ScanOptions{
		Terms:         terms,
		FilterKeyword: strings.ToLower(scanFilter),
		Progress:      newProgressCallback("Analyzing"),
	})
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	return writeReport(result, scanOutput, scanJSON)
}

// scanPath resolves the corpus directory from the positional argument.
func scanPath(args []string) (string, error) {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return "", fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", path)
	}
	return path, nil
}

// resolveTerms merges the --term flags with the configured term list. Terms
// are lowercased here; the engine requires lowercase input.
func resolveTerms(cfg *config.Config, flagTerms []string) ([]string, error) {
	terms := cfg.Match.Terms
	if len(flagTerms) > 0 {
		terms = flagTerms
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("no search terms: pass --term or set match.terms in the config")
	}

	seen := make(map[string]struct{}, len(terms))
	lowered := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		lowered = append(lowered, t)
	}
	if len(lowered) == 0 {
		return nil, fmt.Errorf("no search terms: all configured terms are empty")
	}
	return lowered, nil
}

// buildExtractor assembles the composite extractor, optionally wrapped with
// the bbolt extraction cache under the working directory.
func buildExtractor(cfg *config.Config, useCache bool) (port.TextExtractor, *store.CacheStore, error) {
	var ext port.TextExtractor = extractor.NewComposite(
		extractor.NewPDFToText("", 0),
		extractor.NewPlainText(),
	)

	if !useCache || !cfg.Scan.Cache {
		return ext, nil, nil
	}

	if err := config.EnsureRadscanDir(GetRootDir()); err != nil {
		return nil, nil, fmt.Errorf("failed to create .radscan directory: %w", err)
	}
	cache, err := store.NewCacheStore(config.CacheDBPath(GetRootDir()))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open extraction cache: %w", err)
	}
	return extractor.NewCaching(ext, cache), cache, nil
}

// newProgressCallback lazily creates a progress bar once the corpus size is
// known and advances it as documents complete.
func newProgressCallback(description string) port.ProgressFunc {
	var bar *progressbar.ProgressBar
	var mu sync.Mutex

	return func(processed, total int, _ string) {
		mu.Lock()
		defer mu.Unlock()

		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription(fmt.Sprintf("[cyan]%s[reset]", description)),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)
		}
		bar.Set(processed)
	}
}

// writeReport renders the match report to stdout or the output file.
func writeReport(result *domain.MatchReport, output string, asJSON bool) error {
	var writer port.ReportWriter = report.NewTextWriter()
	if asJSON {
		writer = report.NewJSONWriter()
	}

	if output == "" {
		return writer.Write(os.Stdout, result)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := writer.Write(f, result); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Report written to %s\n", output)
	return nil
}
