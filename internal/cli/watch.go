package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"radscan/internal/adapter/fs"
	"radscan/internal/adapter/matcher"
	"radscan/internal/adapter/watch"
	"radscan/internal/logging"
	"radscan/internal/usecase"
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Rescan the corpus whenever report files change",
	Long: `Run a scan, then keep watching the folder and rerun the scan when
report files are created or modified. Useful for a drop folder of incoming
reports. Stop with Ctrl+C.

Examples:
  radscan watch ./reports --term "acute appendicitis"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringArrayVarP(&scanTerms, "term", "t", nil, "search term (repeatable; default from config)")
	watchCmd.Flags().StringVar(&scanMode, "mode", "", "matching mode: sentence_scoped or whole_document (default from config)")
	watchCmd.Flags().StringVar(&scanFilter, "filter", "", "only analyze reports whose filename or text contains this keyword")
	watchCmd.Flags().BoolVar(&scanJSON, "json", false, "output as JSON")
}

func runWatch(cmd *cobra.Command, args []string) error {
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

	ext, cache, err := buildExtractor(cfg, true)
	if err != nil {
		return err
	}
	if cache != nil {
		defer cache.Close()
	}

	walker := fs.NewWalker(cfg.Scan.Includes, cfg.Scan.Excludes)
	scanUC := usecase.NewScanUseCase(walker, ext, strategy, cfg.Scan.Workers, log)

	opts := usecase.ScanOptions{
		Terms:         terms,
		FilterKeyword: strings.ToLower(scanFilter),
		Progress:      newProgressCallback("Analyzing"),
	}

	runOnce := func() {
		result, err := scanUC.Scan(cmd.Context(), path, opts)
		if err != nil {
			log.Error().Err(err).Msg("scan failed")
			return
		}
		if err := writeReport(result, "", scanJSON); err != nil {
			log.Error().Err(err).Msg("failed to write report")
		}
	}

	runOnce()

	watcher, err := watch.NewWatcher([]string{".pdf", ".txt"}, 0)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	signals, err := watcher.Watch(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	fmt.Fprintf(os.Stderr, "\nWatching %s for new reports (Ctrl+C to stop)...\n", path)

	for range signals {
		fmt.Fprintln(os.Stderr, "\nChange detected, rescanning...")
		runOnce()
	}

	return nil
}
