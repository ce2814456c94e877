package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"radscan/internal/adapter/fs"
	"radscan/internal/adapter/impression"
	"radscan/internal/logging"
	"radscan/internal/usecase"
)

var (
	impressionFilter  string
	impressionOutput  string
	impressionJSON    bool
	impressionNoCache bool
)

var impressionCmd = &cobra.Command{
	Use:   "impression [path]",
	Short: "Extract the impression section from reports",
	Long: `Extract the IMPRESSION section from every readable report under the
given folder. The section starts after the "impression:" heading and ends at
the first stop keyword (signature block, advice footer, ...).

Examples:
  radscan impression ./reports -o impressions.txt
  radscan impression ./reports --filter abdomen --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImpression,
}

func init() {
	rootCmd.AddCommand(impressionCmd)
	impressionCmd.Flags().StringVar(&impressionFilter, "filter", "", "only extract from reports whose filename or text contains this keyword")
	impressionCmd.Flags().StringVarP(&impressionOutput, "output", "o", "", "write impressions to a file instead of stdout")
	impressionCmd.Flags().BoolVar(&impressionJSON, "json", false, "output as JSON")
	impressionCmd.Flags().BoolVar(&impressionNoCache, "no-cache", false, "disable the extraction cache")
}

func runImpression(cmd *cobra.Command, args []string) error {
	path, err := scanPath(args)
	if err != nil {
		return err
	}

	cfg := GetConfig()
	log := logging.New(os.Stderr, cfg.Logging.Level)

	ext, cache, err := buildExtractor(cfg, !impressionNoCache)
	if err != nil {
		return err
	}
	if cache != nil {
		defer cache.Close()
	}

	walker := fs.NewWalker(cfg.Scan.Includes, cfg.Scan.Excludes)
	sections := impression.NewExtractor(cfg.Impression.StopKeywords)
	impressionUC := usecase.NewImpressionUseCase(walker, ext, sections, log)

	fmt.Fprintf(os.Stderr, "Extracting impressions from %s...\n", path)

	result, err := impressionUC.Extract(cmd.Context(), path,
		strings.ToLower(impressionFilter), newProgressCallback("Extracting"))
	if err != nil {
		return fmt.Errorf("impression extraction failed: %w", err)
	}

	out := os.Stdout
	if impressionOutput != "" {
		f, err := os.Create(impressionOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if impressionJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result.Impressions); err != nil {
			return err
		}
	} else {
		for _, imp := range result.Impressions {
			fmt.Fprintf(out, "file: %s\n", imp.Path)
			fmt.Fprintf(out, "impression: %s\n", imp.Text)
			fmt.Fprintln(out, strings.Repeat("-", 55))
		}
	}

	fmt.Fprintf(os.Stderr, "Impressions found: %d (no section: %d, unreadable: %d)\n",
		len(result.Impressions), result.NoSection, result.DocsSkipped)
	if impressionOutput != "" {
		fmt.Fprintf(os.Stderr, "Written to %s\n", impressionOutput)
	}
	return nil
}
