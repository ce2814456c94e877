package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"radscan/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "radscan",
	Short: "Radiology report scanner - negation-aware clinical term search",
	Long: `radscan scans folders of radiology reports (PDF or plain text),
searches the extracted text for clinical terms while suppressing negated
mentions ("no evidence of ...", "ruled out", ...), and aggregates per-term
match counts and file lists into a report.

Example usage:
  radscan scan ./reports --term "acute appendicitis"   # Scan a folder
  radscan impression ./reports -o impressions.txt      # Extract impressions
  radscan watch ./reports --term pancreatitis          # Rescan on new files`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./radscan.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "working directory for config and cache (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
