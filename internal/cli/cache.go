package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"radscan/config"
	"radscan/internal/adapter/store"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the extraction cache",
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show extraction cache statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := config.CacheDBPath(GetRootDir())
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Println("No extraction cache found.")
			return nil
		}

		cache, err := store.NewCacheStore(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open extraction cache: %w", err)
		}
		defer cache.Close()

		n, err := cache.Count()
		if err != nil {
			return err
		}
		fmt.Printf("Cache location: %s\n", dbPath)
		fmt.Printf("Cached extractions: %d\n", n)
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop all cached extractions",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := config.CacheDBPath(GetRootDir())
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Println("No extraction cache found.")
			return nil
		}

		cache, err := store.NewCacheStore(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open extraction cache: %w", err)
		}
		defer cache.Close()

		if err := cache.Clear(); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
		fmt.Println("Extraction cache cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheInfoCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
