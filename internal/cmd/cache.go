package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiller/platformprobe/internal/cache"
)

// NewCacheCommand creates the cache command group.
func NewCacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the probe result cache",
	}

	cmd.AddCommand(NewCacheStatsCommand())
	cmd.AddCommand(NewCacheClearCommand())

	return cmd
}

// NewCacheStatsCommand creates the cache stats command.
func NewCacheStatsCommand() *cobra.Command {
	var (
		configPath string
		cachePath  string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show probe cache contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cachePath == "" {
				cachePath = cfg.Cache.Path
			}

			store, err := cache.Open(cachePath)
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cache:   %s\n", stats.Path)
			fmt.Fprintf(out, "Entries: %d\n", stats.Entries)
			if stats.Entries > 0 {
				fmt.Fprintf(out, "Oldest:  %s\n", stats.Oldest.Format("2006-01-02 15:04:05 MST"))
				fmt.Fprintf(out, "Newest:  %s\n", stats.Newest.Format("2006-01-02 15:04:05 MST"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file path")
	cmd.Flags().StringVar(&cachePath, "path", "", "cache database path (overrides config)")

	return cmd
}

// NewCacheClearCommand creates the cache clear command.
func NewCacheClearCommand() *cobra.Command {
	var (
		configPath string
		cachePath  string
	)

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached probe results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cachePath == "" {
				cachePath = cfg.Cache.Path
			}

			store, err := cache.Open(cachePath)
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached probe result(s)\n", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file path")
	cmd.Flags().StringVar(&cachePath, "path", "", "cache database path (overrides config)")

	return cmd
}
