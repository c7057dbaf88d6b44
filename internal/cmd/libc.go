package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiller/platformprobe/internal/logger"
)

// NewLibcCommand creates the libc command, the flag-bearing sibling of the
// bare invocation.
func NewLibcCommand() *cobra.Command {
	var (
		configPath string
		logLevel   string
		noCache    bool
		jsonOut    bool
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "libc",
		Short: "Detect the host C library",
		Long: `Detect the host C library and report its flavor (glibc or musl),
version, and the mechanism that produced the answer.

With --quiet the output is just the version string, matching the bare
invocation. With --json the full detection record is emitted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if noCache {
				cfg.Cache.Enabled = false
			}
			log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)

			info, err := probeLibc(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case jsonOut:
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("encode detection result: %w", err)
				}
				fmt.Fprintln(out, string(data))
			case quiet:
				fmt.Fprintln(out, info.Version)
			default:
				fmt.Fprintf(out, "%s %s (via %s)\n", info.Flavor, info.Version, info.Source)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file path")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log verbosity (trace, debug, info, warn, error)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the probe cache")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the detection record as JSON")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the version string")

	return cmd
}
