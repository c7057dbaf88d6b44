package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiller/platformprobe/internal/libc"
	"github.com/emiller/platformprobe/internal/logger"
	"github.com/emiller/platformprobe/internal/report"
)

// NewReportCommand creates the report command.
func NewReportCommand() *cobra.Command {
	var (
		configPath string
		logLevel   string
		noCache    bool
		format     string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Emit a full host platform report",
		Long: `Collect everything platformprobe knows about the host into one
document: OS, architecture, kernel, distribution, detected C library,
and the supported platform tag list.

Formats: text (default), json, yaml, markdown. With --output the report
is written atomically to a file instead of stdout.`,
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
			if format == "" {
				format = cfg.Format
			}
			log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)

			// Hosts without a queryable C library still get a report; the
			// libc section is simply absent there.
			var detected *libc.Info
			if info, err := probeLibc(cmd.Context(), cfg, log); err == nil {
				detected = &info
			} else if !errors.Is(err, libc.ErrUnsupported) {
				return err
			}

			r, err := report.Collect(cmd.Context(), detected)
			if err != nil {
				return err
			}

			if output != "" {
				if err := r.Export(output, format); err != nil {
					return err
				}
				log.LogInfo("report %s written to %s", r.ID, output)
				return nil
			}

			data, err := r.Render(format)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file path")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log verbosity (trace, debug, info, warn, error)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the probe cache")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (text, json, yaml, markdown)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report to a file instead of stdout")

	return cmd
}
