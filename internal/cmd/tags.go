package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/emiller/platformprobe/internal/logger"
	"github.com/emiller/platformprobe/internal/platform"
)

// NewTagsCommand creates the tags command.
func NewTagsCommand() *cobra.Command {
	var (
		configPath string
		logLevel   string
		noCache    bool
		jsonOut    bool
		expandTag  string
	)

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List platform tags the host supports",
		Long: `List the binary-compatibility platform tags the running host
supports, one per line, most preferred first.

On glibc hosts this is the manylinux ladder down to manylinux_2_5; on
musl hosts the musllinux ladder down to minor 0. macOS and Windows get
their macosx_* and win_* families.

With --expand TAG no probing happens at all: the given tag is expanded
into every tag guaranteed compatible with it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var tags []string

			if expandTag != "" {
				tags = platform.Expand(expandTag)
			} else {
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

				if runtime.GOOS == "linux" {
					// Route through the probe cache instead of letting
					// HostTags re-detect.
					info, err := probeLibc(cmd.Context(), cfg, log)
					if err != nil {
						return err
					}
					tags, err = platform.TagsFor(info)
					if err != nil {
						return err
					}
				} else {
					tags, err = platform.HostTags(cmd.Context())
					if err != nil {
						return err
					}
				}
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				data, err := json.MarshalIndent(tags, "", "  ")
				if err != nil {
					return fmt.Errorf("encode tags: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			for _, tag := range tags {
				fmt.Fprintln(out, tag)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file path")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log verbosity (trace, debug, info, warn, error)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the probe cache")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit tags as a JSON array")
	cmd.Flags().StringVar(&expandTag, "expand", "", "expand the given tag instead of probing the host")

	return cmd
}
