package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiller/platformprobe/internal/libc"
)

// NewRootCommand creates and returns the root cobra command for
// platformprobe.
//
// The bare invocation is the platform-detection primitive other tooling
// shells out to: it prints the host C library version, exactly as the
// platform reports it, followed by a newline, and exits 0. To keep that
// contract stable for callers, the root command parses no flags and
// ignores all arguments; everything richer lives in subcommands.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platformprobe",
		Short: "Report the host C library version and platform tags",
		Long: `Platformprobe inspects the running host for a packaging toolchain:
which C library it has (glibc or musl) and which binary-compatibility
platform tags it supports.

Invoked with no subcommand it prints only the C library version string,
one line, suitable for capture by build scripts.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := libc.Detect(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), info.Version)
			return nil
		},
	}

	// Add subcommands
	cmd.AddCommand(NewLibcCommand())
	cmd.AddCommand(NewTagsCommand())
	cmd.AddCommand(NewReportCommand())
	cmd.AddCommand(NewCacheCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}
