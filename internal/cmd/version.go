package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiller/platformprobe/internal/version"
)

// NewVersionCommand creates the version command, which reports the version
// of platformprobe itself (not of the host's C library).
func NewVersionCommand() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the platformprobe version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), version.Short())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the version identifier")

	return cmd
}
