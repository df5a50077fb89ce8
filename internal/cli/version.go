package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/proinvestix/desktop/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Show version information",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "proinvestixctl %s\n", version.Full())
			fmt.Fprintf(out, "  OS/Arch: %s\n", version.Platform())
			fmt.Fprintf(out, "  Go: %s\n", runtime.Version())
		},
	}
}
