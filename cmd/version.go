package cmd

import (
	"fmt"
	"strings"

	"github.com/commitscope/commitscope/pkg/version"
	"github.com/spf13/cobra"
)

// newVersionCmd builds the version subcommand. Unlike the commit verb it
// needs no repository or configuration, so it stays container-free.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "commitscope %s\n", version.Summary())
			fmt.Fprintf(out, "built %s\n", safeValue(version.BuildDate, "unknown"))
			return nil
		},
	}
}

// safeValue guards against ldflags stamping an empty string.
func safeValue(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
