package cmd

import (
	"os"

	"github.com/commitscope/commitscope/internal/domain"
	"github.com/commitscope/commitscope/internal/reporter"
	"github.com/commitscope/commitscope/pkg/version"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the root command. The root command is the commit
// verb itself: commitscope [flags] "<message>" <file> [<file> ...].
func NewRootCmd() *cobra.Command {
	var (
		force   bool
		dryRun  bool
		noScan  bool
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   `commitscope [flags] "<message>" <file> [<file> ...]`,
		Short: "Commit an explicit set of files under one message",
		Long: `commitscope commits exactly the files you name, under a single message.

It refuses ambiguous "commit everything" invocations, rejects paths
unknown to the working tree, the index and the last commit, scans the
named files for invisible Unicode, skips no-op commits, and can recover
once from a stale repository lock file left behind by a crashed git
process (--force).`,
		Version:       version.Summary(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := domain.NewInvocation(args, force, dryRun, noScan)
			if err != nil {
				return err
			}
			c, err := newContainer(verbose)
			if err != nil {
				return err
			}
			defer func() {
				_ = c.log.Sync()
			}()
			rep := reporter.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
			summary, err := c.newOrchestrator(rep).Execute(cmd.Context(), inv)
			if err != nil {
				return err
			}
			if !summary.DryRun {
				rep.Success(summary)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false,
		"Remove a stale lock file named in a failed commit's output and retry once")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Validate and resolve the files, then stop without touching the repository")
	cmd.Flags().BoolVar(&noScan, "no-scan", false,
		"Skip the invisible-character scan of the files being committed")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging for this run")
	// Flag misuse is a usage error, not a runtime failure.
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &domain.UsageError{Reason: err.Error()}
	})
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the CLI and reports any failure as a single stderr line.
// The returned code is the process exit status.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		reporter.New(os.Stdout, os.Stderr).Failure(err)
		return domain.ExitCodeFor(err)
	}
	return domain.ExitSuccess
}
