package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitwrap",
		Short: "gitwrap drives git through the shell, one command line per operation",
		Long: `gitwrap drives git through the shell, one command line per operation.

Every subcommand maps to a single repository operation. Arguments are
shell-quoted, the git command line runs through the configured shell, and a
non-zero exit status is reported as an error that carries git's output.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("repo", "C", "", "Path to the repository (default: the repository enclosing the current directory)")
	flags.String("config", "", "Path to the config file (default: $GITWRAP_CONFIG or ~/.config/gitwrap/config.yaml)")
	flags.Bool("debug", false, "Log every git command line and its result")
	flags.BoolP("quiet", "q", false, "Only print errors")

	rootCmd.AddCommand(
		newInitCmd(),
		newCloneCmd(),
		newBranchesCmd(),
		newRefsCmd(),
		newHeadCmd(),
		newFilesCmd(),
		newAddCmd(),
		newCommitCmd(),
		newBranchCmd(),
		newCheckoutCmd(),
		newMergeCmd(),
		newResetCmd(),
		newRemoteCmd(),
		newFetchCmd(),
		newPullCmd(),
		newContainsCmd(),
		newExecCmd(),
		newConfigCmd(),
		newVersionCmd(version, commit, date),
	)

	return rootCmd
}

// newVersionCmd creates the version command
func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gitwrap version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "gitwrap %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
		},
	}
}
