package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gitwrap.dev/gitwrap/internal/cli/common"
	"gitwrap.dev/gitwrap/internal/git"
	"gitwrap.dev/gitwrap/internal/runtime"
	"gitwrap.dev/gitwrap/internal/tui"
	"gitwrap.dev/gitwrap/internal/utils"
)

// newFilesCmd creates the files command
func newFilesCmd() *cobra.Command {
	var (
		staged    bool
		changed   bool
		untracked bool
		unchanged bool
	)

	cmd := &cobra.Command{
		Use:   "files [--staged|--changed|--untracked|--unchanged]",
		Short: "List files in the working tree by state",
		Long: `List files in the working tree by state.

--staged lists files in the index, which is every tracked file.
--unchanged lists tracked files with no filter applied, so it also includes
modified files. Without a flag --staged is assumed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				repo, err := ctx.Repo()
				if err != nil {
					return err
				}

				list := repo.GetStagedFiles
				switch {
				case changed:
					list = repo.GetChangedFiles
				case untracked:
					list = repo.GetUntrackedFiles
				case unchanged:
					list = repo.GetUnchangedFiles
				}
				files, err := list(ctx)
				if err != nil {
					return err
				}
				if len(files) > 0 {
					ctx.Splog.Page(strings.Join(files, "\n") + "\n")
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&staged, "staged", false, "List files in the index")
	cmd.Flags().BoolVar(&changed, "changed", false, "List tracked files with unstaged modifications")
	cmd.Flags().BoolVar(&untracked, "untracked", false, "List untracked files that are not ignored")
	cmd.Flags().BoolVar(&unchanged, "unchanged", false, "List all tracked files")
	cmd.MarkFlagsMutuallyExclusive("staged", "changed", "untracked", "unchanged")

	return cmd
}

// newAddCmd creates the add command
func newAddCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "add [paths...]",
		Short: "Stage paths, or everything with --all",
		Args: func(cmd *cobra.Command, args []string) error {
			if all {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				repo, err := ctx.Repo()
				if err != nil {
					return err
				}
				if all {
					return repo.AddAll(ctx)
				}
				for _, path := range args {
					if err := repo.Add(ctx, path); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "A", false, "Stage every change in the working tree")

	return cmd
}

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "commit [-m message]",
		Short: "Commit the index",
		Long: `Commit the index.

Without -m the message is read from standard input when it is piped, and
otherwise asked for interactively.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				repo, err := ctx.Repo()
				if err != nil {
					return err
				}
				if message == "" {
					message, err = utils.ReadPipedInput(cmd.InOrStdin())
					if err != nil {
						return err
					}
				}
				if message == "" {
					if !tui.InteractiveAllowed() {
						return fmt.Errorf("a commit message is required (-m)")
					}
					message, err = tui.PromptCommitMessage()
					if err != nil {
						return err
					}
				}

				commit, err := repo.Commit(ctx, message)
				if err != nil {
					return err
				}
				if commit == nil {
					ctx.Splog.Warn("git did not report the new commit")
					return nil
				}
				ctx.Splog.Info("Committed %s", tui.ColorHash(commit.Hash))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "The commit message")

	return cmd
}

// newResetCmd creates the reset command
func newResetCmd() *cobra.Command {
	var soft, mixed, hard bool

	cmd := &cobra.Command{
		Use:   "reset <rev> [--soft|--mixed|--hard]",
		Short: "Move the current branch to rev",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				repo, err := ctx.Repo()
				if err != nil {
					return err
				}
				mode := git.ResetModeDefault
				switch {
				case soft:
					mode = git.ResetModeSoft
				case mixed:
					mode = git.ResetModeMixed
				case hard:
					mode = git.ResetModeHard
				}
				if err := repo.Reset(ctx, git.Rev(args[0]), mode); err != nil {
					return err
				}
				ctx.Splog.Info("Reset to %s", args[0])
				return nil
			})
		},
		ValidArgsFunction: common.CompleteBranches,
	}

	cmd.Flags().BoolVar(&soft, "soft", false, "Keep the index and working tree")
	cmd.Flags().BoolVar(&mixed, "mixed", false, "Reset the index but keep the working tree")
	cmd.Flags().BoolVar(&hard, "hard", false, "Reset the index and working tree")
	cmd.MarkFlagsMutuallyExclusive("soft", "mixed", "hard")

	return cmd
}
