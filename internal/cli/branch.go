package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gitwrap.dev/gitwrap/internal/cli/common"
	gitwraperrors "gitwrap.dev/gitwrap/internal/errors"
	"gitwrap.dev/gitwrap/internal/git"
	"gitwrap.dev/gitwrap/internal/runtime"
	"gitwrap.dev/gitwrap/internal/tui"
)

// newBranchesCmd creates the branches command
func newBranchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "branches",
		Aliases: []string{"ls"},
		Short:   "List local branches",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				repo, err := ctx.Repo()
				if err != nil {
					return err
				}
				branches, err := repo.GetBranches(ctx)
				if err != nil {
					return err
				}
				for _, b := range branches {
					ctx.Splog.Info("%s", tui.ColorBranchName(b.Name, false))
				}
				return nil
			})
		},
	}
}

// newBranchCmd creates the branch command
func newBranchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branch <name> [start]",
		Short: "Create a branch at start, or at HEAD",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				repo, err := ctx.Repo()
				if err != nil {
					return err
				}
				var start git.Revision = git.Rev("HEAD")
				if len(args) > 1 {
					start = git.Rev(args[1])
				}
				branch, err := repo.CreateBranch(ctx, args[0], start)
				if err != nil {
					return err
				}
				ctx.Splog.Info("Created branch %s at %s", tui.ColorBranchName(branch.Name, false), start.Rev())
				return nil
			})
		},
	}
	cmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 1 {
			return common.CompleteBranches(cmd, args, toComplete)
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	return cmd
}

// newCheckoutCmd creates the checkout command
func newCheckoutCmd() *cobra.Command {
	var newBranch string

	cmd := &cobra.Command{
		Use:     "checkout [target] [-b new-branch] [-- files...]",
		Aliases: []string{"co"},
		Short:   "Switch to a branch or commit. If no target is provided, opens an interactive selector.",
		Long: `Switch to a branch or commit. If no target is provided, opens an interactive selector.

With -b a new branch is created at the target. Paths after -- are restored
from the target, or from the index when there is no target.

The interactive selector filters branches as you type.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				repo, err := ctx.Repo()
				if err != nil {
					return err
				}

				positional, files := args, []string(nil)
				if dash := cmd.ArgsLenAtDash(); dash >= 0 {
					positional, files = args[:dash], args[dash:]
				}
				if len(positional) > 1 {
					return fmt.Errorf("expected at most one target, got %d", len(positional))
				}

				opts := git.CheckoutOptions{NewBranch: newBranch, Files: files}
				switch {
				case len(positional) == 1:
					opts.Target = git.Rev(positional[0])
				case newBranch == "" && len(files) == 0:
					selected, err := selectBranch(ctx, repo)
					if err != nil {
						return err
					}
					opts.Target = selected
				}

				if err := repo.Checkout(ctx, opts); err != nil {
					return err
				}
				switch {
				case newBranch != "":
					ctx.Splog.Info("Switched to a new branch %s", tui.ColorBranchName(newBranch, true))
				case len(files) > 0:
					ctx.Splog.Info("Restored %d path(s)", len(files))
				default:
					ctx.Splog.Info("Checked out %s", tui.ColorBranchName(opts.Target.Rev(), true))
				}
				return nil
			})
		},
		ValidArgsFunction: common.CompleteBranches,
	}

	cmd.Flags().StringVarP(&newBranch, "branch", "b", "", "Create and switch to a new branch")

	return cmd
}

// selectBranch lets the user pick a local branch
func selectBranch(ctx *runtime.Context, repo *git.LocalRepository) (git.Ref, error) {
	if !tui.InteractiveAllowed() {
		return git.Ref{}, errors.New("no target given and not running interactively")
	}
	branches, err := repo.GetBranches(ctx)
	if err != nil {
		return git.Ref{}, err
	}

	choices := make([]tui.BranchChoice, len(branches))
	for i, b := range branches {
		choices[i] = tui.BranchChoice{Display: b.Name, Value: b.Name}
	}
	name, err := tui.PromptBranchSelection("Checkout a branch", choices, 0)
	if err != nil {
		return git.Ref{}, err
	}
	for _, b := range branches {
		if b.Name == name {
			return b, nil
		}
	}
	return git.Ref{}, fmt.Errorf("branch %s not found", name)
}

// newMergeCmd creates the merge command
func newMergeCmd() *cobra.Command {
	var abort bool

	cmd := &cobra.Command{
		Use:   "merge <rev>",
		Short: "Merge rev into the current branch",
		Long: `Merge rev into the current branch.

Conflicts are not resolved: a merge that stops is reported with git's output
and the working tree is left as git left it. Use --abort to back out.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if abort {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				repo, err := ctx.Repo()
				if err != nil {
					return err
				}
				if abort {
					if err := repo.AbortMerge(ctx); err != nil {
						return err
					}
					ctx.Splog.Info("Merge aborted")
					return nil
				}

				err = repo.Merge(ctx, git.Rev(args[0]))
				var conflict *gitwraperrors.MergeConflictError
				if errors.As(err, &conflict) {
					ctx.Splog.Tip("Resolve the conflicts and commit, or run 'gitwrap merge --abort'")
				}
				if err != nil {
					return err
				}
				ctx.Splog.Info("Merged %s", args[0])
				return nil
			})
		},
		ValidArgsFunction: common.CompleteBranches,
	}

	cmd.Flags().BoolVar(&abort, "abort", false, "Abort a merge in progress")

	return cmd
}
