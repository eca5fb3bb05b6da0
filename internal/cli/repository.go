package cli

import (
	"fmt"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"gitwrap.dev/gitwrap/internal/cli/common"
	"gitwrap.dev/gitwrap/internal/git"
	"gitwrap.dev/gitwrap/internal/runtime"
	"gitwrap.dev/gitwrap/internal/tui"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	var bare bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Create a repository, making the directory if it does not exist",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				target := ""
				if len(args) > 0 {
					target = args[0]
				}
				repo := ctx.TargetRepo(target)
				if err := repo.Init(ctx, bare); err != nil {
					return err
				}
				ctx.Splog.Info("Initialized repository in %s", repo.Path)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&bare, "bare", false, "Create a bare repository")

	return cmd
}

// defaultClonePath derives the directory git would pick for src
func defaultClonePath(src string) string {
	name := path.Base(strings.TrimRight(src, "/"))
	if i := strings.LastIndex(name, ":"); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, ".git")
}

// newCloneCmd creates the clone command
func newCloneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clone <source> [path]",
		Short: "Clone a repository into path, or into --repo",
		Long: `Clone a repository into path, or into --repo.

The clone runs in the configured working directory, so a relative path is
resolved against it. Without a path or --repo the directory is named after
the source.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				target := ""
				if len(args) > 1 {
					target = args[1]
				} else if repoDir, _ := cmd.Flags().GetString("repo"); repoDir == "" {
					target = defaultClonePath(args[0])
				}
				repo := ctx.TargetRepo(target)
				if err := repo.Clone(ctx, git.URL(args[0])); err != nil {
					return err
				}
				ctx.Splog.Info("Cloned %s into %s", args[0], repo.Path)
				return nil
			})
		},
	}

	return cmd
}

// newHeadCmd creates the head command
func newHeadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "head",
		Short: "Print the commit HEAD points to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				repo, err := ctx.Repo()
				if err != nil {
					return err
				}
				head, err := repo.GetHead(ctx)
				if err != nil {
					return err
				}
				ctx.Splog.Info("%s", tui.ColorHash(head.Hash))
				return nil
			})
		},
	}
}

// newContainsCmd creates the contains command
func newContainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contains <rev>",
		Short: "Report whether the repository has a commit for rev",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				repo, err := ctx.Repo()
				if err != nil {
					return err
				}
				ok, err := repo.ContainsCommit(ctx, git.Rev(args[0]))
				if err != nil {
					return err
				}
				ctx.Splog.Info("%t", ok)
				return nil
			})
		},
	}
}

// newRefsCmd creates the refs command
func newRefsCmd() *cobra.Command {
	var branchesOnly bool

	cmd := &cobra.Command{
		Use:   "refs <url>",
		Short: "List the refs of a remote repository with git ls-remote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				remote := git.NewRemoteRepository(args[0], ctx.RepoOptions()...)

				list := remote.GetRefs
				if branchesOnly {
					list = remote.GetBranches
				}
				refs, err := list(ctx)
				if err != nil {
					return err
				}
				for _, ref := range refs {
					ctx.Splog.Info("%s %s", tui.ColorHash(ref.Hash), formatRef(ref))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&branchesOnly, "branches", "b", false, "Only list branches")

	return cmd
}

// formatRef colors a ref by kind
func formatRef(ref git.Ref) string {
	switch ref.Kind {
	case git.RefKindBranch:
		return tui.ColorBranchName(ref.Name, false)
	case git.RefKindTag:
		return fmt.Sprintf("%s %s", tui.ColorDim("tag"), tui.ColorTag(ref.Name))
	case git.RefKindRemoteTracking:
		return tui.ColorRemote(ref.FullName())
	default:
		return ref.Name
	}
}
