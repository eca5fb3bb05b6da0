package cli

import (
	"github.com/spf13/cobra"

	"gitwrap.dev/gitwrap/internal/cli/common"
	"gitwrap.dev/gitwrap/internal/git"
	"gitwrap.dev/gitwrap/internal/runtime"
	"gitwrap.dev/gitwrap/internal/tui"
)

// newRemoteCmd creates the remote command
func newRemoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Manage remotes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name> <url>",
		Short: "Add a remote",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				repo, err := ctx.Repo()
				if err != nil {
					return err
				}
				remote, err := repo.AddRemote(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				ctx.Splog.Info("Added remote %s (%s)", tui.ColorRemote(remote.Name), remote.URL)
				return nil
			})
		},
	})

	return cmd
}

// transferCmd builds fetch and pull, which share their shape
func transferCmd(use, short string, transfer func(*git.LocalRepository, *runtime.Context, git.Source) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [source]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				repo, err := ctx.Repo()
				if err != nil {
					return err
				}
				var src git.Source
				if len(args) > 0 {
					src = git.URL(args[0])
				}
				return transfer(repo, ctx, src)
			})
		},
	}
}

// newFetchCmd creates the fetch command
func newFetchCmd() *cobra.Command {
	return transferCmd("fetch", "Fetch from a remote, URL or path", func(repo *git.LocalRepository, ctx *runtime.Context, src git.Source) error {
		return repo.Fetch(ctx, src)
	})
}

// newPullCmd creates the pull command
func newPullCmd() *cobra.Command {
	return transferCmd("pull", "Fetch from a remote, URL or path and merge", func(repo *git.LocalRepository, ctx *runtime.Context, src git.Source) error {
		return repo.Pull(ctx, src)
	})
}
