// Package common provides shared helper functions for CLI commands.
package common

import (
	"github.com/spf13/cobra"

	"gitwrap.dev/gitwrap/internal/runtime"
)

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := NewContext(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Close() }()
	return fn(ctx)
}

// NewContext builds a runtime context from the persistent root flags
func NewContext(cmd *cobra.Command) (*runtime.Context, error) {
	flags := cmd.Flags()
	repoDir, _ := flags.GetString("repo")
	configPath, _ := flags.GetString("config")
	debug, _ := flags.GetBool("debug")
	quiet, _ := flags.GetBool("quiet")

	return runtime.NewContext(cmd.Context(), runtime.Options{
		RepoDir:    repoDir,
		ConfigPath: configPath,
		Debug:      debug,
		Quiet:      quiet,
		Out:        cmd.OutOrStdout(),
	})
}

// CompleteBranches is a helper for cobra.ValidArgsFunction and RegisterFlagCompletionFunc
// that returns all branch names in the repository.
func CompleteBranches(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	ctx, err := NewContext(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer func() { _ = ctx.Close() }()

	repo, err := ctx.Repo()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	branches, err := repo.GetBranches(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names := make([]string, 0, len(branches))
	for _, b := range branches {
		names = append(names, b.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
