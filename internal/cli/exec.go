package cli

import (
	"github.com/spf13/cobra"

	"gitwrap.dev/gitwrap/internal/cli/common"
	"gitwrap.dev/gitwrap/internal/runtime"
	"gitwrap.dev/gitwrap/internal/shell"
)

// newExecCmd creates the exec command
func newExecCmd() *cobra.Command {
	var line string

	cmd := &cobra.Command{
		Use:   "exec [--line 'args'] [-- args...]",
		Short: "Run any git command in the repository and print its output",
		Long: `Run any git command in the repository and print its output.

Arguments after -- are quoted one by one. --line takes the arguments as a
single shell-style string; it is split into words and each word is quoted
again, so it cannot smuggle in redirections or other shell syntax.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if line != "" {
				words, err := shell.Split(line)
				if err != nil {
					return err
				}
				args = append(words, args...)
			}
			if len(args) == 0 {
				return cmd.Help()
			}

			return common.Run(cmd, func(ctx *runtime.Context) error {
				repo, err := ctx.Repo()
				if err != nil {
					return err
				}
				quoted, err := shell.Join(args...)
				if err != nil {
					return err
				}
				out, err := ctx.Executor.RunAndCaptureText(ctx, ctx.Executor.Command(quoted), repo.Path)
				if err != nil {
					return err
				}
				ctx.Splog.Page(out)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&line, "line", "", "Git arguments as one shell-style string")

	return cmd
}
