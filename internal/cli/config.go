package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"gitwrap.dev/gitwrap/internal/cli/common"
	"gitwrap.dev/gitwrap/internal/config"
	"gitwrap.dev/gitwrap/internal/runtime"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the gitwrap config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to the config file",
		Long: `Write the default configuration to the config file.

The file is --config when given, otherwise $GITWRAP_CONFIG or
~/.config/gitwrap/config.yaml. An existing file is kept unless --force is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				path, _ := cmd.Flags().GetString("config")
				if path == "" {
					path = config.Path()
				}

				_, err := os.Stat(path)
				switch {
				case err == nil && !force:
					return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
				case err != nil && !errors.Is(err, fs.ErrNotExist):
					return fmt.Errorf("failed to check config file: %w", err)
				}

				if err := config.Default().Save(path); err != nil {
					return err
				}
				ctx.Splog.Info("Wrote default config to %s", path)
				return nil
			})
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.AddCommand(initCmd)

	return cmd
}
