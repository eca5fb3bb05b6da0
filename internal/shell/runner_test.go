package shell_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gitwrap.dev/gitwrap/internal/shell"
)

func TestRunnerRun(t *testing.T) {
	t.Run("captures stdout and stderr separately", func(t *testing.T) {
		runner := shell.NewRunner()
		inv, err := runner.Run(context.Background(), "echo out; echo err >&2", "")
		require.NoError(t, err)
		require.Equal(t, 0, inv.ExitCode)
		require.Equal(t, "out\n", inv.StdoutText())
		require.Equal(t, "err\n", inv.StderrText())
		require.Equal(t, "echo out; echo err >&2", inv.CommandLine)
	})

	t.Run("reports non-zero exit without error", func(t *testing.T) {
		runner := shell.NewRunner()
		inv, err := runner.Run(context.Background(), "echo nope >&2; exit 3", "")
		require.NoError(t, err)
		require.False(t, inv.Success())
		require.Equal(t, 3, inv.ExitCode)
		require.Equal(t, "nope\n", inv.StderrText())
	})

	t.Run("runs in the given directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "marker"), nil, 0600))

		runner := shell.NewRunner()
		inv, err := runner.Run(context.Background(), "ls", dir)
		require.NoError(t, err)
		require.Equal(t, "marker", strings.TrimSpace(inv.StdoutText()))
		require.Equal(t, dir, inv.Dir)
	})

	t.Run("fails to start in a missing directory", func(t *testing.T) {
		runner := shell.NewRunner()
		inv, err := runner.Run(context.Background(), "true", filepath.Join(t.TempDir(), "missing"))
		require.Error(t, err)
		require.Equal(t, -1, inv.ExitCode)
	})

	t.Run("fails to start with a missing shell", func(t *testing.T) {
		runner := shell.NewRunner(shell.WithShell("/nonexistent/sh"))
		_, err := runner.Run(context.Background(), "true", "")
		require.Error(t, err)
	})

	t.Run("applies the runner timeout", func(t *testing.T) {
		runner := shell.NewRunner(shell.WithTimeout(100 * time.Millisecond))
		inv, err := runner.Run(context.Background(), "sleep 5", "")
		require.ErrorIs(t, err, context.DeadlineExceeded)
		require.Equal(t, -1, inv.ExitCode)
	})

	t.Run("honors a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		runner := shell.NewRunner()
		_, err := runner.Run(ctx, "true", "")
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("passes extra environment", func(t *testing.T) {
		runner := shell.NewRunner(shell.WithEnv("GITWRAP_TEST_VALUE=hello world"))
		inv, err := runner.Run(context.Background(), `printf '%s' "$GITWRAP_TEST_VALUE"`, "")
		require.NoError(t, err)
		require.Equal(t, "hello world", inv.StdoutText())
	})

	t.Run("repeated runs do not leak", func(t *testing.T) {
		runner := shell.NewRunner()
		for i := 0; i < 300; i++ {
			inv, err := runner.Run(context.Background(), "true", "")
			require.NoError(t, err)
			require.True(t, inv.Success())
		}
	})
}
