package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplog(t *testing.T) {
	t.Run("writes plain messages", func(t *testing.T) {
		var buf bytes.Buffer
		splog, err := NewSplogWithOptions(SplogOptions{Writer: &buf})
		require.NoError(t, err)

		splog.Info("switched to %s", "main")
		splog.Warn("nothing to commit")

		require.Equal(t, "switched to main\n⚠️  nothing to commit\n", buf.String())
	})

	t.Run("console splog writes to the given writer", func(t *testing.T) {
		t.Setenv("DEBUG", "")
		var buf bytes.Buffer
		splog := NewSplog(&buf)
		splog.Error("boom")
		splog.Debug("hidden")
		require.Equal(t, "❌ boom\n", buf.String())
		require.NoError(t, splog.Close())
	})

	t.Run("debug only in debug mode", func(t *testing.T) {
		var buf bytes.Buffer
		splog, err := NewSplogWithOptions(SplogOptions{Writer: &buf})
		require.NoError(t, err)
		splog.Debug("hidden")
		require.Empty(t, buf.String())

		buf.Reset()
		splog, err = NewSplogWithOptions(SplogOptions{Writer: &buf, Debug: true})
		require.NoError(t, err)
		splog.Logger().Debug("running command", "line", "git status")
		require.Equal(t, "running command line=git status\n", buf.String())
	})

	t.Run("quiet keeps errors", func(t *testing.T) {
		var buf bytes.Buffer
		splog, err := NewSplogWithOptions(SplogOptions{Writer: &buf, Quiet: true})
		require.NoError(t, err)
		require.True(t, splog.IsQuiet())

		splog.Info("hidden")
		splog.Page("hidden\n")
		splog.Error("boom")
		require.Equal(t, "❌ boom\n", buf.String())

		splog.SetQuiet(false)
		splog.Info("shown")
		require.Contains(t, buf.String(), "shown")
	})

	t.Run("mirrors everything to the log file", func(t *testing.T) {
		var buf bytes.Buffer
		path := filepath.Join(t.TempDir(), "logs", "gitwrap.log")
		splog, err := NewSplogWithOptions(SplogOptions{
			Writer:  &buf,
			LogFile: &LogFileOptions{Path: path, MaxSize: 1, MaxBackups: 1, MaxAge: 1},
		})
		require.NoError(t, err)

		splog.Info("visible")
		splog.Debug("file only")
		require.NoError(t, splog.Close())

		require.Equal(t, "visible\n", buf.String())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(data), "msg=visible")
		require.Contains(t, string(data), `msg="file only"`)
	})
}
