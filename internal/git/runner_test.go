package git_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	gitwraperrors "gitwrap.dev/gitwrap/internal/errors"
	"gitwrap.dev/gitwrap/internal/git"
	"gitwrap.dev/gitwrap/internal/shell"
)

// fakeRunner returns a canned invocation and records what it was asked to run
type fakeRunner struct {
	exitCode int
	stdout   string
	stderr   string
	err      error

	commandLine string
	dir         string
}

func (f *fakeRunner) Run(_ context.Context, commandLine, dir string) (*shell.Invocation, error) {
	f.commandLine = commandLine
	f.dir = dir
	inv := &shell.Invocation{
		CommandLine: commandLine,
		Dir:         dir,
		Stdout:      []byte(f.stdout),
		Stderr:      []byte(f.stderr),
		ExitCode:    f.exitCode,
	}
	return inv, f.err
}

func TestExecutorRunAssertSuccess(t *testing.T) {
	outputs := []struct{ stdout, stderr string }{
		{"", ""},
		{"some output\n", ""},
		{"", "warning: something\n"},
		{"out", "fatal: looks bad but is not"},
	}

	t.Run("never fails for exit status 0", func(t *testing.T) {
		for _, o := range outputs {
			runner := &fakeRunner{stdout: o.stdout, stderr: o.stderr}
			exec := git.NewExecutor(runner)

			inv, err := exec.RunAssertSuccess(context.Background(), "git status", "/repo")
			require.NoError(t, err)
			require.Equal(t, o.stdout, inv.StdoutText())
			require.Equal(t, "/repo", runner.dir)
		}
	})

	t.Run("fails for every non-zero exit status", func(t *testing.T) {
		for code := 1; code < 256; code++ {
			for _, o := range outputs {
				runner := &fakeRunner{exitCode: code, stdout: o.stdout, stderr: o.stderr}
				exec := git.NewExecutor(runner)

				_, err := exec.RunAssertSuccess(context.Background(), "git status", "/repo")
				require.ErrorIs(t, err, gitwraperrors.ErrCommandFailed, "exit %d", code)

				var cmdErr *gitwraperrors.CommandError
				require.True(t, errors.As(err, &cmdErr))
				require.Equal(t, code, cmdErr.ExitCode)
				require.Equal(t, "git status", cmdErr.CommandLine)
				require.Equal(t, o.stderr, cmdErr.Stderr)
				require.Equal(t, "/repo", cmdErr.Dir)
			}
		}
	})

	t.Run("wraps runner errors", func(t *testing.T) {
		spawnErr := fmt.Errorf("no such shell")
		runner := &fakeRunner{exitCode: -1, err: spawnErr}
		exec := git.NewExecutor(runner)

		_, err := exec.RunAssertSuccess(context.Background(), "git status", "")
		require.ErrorIs(t, err, gitwraperrors.ErrCommandFailed)
		require.ErrorIs(t, err, spawnErr)

		var cmdErr *gitwraperrors.CommandError
		require.True(t, errors.As(err, &cmdErr))
		require.Equal(t, -1, cmdErr.ExitCode)
	})
}

func TestExecutorRunAndCaptureText(t *testing.T) {
	t.Run("returns stdout", func(t *testing.T) {
		exec := git.NewExecutor(&fakeRunner{stdout: "abc123\n", stderr: "noise"})
		text, err := exec.RunAndCaptureText(context.Background(), "git rev-parse HEAD", "")
		require.NoError(t, err)
		require.Equal(t, "abc123\n", text)
	})

	t.Run("fails on non-zero exit", func(t *testing.T) {
		exec := git.NewExecutor(&fakeRunner{exitCode: 128, stdout: "partial"})
		text, err := exec.RunAndCaptureText(context.Background(), "git rev-parse nope", "")
		require.ErrorIs(t, err, gitwraperrors.ErrCommandFailed)
		require.Empty(t, text)
	})
}

func TestExecutorCommand(t *testing.T) {
	exec := git.NewExecutor(&fakeRunner{})
	require.Equal(t, "git init", exec.Command("init"))
	require.Equal(t, "git init --bare", exec.Command("init", "--bare"))
	require.Equal(t, "git checkout main", exec.Command("checkout", "", "main"))

	custom := git.NewExecutor(&fakeRunner{}, git.WithGitBinary("/opt/my git/bin/git"))
	require.Equal(t, "'/opt/my git/bin/git' status", custom.Command("status"))
}

func TestFacadeCommandLines(t *testing.T) {
	ctx := context.Background()
	runner := &fakeRunner{}
	exec := git.NewExecutor(runner)
	repo := git.NewLocalRepository("/work/repo", git.WithExecutor(exec), git.WithWorkingDir("/work"))

	cases := []struct {
		name string
		run  func() error
		want string
		dir  string
	}{
		{"add", func() error { return repo.Add(ctx, "my file.txt") }, "git add 'my file.txt'", "/work/repo"},
		{"add all", func() error { return repo.AddAll(ctx) }, "git add .", "/work/repo"},
		{"create branch", func() error {
			_, err := repo.CreateBranch(ctx, "feature", nil)
			return err
		}, "git branch feature", "/work/repo"},
		{"create branch at start point", func() error {
			_, err := repo.CreateBranch(ctx, "feature", git.Rev("HEAD~1"))
			return err
		}, "git branch feature HEAD~1", "/work/repo"},
		{"checkout", func() error {
			return repo.Checkout(ctx, git.CheckoutOptions{Target: git.Rev("main")})
		}, "git checkout main", "/work/repo"},
		{"checkout new branch", func() error {
			return repo.Checkout(ctx, git.CheckoutOptions{Target: git.Rev("main"), NewBranch: "topic"})
		}, "git checkout main -b topic", "/work/repo"},
		{"checkout files", func() error {
			return repo.Checkout(ctx, git.CheckoutOptions{Files: []string{"a.txt", "b c.txt"}})
		}, "git checkout -- a.txt 'b c.txt'", "/work/repo"},
		{"merge", func() error { return repo.Merge(ctx, git.NewBranch(repo, "feature")) }, "git merge feature", "/work/repo"},
		{"reset soft", func() error { return repo.ResetSoft(ctx, git.Rev("abc")) }, "git reset --soft abc", "/work/repo"},
		{"reset hard", func() error { return repo.ResetHard(ctx, git.Rev("abc")) }, "git reset --hard abc", "/work/repo"},
		{"reset mixed", func() error { return repo.ResetMixed(ctx, git.Rev("abc")) }, "git reset --mixed abc", "/work/repo"},
		{"reset default", func() error { return repo.Reset(ctx, git.Rev("abc"), git.ResetModeDefault) }, "git reset abc", "/work/repo"},
		{"add remote", func() error {
			_, err := repo.AddRemote(ctx, "origin", "https://example.com/r.git")
			return err
		}, "git remote add origin https://example.com/r.git", "/work/repo"},
		{"fetch", func() error { return repo.Fetch(ctx, nil) }, "git fetch", "/work/repo"},
		{"fetch url", func() error { return repo.Fetch(ctx, git.URL("/srv/other")) }, "git fetch /srv/other", "/work/repo"},
		{"pull", func() error { return repo.Pull(ctx, nil) }, "git pull", "/work/repo"},
		{"pull remote repo", func() error {
			return repo.Pull(ctx, git.NewRemoteRepository("git@host:r.git"))
		}, "git pull git@host:r.git", "/work/repo"},
		{"clone", func() error { return repo.Clone(ctx, git.URL("https://example.com/r.git")) }, "git clone https://example.com/r.git /work/repo", "/work"},
		{"staged files", func() error {
			_, err := repo.GetStagedFiles(ctx)
			return err
		}, "git ls-files --exclude-standard --cached", "/work/repo"},
		{"changed files", func() error {
			_, err := repo.GetChangedFiles(ctx)
			return err
		}, "git ls-files --exclude-standard --modified", "/work/repo"},
		{"untracked files", func() error {
			_, err := repo.GetUntrackedFiles(ctx)
			return err
		}, "git ls-files --exclude-standard --others", "/work/repo"},
		{"unchanged files", func() error {
			_, err := repo.GetUnchangedFiles(ctx)
			return err
		}, "git ls-files --exclude-standard", "/work/repo"},
		{"head", func() error {
			_, err := repo.GetHead(ctx)
			return err
		}, "git rev-parse HEAD", "/work/repo"},
		{"contains", func() error {
			_, err := repo.ContainsCommit(ctx, git.Rev("abc"))
			return err
		}, "git log -1 abc", "/work/repo"},
		{"commit", func() error {
			_, err := repo.Commit(ctx, "it's done")
			return err
		}, `git commit -m 'it'\''s done'`, "/work/repo"},
		{"branches", func() error {
			_, err := repo.GetBranches(ctx)
			return err
		}, "git branch", "/work/repo"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.run())
			require.Equal(t, tc.want, runner.commandLine)
			require.Equal(t, tc.dir, runner.dir)
		})
	}

	t.Run("ls-remote", func(t *testing.T) {
		remote := git.NewRemoteRepository("https://example.com/r.git", git.WithExecutor(exec))
		_, err := remote.GetRefs(ctx)
		require.NoError(t, err)
		require.Equal(t, "git ls-remote https://example.com/r.git", runner.commandLine)
		require.Equal(t, ".", runner.dir)
	})
}
