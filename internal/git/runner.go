package git

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	gitwraperrors "gitwrap.dev/gitwrap/internal/errors"
	"gitwrap.dev/gitwrap/internal/shell"
)

// CommandRunner runs a command line in a directory and captures the result.
// *shell.Runner is the real implementation.
type CommandRunner interface {
	Run(ctx context.Context, commandLine, dir string) (*shell.Invocation, error)
}

// Executor runs git command lines and decides whether they succeeded
type Executor struct {
	runner    CommandRunner
	gitBinary string
	logger    *slog.Logger
}

// ExecutorOption configures an Executor
type ExecutorOption func(*Executor)

// WithGitBinary sets the executable placed at the start of git command lines
func WithGitBinary(binary string) ExecutorOption {
	return func(e *Executor) {
		e.gitBinary = binary
	}
}

// WithLogger sets the logger used for command tracing
func WithLogger(logger *slog.Logger) ExecutorOption {
	return func(e *Executor) {
		e.logger = logger
	}
}

// NewExecutor creates an Executor. A nil runner means a default shell.Runner.
func NewExecutor(runner CommandRunner, opts ...ExecutorOption) *Executor {
	if runner == nil {
		runner = shell.NewRunner()
	}
	e := &Executor{
		runner:    runner,
		gitBinary: "git",
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// defaultExecutor is used by repositories created without WithExecutor
var defaultExecutor = NewExecutor(nil)

// Command builds a git command line from parts that are already safe for the shell
func (e *Executor) Command(parts ...string) string {
	line := shell.MustQuote(e.gitBinary)
	for _, part := range parts {
		if part == "" {
			continue
		}
		line += " " + part
	}
	return line
}

// RunAssertSuccess runs commandLine in dir and returns a *errors.CommandError
// when the command cannot be run or exits with a non-zero status
func (e *Executor) RunAssertSuccess(ctx context.Context, commandLine, dir string) (*shell.Invocation, error) {
	e.logger.Debug("running command", "command", commandLine, "dir", dir)

	inv, err := e.runner.Run(ctx, commandLine, dir)
	if err != nil {
		var stdout, stderr string
		if inv != nil {
			stdout, stderr = inv.StdoutText(), inv.StderrText()
		}
		e.logger.Debug("command did not run", "command", commandLine, "error", err)
		return nil, gitwraperrors.NewCommandError(commandLine, dir, -1, stdout, stderr, err)
	}
	if inv.ExitCode != 0 {
		e.logger.Debug("command failed", "command", commandLine, "exit", inv.ExitCode,
			"stderr", strings.TrimSpace(inv.StderrText()))
		return nil, gitwraperrors.NewCommandError(commandLine, dir, inv.ExitCode, inv.StdoutText(), inv.StderrText(), nil)
	}

	e.logger.Debug("command finished", "command", commandLine, "duration", inv.Duration)
	return inv, nil
}

// RunAndCaptureText is RunAssertSuccess returning stdout as text
func (e *Executor) RunAndCaptureText(ctx context.Context, commandLine, dir string) (string, error) {
	inv, err := e.RunAssertSuccess(ctx, commandLine, dir)
	if err != nil {
		return "", err
	}
	return inv.StdoutText(), nil
}

// asCommandError extracts the command failure from err, if there is one
func asCommandError(err error) (*gitwraperrors.CommandError, bool) {
	var cmdErr *gitwraperrors.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr, true
	}
	return nil, false
}
