package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// DefaultCommandTimeout is the default timeout for a command line
const DefaultCommandTimeout = 5 * time.Minute

const waitDelay = time.Second

// DefaultShell is the interpreter command lines are passed to
const DefaultShell = "/bin/sh"

// Invocation is the captured result of running one command line
type Invocation struct {
	CommandLine string
	Dir         string
	Stdout      []byte
	Stderr      []byte
	ExitCode    int
	Duration    time.Duration
}

// Success reports whether the command exited with status 0
func (i *Invocation) Success() bool {
	return i.ExitCode == 0
}

// StdoutText returns stdout decoded as text
func (i *Invocation) StdoutText() string {
	return string(i.Stdout)
}

// StderrText returns stderr decoded as text
func (i *Invocation) StderrText() string {
	return string(i.Stderr)
}

// Runner executes command lines through a shell
type Runner struct {
	shell   string
	timeout time.Duration
	env     []string
}

// Option configures a Runner
type Option func(*Runner)

// WithShell sets the shell binary used to interpret command lines
func WithShell(shell string) Option {
	return func(r *Runner) {
		r.shell = shell
	}
}

// WithTimeout sets the timeout applied when the context has no deadline.
// A zero timeout disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Runner) {
		r.timeout = timeout
	}
}

// WithEnv adds KEY=VALUE pairs to the environment of every command
func WithEnv(env ...string) Option {
	return func(r *Runner) {
		r.env = append(r.env, env...)
	}
}

// NewRunner creates a new Runner
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		shell:   DefaultShell,
		timeout: DefaultCommandTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes commandLine in dir and waits for it to exit.
//
// A non-zero exit status is not an error: it is reported in the returned
// Invocation. The error is reserved for commands that could not be started
// or that were stopped by ctx. The Invocation is returned alongside such an
// error whenever the process was started, with ExitCode -1.
func (r *Runner) Run(ctx context.Context, commandLine, dir string) (*Invocation, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok && r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.shell, "-c", commandLine)
	// Grandchildren can hold the output pipes open after the shell is killed
	cmd.WaitDelay = waitDelay
	if dir != "" {
		cmd.Dir = dir
	}
	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	inv := &Invocation{
		CommandLine: commandLine,
		Dir:         dir,
		Stdout:      stdout.Bytes(),
		Stderr:      stderr.Bytes(),
		ExitCode:    0,
		Duration:    time.Since(start),
	}
	if err == nil {
		return inv, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		inv.ExitCode = -1
		return inv, fmt.Errorf("command %q stopped: %w", commandLine, ctxErr)
	}

	// The shell exited but left something holding stdout or stderr
	if errors.Is(err, exec.ErrWaitDelay) && cmd.ProcessState != nil {
		inv.ExitCode = cmd.ProcessState.ExitCode()
		return inv, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		inv.ExitCode = exitErr.ExitCode()
		if inv.ExitCode >= 0 {
			return inv, nil
		}
		// Killed by a signal
		return inv, fmt.Errorf("command %q terminated: %w", commandLine, err)
	}

	inv.ExitCode = -1
	return inv, fmt.Errorf("failed to start %q: %w", commandLine, err)
}
