package runtime

import (
	"context"
	"fmt"
	"io"

	"gitwrap.dev/gitwrap/internal/config"
	"gitwrap.dev/gitwrap/internal/git"
	"gitwrap.dev/gitwrap/internal/shell"
	"gitwrap.dev/gitwrap/internal/tui"
)

// Options are the command line settings that shape a Context
type Options struct {
	RepoDir    string // explicit repository path; discovered from "." when empty
	ConfigPath string // config file; config.Path() when empty
	Debug      bool
	Quiet      bool
	Out        io.Writer
}

// Context provides access to the executor and output for commands
type Context struct {
	context.Context
	Config   *config.Config
	Splog    *tui.Splog
	Executor *git.Executor
	repoDir  string
}

// NewContext loads configuration and builds the executor and logger.
// The repository is resolved lazily since some commands do not need one.
func NewContext(parent context.Context, opts Options) (*Context, error) {
	if parent == nil {
		parent = context.Background()
	}

	var cfg *config.Config
	var err error
	if opts.ConfigPath != "" {
		cfg, err = config.LoadFile(opts.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if opts.Debug {
		cfg.Debug = true
	}

	splogOpts := tui.SplogOptions{
		Writer: opts.Out,
		Debug:  cfg.Debug,
		Quiet:  opts.Quiet,
	}
	if cfg.LogFile != "" {
		splogOpts.LogFile = &tui.LogFileOptions{
			Path:       cfg.LogFile,
			MaxSize:    cfg.LogMaxSize,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAge,
		}
	}
	splog, err := tui.NewSplogWithOptions(splogOpts)
	if err != nil {
		return nil, err
	}

	runner := shell.NewRunner(
		shell.WithShell(cfg.Shell),
		shell.WithTimeout(cfg.CommandTimeout),
	)
	executor := git.NewExecutor(runner,
		git.WithGitBinary(cfg.GitBinary),
		git.WithLogger(splog.Logger()),
	)

	return &Context{
		Context:  parent,
		Config:   cfg,
		Splog:    splog,
		Executor: executor,
		repoDir:  opts.RepoDir,
	}, nil
}

// RepoOptions returns the façade options every repository should be built with
func (c *Context) RepoOptions() []git.Option {
	return []git.Option{
		git.WithExecutor(c.Executor),
		git.WithWorkingDir(c.Config.WorkingDir),
	}
}

// Repo returns the repository named by --repo, or the one enclosing the
// current directory
func (c *Context) Repo() (*git.LocalRepository, error) {
	if c.repoDir != "" {
		return git.NewLocalRepository(c.repoDir, c.RepoOptions()...), nil
	}
	repo, err := git.OpenLocalRepository(".", c.RepoOptions()...)
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}
	return repo, nil
}

// TargetRepo returns a LocalRepository for path without requiring that it exists.
// An empty path falls back to --repo, then the current directory.
func (c *Context) TargetRepo(path string) *git.LocalRepository {
	if path == "" {
		path = c.repoDir
	}
	if path == "" {
		path = "."
	}
	return git.NewLocalRepository(path, c.RepoOptions()...)
}

// Close releases the log file
func (c *Context) Close() error {
	return c.Splog.Close()
}
