package git

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	gitwraperrors "gitwrap.dev/gitwrap/internal/errors"
	"gitwrap.dev/gitwrap/internal/shell"
)

// LocalRepository is a repository with a working tree at Path. Commands run
// with Path as their working directory.
//
// Operations on one LocalRepository are not coordinated with each other.
// Running several at once against the same Path, from goroutines or other
// processes, is only as safe as git's own index locking makes it.
type LocalRepository struct {
	Path       string
	exec       *Executor
	workingDir string
}

// NewLocalRepository creates a LocalRepository for path. The path does not
// need to exist until Init or Clone creates it.
func NewLocalRepository(path string, opts ...Option) *LocalRepository {
	o := newRepoOptions(opts)
	return &LocalRepository{
		Path:       path,
		exec:       o.executor,
		workingDir: o.workingDir,
	}
}

func (r *LocalRepository) String() string {
	return r.Path
}

// SourceURL returns the path for clone, fetch and pull
func (r *LocalRepository) SourceURL() string {
	return r.Path
}

// Supports reports whether c is implemented by local repositories
func (r *LocalRepository) Supports(c Capability) bool {
	return c == CapabilityWorkingTree
}

// run executes a git command inside the working tree
func (r *LocalRepository) run(ctx context.Context, parts ...string) error {
	_, err := r.exec.RunAssertSuccess(ctx, r.exec.Command(parts...), r.Path)
	return err
}

// output executes a git command inside the working tree and returns stdout
func (r *LocalRepository) output(ctx context.Context, parts ...string) (string, error) {
	return r.exec.RunAndCaptureText(ctx, r.exec.Command(parts...), r.Path)
}

// Init creates the directory if needed and runs git init in it
func (r *LocalRepository) Init(ctx context.Context, bare bool) error {
	info, err := os.Stat(r.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(r.Path, 0750); err != nil {
			return gitwraperrors.NewRepositoryCreationError(r.Path, err.Error())
		}
	case err != nil:
		return gitwraperrors.NewRepositoryCreationError(r.Path, err.Error())
	case !info.IsDir():
		return gitwraperrors.NewRepositoryCreationError(r.Path, "not a directory")
	}

	args := []string{"init"}
	if bare {
		args = append(args, "--bare")
	}
	if err := r.run(ctx, args...); err != nil {
		return fmt.Errorf("failed to init repository in %s: %w", r.Path, err)
	}
	return nil
}

// Clone clones src into Path. The command runs in the configured working
// directory, so a relative Path is resolved against it.
func (r *LocalRepository) Clone(ctx context.Context, src Source) error {
	url, err := quoteSource(r, src)
	if err != nil {
		return err
	}
	path, err := shell.Quote(r.Path)
	if err != nil {
		return err
	}
	if _, err := r.exec.RunAssertSuccess(ctx, r.exec.Command("clone", url, path), r.workingDir); err != nil {
		return fmt.Errorf("failed to clone %s: %w", src.SourceURL(), err)
	}
	return nil
}

// GetRefs is not available for local repositories
func (r *LocalRepository) GetRefs(_ context.Context) ([]Ref, error) {
	return nil, gitwraperrors.NewUnsupportedOperationError("ref listing", "local repository")
}

var (
	_ Repository = (*LocalRepository)(nil)
	_ Source     = (*LocalRepository)(nil)
	_ Source     = (*RemoteRepository)(nil)
)
