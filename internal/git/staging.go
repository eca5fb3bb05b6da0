package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gitwrap.dev/gitwrap/internal/shell"
)

// ErrOptionLikePath is returned for paths that git would parse as an option
var ErrOptionLikePath = errors.New("path starts with '-'")

// Add stages path. The command line is `git add <path>` with no "--", so a
// path starting with "-" is rejected with ErrOptionLikePath; prefix it with
// "./" instead.
func (r *LocalRepository) Add(ctx context.Context, path string) error {
	if strings.HasPrefix(path, "-") {
		return fmt.Errorf("cannot add %q: %w", path, ErrOptionLikePath)
	}
	quoted, err := shell.Quote(path)
	if err != nil {
		return err
	}
	if err := r.run(ctx, "add", quoted); err != nil {
		return fmt.Errorf("failed to add %s: %w", path, err)
	}
	return nil
}

// AddAll stages everything under the repository root
func (r *LocalRepository) AddAll(ctx context.Context) error {
	return r.Add(ctx, ".")
}

// listFiles runs git ls-files --exclude-standard with extra filter flags
func (r *LocalRepository) listFiles(ctx context.Context, flags ...string) ([]string, error) {
	args := append([]string{"ls-files", "--exclude-standard"}, flags...)
	output, err := r.output(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return ParseFileListing(output), nil
}

// GetStagedFiles returns the files in the index
func (r *LocalRepository) GetStagedFiles(ctx context.Context) ([]string, error) {
	return r.listFiles(ctx, "--cached")
}

// GetUnchangedFiles returns what git ls-files lists with no filter, which is
// the same set as GetStagedFiles
func (r *LocalRepository) GetUnchangedFiles(ctx context.Context) ([]string, error) {
	return r.listFiles(ctx)
}

// GetChangedFiles returns tracked files with unstaged modifications
func (r *LocalRepository) GetChangedFiles(ctx context.Context) ([]string, error) {
	return r.listFiles(ctx, "--modified")
}

// GetUntrackedFiles returns files git does not track and does not ignore
func (r *LocalRepository) GetUntrackedFiles(ctx context.Context) ([]string, error) {
	return r.listFiles(ctx, "--others")
}
