package git

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
)

// ErrNotARepository is returned when no repository encloses a directory
var ErrNotARepository = errors.New("not a git repository")

// FindRepoRoot returns the root of the working tree that contains dir,
// searching parent directories the way git does
func FindRepoRoot(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absDir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrNotARepository, absDir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no worktree
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}

// OpenLocalRepository returns a LocalRepository rooted at the working tree
// that contains dir
func OpenLocalRepository(dir string, opts ...Option) (*LocalRepository, error) {
	root, err := FindRepoRoot(dir)
	if err != nil {
		return nil, err
	}
	return NewLocalRepository(root, opts...), nil
}
