package git

import (
	"context"
	"fmt"
	"strings"

	"gitwrap.dev/gitwrap/internal/shell"
)

// GetCommit resolves rev to a full commit hash with git rev-parse
func (r *LocalRepository) GetCommit(ctx context.Context, rev Revision) (Commit, error) {
	quoted, err := quoteRev(r, rev)
	if err != nil {
		return Commit{}, err
	}
	output, err := r.output(ctx, "rev-parse", quoted)
	if err != nil {
		return Commit{}, fmt.Errorf("failed to resolve %s: %w", rev.Rev(), err)
	}
	return NewCommit(r, strings.TrimSpace(output)), nil
}

// GetHead returns the commit HEAD points to
func (r *LocalRepository) GetHead(ctx context.Context) (Commit, error) {
	return r.GetCommit(ctx, Rev("HEAD"))
}

// ContainsCommit reports whether rev names a commit in this repository.
// A git failure means it does not; only a command that could not run at
// all is reported as an error.
func (r *LocalRepository) ContainsCommit(ctx context.Context, rev Revision) (bool, error) {
	quoted, err := quoteRev(r, rev)
	if err != nil {
		return false, err
	}
	err = r.run(ctx, "log", "-1", quoted)
	if err == nil {
		return true, nil
	}
	if cmdErr, ok := asCommandError(err); ok && cmdErr.ExitCode > 0 {
		return false, nil
	}
	return false, err
}

// Commit records the staged changes with message and returns the new
// commit as reported by git, on a branch or on a detached HEAD. The
// returned commit is nil if git's output does not name one.
func (r *LocalRepository) Commit(ctx context.Context, message string) (*Commit, error) {
	quoted, err := shell.Quote(message)
	if err != nil {
		return nil, err
	}
	output, err := r.output(ctx, "commit", "-m", quoted)
	if err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	hash, ok := ParseNewCommit(output)
	if !ok {
		return nil, nil
	}
	c := NewCommit(r, hash)
	return &c, nil
}
