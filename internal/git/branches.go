package git

import (
	"context"
	"fmt"

	gitwraperrors "gitwrap.dev/gitwrap/internal/errors"
	"gitwrap.dev/gitwrap/internal/shell"
)

// GetBranches returns the local branches
func (r *LocalRepository) GetBranches(ctx context.Context) ([]Ref, error) {
	output, err := r.output(ctx, "branch")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	names := ParseBranchListing(output)
	branches := make([]Ref, 0, len(names))
	for _, name := range names {
		branches = append(branches, NewBranch(r, name))
	}
	return branches, nil
}

// CreateBranch creates a branch named name at startingPoint, or at HEAD
// when startingPoint is nil. The current branch does not change.
func (r *LocalRepository) CreateBranch(ctx context.Context, name string, startingPoint Revision) (Ref, error) {
	quotedName, err := shell.Quote(name)
	if err != nil {
		return Ref{}, err
	}
	args := []string{"branch", quotedName}
	if startingPoint != nil {
		start, err := quoteRev(r, startingPoint)
		if err != nil {
			return Ref{}, err
		}
		args = append(args, start)
	}

	if err := r.run(ctx, args...); err != nil {
		return Ref{}, fmt.Errorf("failed to create branch %s: %w", name, err)
	}
	return NewBranch(r, name), nil
}

// CheckoutOptions selects what Checkout does
type CheckoutOptions struct {
	// Target is the branch or commit to check out. Nil leaves HEAD alone,
	// which together with Files restores paths from the index.
	Target Revision
	// NewBranch creates and switches to a branch with this name
	NewBranch string
	// Files limits the checkout to these paths. They follow "--", so a
	// name starting with "-" is taken as a path.
	Files []string
}

// Checkout runs git checkout [<target>] [-b <new branch>] [-- <files>...]
func (r *LocalRepository) Checkout(ctx context.Context, opts CheckoutOptions) error {
	args := []string{"checkout"}
	if opts.Target != nil {
		target, err := quoteRev(r, opts.Target)
		if err != nil {
			return err
		}
		args = append(args, target)
	}
	if opts.NewBranch != "" {
		newBranch, err := shell.Quote(opts.NewBranch)
		if err != nil {
			return err
		}
		args = append(args, "-b", newBranch)
	}
	if len(opts.Files) > 0 {
		files, err := shell.Join(opts.Files...)
		if err != nil {
			return err
		}
		args = append(args, "--", files)
	}

	if err := r.run(ctx, args...); err != nil {
		return fmt.Errorf("failed to checkout: %w", err)
	}
	return nil
}

// CheckoutBranch switches to an existing branch or commit
func (r *LocalRepository) CheckoutBranch(ctx context.Context, target Revision) error {
	return r.Checkout(ctx, CheckoutOptions{Target: target})
}

// Merge merges rev into the current branch.
//
// A merge that fails, most often because of conflicts, returns a
// *errors.MergeConflictError: conflict resolution is not implemented
// (see Supports(CapabilityConflictResolution)). The git failure is kept in
// its Cause field. The working tree is left as git left it, so callers
// usually want to run `git merge --abort` through AbortMerge.
func (r *LocalRepository) Merge(ctx context.Context, rev Revision) error {
	quoted, err := quoteRev(r, rev)
	if err != nil {
		return err
	}
	err = r.run(ctx, "merge", quoted)
	if err == nil {
		return nil
	}
	if cmdErr, ok := asCommandError(err); ok && cmdErr.ExitCode > 0 {
		return gitwraperrors.NewMergeConflictError(rev.Rev(), cmdErr)
	}
	return fmt.Errorf("failed to merge %s: %w", rev.Rev(), err)
}

// AbortMerge abandons a merge that stopped on conflicts
func (r *LocalRepository) AbortMerge(ctx context.Context) error {
	if err := r.run(ctx, "merge", "--abort"); err != nil {
		return fmt.Errorf("failed to abort merge: %w", err)
	}
	return nil
}
