package git

import (
	"context"
	"fmt"
)

// ResetMode is the --soft, --mixed or --hard flag of git reset
type ResetMode string

const (
	// ResetModeDefault passes no mode flag, which git treats as mixed
	ResetModeDefault ResetMode = ""
	ResetModeSoft    ResetMode = "soft"
	ResetModeMixed   ResetMode = "mixed"
	ResetModeHard    ResetMode = "hard"
)

// Reset moves the current branch to rev using mode
func (r *LocalRepository) Reset(ctx context.Context, rev Revision, mode ResetMode) error {
	quoted, err := quoteRev(r, rev)
	if err != nil {
		return err
	}
	args := []string{"reset"}
	if mode != ResetModeDefault {
		args = append(args, "--"+string(mode))
	}
	args = append(args, quoted)

	if err := r.run(ctx, args...); err != nil {
		return fmt.Errorf("failed to reset to %s: %w", rev.Rev(), err)
	}
	return nil
}

// ResetSoft moves the branch and keeps index and working tree
func (r *LocalRepository) ResetSoft(ctx context.Context, rev Revision) error {
	return r.Reset(ctx, rev, ResetModeSoft)
}

// ResetHard moves the branch and discards index and working tree changes
func (r *LocalRepository) ResetHard(ctx context.Context, rev Revision) error {
	return r.Reset(ctx, rev, ResetModeHard)
}

// ResetMixed moves the branch and resets the index but not the working tree
func (r *LocalRepository) ResetMixed(ctx context.Context, rev Revision) error {
	return r.Reset(ctx, rev, ResetModeMixed)
}
