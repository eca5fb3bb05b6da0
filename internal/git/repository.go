package git

import (
	"context"

	gitwraperrors "gitwrap.dev/gitwrap/internal/errors"
	"gitwrap.dev/gitwrap/internal/shell"
)

// Repository is the capability shared by local and remote repositories
type Repository interface {
	// GetBranches lists the repository's branches
	GetBranches(ctx context.Context) ([]Ref, error)
	// GetRefs lists every ref the repository advertises
	GetRefs(ctx context.Context) ([]Ref, error)
	// Supports reports whether an optional capability is implemented
	Supports(c Capability) bool
	String() string
}

// Capability names optional behavior that a repository may implement
type Capability int

const (
	// CapabilityRefListing is listing all refs with their hashes
	CapabilityRefListing Capability = iota
	// CapabilityWorkingTree is everything that needs a checkout on disk
	CapabilityWorkingTree
	// CapabilityConflictResolution is completing a merge that stopped on conflicts
	CapabilityConflictResolution
)

// repoOptions holds settings shared by both repository variants
type repoOptions struct {
	executor   *Executor
	workingDir string
}

// Option configures a repository
type Option func(*repoOptions)

// WithExecutor sets the executor commands run through
func WithExecutor(e *Executor) Option {
	return func(o *repoOptions) {
		o.executor = e
	}
}

// WithWorkingDir sets the directory used by commands that do not run inside
// the repository: clone for a LocalRepository, ls-remote for a RemoteRepository
func WithWorkingDir(dir string) Option {
	return func(o *repoOptions) {
		o.workingDir = dir
	}
}

func newRepoOptions(opts []Option) repoOptions {
	o := repoOptions{
		executor:   defaultExecutor,
		workingDir: ".",
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.executor == nil {
		o.executor = defaultExecutor
	}
	if o.workingDir == "" {
		o.workingDir = "."
	}
	return o
}

// checkOwner rejects values produced by a repository other than repo
func checkOwner(repo Repository, v any, name string) error {
	o, ok := v.(owned)
	if !ok || o.Repository() == nil || o.Repository() == repo {
		return nil
	}
	return gitwraperrors.NewForeignValueError(name, o.Repository().String(), repo.String())
}

// quoteRev validates ownership of rev and quotes it for the command line
func quoteRev(repo Repository, rev Revision) (string, error) {
	if err := checkOwner(repo, rev, rev.Rev()); err != nil {
		return "", err
	}
	return shell.Quote(rev.Rev())
}

// quoteSource validates ownership of src and quotes its location
func quoteSource(repo Repository, src Source) (string, error) {
	if err := checkOwner(repo, src, src.SourceURL()); err != nil {
		return "", err
	}
	return shell.Quote(src.SourceURL())
}
