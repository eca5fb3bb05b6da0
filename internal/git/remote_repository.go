package git

import (
	"context"
	"fmt"
	"slices"

	"gitwrap.dev/gitwrap/internal/shell"
)

// RemoteRepository is a repository known only by URL. It has no working
// tree; the only thing it can do is list refs with ls-remote.
type RemoteRepository struct {
	URL        string
	exec       *Executor
	workingDir string
}

// NewRemoteRepository creates a RemoteRepository for url
func NewRemoteRepository(url string, opts ...Option) *RemoteRepository {
	o := newRepoOptions(opts)
	return &RemoteRepository{
		URL:        url,
		exec:       o.executor,
		workingDir: o.workingDir,
	}
}

func (r *RemoteRepository) String() string {
	return r.URL
}

// SourceURL returns the URL for clone, fetch and pull
func (r *RemoteRepository) SourceURL() string {
	return r.URL
}

// Supports reports whether c is implemented by remote repositories
func (r *RemoteRepository) Supports(c Capability) bool {
	return c == CapabilityRefListing
}

// GetRefs lists every ref advertised by the remote, classified by namespace
func (r *RemoteRepository) GetRefs(ctx context.Context) ([]Ref, error) {
	url, err := shell.Quote(r.URL)
	if err != nil {
		return nil, err
	}
	output, err := r.exec.RunAndCaptureText(ctx, r.exec.Command("ls-remote", url), r.workingDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list refs of %s: %w", r.URL, err)
	}

	var refs []Ref
	for line := range ParseRefListing(output) {
		kind, name := ClassifyRef(line.RefName)
		ref := NewRef(r, name, kind)
		ref.Hash = line.Hash
		refs = append(refs, ref)
	}
	return refs, nil
}

// GetBranches lists the remote's branches
func (r *RemoteRepository) GetBranches(ctx context.Context) ([]Ref, error) {
	refs, err := r.GetRefs(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(refs, func(ref Ref) bool {
		return !ref.IsBranch()
	}), nil
}

var _ Repository = (*RemoteRepository)(nil)
