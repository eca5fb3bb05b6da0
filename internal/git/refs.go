package git

import "fmt"

// RefKind classifies a ref by the namespace it lives in
type RefKind int

const (
	// RefKindOther is any ref outside the namespaces below, such as HEAD
	RefKindOther RefKind = iota
	// RefKindBranch is a ref under refs/heads/
	RefKindBranch
	// RefKindTag is a ref under refs/tags/
	RefKindTag
	// RefKindRemoteTracking is a ref under refs/remotes/
	RefKindRemoteTracking
)

func (k RefKind) String() string {
	switch k {
	case RefKindBranch:
		return "branch"
	case RefKindTag:
		return "tag"
	case RefKindRemoteTracking:
		return "remote-tracking"
	default:
		return "ref"
	}
}

// prefix returns the namespace for refs of this kind
func (k RefKind) prefix() string {
	for _, p := range refPrefixes {
		if p.kind == k {
			return p.prefix
		}
	}
	return ""
}

// Revision is anything that can name a commit on a git command line
type Revision interface {
	Rev() string
}

// owned is implemented by values that remember the repository that made them
type owned interface {
	Repository() Repository
}

// Rev is a plain revision expression such as "HEAD~1" or a partial hash.
// It belongs to no repository.
type Rev string

// Rev returns the expression itself
func (r Rev) Rev() string {
	return string(r)
}

// Ref is a named pointer to a commit. Name has the namespace prefix removed,
// so a branch ref for refs/heads/main has Name "main".
type Ref struct {
	repo Repository
	Name string
	Kind RefKind
	// Hash is the commit the ref pointed to when listed, if the listing said
	Hash string
}

// NewRef creates a ref owned by repo
func NewRef(repo Repository, name string, kind RefKind) Ref {
	return Ref{repo: repo, Name: name, Kind: kind}
}

// NewBranch creates a branch ref owned by repo
func NewBranch(repo Repository, name string) Ref {
	return NewRef(repo, name, RefKindBranch)
}

// Repository returns the repository that produced the ref
func (r Ref) Repository() Repository {
	return r.repo
}

// IsBranch reports whether the ref is a branch
func (r Ref) IsBranch() bool {
	return r.Kind == RefKindBranch
}

// FullName returns the ref name including its namespace, e.g. refs/tags/v1
func (r Ref) FullName() string {
	return r.Kind.prefix() + r.Name
}

// Rev names the ref on a command line. Branches use their short name, the
// way git branch lists them; everything else uses the full name.
func (r Ref) Rev() string {
	if r.Kind == RefKindBranch || r.Kind == RefKindOther {
		return r.Name
	}
	return r.FullName()
}

func (r Ref) String() string {
	return fmt.Sprintf("%s %s", r.Kind, r.Name)
}

// Commit identifies a commit by hash or by any expression git can resolve.
// It is not checked when created; git resolves it when it is used.
type Commit struct {
	repo Repository
	Hash string
}

// NewCommit creates a commit owned by repo
func NewCommit(repo Repository, hash string) Commit {
	return Commit{repo: repo, Hash: hash}
}

// Repository returns the repository that produced the commit
func (c Commit) Repository() Repository {
	return c.repo
}

// Rev returns the hash or expression
func (c Commit) Rev() string {
	return c.Hash
}

func (c Commit) String() string {
	return c.Hash
}

// Remote is a named remote configured in a local repository
type Remote struct {
	repo Repository
	Name string
	URL  string
}

// Repository returns the repository the remote is configured in
func (r Remote) Repository() Repository {
	return r.repo
}

// SourceURL names the remote for fetch and pull
func (r Remote) SourceURL() string {
	return r.Name
}

func (r Remote) String() string {
	return fmt.Sprintf("%s %s", r.Name, r.URL)
}

// Source is a place commits can be cloned, fetched or pulled from
type Source interface {
	SourceURL() string
}

// URL is a repository location given as a string
type URL string

// SourceURL returns the URL itself
func (u URL) SourceURL() string {
	return string(u)
}
