// Package git provides a repository façade over the git command-line tool.
//
// Every operation builds a git command line, runs it through a single
// Executor, and parses the captured output into domain values:
//   - LocalRepository: init, clone, staging, commit, branches, checkout,
//     merge, reset, remotes, fetch and pull against a working tree
//   - RemoteRepository: ref listing over the network with ls-remote
//   - Ref, Commit and Remote: values that remember the repository that
//     produced them
//
// The Executor is the only place that looks at exit statuses.
package git
