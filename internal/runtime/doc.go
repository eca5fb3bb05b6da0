// Package runtime provides the execution context for gitwrap commands.
//
// It encapsulates shared dependencies and configuration needed by commands,
// such as the git executor, logger, and repository root path.
package runtime
