// Package shell builds and runs shell command lines.
//
// It provides:
//   - Quoting of arbitrary strings into single POSIX shell tokens
//   - A Runner that executes a command line through the shell and captures
//     its stdout, stderr and exit status
//
// A non-zero exit status is reported in the Invocation, not as an error.
// Deciding what a failed command means is left to callers.
package shell
