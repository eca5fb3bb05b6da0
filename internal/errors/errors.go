// Package errors provides sentinel errors and custom error types for gitwrap.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrCommandFailed indicates that an external command exited with a non-zero status
	ErrCommandFailed = errors.New("command failed")

	// ErrRepositoryCreation indicates that a repository could not be created at a path
	ErrRepositoryCreation = errors.New("repository creation failed")

	// ErrUnsupportedOperation indicates an operation a repository variant does not implement
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrForeignValue indicates a ref, commit or remote produced by a different repository
	ErrForeignValue = errors.New("value belongs to a different repository")
)

// CommandError represents a command line that did not exit cleanly.
// ExitCode is -1 when the process could not be started or was killed.
type CommandError struct {
	CommandLine string
	Dir         string
	ExitCode    int
	Stdout      string
	Stderr      string
	Err         error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed (exit %d): %s", e.ExitCode, e.CommandLine)
	if e.Dir != "" {
		msg += fmt.Sprintf("\ndir: %s", e.Dir)
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", stderr)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrCommandFailed
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}

// NewCommandError creates a new CommandError
func NewCommandError(commandLine, dir string, exitCode int, stdout, stderr string, err error) *CommandError {
	return &CommandError{
		CommandLine: commandLine,
		Dir:         dir,
		ExitCode:    exitCode,
		Stdout:      stdout,
		Stderr:      stderr,
		Err:         err,
	}
}

// RepositoryCreationError represents a path that cannot hold a new repository
type RepositoryCreationError struct {
	Path   string
	Reason string
}

func (e *RepositoryCreationError) Error() string {
	return fmt.Sprintf("cannot create repository in %s - %s", e.Path, e.Reason)
}

// Is returns true if the target error is ErrRepositoryCreation
func (e *RepositoryCreationError) Is(target error) bool {
	return target == ErrRepositoryCreation
}

// NewRepositoryCreationError creates a new RepositoryCreationError
func NewRepositoryCreationError(path, reason string) *RepositoryCreationError {
	return &RepositoryCreationError{Path: path, Reason: reason}
}

// UnsupportedOperationError represents an operation that a repository variant does not offer
type UnsupportedOperationError struct {
	Operation string
	Variant   string
}

func (e *UnsupportedOperationError) Error() string {
	if e.Variant != "" {
		return fmt.Sprintf("%s is not supported by %s", e.Operation, e.Variant)
	}
	return fmt.Sprintf("%s is not supported", e.Operation)
}

// Is returns true if the target error is ErrUnsupportedOperation
func (e *UnsupportedOperationError) Is(target error) bool {
	return target == ErrUnsupportedOperation
}

// NewUnsupportedOperationError creates a new UnsupportedOperationError
func NewUnsupportedOperationError(operation, variant string) *UnsupportedOperationError {
	return &UnsupportedOperationError{Operation: operation, Variant: variant}
}

// MergeConflictError is returned when a merge does not complete cleanly.
// Conflict resolution is not implemented, so it reports as ErrUnsupportedOperation.
// The underlying command failure is kept in Cause but is not part of the
// Unwrap chain: errors.As for *CommandError does not match it.
type MergeConflictError struct {
	Rev   string
	Cause *CommandError
}

func (e *MergeConflictError) Error() string {
	msg := fmt.Sprintf("merge of %s did not complete and conflict resolution is not supported", e.Rev)
	if e.Cause != nil {
		if stderr := strings.TrimSpace(e.Cause.Stderr); stderr != "" {
			msg += fmt.Sprintf("\nstderr: %s", stderr)
		}
		if stdout := strings.TrimSpace(e.Cause.Stdout); stdout != "" {
			msg += fmt.Sprintf("\nstdout: %s", stdout)
		}
	}
	return msg
}

// Is returns true if the target error is ErrUnsupportedOperation
func (e *MergeConflictError) Is(target error) bool {
	return target == ErrUnsupportedOperation
}

// NewMergeConflictError creates a new MergeConflictError
func NewMergeConflictError(rev string, cause *CommandError) *MergeConflictError {
	return &MergeConflictError{Rev: rev, Cause: cause}
}

// ForeignValueError represents a domain value handed to a repository that did not produce it
type ForeignValueError struct {
	Value string
	Owner string
	Repo  string
}

func (e *ForeignValueError) Error() string {
	return fmt.Sprintf("%s belongs to %s, not %s", e.Value, e.Owner, e.Repo)
}

// Is returns true if the target error is ErrForeignValue
func (e *ForeignValueError) Is(target error) bool {
	return target == ErrForeignValue
}

// NewForeignValueError creates a new ForeignValueError
func NewForeignValueError(value, owner, repo string) *ForeignValueError {
	return &ForeignValueError{Value: value, Owner: owner, Repo: repo}
}
