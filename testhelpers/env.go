package testhelpers

import (
	"gitwrap.dev/gitwrap/internal/git"
	"gitwrap.dev/gitwrap/internal/shell"
)

// GitEnv isolates git from the user's configuration and gives it an identity
// and a default branch of main, so commits work in fresh repositories.
var GitEnv = []string{
	"GIT_CONFIG_GLOBAL=/dev/null",
	"GIT_CONFIG_NOSYSTEM=1",
	"GIT_AUTHOR_NAME=Test User",
	"GIT_AUTHOR_EMAIL=test@example.com",
	"GIT_COMMITTER_NAME=Test User",
	"GIT_COMMITTER_EMAIL=test@example.com",
	"GIT_CONFIG_COUNT=2",
	"GIT_CONFIG_KEY_0=init.defaultBranch",
	"GIT_CONFIG_VALUE_0=main",
	"GIT_CONFIG_KEY_1=core.autocrlf",
	"GIT_CONFIG_VALUE_1=false",
}

// NewExecutor returns a git.Executor whose commands run with GitEnv
func NewExecutor() *git.Executor {
	return git.NewExecutor(shell.NewRunner(shell.WithEnv(GitEnv...)))
}
