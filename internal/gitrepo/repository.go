package gitrepo

import (
	"context"
	"errors"

	"github.com/relcut/relcut/internal/execshell"
)

const (
	gitExecutorMissingMessageConstant           = "git executor not configured"
	gitTerminalPromptEnvironmentNameConstant    = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptEnvironmentDisableConstant = "0"
)

// ErrGitExecutorNotConfigured indicates a git-backed component was constructed without an executor.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// GitExecutor exposes the subset of shell execution used by repository components.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RepositoryHandle references a working git repository on local storage.
//
// A handle is produced by Opener or Cloner and owned by exactly one project
// for its lifetime; callers must not share a handle between two orchestrators.
type RepositoryHandle struct {
	path string
}

// NewRepositoryHandle wraps the provided filesystem path in a handle.
func NewRepositoryHandle(repositoryPath string) RepositoryHandle {
	return RepositoryHandle{path: repositoryPath}
}

// Path returns the filesystem location of the repository working copy.
func (handle RepositoryHandle) Path() string {
	return handle.path
}

// RunGit runs git through the executor with terminal prompts disabled so
// credential prompts never block an unattended release. Every git invocation
// in the codebase goes through this wrapper.
func RunGit(executionContext context.Context, executor GitExecutor, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	if details.EnvironmentVariables == nil {
		details.EnvironmentVariables = map[string]string{}
	}
	details.EnvironmentVariables[gitTerminalPromptEnvironmentNameConstant] = gitTerminalPromptEnvironmentDisableConstant
	return executor.ExecuteGit(executionContext, details)
}
