package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/relcut/relcut/internal/execshell"
)

const (
	openerPathRequiredMessageConstant      = "repository path must be provided"
	notARepositoryMessageConstant          = "path is not a git repository"
	repositoryVerificationTemplateConstant = "failed to verify repository at %s: %w"
	gitRevParseSubcommandConstant          = "rev-parse"
	gitInsideWorkTreeFlagConstant          = "--is-inside-work-tree"
	insideWorkTreeOutputConstant           = "true"
)

// ErrRepositoryPathRequired indicates an empty repository path was supplied.
var ErrRepositoryPathRequired = errors.New(openerPathRequiredMessageConstant)

// ErrNotARepository indicates the supplied path does not contain a git repository.
var ErrNotARepository = errors.New(notARepositoryMessageConstant)

// Opener validates local repositories and produces handles for them.
type Opener struct {
	executor GitExecutor
}

// NewOpener constructs an Opener from the provided executor.
func NewOpener(executor GitExecutor) (*Opener, error) {
	if executor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &Opener{executor: executor}, nil
}

// Open verifies the path hosts a git work tree and returns its handle.
func (opener *Opener) Open(executionContext context.Context, repositoryPath string) (RepositoryHandle, error) {
	trimmedRepositoryPath := strings.TrimSpace(repositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return RepositoryHandle{}, ErrRepositoryPathRequired
	}

	executionResult, executionError := RunGit(executionContext, opener.executor, execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitInsideWorkTreeFlagConstant},
		WorkingDirectory: trimmedRepositoryPath,
	})
	if executionError != nil {
		return RepositoryHandle{}, fmt.Errorf(repositoryVerificationTemplateConstant, trimmedRepositoryPath, executionError)
	}

	if strings.TrimSpace(executionResult.StandardOutput) != insideWorkTreeOutputConstant {
		return RepositoryHandle{}, ErrNotARepository
	}

	return NewRepositoryHandle(trimmedRepositoryPath), nil
}
