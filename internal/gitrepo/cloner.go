package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/relcut/relcut/internal/execshell"
)

const (
	cloneURLRequiredMessageConstant       = "clone url must be provided"
	cloneDirectoryRequiredMessageConstant = "clone directory must be provided"
	cloneFailureTemplateConstant          = "failed to clone %s: %w"
	gitCloneSubcommandConstant            = "clone"
)

// ErrCloneURLRequired indicates an empty clone URL was supplied.
var ErrCloneURLRequired = errors.New(cloneURLRequiredMessageConstant)

// ErrCloneDirectoryRequired indicates an empty clone destination was supplied.
var ErrCloneDirectoryRequired = errors.New(cloneDirectoryRequiredMessageConstant)

// Cloner produces fresh local clones of remote repositories.
type Cloner struct {
	executor GitExecutor
}

// NewCloner constructs a Cloner from the provided executor.
func NewCloner(executor GitExecutor) (*Cloner, error) {
	if executor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &Cloner{executor: executor}, nil
}

// Clone clones the remote URL into the destination directory and returns its handle.
func (cloner *Cloner) Clone(executionContext context.Context, remoteURL string, destinationDirectory string) (RepositoryHandle, error) {
	trimmedRemoteURL := strings.TrimSpace(remoteURL)
	if len(trimmedRemoteURL) == 0 {
		return RepositoryHandle{}, ErrCloneURLRequired
	}

	trimmedDestination := strings.TrimSpace(destinationDirectory)
	if len(trimmedDestination) == 0 {
		return RepositoryHandle{}, ErrCloneDirectoryRequired
	}

	_, executionError := RunGit(executionContext, cloner.executor, execshell.CommandDetails{
		Arguments: []string{gitCloneSubcommandConstant, trimmedRemoteURL, trimmedDestination},
	})
	if executionError != nil {
		return RepositoryHandle{}, fmt.Errorf(cloneFailureTemplateConstant, trimmedRemoteURL, executionError)
	}

	return NewRepositoryHandle(trimmedDestination), nil
}
