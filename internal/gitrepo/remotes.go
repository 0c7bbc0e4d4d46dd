package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/relcut/relcut/internal/execshell"
)

const (
	remoteNameRequiredMessageConstant    = "remote name must be provided"
	referenceNameRequiredMessageConstant = "reference name must be provided"
	remoteNotConfiguredTemplateConstant  = "remote %q is not configured: %w"
	remoteURLEmptyTemplateConstant       = "remote %q has no url"
	pushFailureTemplateConstant          = "failed to push %q to %q: %w"
	gitRemoteSubcommandConstant          = "remote"
	gitRemoteGetURLSubcommandConstant    = "get-url"
	gitPushSubcommandConstant            = "push"
)

// ErrRemoteNameRequired indicates an empty remote name was supplied.
var ErrRemoteNameRequired = errors.New(remoteNameRequiredMessageConstant)

// ErrReferenceNameRequired indicates an empty branch or tag name was supplied for a push.
var ErrReferenceNameRequired = errors.New(referenceNameRequiredMessageConstant)

// RemoteManager inspects remotes and pushes references to them.
type RemoteManager struct {
	executor GitExecutor
}

// NewRemoteManager constructs a RemoteManager from the provided executor.
func NewRemoteManager(executor GitExecutor) (*RemoteManager, error) {
	if executor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &RemoteManager{executor: executor}, nil
}

// RemoteURL resolves the fetch URL configured for the named remote.
func (manager *RemoteManager) RemoteURL(executionContext context.Context, handle RepositoryHandle, remoteName string) (string, error) {
	trimmedRemoteName := strings.TrimSpace(remoteName)
	if len(trimmedRemoteName) == 0 {
		return "", ErrRemoteNameRequired
	}

	executionResult, executionError := RunGit(executionContext, manager.executor, execshell.CommandDetails{
		Arguments:        []string{gitRemoteSubcommandConstant, gitRemoteGetURLSubcommandConstant, trimmedRemoteName},
		WorkingDirectory: handle.Path(),
	})
	if executionError != nil {
		return "", fmt.Errorf(remoteNotConfiguredTemplateConstant, trimmedRemoteName, executionError)
	}

	remoteURL := strings.TrimSpace(executionResult.StandardOutput)
	if len(remoteURL) == 0 {
		return "", fmt.Errorf(remoteURLEmptyTemplateConstant, trimmedRemoteName)
	}
	return remoteURL, nil
}

// PushBranch pushes the named branch to the named remote.
func (manager *RemoteManager) PushBranch(executionContext context.Context, handle RepositoryHandle, branchName string, remoteName string) error {
	return manager.push(executionContext, handle, branchName, remoteName)
}

// PushTag pushes the named tag to the named remote.
func (manager *RemoteManager) PushTag(executionContext context.Context, handle RepositoryHandle, tagName string, remoteName string) error {
	return manager.push(executionContext, handle, tagName, remoteName)
}

func (manager *RemoteManager) push(executionContext context.Context, handle RepositoryHandle, referenceName string, remoteName string) error {
	trimmedReferenceName := strings.TrimSpace(referenceName)
	if len(trimmedReferenceName) == 0 {
		return ErrReferenceNameRequired
	}

	trimmedRemoteName := strings.TrimSpace(remoteName)
	if len(trimmedRemoteName) == 0 {
		return ErrRemoteNameRequired
	}

	_, executionError := RunGit(executionContext, manager.executor, execshell.CommandDetails{
		Arguments:        []string{gitPushSubcommandConstant, trimmedRemoteName, trimmedReferenceName},
		WorkingDirectory: handle.Path(),
	})
	if executionError != nil {
		return fmt.Errorf(pushFailureTemplateConstant, trimmedReferenceName, trimmedRemoteName, executionError)
	}
	return nil
}
