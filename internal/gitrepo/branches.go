package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/relcut/relcut/internal/execshell"
)

const (
	branchNameRequiredMessageConstant     = "branch name must be provided"
	branchCreationFailureTemplateConstant = "failed to create branch %q: %w"
	branchCheckoutFailureTemplateConstant = "failed to checkout branch %q: %w"
	gitBranchSubcommandConstant           = "branch"
	gitCheckoutSubcommandConstant         = "checkout"
)

// ErrBranchNameRequired indicates an empty branch name was supplied.
var ErrBranchNameRequired = errors.New(branchNameRequiredMessageConstant)

// BranchManager creates and checks out branches in a repository.
type BranchManager struct {
	executor GitExecutor
}

// NewBranchManager constructs a BranchManager from the provided executor.
func NewBranchManager(executor GitExecutor) (*BranchManager, error) {
	if executor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &BranchManager{executor: executor}, nil
}

// Create creates the named branch at the current HEAD. Creation fails when a
// branch with that name already exists; git refuses the overwrite.
func (manager *BranchManager) Create(executionContext context.Context, handle RepositoryHandle, branchName string) error {
	trimmedBranchName := strings.TrimSpace(branchName)
	if len(trimmedBranchName) == 0 {
		return ErrBranchNameRequired
	}

	_, executionError := RunGit(executionContext, manager.executor, execshell.CommandDetails{
		Arguments:        []string{gitBranchSubcommandConstant, trimmedBranchName},
		WorkingDirectory: handle.Path(),
	})
	if executionError != nil {
		return fmt.Errorf(branchCreationFailureTemplateConstant, trimmedBranchName, executionError)
	}
	return nil
}

// Checkout switches the repository work tree to the named branch.
func (manager *BranchManager) Checkout(executionContext context.Context, handle RepositoryHandle, branchName string) error {
	trimmedBranchName := strings.TrimSpace(branchName)
	if len(trimmedBranchName) == 0 {
		return ErrBranchNameRequired
	}

	_, executionError := RunGit(executionContext, manager.executor, execshell.CommandDetails{
		Arguments:        []string{gitCheckoutSubcommandConstant, trimmedBranchName},
		WorkingDirectory: handle.Path(),
	})
	if executionError != nil {
		return fmt.Errorf(branchCheckoutFailureTemplateConstant, trimmedBranchName, executionError)
	}
	return nil
}
