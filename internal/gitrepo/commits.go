package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/relcut/relcut/internal/execshell"
)

const (
	commitMessageRequiredMessageConstant = "commit message must be provided"
	stagingFailureTemplateConstant       = "failed to stage paths: %w"
	commitFailureTemplateConstant        = "failed to create commit: %w"
	gitAddSubcommandConstant             = "add"
	gitCommitSubcommandConstant          = "commit"
	gitCommitMessageFlagNameConstant     = "-m"
)

// ErrCommitMessageRequired indicates an empty commit message was supplied.
var ErrCommitMessageRequired = errors.New(commitMessageRequiredMessageConstant)

// CommitManager records commits in a repository.
type CommitManager struct {
	executor GitExecutor
}

// NewCommitManager constructs a CommitManager from the provided executor.
func NewCommitManager(executor GitExecutor) (*CommitManager, error) {
	if executor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &CommitManager{executor: executor}, nil
}

// Commit stages the provided paths, when any, and records a commit with the
// given message. An empty path list stages nothing and commits whatever is
// already staged; git reports a failure when there is nothing to commit.
func (manager *CommitManager) Commit(executionContext context.Context, handle RepositoryHandle, paths []string, message string) error {
	trimmedMessage := strings.TrimSpace(message)
	if len(trimmedMessage) == 0 {
		return ErrCommitMessageRequired
	}

	if len(paths) > 0 {
		addArguments := append([]string{gitAddSubcommandConstant}, paths...)
		_, stagingError := RunGit(executionContext, manager.executor, execshell.CommandDetails{
			Arguments:        addArguments,
			WorkingDirectory: handle.Path(),
		})
		if stagingError != nil {
			return fmt.Errorf(stagingFailureTemplateConstant, stagingError)
		}
	}

	_, commitError := RunGit(executionContext, manager.executor, execshell.CommandDetails{
		Arguments:        []string{gitCommitSubcommandConstant, gitCommitMessageFlagNameConstant, trimmedMessage},
		WorkingDirectory: handle.Path(),
	})
	if commitError != nil {
		return fmt.Errorf(commitFailureTemplateConstant, commitError)
	}
	return nil
}
