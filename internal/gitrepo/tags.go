package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/relcut/relcut/internal/execshell"
)

const (
	tagNameRequiredMessageConstant     = "tag name must be provided"
	tagCreationFailureTemplateConstant = "failed to create tag %q: %w"
	gitTagSubcommandConstant           = "tag"
)

// ErrTagNameRequired indicates an empty tag name was supplied.
var ErrTagNameRequired = errors.New(tagNameRequiredMessageConstant)

// TagManager creates lightweight tags in a repository.
type TagManager struct {
	executor GitExecutor
}

// NewTagManager constructs a TagManager from the provided executor.
func NewTagManager(executor GitExecutor) (*TagManager, error) {
	if executor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &TagManager{executor: executor}, nil
}

// Create creates an unannotated tag with the given name. An empty target tags
// the current HEAD; creation fails when a tag with that name already exists.
func (manager *TagManager) Create(executionContext context.Context, handle RepositoryHandle, tagName string, target string) error {
	trimmedTagName := strings.TrimSpace(tagName)
	if len(trimmedTagName) == 0 {
		return ErrTagNameRequired
	}

	tagArguments := []string{gitTagSubcommandConstant, trimmedTagName}
	trimmedTarget := strings.TrimSpace(target)
	if len(trimmedTarget) > 0 {
		tagArguments = append(tagArguments, trimmedTarget)
	}

	_, executionError := RunGit(executionContext, manager.executor, execshell.CommandDetails{
		Arguments:        tagArguments,
		WorkingDirectory: handle.Path(),
	})
	if executionError != nil {
		return fmt.Errorf(tagCreationFailureTemplateConstant, trimmedTagName, executionError)
	}
	return nil
}
