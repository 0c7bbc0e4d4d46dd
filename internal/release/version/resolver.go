package version

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blang/semver/v4"

	"github.com/relcut/relcut/internal/execshell"
	"github.com/relcut/relcut/internal/gitrepo"
)

const (
	gitDescribeSubcommandConstant        = "describe"
	gitDescribeTagsFlagConstant          = "--tags"
	gitDescribeAbbrevFlagConstant        = "--abbrev=0"
	latestTagLookupFailureTemplate       = "failed to resolve latest tag: %w"
	tagParseFailureTemplateConstant      = "failed to parse tag %q as a semantic version: %w"
	versionIncrementFailureTemplate      = "failed to increment version %s: %w"
	unsupportedOperationTemplateConstant = "unsupported operation %q"
)

// VersionUpdate captures a resolved old-version to new-version transition.
type VersionUpdate struct {
	Previous semver.Version
	Next     semver.Version
}

// Resolver computes version transitions from repository tag state.
type Resolver struct {
	executor gitrepo.GitExecutor
}

// NewResolver constructs a Resolver from the provided executor.
func NewResolver(executor gitrepo.GitExecutor) (*Resolver, error) {
	if executor == nil {
		return nil, gitrepo.ErrGitExecutorNotConfigured
	}
	return &Resolver{executor: executor}, nil
}

// Resolve determines the version transition the operation applies to the
// repository. Repositories without any reachable tag start from 0.0.0.
func (resolver *Resolver) Resolve(executionContext context.Context, handle gitrepo.RepositoryHandle, operation Operation) (VersionUpdate, error) {
	currentVersion, lookupError := resolver.currentVersion(executionContext, handle)
	if lookupError != nil {
		return VersionUpdate{}, lookupError
	}

	// A cut release is always a final version: pre-release and build
	// identifiers on the latest tag never carry into the next version.
	nextVersion := currentVersion
	nextVersion.Pre = nil
	nextVersion.Build = nil

	var incrementError error
	switch operation {
	case OperationMajor:
		incrementError = nextVersion.IncrementMajor()
	case OperationMinor:
		incrementError = nextVersion.IncrementMinor()
	case OperationPatch:
		incrementError = nextVersion.IncrementPatch()
	default:
		return VersionUpdate{}, fmt.Errorf(unsupportedOperationTemplateConstant, operation)
	}
	if incrementError != nil {
		return VersionUpdate{}, fmt.Errorf(versionIncrementFailureTemplate, currentVersion, incrementError)
	}

	return VersionUpdate{Previous: currentVersion, Next: nextVersion}, nil
}

func (resolver *Resolver) currentVersion(executionContext context.Context, handle gitrepo.RepositoryHandle) (semver.Version, error) {
	executionResult, executionError := gitrepo.RunGit(executionContext, resolver.executor, execshell.CommandDetails{
		Arguments:        []string{gitDescribeSubcommandConstant, gitDescribeTagsFlagConstant, gitDescribeAbbrevFlagConstant},
		WorkingDirectory: handle.Path(),
	})
	if executionError != nil {
		// git describe exits non-zero when the repository has no tags yet;
		// releases then start from 0.0.0.
		commandFailure := execshell.CommandFailedError{}
		if errors.As(executionError, &commandFailure) {
			return semver.Version{}, nil
		}
		return semver.Version{}, fmt.Errorf(latestTagLookupFailureTemplate, executionError)
	}

	latestTag := strings.TrimSpace(executionResult.StandardOutput)
	if len(latestTag) == 0 {
		return semver.Version{}, nil
	}

	parsedVersion, parseError := semver.ParseTolerant(latestTag)
	if parseError != nil {
		return semver.Version{}, fmt.Errorf(tagParseFailureTemplateConstant, latestTag, parseError)
	}
	return parsedVersion, nil
}
