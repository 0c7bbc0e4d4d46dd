package project

import (
	"context"
	"errors"

	"github.com/relcut/relcut/internal/gitrepo"
	"github.com/relcut/relcut/internal/release/identifiers"
	"github.com/relcut/relcut/internal/release/version"
	"github.com/relcut/relcut/internal/tempdir"
)

const (
	openerMissingMessageConstant             = "repository opener not configured"
	clonerMissingMessageConstant             = "repository cloner not configured"
	versionResolverMissingMessageConstant    = "version resolver not configured"
	identifierRendererMissingMessageConstant = "identifier renderer not configured"
	branchWriterMissingMessageConstant       = "branch writer not configured"
	commitWriterMissingMessageConstant       = "commit writer not configured"
	tagWriterMissingMessageConstant          = "tag writer not configured"
	remoteGatewayMissingMessageConstant      = "remote gateway not configured"
	tempDirProvisionerMissingMessageConstant = "temporary directory provisioner not configured"
	originRemoteNameConstant                 = "origin"
)

// Validation errors reported when project dependencies are missing.
var (
	ErrOpenerNotConfigured             = errors.New(openerMissingMessageConstant)
	ErrClonerNotConfigured             = errors.New(clonerMissingMessageConstant)
	ErrVersionResolverNotConfigured    = errors.New(versionResolverMissingMessageConstant)
	ErrIdentifierRendererNotConfigured = errors.New(identifierRendererMissingMessageConstant)
	ErrBranchWriterNotConfigured       = errors.New(branchWriterMissingMessageConstant)
	ErrCommitWriterNotConfigured       = errors.New(commitWriterMissingMessageConstant)
	ErrTagWriterNotConfigured          = errors.New(tagWriterMissingMessageConstant)
	ErrRemoteGatewayNotConfigured      = errors.New(remoteGatewayMissingMessageConstant)
	ErrTempDirProvisionerNotConfigured = errors.New(tempDirProvisionerMissingMessageConstant)
)

// RepositoryOpener validates a local repository and produces its handle.
type RepositoryOpener interface {
	Open(executionContext context.Context, repositoryPath string) (gitrepo.RepositoryHandle, error)
}

// RepositoryCloner clones a remote repository into a destination directory.
type RepositoryCloner interface {
	Clone(executionContext context.Context, remoteURL string, destinationDirectory string) (gitrepo.RepositoryHandle, error)
}

// VersionResolver computes the version transition an operation applies.
type VersionResolver interface {
	Resolve(executionContext context.Context, handle gitrepo.RepositoryHandle, operation version.Operation) (version.VersionUpdate, error)
}

// IdentifierRenderer renders release identifiers from templates and a version transition.
type IdentifierRenderer interface {
	Render(templates identifiers.Templates, versionUpdate version.VersionUpdate) identifiers.ReleaseIdentifiers
}

// BranchWriter creates and checks out branches.
type BranchWriter interface {
	Create(executionContext context.Context, handle gitrepo.RepositoryHandle, branchName string) error
	Checkout(executionContext context.Context, handle gitrepo.RepositoryHandle, branchName string) error
}

// CommitWriter records commits.
type CommitWriter interface {
	Commit(executionContext context.Context, handle gitrepo.RepositoryHandle, paths []string, message string) error
}

// TagWriter creates tags.
type TagWriter interface {
	Create(executionContext context.Context, handle gitrepo.RepositoryHandle, tagName string, target string) error
}

// RemoteGateway resolves remote URLs and pushes references.
type RemoteGateway interface {
	RemoteURL(executionContext context.Context, handle gitrepo.RepositoryHandle, remoteName string) (string, error)
	PushBranch(executionContext context.Context, handle gitrepo.RepositoryHandle, branchName string, remoteName string) error
	PushTag(executionContext context.Context, handle gitrepo.RepositoryHandle, tagName string, remoteName string) error
}

// Dependencies enumerates the collaborators a project requires.
type Dependencies struct {
	Opener             RepositoryOpener
	Cloner             RepositoryCloner
	VersionResolver    VersionResolver
	IdentifierRenderer IdentifierRenderer
	Branches           BranchWriter
	Commits            CommitWriter
	Tags               TagWriter
	Remotes            RemoteGateway
	TempDirProvisioner tempdir.Provisioner
}

// NewDependencies assembles the default git-backed collaborators around an executor.
func NewDependencies(executor gitrepo.GitExecutor) (Dependencies, error) {
	opener, openerError := gitrepo.NewOpener(executor)
	if openerError != nil {
		return Dependencies{}, openerError
	}
	cloner, clonerError := gitrepo.NewCloner(executor)
	if clonerError != nil {
		return Dependencies{}, clonerError
	}
	versionResolver, resolverError := version.NewResolver(executor)
	if resolverError != nil {
		return Dependencies{}, resolverError
	}
	branchManager, branchError := gitrepo.NewBranchManager(executor)
	if branchError != nil {
		return Dependencies{}, branchError
	}
	commitManager, commitError := gitrepo.NewCommitManager(executor)
	if commitError != nil {
		return Dependencies{}, commitError
	}
	tagManager, tagError := gitrepo.NewTagManager(executor)
	if tagError != nil {
		return Dependencies{}, tagError
	}
	remoteManager, remoteError := gitrepo.NewRemoteManager(executor)
	if remoteError != nil {
		return Dependencies{}, remoteError
	}

	return Dependencies{
		Opener:             opener,
		Cloner:             cloner,
		VersionResolver:    versionResolver,
		IdentifierRenderer: identifiers.NewBuilder(),
		Branches:           branchManager,
		Commits:            commitManager,
		Tags:               tagManager,
		Remotes:            remoteManager,
		TempDirProvisioner: tempdir.NewOSProvisioner(),
	}, nil
}

func (dependencies Dependencies) validate() error {
	if dependencies.Opener == nil {
		return ErrOpenerNotConfigured
	}
	if dependencies.Cloner == nil {
		return ErrClonerNotConfigured
	}
	if dependencies.VersionResolver == nil {
		return ErrVersionResolverNotConfigured
	}
	if dependencies.IdentifierRenderer == nil {
		return ErrIdentifierRendererNotConfigured
	}
	if dependencies.Branches == nil {
		return ErrBranchWriterNotConfigured
	}
	if dependencies.Commits == nil {
		return ErrCommitWriterNotConfigured
	}
	if dependencies.Tags == nil {
		return ErrTagWriterNotConfigured
	}
	if dependencies.Remotes == nil {
		return ErrRemoteGatewayNotConfigured
	}
	if dependencies.TempDirProvisioner == nil {
		return ErrTempDirProvisionerNotConfigured
	}
	return nil
}

// Project owns a repository handle and applies release updates to it.
// A handle is never shared between two projects, and two Update calls
// against the same project must not run concurrently.
type Project struct {
	configuration Configuration
	dependencies  Dependencies
	repository    gitrepo.RepositoryHandle
	isDryRun      bool
}

// ProjectUpdateInfo reports the outcome of a successful update.
type ProjectUpdateInfo struct {
	RepositoryPath  string
	PreviousVersion string
	NewVersion      string
	TagName         string
	DryRun          bool
}

// NewLocalProject opens the repository at the path as a release project.
func NewLocalProject(executionContext context.Context, repositoryPath string, configuration Configuration, dependencies Dependencies) (*Project, error) {
	if validationError := dependencies.validate(); validationError != nil {
		return nil, validationError
	}

	handle, openError := dependencies.Opener.Open(executionContext, repositoryPath)
	if openError != nil {
		return nil, openError
	}

	return &Project{
		configuration: configuration.Sanitize(),
		dependencies:  dependencies,
		repository:    handle,
	}, nil
}

// NewRemoteProject clones the remote URL into the directory and wraps the
// clone as a release project.
func NewRemoteProject(executionContext context.Context, remoteURL string, destinationDirectory string, configuration Configuration, dependencies Dependencies) (*Project, error) {
	if validationError := dependencies.validate(); validationError != nil {
		return nil, validationError
	}

	handle, cloneError := dependencies.Cloner.Clone(executionContext, remoteURL, destinationDirectory)
	if cloneError != nil {
		return nil, cloneError
	}

	return &Project{
		configuration: configuration.Sanitize(),
		dependencies:  dependencies,
		repository:    handle,
	}, nil
}

// NewDryRunProject builds a project whose mutations land on a disposable
// clone of the origin remote of the repository at the path. The returned
// project behaves identically to a real one; only its handle and the
// dry-run marker differ.
func NewDryRunProject(executionContext context.Context, repositoryPath string, configuration Configuration, dependencies Dependencies) (*Project, error) {
	localProject, localError := NewLocalProject(executionContext, repositoryPath, configuration, dependencies)
	if localError != nil {
		return nil, localError
	}

	remoteURL, remoteError := dependencies.Remotes.RemoteURL(executionContext, localProject.repository, originRemoteNameConstant)
	if remoteError != nil {
		return nil, remoteError
	}

	temporaryDirectory, provisionError := dependencies.TempDirProvisioner.Provision()
	if provisionError != nil {
		return nil, provisionError
	}

	remoteProject, cloneError := NewRemoteProject(executionContext, remoteURL, temporaryDirectory, configuration, dependencies)
	if cloneError != nil {
		return nil, cloneError
	}

	return &Project{
		configuration: localProject.configuration,
		dependencies:  dependencies,
		repository:    remoteProject.repository,
		isDryRun:      true,
	}, nil
}

// IsDryRun reports whether updates land on a disposable clone.
func (project *Project) IsDryRun() bool {
	return project.isDryRun
}

// RepositoryPath returns the filesystem location of the owned repository.
func (project *Project) RepositoryPath() string {
	return project.repository.Path()
}

// Update resolves the version transition for the operation, renders release
// identifiers, and applies the enabled mutations in the fixed order branch,
// commit, tag, push. The first failing step aborts the sequence; effects of
// earlier steps are left in place for manual inspection.
func (project *Project) Update(executionContext context.Context, operation version.Operation) (ProjectUpdateInfo, error) {
	versionUpdate, resolveError := project.dependencies.VersionResolver.Resolve(executionContext, project.repository, operation)
	if resolveError != nil {
		return ProjectUpdateInfo{}, resolveError
	}

	renderedIdentifiers := project.dependencies.IdentifierRenderer.Render(project.configuration.Templates(), versionUpdate)

	if mutationError := project.applyMutations(executionContext, renderedIdentifiers); mutationError != nil {
		return ProjectUpdateInfo{}, mutationError
	}

	return ProjectUpdateInfo{
		RepositoryPath:  project.repository.Path(),
		PreviousVersion: versionUpdate.Previous.String(),
		NewVersion:      versionUpdate.Next.String(),
		TagName:         renderedIdentifiers.TagName,
		DryRun:          project.isDryRun,
	}, nil
}

func (project *Project) applyMutations(executionContext context.Context, renderedIdentifiers identifiers.ReleaseIdentifiers) error {
	configuration := project.configuration

	if configuration.EnableBranch {
		if createError := project.dependencies.Branches.Create(executionContext, project.repository, renderedIdentifiers.BranchName); createError != nil {
			return createError
		}
		if checkoutError := project.dependencies.Branches.Checkout(executionContext, project.repository, renderedIdentifiers.BranchName); checkoutError != nil {
			return checkoutError
		}
	}

	if configuration.EnableCommit {
		// The orchestrator stages no paths itself; the commit captures
		// whatever the caller staged beforehand.
		if commitError := project.dependencies.Commits.Commit(executionContext, project.repository, nil, renderedIdentifiers.CommitMessage); commitError != nil {
			return commitError
		}
	}

	if configuration.EnableTag {
		if tagError := project.dependencies.Tags.Create(executionContext, project.repository, renderedIdentifiers.TagName, ""); tagError != nil {
			return tagError
		}
	}

	if configuration.EnablePush {
		// A push only covers references this invocation created; a disabled
		// branch or tag step never results in a stale ref being pushed.
		if configuration.EnableBranch {
			if pushError := project.dependencies.Remotes.PushBranch(executionContext, project.repository, renderedIdentifiers.BranchName, renderedIdentifiers.RemoteName); pushError != nil {
				return pushError
			}
		}
		if configuration.EnableTag {
			if pushError := project.dependencies.Remotes.PushTag(executionContext, project.repository, renderedIdentifiers.TagName, renderedIdentifiers.RemoteName); pushError != nil {
				return pushError
			}
		}
	}

	return nil
}
