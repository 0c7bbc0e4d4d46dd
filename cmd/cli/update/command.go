// Package update assembles the Cobra command that applies a release update
// to a repository: version resolution, branch, commit, tag, and push.
package update

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/relcut/relcut/internal/execshell"
	"github.com/relcut/relcut/internal/gitrepo"
	"github.com/relcut/relcut/internal/release/project"
	"github.com/relcut/relcut/internal/release/version"
	"github.com/relcut/relcut/internal/ui"
	"github.com/relcut/relcut/internal/utils"
	"github.com/relcut/relcut/internal/utils/flags"
	pathutils "github.com/relcut/relcut/internal/utils/path"
)

const (
	commandUseConstant                    = "update <major|minor|patch>"
	commandShortDescriptionConstant       = "Apply a release update to a repository"
	commandLongDescriptionConstant        = "update resolves the next semantic version from the latest tag and applies the enabled release steps: branch, commit, tag, and push."
	commandExecutionErrorTemplateConstant = "release update failed: %w"
	flagRepositoryNameConstant            = "repository"
	flagRepositoryDescriptionConstant     = "Path to the local repository to update"
	flagRemoteURLNameConstant             = "remote-url"
	flagRemoteURLDescriptionConstant      = "Remote repository URL to clone and update instead of a local path"
	flagDirectoryNameConstant             = "directory"
	flagDirectoryDescriptionConstant      = "Destination directory for the remote repository clone"
	flagDryRunNameConstant                = "dry-run"
	flagDryRunDescriptionConstant         = "Apply the update to a disposable clone of the origin remote"
	flagRemoteNameConstant                = "remote"
	flagRemoteDescriptionConstant         = "Remote name receiving pushed references"
	flagMessageNameConstant               = "message"
	flagMessageDescriptionConstant        = "Commit message template ({version} and {previous_version} expand)"
	flagBranchNameConstant                = "branch"
	flagBranchDescriptionConstant         = "Create and check out a release branch"
	flagCommitNameConstant                = "commit"
	flagCommitDescriptionConstant         = "Record a release commit"
	flagTagNameConstant                   = "tag"
	flagTagDescriptionConstant            = "Create a release tag"
	flagPushNameConstant                  = "push"
	flagPushDescriptionConstant           = "Push created references to the remote"
	updateCompletedTemplateConstant       = "RELEASED %s -> %s in %s\n"
	dryRunCompletedTemplateConstant       = "DRY-RUN RELEASED %s -> %s in %s\n"
	configurationFileMessageConstant      = "configuration file applied"
	configurationFileFieldConstant        = "configuration_file"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// HumanReadableLoggingProvider reports whether console-formatted command feedback is enabled.
type HumanReadableLoggingProvider func() bool

// ConfigurationProvider supplies the update command configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the Cobra command for release updates.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	HumanReadableLoggingProvider HumanReadableLoggingProvider
	ConfigurationProvider        ConfigurationProvider
	Dependencies                 *project.Dependencies

	repositoryFlagValue string
	remoteURLFlagValue  string
	directoryFlagValue  string
	remoteFlagValue     string
	messageFlagValue    string
	dryRunFlagValue     bool
	branchFlagValue     bool
	commitFlagValue     bool
	tagFlagValue        bool
	pushFlagValue       bool
}

// Build constructs the update command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}

	flagSet := command.Flags()
	flagSet.StringVar(&builder.repositoryFlagValue, flagRepositoryNameConstant, "", flagRepositoryDescriptionConstant)
	flagSet.StringVar(&builder.remoteURLFlagValue, flagRemoteURLNameConstant, "", flagRemoteURLDescriptionConstant)
	flagSet.StringVar(&builder.directoryFlagValue, flagDirectoryNameConstant, "", flagDirectoryDescriptionConstant)
	flagSet.StringVar(&builder.remoteFlagValue, flagRemoteNameConstant, "", flagRemoteDescriptionConstant)
	flagSet.StringVar(&builder.messageFlagValue, flagMessageNameConstant, "", flagMessageDescriptionConstant)
	flagSet.BoolVar(&builder.dryRunFlagValue, flagDryRunNameConstant, false, flagDryRunDescriptionConstant)
	flags.AddToggleFlag(flagSet, &builder.branchFlagValue, flagBranchNameConstant, true, flagBranchDescriptionConstant)
	flags.AddToggleFlag(flagSet, &builder.commitFlagValue, flagCommitNameConstant, true, flagCommitDescriptionConstant)
	flags.AddToggleFlag(flagSet, &builder.tagFlagValue, flagTagNameConstant, true, flagTagDescriptionConstant)
	flags.AddToggleFlag(flagSet, &builder.pushFlagValue, flagPushNameConstant, true, flagPushDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	operation, operationError := version.ParseOperation(arguments[0])
	if operationError != nil {
		return operationError
	}

	configuration := builder.resolveConfiguration(command)
	logger := builder.resolveLogger()

	contextAccessor := utils.NewCommandContextAccessor()
	if configurationFilePath, configurationFilePathAvailable := contextAccessor.ConfigurationFilePath(command.Context()); configurationFilePathAvailable && len(configurationFilePath) > 0 {
		logger.Debug(configurationFileMessageConstant, zap.String(configurationFileFieldConstant, configurationFilePath))
	}

	dependencies, dependenciesError := builder.resolveDependencies(logger)
	if dependenciesError != nil {
		return dependenciesError
	}

	releaseProject, projectError := builder.buildProject(command.Context(), configuration, dependencies)
	if projectError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, projectError)
	}

	updateInfo, updateError := releaseProject.Update(command.Context(), operation)
	if updateError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, updateError)
	}

	outputTemplate := updateCompletedTemplateConstant
	if updateInfo.DryRun {
		outputTemplate = dryRunCompletedTemplateConstant
	}
	fmt.Fprintf(command.OutOrStdout(), outputTemplate, updateInfo.PreviousVersion, updateInfo.NewVersion, updateInfo.RepositoryPath)

	return nil
}

func (builder *CommandBuilder) buildProject(executionContext context.Context, configuration CommandConfiguration, dependencies project.Dependencies) (*project.Project, error) {
	trimmedRemoteURL := strings.TrimSpace(builder.remoteURLFlagValue)
	if len(trimmedRemoteURL) > 0 {
		cloneDirectory := strings.TrimSpace(builder.directoryFlagValue)
		if len(cloneDirectory) == 0 {
			provisionedDirectory, provisionError := dependencies.TempDirProvisioner.Provision()
			if provisionError != nil {
				return nil, provisionError
			}
			cloneDirectory = provisionedDirectory
		}
		return project.NewRemoteProject(executionContext, trimmedRemoteURL, cloneDirectory, configuration.Configuration, dependencies)
	}

	repositoryPath := pathutils.NewRepositoryPathSanitizer().Sanitize(configuration.Repository)
	if builder.dryRunFlagValue {
		return project.NewDryRunProject(executionContext, repositoryPath, configuration.Configuration, dependencies)
	}
	return project.NewLocalProject(executionContext, repositoryPath, configuration.Configuration, dependencies)
}

func (builder *CommandBuilder) resolveConfiguration(command *cobra.Command) CommandConfiguration {
	configuration := DefaultCommandConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}
	configuration = configuration.Sanitize()

	flagSet := command.Flags()
	if flagSet.Changed(flagRepositoryNameConstant) {
		configuration.Repository = builder.repositoryFlagValue
	}
	if flagSet.Changed(flagRemoteNameConstant) {
		configuration.RemoteName = builder.remoteFlagValue
	}
	if flagSet.Changed(flagMessageNameConstant) {
		configuration.CommitMessageTemplate = builder.messageFlagValue
	}
	if flagSet.Changed(flagBranchNameConstant) {
		configuration.EnableBranch = builder.branchFlagValue
	}
	if flagSet.Changed(flagCommitNameConstant) {
		configuration.EnableCommit = builder.commitFlagValue
	}
	if flagSet.Changed(flagTagNameConstant) {
		configuration.EnableTag = builder.tagFlagValue
	}
	if flagSet.Changed(flagPushNameConstant) {
		configuration.EnablePush = builder.pushFlagValue
	}

	return configuration.Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveDependencies(logger *zap.Logger) (project.Dependencies, error) {
	if builder.Dependencies != nil {
		return *builder.Dependencies, nil
	}

	executor, executorError := builder.buildShellExecutor(logger)
	if executorError != nil {
		return project.Dependencies{}, executorError
	}

	return project.NewDependencies(executor)
}

func (builder *CommandBuilder) buildShellExecutor(logger *zap.Logger) (gitrepo.GitExecutor, error) {
	shellExecutor, creationError := execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner())
	if creationError != nil {
		return nil, creationError
	}

	if builder.HumanReadableLoggingProvider != nil && builder.HumanReadableLoggingProvider() {
		shellExecutor.SetCommandEventObserver(ui.NewConsoleCommandEventLogger(logger))
	}

	return shellExecutor, nil
}
