package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	defaultWorkingDirectoryLabelConstant    = "current directory"
	fallbackUnknownValueLabelConstant       = "unknown"
)

const (
	gitCloneSubcommandNameConstant    = "clone"
	gitRevParseSubcommandNameConstant = "rev-parse"
	gitRemoteSubcommandNameConstant   = "remote"
	gitDescribeSubcommandNameConstant = "describe"
	gitBranchSubcommandNameConstant   = "branch"
	gitCheckoutSubcommandNameConstant = "checkout"
	gitAddSubcommandNameConstant      = "add"
	gitCommitSubcommandNameConstant   = "commit"
	gitTagSubcommandNameConstant      = "tag"
	gitPushSubcommandNameConstant     = "push"
	gitCommitMessageFlagConstant      = "-m"
)

const (
	gitCloneStartTemplateConstant                   = "Cloning %s into %s"
	gitCloneSuccessTemplateConstant                 = "Cloned %s into %s"
	gitCloneFailureTemplateConstant                 = "Failed to clone %s into %s (exit code %d%s)"
	gitCloneExecutionFailureTemplateConstant        = "Unable to clone %s into %s: %s"
	gitWorkTreeStartTemplateConstant                = "Analyzing repository at %s"
	gitWorkTreeSuccessTemplateConstant              = "%s is a Git repository"
	gitWorkTreeFailureTemplateConstant              = "Could not confirm %s is a Git repository (exit code %d%s)"
	gitWorkTreeExecutionFailureTemplateConstant     = "Could not analyze %s: %s"
	gitRemoteLookupStartTemplateConstant            = "Checking %s remote in %s"
	gitRemoteLookupSuccessTemplateConstant          = "Resolved %s remote in %s"
	gitRemoteLookupFailureTemplateConstant          = "Failed to read %s remote in %s (exit code %d%s)"
	gitRemoteLookupExecutionFailureTemplateConstant = "Unable to read %s remote in %s: %s"
	gitDescribeStartTemplateConstant                = "Resolving latest tag in %s"
	gitDescribeSuccessTemplateConstant              = "Resolved latest tag in %s"
	gitDescribeFailureTemplateConstant              = "Failed to resolve latest tag in %s (exit code %d%s)"
	gitDescribeExecutionFailureTemplateConstant     = "Unable to resolve latest tag in %s: %s"
	gitBranchCreationStartTemplateConstant          = "Creating branch %s in %s"
	gitBranchCreationSuccessTemplateConstant        = "Created branch %s in %s"
	gitBranchCreationFailureTemplateConstant        = "Failed to create branch %s in %s (exit code %d%s)"
	gitBranchCreationExecutionFailureTemplate       = "Unable to create branch %s in %s: %s"
	gitCheckoutStartTemplateConstant                = "Switching %s to branch %s"
	gitCheckoutSuccessTemplateConstant              = "%s now on branch %s"
	gitCheckoutFailureTemplateConstant              = "Failed to switch %s to branch %s (exit code %d%s)"
	gitCheckoutExecutionFailureTemplateConstant     = "Unable to switch %s to branch %s: %s"
	gitAddStartTemplateConstant                     = "Staging %s in %s"
	gitAddSuccessTemplateConstant                   = "Staged %s in %s"
	gitAddFailureTemplateConstant                   = "Failed to stage %s in %s (exit code %d%s)"
	gitAddExecutionFailureTemplateConstant          = "Unable to stage %s in %s: %s"
	gitCommitStartTemplateConstant                  = "Creating commit in %s with message %q"
	gitCommitSuccessTemplateConstant                = "Created commit in %s with message %q"
	gitCommitFailureTemplateConstant                = "Failed to create commit in %s with message %q (exit code %d%s)"
	gitCommitExecutionFailureTemplateConstant       = "Unable to create commit in %s with message %q: %s"
	gitTagCreationStartTemplateConstant             = "Creating tag %s in %s"
	gitTagCreationSuccessTemplateConstant           = "Created tag %s in %s"
	gitTagCreationFailureTemplateConstant           = "Failed to create tag %s in %s (exit code %d%s)"
	gitTagCreationExecutionFailureTemplateConstant  = "Unable to create tag %s in %s: %s"
	gitPushStartTemplateConstant                    = "Pushing %s to %s from %s"
	gitPushSuccessTemplateConstant                  = "Pushed %s to %s from %s"
	gitPushFailureTemplateConstant                  = "Failed to push %s to %s from %s (exit code %d%s)"
	gitPushExecutionFailureTemplateConstant         = "Unable to push %s to %s from %s: %s"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if command.Name == CommandGit {
		return formatter.describeGitMessage(command, result, failure, stage)
	}
	return formatter.buildGenericMessage(command, result, failure, stage)
}

func (formatter CommandMessageFormatter) describeGitMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	if len(arguments) == 0 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	workingDirectory := formatter.workingDirectoryLabel(command)

	switch arguments[0] {
	case gitCloneSubcommandNameConstant:
		cloneURL := formatter.argumentAt(arguments, len(arguments)-2)
		cloneDestination := formatter.argumentAt(arguments, len(arguments)-1)
		return formatter.renderStage(stage, result, failure,
			fmt.Sprintf(gitCloneStartTemplateConstant, cloneURL, cloneDestination),
			fmt.Sprintf(gitCloneSuccessTemplateConstant, cloneURL, cloneDestination),
			gitCloneFailureTemplateConstant, []any{cloneURL, cloneDestination},
			gitCloneExecutionFailureTemplateConstant, []any{cloneURL, cloneDestination})
	case gitRevParseSubcommandNameConstant:
		return formatter.renderStage(stage, result, failure,
			fmt.Sprintf(gitWorkTreeStartTemplateConstant, workingDirectory),
			fmt.Sprintf(gitWorkTreeSuccessTemplateConstant, workingDirectory),
			gitWorkTreeFailureTemplateConstant, []any{workingDirectory},
			gitWorkTreeExecutionFailureTemplateConstant, []any{workingDirectory})
	case gitRemoteSubcommandNameConstant:
		remoteName := formatter.argumentAt(arguments, len(arguments)-1)
		return formatter.renderStage(stage, result, failure,
			fmt.Sprintf(gitRemoteLookupStartTemplateConstant, remoteName, workingDirectory),
			fmt.Sprintf(gitRemoteLookupSuccessTemplateConstant, remoteName, workingDirectory),
			gitRemoteLookupFailureTemplateConstant, []any{remoteName, workingDirectory},
			gitRemoteLookupExecutionFailureTemplateConstant, []any{remoteName, workingDirectory})
	case gitDescribeSubcommandNameConstant:
		return formatter.renderStage(stage, result, failure,
			fmt.Sprintf(gitDescribeStartTemplateConstant, workingDirectory),
			fmt.Sprintf(gitDescribeSuccessTemplateConstant, workingDirectory),
			gitDescribeFailureTemplateConstant, []any{workingDirectory},
			gitDescribeExecutionFailureTemplateConstant, []any{workingDirectory})
	case gitBranchSubcommandNameConstant:
		branchName := formatter.argumentAt(arguments, 1)
		return formatter.renderStage(stage, result, failure,
			fmt.Sprintf(gitBranchCreationStartTemplateConstant, branchName, workingDirectory),
			fmt.Sprintf(gitBranchCreationSuccessTemplateConstant, branchName, workingDirectory),
			gitBranchCreationFailureTemplateConstant, []any{branchName, workingDirectory},
			gitBranchCreationExecutionFailureTemplate, []any{branchName, workingDirectory})
	case gitCheckoutSubcommandNameConstant:
		branchName := formatter.argumentAt(arguments, 1)
		return formatter.renderStage(stage, result, failure,
			fmt.Sprintf(gitCheckoutStartTemplateConstant, workingDirectory, branchName),
			fmt.Sprintf(gitCheckoutSuccessTemplateConstant, workingDirectory, branchName),
			gitCheckoutFailureTemplateConstant, []any{workingDirectory, branchName},
			gitCheckoutExecutionFailureTemplateConstant, []any{workingDirectory, branchName})
	case gitAddSubcommandNameConstant:
		stagedPaths := strings.Join(arguments[1:], commandArgumentsJoinSeparatorConstant)
		return formatter.renderStage(stage, result, failure,
			fmt.Sprintf(gitAddStartTemplateConstant, stagedPaths, workingDirectory),
			fmt.Sprintf(gitAddSuccessTemplateConstant, stagedPaths, workingDirectory),
			gitAddFailureTemplateConstant, []any{stagedPaths, workingDirectory},
			gitAddExecutionFailureTemplateConstant, []any{stagedPaths, workingDirectory})
	case gitCommitSubcommandNameConstant:
		commitMessage := formatter.commitMessageArgument(arguments)
		return formatter.renderStage(stage, result, failure,
			fmt.Sprintf(gitCommitStartTemplateConstant, workingDirectory, commitMessage),
			fmt.Sprintf(gitCommitSuccessTemplateConstant, workingDirectory, commitMessage),
			gitCommitFailureTemplateConstant, []any{workingDirectory, commitMessage},
			gitCommitExecutionFailureTemplateConstant, []any{workingDirectory, commitMessage})
	case gitTagSubcommandNameConstant:
		tagName := formatter.argumentAt(arguments, 1)
		return formatter.renderStage(stage, result, failure,
			fmt.Sprintf(gitTagCreationStartTemplateConstant, tagName, workingDirectory),
			fmt.Sprintf(gitTagCreationSuccessTemplateConstant, tagName, workingDirectory),
			gitTagCreationFailureTemplateConstant, []any{tagName, workingDirectory},
			gitTagCreationExecutionFailureTemplateConstant, []any{tagName, workingDirectory})
	case gitPushSubcommandNameConstant:
		remoteName := formatter.argumentAt(arguments, 1)
		referenceName := formatter.argumentAt(arguments, 2)
		return formatter.renderStage(stage, result, failure,
			fmt.Sprintf(gitPushStartTemplateConstant, referenceName, remoteName, workingDirectory),
			fmt.Sprintf(gitPushSuccessTemplateConstant, referenceName, remoteName, workingDirectory),
			gitPushFailureTemplateConstant, []any{referenceName, remoteName, workingDirectory},
			gitPushExecutionFailureTemplateConstant, []any{referenceName, remoteName, workingDirectory})
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) renderStage(
	stage messageStage,
	result ExecutionResult,
	failure error,
	startMessage string,
	successMessage string,
	failureTemplate string,
	failureArguments []any,
	executionFailureTemplate string,
	executionFailureArguments []any,
) string {
	switch stage {
	case messageStageStart:
		return startMessage
	case messageStageSuccess:
		return successMessage
	case messageStageFailure:
		failureArguments = append(failureArguments, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		return fmt.Sprintf(failureTemplate, failureArguments...)
	default:
		executionFailureArguments = append(executionFailureArguments, formatter.failureText(failure))
		return fmt.Sprintf(executionFailureTemplate, executionFailureArguments...)
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.failureText(failure))
	}
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	joinedArguments := strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant)
	commandText := strings.TrimSpace(string(command.Name) + commandArgumentsJoinSeparatorConstant + joinedArguments)

	workingDirectorySuffix := emptyStringConstant
	if len(command.Details.WorkingDirectory) > 0 {
		workingDirectorySuffix = fmt.Sprintf(workingDirectorySuffixTemplateConstant, command.Details.WorkingDirectory)
	}

	return fmt.Sprintf(commandLabelTemplateConstant, commandText, workingDirectorySuffix)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) failureText(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) workingDirectoryLabel(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return defaultWorkingDirectoryLabelConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) argumentAt(arguments []string, index int) string {
	if index < 0 || index >= len(arguments) {
		return fallbackUnknownValueLabelConstant
	}
	return arguments[index]
}

func (formatter CommandMessageFormatter) commitMessageArgument(arguments []string) string {
	for argumentIndex, argumentValue := range arguments {
		if argumentValue == gitCommitMessageFlagConstant && argumentIndex+1 < len(arguments) {
			return arguments[argumentIndex+1]
		}
	}
	return fallbackUnknownValueLabelConstant
}
