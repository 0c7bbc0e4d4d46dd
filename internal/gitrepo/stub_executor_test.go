package gitrepo_test

import (
	"context"

	"github.com/relcut/relcut/internal/execshell"
)

type stubGitExecutor struct {
	recordedCommands []execshell.CommandDetails
	queuedResults    []execshell.ExecutionResult
	queuedErrors     []error
}

func (executor *stubGitExecutor) ExecuteGit(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.recordedCommands = append(executor.recordedCommands, details)

	var executionResult execshell.ExecutionResult
	if len(executor.queuedResults) > 0 {
		executionResult = executor.queuedResults[0]
		executor.queuedResults = executor.queuedResults[1:]
	}

	var executionError error
	if len(executor.queuedErrors) > 0 {
		executionError = executor.queuedErrors[0]
		executor.queuedErrors = executor.queuedErrors[1:]
	}

	return executionResult, executionError
}
