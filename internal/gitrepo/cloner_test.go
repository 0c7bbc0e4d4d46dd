package gitrepo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relcut/relcut/internal/gitrepo"
)

func TestNewClonerRequiresExecutor(t *testing.T) {
	_, creationError := gitrepo.NewCloner(nil)
	require.ErrorIs(t, creationError, gitrepo.ErrGitExecutorNotConfigured)
}

func TestClonerCloneValidatesInputs(t *testing.T) {
	cloner, creationError := gitrepo.NewCloner(&stubGitExecutor{})
	require.NoError(t, creationError)

	_, cloneError := cloner.Clone(context.Background(), "", testCloneDirectoryConstant)
	require.ErrorIs(t, cloneError, gitrepo.ErrCloneURLRequired)

	_, cloneError = cloner.Clone(context.Background(), testRemoteURLConstant, "  ")
	require.ErrorIs(t, cloneError, gitrepo.ErrCloneDirectoryRequired)
}

func TestClonerCloneInvokesGitClone(t *testing.T) {
	executor := &stubGitExecutor{}
	cloner, creationError := gitrepo.NewCloner(executor)
	require.NoError(t, creationError)

	handle, cloneError := cloner.Clone(context.Background(), testRemoteURLConstant, testCloneDirectoryConstant)
	require.NoError(t, cloneError)
	require.Equal(t, testCloneDirectoryConstant, handle.Path())
	require.Len(t, executor.recordedCommands, 1)
	require.Equal(t, []string{"clone", testRemoteURLConstant, testCloneDirectoryConstant}, executor.recordedCommands[0].Arguments)
}

func TestClonerClonePropagatesFailures(t *testing.T) {
	executor := &stubGitExecutor{queuedErrors: []error{errors.New("network unreachable")}}
	cloner, creationError := gitrepo.NewCloner(executor)
	require.NoError(t, creationError)

	_, cloneError := cloner.Clone(context.Background(), testRemoteURLConstant, testCloneDirectoryConstant)
	require.ErrorContains(t, cloneError, "network unreachable")
}
