package pathutils_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/relcut/relcut/internal/utils/path"
)

const testHomeDirectoryConstant = "/home/tester"

func TestRepositoryPathSanitizerSanitize(t *testing.T) {
	homeExpander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return testHomeDirectoryConstant, nil
	})
	sanitizer := pathutils.NewRepositoryPathSanitizerWithExpander(homeExpander)

	testCases := []struct {
		name          string
		candidatePath string
		expectedPath  string
	}{
		{name: "blank_path", candidatePath: "   ", expectedPath: ""},
		{name: "plain_path", candidatePath: "/tmp/source-repo", expectedPath: "/tmp/source-repo"},
		{name: "surrounding_whitespace", candidatePath: "  /tmp/source-repo  ", expectedPath: "/tmp/source-repo"},
		{name: "tilde_expansion", candidatePath: "~/projects/repo", expectedPath: filepath.Join(testHomeDirectoryConstant, "projects", "repo")},
		{name: "bare_tilde", candidatePath: "~", expectedPath: testHomeDirectoryConstant},
		{name: "redundant_segments_cleaned", candidatePath: "/tmp//source-repo/.", expectedPath: "/tmp/source-repo"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expectedPath, sanitizer.Sanitize(testCase.candidatePath))
		})
	}
}

func TestHomeExpanderLeavesUnresolvablePathsAlone(t *testing.T) {
	failingExpander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return "", filepath.ErrBadPattern
	})
	sanitizer := pathutils.NewRepositoryPathSanitizerWithExpander(failingExpander)

	require.Equal(t, "~/projects/repo", sanitizer.Sanitize("~/projects/repo"))
}
