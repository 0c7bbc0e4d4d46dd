package flags_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/relcut/relcut/internal/utils/flags"
)

const toggleFlagNameConstant = "push"

func TestAddToggleFlagParsesLiterals(t *testing.T) {
	testCases := []struct {
		name          string
		arguments     []string
		defaultValue  bool
		expectedValue bool
		expectError   bool
	}{
		{name: "default_preserved", arguments: nil, defaultValue: true, expectedValue: true},
		{name: "bare_flag_enables", arguments: []string{"--push"}, defaultValue: false, expectedValue: true},
		{name: "no_literal_disables", arguments: []string{"--push=no"}, defaultValue: true, expectedValue: false},
		{name: "off_literal_disables", arguments: []string{"--push=off"}, defaultValue: true, expectedValue: false},
		{name: "yes_literal_enables", arguments: []string{"--push=YES"}, defaultValue: false, expectedValue: true},
		{name: "numeric_literal_enables", arguments: []string{"--push=1"}, defaultValue: false, expectedValue: true},
		{name: "unknown_literal_rejected", arguments: []string{"--push=sometimes"}, defaultValue: true, expectError: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			flagSet := pflag.NewFlagSet(testCase.name, pflag.ContinueOnError)
			var targetValue bool
			flags.AddToggleFlag(flagSet, &targetValue, toggleFlagNameConstant, testCase.defaultValue, "Push created references")

			parseError := flagSet.Parse(testCase.arguments)
			if testCase.expectError {
				require.Error(t, parseError)
				return
			}
			require.NoError(t, parseError)
			require.Equal(t, testCase.expectedValue, targetValue)
		})
	}
}

func TestNormalizeToggleArguments(t *testing.T) {
	flagSet := pflag.NewFlagSet("normalize", pflag.ContinueOnError)
	var targetValue bool
	flags.AddToggleFlag(flagSet, &targetValue, toggleFlagNameConstant, true, "Push created references")

	testCases := []struct {
		name              string
		arguments         []string
		expectedArguments []string
	}{
		{
			name:              "space_separated_literal_joined",
			arguments:         []string{"update", "--push", "no", "patch"},
			expectedArguments: []string{"update", "--push=no", "patch"},
		},
		{
			name:              "non_literal_left_alone",
			arguments:         []string{"update", "--push", "patch"},
			expectedArguments: []string{"update", "--push", "patch"},
		},
		{
			name:              "terminator_stops_rewriting",
			arguments:         []string{"update", "--", "--push", "no"},
			expectedArguments: []string{"update", "--", "--push", "no"},
		},
		{
			name:              "unregistered_flag_untouched",
			arguments:         []string{"update", "--remote", "origin"},
			expectedArguments: []string{"update", "--remote", "origin"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expectedArguments, flags.NormalizeToggleArguments(testCase.arguments))
		})
	}
}
