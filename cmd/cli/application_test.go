package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/relcut/relcut/cmd/cli"
)

const (
	testConfigurationFileNameConstant  = "config.yaml"
	testUpdateCommandNameConstant      = "update"
	testMapstructureTagNameConstant    = "mapstructure"
	testEmbeddedConfigurationType      = "yaml"
	testDefaultBranchTemplateConstant  = "release/{version}"
	testDefaultCommitMessageConstant   = "Release {version}"
	testDefaultTagTemplateConstant     = "{version}"
	testDefaultRemoteNameConstant      = "origin"
	testDefaultRepositoryPathConstant  = "."
	testInvalidLogLevelConfigConstant  = "common:\n  log_level: noisy\n"
	testConsoleLogFormatConfigConstant = "common:\n  log_level: info\n  log_format: console\n"
)

func decodeEmbeddedConfiguration(t *testing.T) cli.ApplicationConfiguration {
	t.Helper()

	embeddedData := cli.EmbeddedDefaultConfiguration()
	require.NotEmpty(t, embeddedData)

	viperInstance := viper.New()
	viperInstance.SetConfigType(testEmbeddedConfigurationType)
	require.NoError(t, viperInstance.ReadConfig(bytes.NewReader(embeddedData)))

	configuration := cli.ApplicationConfiguration{}
	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: testMapstructureTagNameConstant,
		Result:  &configuration,
	})
	require.NoError(t, decoderError)
	require.NoError(t, decoder.Decode(viperInstance.AllSettings()))

	return configuration
}

func TestEmbeddedDefaultConfigurationMatchesCommandDefaults(t *testing.T) {
	configuration := decodeEmbeddedConfiguration(t)

	require.Equal(t, "info", configuration.Common.LogLevel)
	require.Equal(t, "structured", configuration.Common.LogFormat)

	updateConfiguration := configuration.Tools.Update
	require.Equal(t, testDefaultRepositoryPathConstant, updateConfiguration.Repository)
	require.True(t, updateConfiguration.EnableBranch)
	require.True(t, updateConfiguration.EnableCommit)
	require.True(t, updateConfiguration.EnableTag)
	require.True(t, updateConfiguration.EnablePush)
	require.Equal(t, testDefaultBranchTemplateConstant, updateConfiguration.BranchTemplate)
	require.Equal(t, testDefaultCommitMessageConstant, updateConfiguration.CommitMessageTemplate)
	require.Equal(t, testDefaultTagTemplateConstant, updateConfiguration.TagTemplate)
	require.Equal(t, testDefaultRemoteNameConstant, updateConfiguration.RemoteName)
}

func TestNewApplicationRegistersUpdateCommand(t *testing.T) {
	application := cli.NewApplication()

	commandNames := make([]string, 0)
	for _, registeredCommand := range application.RootCommand().Commands() {
		commandNames = append(commandNames, registeredCommand.Name())
	}

	require.Contains(t, commandNames, testUpdateCommandNameConstant)
}

func TestApplicationConfigurationInitialization(t *testing.T) {
	testCases := []struct {
		name                 string
		configurationContent string
		expectError          bool
	}{
		{name: "embedded_defaults_suffice", configurationContent: "", expectError: false},
		{name: "console_log_format_accepted", configurationContent: testConsoleLogFormatConfigConstant, expectError: false},
		{name: "invalid_log_level_rejected", configurationContent: testInvalidLogLevelConfigConstant, expectError: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			arguments := []string{}
			if len(testCase.configurationContent) > 0 {
				temporaryDirectory := t.TempDir()
				configurationPath := filepath.Join(temporaryDirectory, testConfigurationFileNameConstant)
				require.NoError(t, os.WriteFile(configurationPath, []byte(testCase.configurationContent), 0o600))
				arguments = append(arguments, "--config", configurationPath)
			}

			application := cli.NewApplication()
			outputBuffer := &bytes.Buffer{}
			application.RootCommand().SetOut(outputBuffer)
			application.RootCommand().SetErr(outputBuffer)

			executionError := application.ExecuteWithArguments(arguments)

			if testCase.expectError {
				require.Error(t, executionError)
				return
			}
			require.NoError(t, executionError)
			require.Contains(t, outputBuffer.String(), testUpdateCommandNameConstant)
		})
	}
}
