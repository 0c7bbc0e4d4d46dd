package project

import (
	"strings"

	"github.com/relcut/relcut/internal/release/identifiers"
)

const (
	defaultBranchTemplateConstant        = "release/{version}"
	defaultCommitMessageTemplateConstant = "Release {version}"
	defaultTagTemplateConstant           = "{version}"
	defaultRemoteNameConstant            = "origin"

	configurationEnableBranchKeyConstant   = "enable_branch"
	configurationEnableCommitKeyConstant   = "enable_commit"
	configurationEnableTagKeyConstant      = "enable_tag"
	configurationEnablePushKeyConstant     = "enable_push"
	configurationBranchTemplateKeyConstant = "branch_template"
	configurationCommitMessageKeyConstant  = "commit_message_template"
	configurationTagTemplateKeyConstant    = "tag_template"
	configurationRemoteNameKeyConstant     = "remote_name"
	configurationKeySeparatorConstant      = "."
)

// Configuration selects which mutations an update applies and the templates
// release identifiers are rendered from. It is read-only for the lifetime of
// the project that carries it.
type Configuration struct {
	EnableBranch          bool   `mapstructure:"enable_branch"`
	EnableCommit          bool   `mapstructure:"enable_commit"`
	EnableTag             bool   `mapstructure:"enable_tag"`
	EnablePush            bool   `mapstructure:"enable_push"`
	BranchTemplate        string `mapstructure:"branch_template"`
	CommitMessageTemplate string `mapstructure:"commit_message_template"`
	TagTemplate           string `mapstructure:"tag_template"`
	RemoteName            string `mapstructure:"remote_name"`
}

// DefaultConfiguration returns the baseline release configuration.
func DefaultConfiguration() Configuration {
	return Configuration{
		EnableBranch:          true,
		EnableCommit:          true,
		EnableTag:             true,
		EnablePush:            true,
		BranchTemplate:        defaultBranchTemplateConstant,
		CommitMessageTemplate: defaultCommitMessageTemplateConstant,
		TagTemplate:           defaultTagTemplateConstant,
		RemoteName:            defaultRemoteNameConstant,
	}
}

// DefaultConfigurationValues produces Viper defaults for the release tool.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		rootKey + configurationKeySeparatorConstant + configurationEnableBranchKeyConstant:   defaults.EnableBranch,
		rootKey + configurationKeySeparatorConstant + configurationEnableCommitKeyConstant:   defaults.EnableCommit,
		rootKey + configurationKeySeparatorConstant + configurationEnableTagKeyConstant:      defaults.EnableTag,
		rootKey + configurationKeySeparatorConstant + configurationEnablePushKeyConstant:     defaults.EnablePush,
		rootKey + configurationKeySeparatorConstant + configurationBranchTemplateKeyConstant: defaults.BranchTemplate,
		rootKey + configurationKeySeparatorConstant + configurationCommitMessageKeyConstant:  defaults.CommitMessageTemplate,
		rootKey + configurationKeySeparatorConstant + configurationTagTemplateKeyConstant:    defaults.TagTemplate,
		rootKey + configurationKeySeparatorConstant + configurationRemoteNameKeyConstant:     defaults.RemoteName,
	}
}

// Sanitize normalizes template values, substituting defaults for blanks.
func (configuration Configuration) Sanitize() Configuration {
	sanitized := configuration
	sanitized.BranchTemplate = defaultWhenBlank(configuration.BranchTemplate, defaultBranchTemplateConstant)
	sanitized.CommitMessageTemplate = defaultWhenBlank(configuration.CommitMessageTemplate, defaultCommitMessageTemplateConstant)
	sanitized.TagTemplate = defaultWhenBlank(configuration.TagTemplate, defaultTagTemplateConstant)
	sanitized.RemoteName = defaultWhenBlank(configuration.RemoteName, defaultRemoteNameConstant)
	return sanitized
}

// Templates exposes the identifier templates carried by the configuration.
func (configuration Configuration) Templates() identifiers.Templates {
	return identifiers.Templates{
		BranchTemplate:        configuration.BranchTemplate,
		CommitMessageTemplate: configuration.CommitMessageTemplate,
		TagTemplate:           configuration.TagTemplate,
		RemoteName:            configuration.RemoteName,
	}
}

func defaultWhenBlank(value string, defaultValue string) string {
	trimmedValue := strings.TrimSpace(value)
	if len(trimmedValue) == 0 {
		return defaultValue
	}
	return trimmedValue
}
