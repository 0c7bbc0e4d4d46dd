package update

import (
	"strings"

	"github.com/relcut/relcut/internal/release/project"
)

const (
	repositoryConfigurationKeySuffixConstant = ".repository"
	defaultRepositoryPathConstant            = "."
)

// CommandConfiguration captures the persisted settings for the update command.
type CommandConfiguration struct {
	Repository            string `mapstructure:"repository"`
	project.Configuration `mapstructure:",squash"`
}

// DefaultCommandConfiguration returns the baseline update command settings.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Repository:    defaultRepositoryPathConstant,
		Configuration: project.DefaultConfiguration(),
	}
}

// DefaultConfigurationValues exposes configuration defaults keyed beneath the provided root key.
func DefaultConfigurationValues(rootConfigurationKey string) map[string]any {
	defaultValues := project.DefaultConfigurationValues(rootConfigurationKey)
	defaultValues[rootConfigurationKey+repositoryConfigurationKeySuffixConstant] = DefaultCommandConfiguration().Repository
	return defaultValues
}

// Sanitize normalizes blank settings back to their defaults.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	if len(strings.TrimSpace(sanitized.Repository)) == 0 {
		sanitized.Repository = defaultRepositoryPathConstant
	}
	sanitized.Configuration = sanitized.Configuration.Sanitize()
	return sanitized
}
