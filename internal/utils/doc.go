// Package utils exposes reusable helpers consumed by the CLI layer.
//
// It houses the ConfigurationLoader and LoggerFactory abstractions that
// integrate Viper, environment variables, and zap logging, plus small
// context and writer helpers shared between commands.
package utils
