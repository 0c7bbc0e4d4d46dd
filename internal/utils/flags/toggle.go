// Package flags provides helpers for binding yes/no style toggle flags to
// Cobra commands.
package flags

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/pflag"
)

const (
	toggleTrueCanonicalValue               = "true"
	toggleFalseCanonicalValue              = "false"
	toggleParseErrorTemplate               = "invalid toggle value %q"
	toggleArgumentTruePlaceholderConstant  = "<YES|no>"
	toggleArgumentFalsePlaceholderConstant = "<yes|NO>"
	toggleUsageEmptyTemplateConstant       = "`%s`"
	toggleUsageFullTemplateConstant        = "`%s` %s"
	toggleFlagTypeNameConstant             = "bool"
	longFlagPrefixConstant                 = "--"
	flagValueSeparatorConstant             = "="
	argumentTerminatorConstant             = "--"
)

var (
	trueLiteralSet = map[string]struct{}{
		toggleTrueCanonicalValue: {},
		"yes":                    {},
		"on":                     {},
		"1":                      {},
		"t":                      {},
		"y":                      {},
	}
	falseLiteralSet = map[string]struct{}{
		toggleFalseCanonicalValue: {},
		"no":                      {},
		"off":                     {},
		"0":                       {},
		"f":                       {},
		"n":                       {},
	}

	toggleFlagRegistryMutex sync.RWMutex
	toggleFlagNames         = map[string]struct{}{}
)

// AddToggleFlag registers a boolean flag that accepts yes/no style values and
// defaults to true when supplied without a value.
func AddToggleFlag(flagSet *pflag.FlagSet, target *bool, name string, defaultValue bool, usage string) {
	if flagSet == nil || len(name) == 0 {
		return
	}

	toggleValue := newToggleFlagValue(defaultValue, target)
	flagSet.Var(toggleValue, name, usage)

	flag := flagSet.Lookup(name)
	if flag == nil {
		return
	}
	flag.NoOptDefVal = toggleTrueCanonicalValue
	flag.Usage = formatToggleUsage(usage, defaultValue)

	registerToggleFlag(name)
}

// NormalizeToggleArguments rewrites "--flag value" into "--flag=value" for
// registered toggle flags so the space-separated form parses.
func NormalizeToggleArguments(arguments []string) []string {
	if len(arguments) == 0 {
		return nil
	}

	normalized := make([]string, 0, len(arguments))
	argumentIndex := 0
	for argumentIndex < len(arguments) {
		currentArgument := arguments[argumentIndex]
		if currentArgument == argumentTerminatorConstant {
			normalized = append(normalized, arguments[argumentIndex:]...)
			break
		}

		if isRegisteredToggleFlag(currentArgument) && argumentIndex+1 < len(arguments) {
			if _, recognized := parseToggleLiteral(arguments[argumentIndex+1]); recognized {
				normalized = append(normalized, currentArgument+flagValueSeparatorConstant+arguments[argumentIndex+1])
				argumentIndex += 2
				continue
			}
		}

		normalized = append(normalized, currentArgument)
		argumentIndex++
	}

	return normalized
}

type toggleFlagValue struct {
	currentValue bool
	target       *bool
}

func newToggleFlagValue(defaultValue bool, target *bool) *toggleFlagValue {
	if target != nil {
		*target = defaultValue
	}
	return &toggleFlagValue{currentValue: defaultValue, target: target}
}

// Set parses the raw value and stores the result in the bound target.
func (value *toggleFlagValue) Set(rawValue string) error {
	trimmedValue := strings.TrimSpace(rawValue)
	if len(trimmedValue) == 0 {
		trimmedValue = toggleTrueCanonicalValue
	}

	parsedValue, recognized := parseToggleLiteral(trimmedValue)
	if !recognized {
		return fmt.Errorf(toggleParseErrorTemplate, rawValue)
	}

	value.currentValue = parsedValue
	if value.target != nil {
		*value.target = parsedValue
	}
	return nil
}

func (value *toggleFlagValue) String() string {
	if value != nil && value.currentValue {
		return toggleTrueCanonicalValue
	}
	return toggleFalseCanonicalValue
}

func (value *toggleFlagValue) Type() string {
	return toggleFlagTypeNameConstant
}

func parseToggleLiteral(literal string) (bool, bool) {
	normalizedLiteral := strings.ToLower(strings.TrimSpace(literal))
	if _, isTrue := trueLiteralSet[normalizedLiteral]; isTrue {
		return true, true
	}
	if _, isFalse := falseLiteralSet[normalizedLiteral]; isFalse {
		return false, true
	}
	return false, false
}

func formatToggleUsage(description string, defaultValue bool) string {
	placeholder := toggleArgumentFalsePlaceholderConstant
	if defaultValue {
		placeholder = toggleArgumentTruePlaceholderConstant
	}
	trimmedDescription := strings.TrimSpace(description)
	if len(trimmedDescription) == 0 {
		return fmt.Sprintf(toggleUsageEmptyTemplateConstant, placeholder)
	}
	return fmt.Sprintf(toggleUsageFullTemplateConstant, placeholder, trimmedDescription)
}

func registerToggleFlag(name string) {
	toggleFlagRegistryMutex.Lock()
	defer toggleFlagRegistryMutex.Unlock()
	toggleFlagNames[name] = struct{}{}
}

func isRegisteredToggleFlag(argument string) bool {
	if !strings.HasPrefix(argument, longFlagPrefixConstant) {
		return false
	}
	flagName := strings.TrimPrefix(argument, longFlagPrefixConstant)
	if len(flagName) == 0 || strings.Contains(flagName, flagValueSeparatorConstant) {
		return false
	}

	toggleFlagRegistryMutex.RLock()
	defer toggleFlagRegistryMutex.RUnlock()
	_, registered := toggleFlagNames[flagName]
	return registered
}
