// Package flags provides cobra and pflag helpers shared by consoleshell commands.
package flags

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/pflag"
)

const (
	toggleTrueCanonicalValue  = "true"
	toggleFalseCanonicalValue = "false"
	toggleTypeName            = "bool"
	toggleParseErrorTemplate  = "invalid toggle value %q"
	toggleTruePlaceholder     = "<YES|no>"
	toggleFalsePlaceholder    = "<yes|NO>"
	toggleUsageTemplate       = "`%s` %s"
	longFlagPrefix            = "--"
	shortFlagPrefix           = "-"
	flagValueSeparator        = "="
	argumentTerminator        = "--"
)

var (
	toggleLiterals = map[string]bool{
		"true": true, "yes": true, "on": true, "1": true, "t": true, "y": true,
		"false": false, "no": false, "off": false, "0": false, "f": false, "n": false,
	}

	toggleRegistryMutex sync.RWMutex
	toggleNames         = map[string]bool{}
	toggleShorthands    = map[string]bool{}
)

// AddToggleFlag registers a boolean flag that also accepts yes/no, on/off and similar spellings.
func AddToggleFlag(flagSet *pflag.FlagSet, target *bool, name string, shorthand string, defaultValue bool, usage string) {
	if flagSet == nil || len(name) == 0 {
		return
	}

	value := &toggleValue{target: target}
	value.assign(defaultValue)

	flag := flagSet.VarPF(value, name, shorthand, formatToggleUsage(usage, defaultValue))
	flag.NoOptDefVal = toggleTrueCanonicalValue

	toggleRegistryMutex.Lock()
	defer toggleRegistryMutex.Unlock()
	toggleNames[name] = true
	if len(shorthand) > 0 {
		toggleShorthands[shorthand] = true
	}
}

// NormalizeToggleArguments joins "--flag value" into "--flag=value" for registered toggles when value is a toggle literal.
// The result is never nil so it can be handed to cobra.Command.SetArgs directly.
func NormalizeToggleArguments(arguments []string) []string {

	toggleRegistryMutex.RLock()
	defer toggleRegistryMutex.RUnlock()

	normalized := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		current := arguments[index]
		if current == argumentTerminator {
			return append(normalized, arguments[index:]...)
		}

		if isRegisteredToggle(current) && index+1 < len(arguments) {
			if _, literal := toggleLiterals[strings.ToLower(arguments[index+1])]; literal {
				normalized = append(normalized, current+flagValueSeparator+arguments[index+1])
				index++
				continue
			}
		}

		normalized = append(normalized, current)
	}
	return normalized
}

func isRegisteredToggle(argument string) bool {
	if strings.Contains(argument, flagValueSeparator) {
		return false
	}
	if strings.HasPrefix(argument, longFlagPrefix) {
		return toggleNames[strings.TrimPrefix(argument, longFlagPrefix)]
	}
	if strings.HasPrefix(argument, shortFlagPrefix) && len(argument) == 2 {
		return toggleShorthands[strings.TrimPrefix(argument, shortFlagPrefix)]
	}
	return false
}

func formatToggleUsage(description string, defaultValue bool) string {
	placeholder := toggleFalsePlaceholder
	if defaultValue {
		placeholder = toggleTruePlaceholder
	}
	return strings.TrimSpace(fmt.Sprintf(toggleUsageTemplate, placeholder, strings.TrimSpace(description)))
}

type toggleValue struct {
	current bool
	target  *bool
}

func (value *toggleValue) assign(parsed bool) {
	value.current = parsed
	if value.target != nil {
		*value.target = parsed
	}
}

func (value *toggleValue) Set(rawValue string) error {
	normalizedValue := strings.ToLower(strings.TrimSpace(rawValue))
	if len(normalizedValue) == 0 {
		normalizedValue = toggleTrueCanonicalValue
	}

	parsed, known := toggleLiterals[normalizedValue]
	if !known {
		return fmt.Errorf(toggleParseErrorTemplate, rawValue)
	}
	value.assign(parsed)
	return nil
}

func (value *toggleValue) String() string {
	if value != nil && value.current {
		return toggleTrueCanonicalValue
	}
	return toggleFalseCanonicalValue
}

func (value *toggleValue) Type() string {
	return toggleTypeName
}
