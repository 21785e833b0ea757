package console

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

const (
	lineTerminatorPlatformStringConstant = "platform"
	lineTerminatorUnixStringConstant     = "unix"
	lineTerminatorWindowsStringConstant  = "windows"
	lineTerminatorDefaultAliasConstant   = "default"
	lineTerminatorLFAliasConstant        = "lf"
	lineTerminatorCRLFAliasConstant      = "crlf"
	unixLineEndingSequenceConstant       = "\n"
	windowsLineEndingSequenceConstant    = "\r\n"
	windowsOperatingSystemConstant       = "windows"
	unsupportedLineTerminatorTemplate    = "%w: %q"
)

// LineTerminator selects the character sequence appended after every written line.
type LineTerminator string

// Supported line terminators.
const (
	LineTerminatorPlatform LineTerminator = LineTerminator(lineTerminatorPlatformStringConstant)
	LineTerminatorUnix     LineTerminator = LineTerminator(lineTerminatorUnixStringConstant)
	LineTerminatorWindows  LineTerminator = LineTerminator(lineTerminatorWindowsStringConstant)
)

var lineTerminatorAliases = map[string]LineTerminator{
	lineTerminatorPlatformStringConstant: LineTerminatorPlatform,
	lineTerminatorDefaultAliasConstant:   LineTerminatorPlatform,
	lineTerminatorUnixStringConstant:     LineTerminatorUnix,
	lineTerminatorLFAliasConstant:        LineTerminatorUnix,
	lineTerminatorWindowsStringConstant:  LineTerminatorWindows,
	lineTerminatorCRLFAliasConstant:      LineTerminatorWindows,
}

// LineTerminatorNames lists the canonical spellings accepted by ParseLineTerminator.
func LineTerminatorNames() []string {
	return []string{
		lineTerminatorPlatformStringConstant,
		lineTerminatorUnixStringConstant,
		lineTerminatorWindowsStringConstant,
	}
}

// ParseLineTerminator resolves a configuration or flag value to a LineTerminator.
func ParseLineTerminator(rawValue string) (LineTerminator, error) {
	normalizedValue := strings.ToLower(strings.TrimSpace(rawValue))
	lineTerminator, known := lineTerminatorAliases[normalizedValue]
	if !known {
		return "", fmt.Errorf(unsupportedLineTerminatorTemplate, ErrUnsupportedLineTerminator, rawValue)
	}
	return lineTerminator, nil
}

// Sequence returns the characters written after each line. Unknown values fall back to the platform sequence.
func (lineTerminator LineTerminator) Sequence() string {
	switch lineTerminator {
	case LineTerminatorUnix:
		return unixLineEndingSequenceConstant
	case LineTerminatorWindows:
		return windowsLineEndingSequenceConstant
	default:
		return platformLineTerminatorSequence(runtime.GOOS)
	}
}

// String implements fmt.Stringer.
func (lineTerminator LineTerminator) String() string {
	return string(lineTerminator)
}

func platformLineTerminatorSequence(operatingSystem string) string {
	if operatingSystem == windowsOperatingSystemConstant {
		return windowsLineEndingSequenceConstant
	}
	return unixLineEndingSequenceConstant
}

// LineTerminatorDecodeHook converts configuration strings into LineTerminator values while decoding.
func LineTerminatorDecodeHook() mapstructure.DecodeHookFuncType {
	lineTerminatorType := reflect.TypeOf(LineTerminator(""))
	return func(sourceType reflect.Type, targetType reflect.Type, data any) (any, error) {
		if targetType != lineTerminatorType || sourceType.Kind() != reflect.String {
			return data, nil
		}
		rawValue, _ := data.(string)
		if len(strings.TrimSpace(rawValue)) == 0 {
			return LineTerminatorPlatform, nil
		}
		return ParseLineTerminator(rawValue)
	}
}
