package prompt

import (
	"io"

	"go.uber.org/zap"

	"github.com/temirov/consoleshell/internal/console"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ShellProvider builds a console shell over the command streams.
type ShellProvider func(input io.Reader, output io.Writer) *console.Shell

func resolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	if logger := provider(); logger != nil {
		return logger
	}
	return zap.NewNop()
}

func resolveShell(provider ShellProvider, input io.Reader, output io.Writer) *console.Shell {
	if provider != nil {
		if shell := provider(input, output); shell != nil {
			return shell
		}
	}
	return console.NewShell(input, output, console.LineTerminatorPlatform)
}
