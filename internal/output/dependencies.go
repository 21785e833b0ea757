package output

import (
	"io"

	"go.uber.org/zap"

	"github.com/temirov/consoleshell/internal/console"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ShellProvider builds a console shell over the command streams.
type ShellProvider func(input io.Reader, output io.Writer) *console.Shell

// Dependencies groups the collaborators shared by the output command builders.
type Dependencies struct {
	LoggerProvider LoggerProvider
	ShellProvider  ShellProvider
}

func (dependencies Dependencies) resolveLogger() *zap.Logger {
	if dependencies.LoggerProvider == nil {
		return zap.NewNop()
	}
	if logger := dependencies.LoggerProvider(); logger != nil {
		return logger
	}
	return zap.NewNop()
}

func (dependencies Dependencies) resolveShell(input io.Reader, output io.Writer) *console.Shell {
	if dependencies.ShellProvider != nil {
		if shell := dependencies.ShellProvider(input, output); shell != nil {
			return shell
		}
	}
	return console.NewShell(input, output, console.LineTerminatorPlatform)
}
