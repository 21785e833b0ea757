package output

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/consoleshell/internal/utils/flags"
)

const (
	messageCommandUseConstant        = "message [text...]"
	messageCommandShortConstant      = "Write each argument on its own line"
	messageCommandLongConstant       = "message writes every argument followed by the configured line terminator. Without arguments it writes an empty line."
	blockCommandUseConstant          = "block <text>"
	blockCommandShortConstant        = "Write text inside a +---+ box"
	blockCommandLongConstant         = "block writes a blank line, a bordered box holding the text and another blank line."
	errorCommandUseConstant          = "error <message>"
	errorCommandShortConstant        = "Write an ERROR block with an optional SOLUTION block"
	errorCommandLongConstant         = "error writes an ERROR block followed by the message and, when --solution is set, a SOLUTION block followed by the solution."
	linesCommandUseConstant          = "lines [line...]"
	linesCommandShortConstant        = "Write several lines, boxed by default"
	linesCommandLongConstant         = "lines pads every line to the widest one and boxes them. Disable the box with --border no."
	solutionFlagNameConstant         = "solution"
	solutionFlagUsageConstant        = "Solution text written under a SOLUTION block."
	borderFlagNameConstant           = "border"
	borderFlagUsageConstant          = "Draw a box around the lines."
	outputWrittenMessageConstant     = "console output written"
	logFieldCommandNameConstant      = "command_name"
	logFieldLineCountConstant        = "line_count"
	logFieldBorderConstant           = "border"
	logFieldSolutionProvidedConstant = "solution_provided"
	emptyMessageConstant             = ""
)

// MessageCommandBuilder assembles the message command.
type MessageCommandBuilder struct {
	Dependencies
}

// Build constructs the message command.
func (builder *MessageCommandBuilder) Build() (*cobra.Command, error) {
	return &cobra.Command{
		Use:   messageCommandUseConstant,
		Short: messageCommandShortConstant,
		Long:  messageCommandLongConstant,
		RunE: func(command *cobra.Command, arguments []string) error {
			shell := builder.resolveShell(command.InOrStdin(), command.OutOrStdout())
			messages := arguments
			if len(messages) == 0 {
				messages = []string{emptyMessageConstant}
			}
			for _, message := range messages {
				if writeError := shell.WriteMessage(message); writeError != nil {
					return writeError
				}
			}
			builder.resolveLogger().Debug(outputWrittenMessageConstant,
				zap.String(logFieldCommandNameConstant, command.Name()),
				zap.Int(logFieldLineCountConstant, len(messages)),
			)
			return nil
		},
	}, nil
}

// BlockCommandBuilder assembles the block command.
type BlockCommandBuilder struct {
	Dependencies
}

// Build constructs the block command.
func (builder *BlockCommandBuilder) Build() (*cobra.Command, error) {
	return &cobra.Command{
		Use:   blockCommandUseConstant,
		Short: blockCommandShortConstant,
		Long:  blockCommandLongConstant,
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			shell := builder.resolveShell(command.InOrStdin(), command.OutOrStdout())
			if writeError := shell.WriteBlock(arguments[0]); writeError != nil {
				return writeError
			}
			builder.resolveLogger().Debug(outputWrittenMessageConstant, zap.String(logFieldCommandNameConstant, command.Name()))
			return nil
		},
	}, nil
}

// ErrorCommandBuilder assembles the error command.
type ErrorCommandBuilder struct {
	Dependencies
}

// Build constructs the error command.
func (builder *ErrorCommandBuilder) Build() (*cobra.Command, error) {
	var solution string

	command := &cobra.Command{
		Use:   errorCommandUseConstant,
		Short: errorCommandShortConstant,
		Long:  errorCommandLongConstant,
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			shell := builder.resolveShell(command.InOrStdin(), command.OutOrStdout())
			if writeError := shell.WriteErrorMessage(arguments[0], solution); writeError != nil {
				return writeError
			}
			builder.resolveLogger().Debug(outputWrittenMessageConstant,
				zap.String(logFieldCommandNameConstant, command.Name()),
				zap.Bool(logFieldSolutionProvidedConstant, len(solution) > 0),
			)
			return nil
		},
	}

	command.Flags().StringVar(&solution, solutionFlagNameConstant, "", solutionFlagUsageConstant)
	return command, nil
}

// LinesCommandBuilder assembles the lines command.
type LinesCommandBuilder struct {
	Dependencies
}

// Build constructs the lines command.
func (builder *LinesCommandBuilder) Build() (*cobra.Command, error) {
	var border bool

	command := &cobra.Command{
		Use:   linesCommandUseConstant,
		Short: linesCommandShortConstant,
		Long:  linesCommandLongConstant,
		RunE: func(command *cobra.Command, arguments []string) error {
			shell := builder.resolveShell(command.InOrStdin(), command.OutOrStdout())
			if writeError := shell.WriteMultilineMessage(arguments, border); writeError != nil {
				return writeError
			}
			builder.resolveLogger().Debug(outputWrittenMessageConstant,
				zap.String(logFieldCommandNameConstant, command.Name()),
				zap.Int(logFieldLineCountConstant, len(arguments)),
				zap.Bool(logFieldBorderConstant, border),
			)
			return nil
		},
	}

	flags.AddToggleFlag(command.Flags(), &border, borderFlagNameConstant, "", true, borderFlagUsageConstant)
	return command, nil
}
