package prompt

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/consoleshell/internal/console"
	"github.com/temirov/consoleshell/internal/utils/flags"
)

const (
	askCommandUseConstant           = "ask [question]"
	askCommandShortConstant         = "Ask a question and print the accepted answer"
	askCommandLongConstant          = "ask writes the question, reads one line from standard input and prints the answer. With --valid the answer must match one of the listed answers as typed, upper-cased or lower-cased."
	mandatoryCommandUseConstant     = "ask-mandatory <question>"
	mandatoryCommandShortConstant   = "Ask until a non-empty answer is given"
	mandatoryCommandLongConstant    = "ask-mandatory repeats the question until a non-empty answer arrives and fails after five empty answers."
	validFlagNameConstant           = "valid"
	validFlagUsageConstant          = "Accepted answers (repeatable or comma separated)."
	defaultFlagNameConstant         = "default"
	defaultFlagUsageConstant        = "Answer used when the reply is empty."
	includeDefaultFlagNameConstant  = "include-default"
	includeDefaultFlagUsageConstant = "Treat the default answer as an accepted answer."
	answerAcceptedMessageConstant   = "answer accepted"
	answerRejectedMessageConstant   = "answer rejected"
	answerMissingMessageConstant    = "no answer provided"
	logFieldQuestionConstant        = "question"
	logFieldAnswerOriginConstant    = "answer_origin"
	logFieldAttemptsConstant        = "attempts"
	emptyQuestionConstant           = ""
)

// AskCommandBuilder assembles the ask command.
type AskCommandBuilder struct {
	LoggerProvider LoggerProvider
	ShellProvider  ShellProvider
}

// Build constructs the ask command.
func (builder *AskCommandBuilder) Build() (*cobra.Command, error) {
	var request console.InputRequest
	var includeDefault bool

	command := &cobra.Command{
		Use:   askCommandUseConstant,
		Short: askCommandShortConstant,
		Long:  askCommandLongConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			request.Question = emptyQuestionConstant
			if len(arguments) > 0 {
				request.Question = arguments[0]
			}
			request.ExcludeDefaultFromValidAnswers = !includeDefault
			return builder.run(command, request)
		},
	}

	command.Flags().StringSliceVar(&request.ValidAnswers, validFlagNameConstant, nil, validFlagUsageConstant)
	command.Flags().StringVar(&request.DefaultAnswer, defaultFlagNameConstant, "", defaultFlagUsageConstant)
	flags.AddToggleFlag(command.Flags(), &includeDefault, includeDefaultFlagNameConstant, "", true, includeDefaultFlagUsageConstant)

	return command, nil
}

func (builder *AskCommandBuilder) run(command *cobra.Command, request console.InputRequest) error {
	logger := resolveLogger(builder.LoggerProvider)
	shell := resolveShell(builder.ShellProvider, command.InOrStdin(), command.OutOrStdout())

	answer, askError := shell.AskInput(request)
	if askError != nil {
		if errors.Is(askError, console.ErrValidationFailure) {
			logger.Warn(answerRejectedMessageConstant, zap.String(logFieldQuestionConstant, request.Question), zap.Error(askError))
		}
		return askError
	}

	logger.Debug(answerAcceptedMessageConstant,
		zap.String(logFieldQuestionConstant, request.Question),
		zap.Stringer(logFieldAnswerOriginConstant, answer.Origin),
	)
	return shell.WriteMessage(answer.Text)
}

// MandatoryCommandBuilder assembles the ask-mandatory command.
type MandatoryCommandBuilder struct {
	LoggerProvider LoggerProvider
	ShellProvider  ShellProvider
}

// Build constructs the ask-mandatory command.
func (builder *MandatoryCommandBuilder) Build() (*cobra.Command, error) {
	var defaultAnswer string

	command := &cobra.Command{
		Use:   mandatoryCommandUseConstant,
		Short: mandatoryCommandShortConstant,
		Long:  mandatoryCommandLongConstant,
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.run(command, arguments[0], defaultAnswer)
		},
	}

	command.Flags().StringVar(&defaultAnswer, defaultFlagNameConstant, "", defaultFlagUsageConstant)
	return command, nil
}

func (builder *MandatoryCommandBuilder) run(command *cobra.Command, question string, defaultAnswer string) error {
	logger := resolveLogger(builder.LoggerProvider)
	shell := resolveShell(builder.ShellProvider, command.InOrStdin(), command.OutOrStdout())

	answer, askError := shell.AskMandatoryInput(question, defaultAnswer)
	if askError != nil {
		var retriesError *console.RetriesExhaustedError
		if errors.As(askError, &retriesError) {
			logger.Warn(answerMissingMessageConstant,
				zap.String(logFieldQuestionConstant, retriesError.Question),
				zap.Int(logFieldAttemptsConstant, retriesError.Attempts),
			)
		}
		return askError
	}

	logger.Debug(answerAcceptedMessageConstant,
		zap.String(logFieldQuestionConstant, question),
		zap.Stringer(logFieldAnswerOriginConstant, answer.Origin),
	)
	return shell.WriteMessage(answer.Text)
}
