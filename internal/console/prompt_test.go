package console_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/temirov/consoleshell/internal/console"
)

func TestShellAskInput(testInstance *testing.T) {
	testCases := []struct {
		name            string
		input           string
		request         console.InputRequest
		expectedAnswer  console.Answer
		expectedOutput  string
		expectedFailure error
	}{
		{
			name:           "default_substituted_and_accepted",
			input:          "\n",
			request:        console.InputRequest{Question: "Continue?", ValidAnswers: []string{"y", "n"}, DefaultAnswer: "y"},
			expectedAnswer: console.Answer{Text: "y", Origin: console.AnswerOriginDefault},
			expectedOutput: "Continue? [y]\n",
		},
		{
			name:           "lower_case_matches_upper_case_valid_answer",
			input:          "a\n",
			request:        console.InputRequest{Question: "Pick", ValidAnswers: []string{"A", "B"}},
			expectedAnswer: console.Answer{Text: "a", Origin: console.AnswerOriginTyped},
			expectedOutput: "Pick\n",
		},
		{
			name:           "upper_case_matches_lower_case_valid_answer",
			input:          "YES\n",
			request:        console.InputRequest{Question: "Proceed", ValidAnswers: []string{"yes", "no"}},
			expectedAnswer: console.Answer{Text: "YES", Origin: console.AnswerOriginTyped},
			expectedOutput: "Proceed\n",
		},
		{
			name:            "unknown_answer_rejected",
			input:           "c\n",
			request:         console.InputRequest{Question: "Pick", ValidAnswers: []string{"A", "B"}},
			expectedOutput:  "Pick\n",
			expectedFailure: console.ErrValidationFailure,
		},
		{
			name:           "any_answer_accepted_without_valid_answers",
			input:          "  free text  \n",
			request:        console.InputRequest{Question: "Describe"},
			expectedAnswer: console.Answer{Text: "free text", Origin: console.AnswerOriginTyped},
			expectedOutput: "Describe\n",
		},
		{
			name:           "empty_answer_accepted_without_valid_answers",
			input:          "\n",
			request:        console.InputRequest{Question: "Anything?"},
			expectedAnswer: console.Answer{Text: "", Origin: console.AnswerOriginEmpty},
			expectedOutput: "Anything?\n",
		},
		{
			name:           "empty_question_not_written",
			input:          "value\n",
			request:        console.InputRequest{},
			expectedAnswer: console.Answer{Text: "value", Origin: console.AnswerOriginTyped},
			expectedOutput: "",
		},
		{
			name:            "default_only_becomes_sole_valid_answer",
			input:           "other\n",
			request:         console.InputRequest{Question: "Name", DefaultAnswer: "bob"},
			expectedOutput:  "Name [bob]\n",
			expectedFailure: console.ErrValidationFailure,
		},
		{
			name:           "excluded_default_leaves_answers_unrestricted",
			input:          "other\n",
			request:        console.InputRequest{Question: "Name", DefaultAnswer: "bob", ExcludeDefaultFromValidAnswers: true},
			expectedAnswer: console.Answer{Text: "other", Origin: console.AnswerOriginTyped},
			expectedOutput: "Name [bob]\n",
		},
		{
			name:            "empty_line_without_default_rejected_by_valid_answers",
			input:           "\n",
			request:         console.InputRequest{Question: "Pick", ValidAnswers: []string{"A"}},
			expectedOutput:  "Pick\n",
			expectedFailure: console.ErrValidationFailure,
		},
		{
			name:           "end_of_input_treated_as_empty_line",
			input:          "",
			request:        console.InputRequest{Question: "Continue?", ValidAnswers: []string{"y", "n"}, DefaultAnswer: "n"},
			expectedAnswer: console.Answer{Text: "n", Origin: console.AnswerOriginDefault},
			expectedOutput: "Continue? [n]\n",
		},
		{
			name:           "windows_line_ending_stripped",
			input:          "b\r\n",
			request:        console.InputRequest{ValidAnswers: []string{"a", "b"}},
			expectedAnswer: console.Answer{Text: "b", Origin: console.AnswerOriginTyped},
			expectedOutput: "",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			shell, outputBuffer := newTestShell(testCase.input)

			answer, askError := shell.AskInput(testCase.request)
			require.Equal(testInstance, testCase.expectedOutput, outputBuffer.String())

			if testCase.expectedFailure != nil {
				require.ErrorIs(testInstance, askError, testCase.expectedFailure)
				require.Equal(testInstance, console.Answer{}, answer)
				return
			}

			require.NoError(testInstance, askError)
			require.Equal(testInstance, testCase.expectedAnswer, answer)
		})
	}
}

func TestShellAskInputValidationErrorDetails(testInstance *testing.T) {
	shell, _ := newTestShell("c\n")
	validAnswers := []string{"A", "B"}

	_, askError := shell.AskInput(console.InputRequest{ValidAnswers: validAnswers, DefaultAnswer: "A"})

	var validationError *console.ValidationError
	require.True(testInstance, errors.As(askError, &validationError))
	require.Equal(testInstance, "c", validationError.Answer)
	require.Equal(testInstance, []string{"A", "B"}, validationError.ValidAnswers)
}

func TestShellAskInputDoesNotMutateValidAnswers(testInstance *testing.T) {
	shell, _ := newTestShell("\n")
	validAnswers := make([]string, 2, 4)
	copy(validAnswers, []string{"y", "n"})

	answer, askError := shell.AskInput(console.InputRequest{ValidAnswers: validAnswers, DefaultAnswer: "maybe"})
	require.NoError(testInstance, askError)
	require.Equal(testInstance, "maybe", answer.Text)
	require.Equal(testInstance, []string{"y", "n"}, validAnswers)
	require.Equal(testInstance, "", validAnswers[:3][2])
}

func TestShellAskInputReadsSequentialLines(testInstance *testing.T) {
	shell, _ := newTestShell("first\nsecond\n")

	firstAnswer, firstError := shell.AskInput(console.InputRequest{})
	require.NoError(testInstance, firstError)
	secondAnswer, secondError := shell.AskInput(console.InputRequest{})
	require.NoError(testInstance, secondError)

	require.Equal(testInstance, "first", firstAnswer.Text)
	require.Equal(testInstance, "second", secondAnswer.Text)
}

func TestShellAskInputReportsReadFailure(testInstance *testing.T) {
	readFailure := errors.New("terminal detached")
	shell := console.NewShell(iotest.ErrReader(readFailure), nil, console.LineTerminatorUnix)

	_, askError := shell.AskInput(console.InputRequest{Question: "Name"})
	require.ErrorIs(testInstance, askError, readFailure)
	require.NotErrorIs(testInstance, askError, console.ErrValidationFailure)
}

func TestShellAskMandatoryInput(testInstance *testing.T) {
	testCases := []struct {
		name              string
		input             string
		question          string
		defaultAnswer     string
		expectedAnswer    console.Answer
		expectedQuestions int
		expectedFailure   error
	}{
		{
			name:              "answer_after_empty_lines",
			input:             "\n\nBob\n",
			question:          "Name?",
			expectedAnswer:    console.Answer{Text: "Bob", Origin: console.AnswerOriginTyped},
			expectedQuestions: 3,
		},
		{
			name:              "five_empty_lines_exhaust_retries",
			input:             "\n\n\n\n\n",
			question:          "Name?",
			expectedQuestions: console.MandatoryInputAttempts,
			expectedFailure:   console.ErrRetriesExhausted,
		},
		{
			name:              "answer_on_last_attempt_accepted",
			input:             "\n\n\n\nAlice\n",
			question:          "Name?",
			expectedAnswer:    console.Answer{Text: "Alice", Origin: console.AnswerOriginTyped},
			expectedQuestions: console.MandatoryInputAttempts,
		},
		{
			name:              "closed_input_exhausts_retries",
			input:             "",
			question:          "Name?",
			expectedQuestions: console.MandatoryInputAttempts,
			expectedFailure:   console.ErrRetriesExhausted,
		},
		{
			name:              "default_answer_fills_empty_line",
			input:             "\n",
			question:          "Name?",
			defaultAnswer:     "Carol",
			expectedAnswer:    console.Answer{Text: "Carol", Origin: console.AnswerOriginDefault},
			expectedQuestions: 1,
		},
		{
			name:              "typed_answer_not_restricted_to_default",
			input:             "Dave\n",
			question:          "Name?",
			defaultAnswer:     "Carol",
			expectedAnswer:    console.Answer{Text: "Dave", Origin: console.AnswerOriginTyped},
			expectedQuestions: 1,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			shell, outputBuffer := newTestShell(testCase.input)

			answer, askError := shell.AskMandatoryInput(testCase.question, testCase.defaultAnswer)
			require.Equal(testInstance, testCase.expectedQuestions, strings.Count(outputBuffer.String(), testCase.question))

			if testCase.expectedFailure != nil {
				require.ErrorIs(testInstance, askError, testCase.expectedFailure)

				var retriesError *console.RetriesExhaustedError
				require.True(testInstance, errors.As(askError, &retriesError))
				require.Equal(testInstance, testCase.question, retriesError.Question)
				require.Equal(testInstance, console.MandatoryInputAttempts, retriesError.Attempts)
				return
			}

			require.NoError(testInstance, askError)
			require.Equal(testInstance, testCase.expectedAnswer, answer)
		})
	}
}

func TestShellAskMandatoryInputRejectsEmptyQuestion(testInstance *testing.T) {
	inputReader := strings.NewReader("unread\n")
	shell, outputBuffer := newTestShellWithReader(inputReader)

	_, askError := shell.AskMandatoryInput("", "fallback")
	require.ErrorIs(testInstance, askError, console.ErrEmptyQuestion)
	require.Empty(testInstance, outputBuffer.String())
	require.Equal(testInstance, len("unread\n"), inputReader.Len())
}
