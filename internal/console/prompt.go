package console

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

const (
	// MandatoryInputAttempts bounds how many times AskMandatoryInput repeats its question.
	MandatoryInputAttempts = 5

	defaultAnswerSuffixTemplateConstant = "%s [%s]"
	readAnswerErrorTemplateConstant     = "unable to read answer: %w"
	lineDelimiterConstant               = '\n'
	answerOriginEmptyNameConstant       = "empty"
	answerOriginTypedNameConstant       = "typed"
	answerOriginDefaultNameConstant     = "default"
)

// AnswerOrigin records where an accepted answer came from.
type AnswerOrigin int

// Answer origins.
const (
	// AnswerOriginEmpty marks an empty line accepted without a default.
	AnswerOriginEmpty AnswerOrigin = iota
	// AnswerOriginTyped marks a non-empty line entered by the user.
	AnswerOriginTyped
	// AnswerOriginDefault marks an empty line replaced by the default answer.
	AnswerOriginDefault
)

// String returns the origin name used in logs.
func (origin AnswerOrigin) String() string {
	switch origin {
	case AnswerOriginTyped:
		return answerOriginTypedNameConstant
	case AnswerOriginDefault:
		return answerOriginDefaultNameConstant
	default:
		return answerOriginEmptyNameConstant
	}
}

// Answer is an accepted, trimmed line of input.
type Answer struct {
	Text   string
	Origin AnswerOrigin
}

// IsEmpty reports whether the accepted answer carries no text.
func (answer Answer) IsEmpty() bool {
	return len(answer.Text) == 0
}

// String returns the answer text.
func (answer Answer) String() string {
	return answer.Text
}

// InputRequest describes a single prompt.
type InputRequest struct {
	// Question is written before reading when non-empty.
	Question string
	// ValidAnswers restricts accepted answers when non-empty. Matching tries the answer as typed, upper-cased and lower-cased.
	ValidAnswers []string
	// DefaultAnswer replaces an empty line.
	DefaultAnswer string
	// ExcludeDefaultFromValidAnswers stops DefaultAnswer from being added to ValidAnswers.
	ExcludeDefaultFromValidAnswers bool
}

// AskInput writes the question, reads one line and validates it.
// Rejected answers are reported with an error matching ErrValidationFailure.
func (shell *Shell) AskInput(request InputRequest) (Answer, error) {
	if len(request.Question) > 0 {
		question := request.Question
		if len(request.DefaultAnswer) > 0 {
			question = fmt.Sprintf(defaultAnswerSuffixTemplateConstant, question, request.DefaultAnswer)
		}
		if writeError := shell.WriteMessage(question); writeError != nil {
			return Answer{}, writeError
		}
	}

	line, readError := shell.readLine()
	if readError != nil {
		return Answer{}, readError
	}

	validAnswers := slices.Clone(request.ValidAnswers)
	if len(request.DefaultAnswer) > 0 && !request.ExcludeDefaultFromValidAnswers {
		if !slices.Contains(validAnswers, request.DefaultAnswer) {
			validAnswers = append(validAnswers, request.DefaultAnswer)
		}
	}

	answer := Answer{Text: line, Origin: AnswerOriginTyped}
	if len(line) == 0 {
		answer.Origin = AnswerOriginEmpty
		if len(request.DefaultAnswer) > 0 {
			answer = Answer{Text: request.DefaultAnswer, Origin: AnswerOriginDefault}
		}
	}

	if len(validAnswers) > 0 && !matchesValidAnswer(answer.Text, validAnswers) {
		return Answer{}, &ValidationError{Answer: answer.Text, ValidAnswers: validAnswers}
	}

	return answer, nil
}

// AskMandatoryInput repeats the question until a non-empty answer arrives, giving up after MandatoryInputAttempts.
func (shell *Shell) AskMandatoryInput(question string, defaultAnswer string) (Answer, error) {
	if len(question) == 0 {
		return Answer{}, ErrEmptyQuestion
	}

	request := InputRequest{
		Question:                       question,
		DefaultAnswer:                  defaultAnswer,
		ExcludeDefaultFromValidAnswers: true,
	}

	for attempt := 0; attempt < MandatoryInputAttempts; attempt++ {
		answer, askError := shell.AskInput(request)
		if askError != nil {
			return Answer{}, askError
		}
		if !answer.IsEmpty() {
			return answer, nil
		}
	}

	return Answer{}, &RetriesExhaustedError{Question: question, Attempts: MandatoryInputAttempts}
}

// readLine consumes one line. End of input counts as an empty line.
func (shell *Shell) readLine() (string, error) {
	line, readError := shell.reader.ReadString(lineDelimiterConstant)
	if readError != nil && !errors.Is(readError, io.EOF) {
		return "", fmt.Errorf(readAnswerErrorTemplateConstant, readError)
	}
	return strings.TrimSpace(line), nil
}

func matchesValidAnswer(answer string, validAnswers []string) bool {
	candidates := []string{answer, strings.ToUpper(answer), strings.ToLower(answer)}
	for _, candidate := range candidates {
		if slices.Contains(validAnswers, candidate) {
			return true
		}
	}
	return false
}
