package console

import (
	"errors"
	"fmt"
	"strings"
)

const (
	emptyQuestionMessageConstant             = "question must not be empty"
	validationFailureMessageConstant         = "answer is not one of the accepted answers"
	retriesExhaustedMessageConstant          = "no answer provided"
	unsupportedLineTerminatorMessageConstant = "unsupported line terminator"
	validationErrorTemplateConstant          = "%s: %q not in [%s]"
	retriesExhaustedErrorTemplateConstant    = "%s to %q after %d attempts"
	validAnswersSeparatorConstant            = ", "
)

var (
	// ErrEmptyQuestion reports a mandatory prompt requested without a question.
	ErrEmptyQuestion = errors.New(emptyQuestionMessageConstant)
	// ErrValidationFailure reports an answer that matches none of the accepted answers.
	ErrValidationFailure = errors.New(validationFailureMessageConstant)
	// ErrRetriesExhausted reports a mandatory prompt that only ever received empty answers.
	ErrRetriesExhausted = errors.New(retriesExhaustedMessageConstant)
	// ErrUnsupportedLineTerminator reports an unknown line terminator name.
	ErrUnsupportedLineTerminator = errors.New(unsupportedLineTerminatorMessageConstant)
)

// ValidationError describes a rejected answer together with the answers that would have been accepted.
type ValidationError struct {
	Answer       string
	ValidAnswers []string
}

// Error implements the error interface.
func (validationError *ValidationError) Error() string {
	return fmt.Sprintf(
		validationErrorTemplateConstant,
		validationFailureMessageConstant,
		validationError.Answer,
		strings.Join(validationError.ValidAnswers, validAnswersSeparatorConstant),
	)
}

// Is reports whether the target is ErrValidationFailure.
func (validationError *ValidationError) Is(target error) bool {
	return target == ErrValidationFailure
}

// RetriesExhaustedError describes a mandatory prompt abandoned after repeated empty answers.
type RetriesExhaustedError struct {
	Question string
	Attempts int
}

// Error implements the error interface.
func (retriesError *RetriesExhaustedError) Error() string {
	return fmt.Sprintf(retriesExhaustedErrorTemplateConstant, retriesExhaustedMessageConstant, retriesError.Question, retriesError.Attempts)
}

// Is reports whether the target is ErrRetriesExhausted.
func (retriesError *RetriesExhaustedError) Is(target error) bool {
	return target == ErrRetriesExhausted
}
