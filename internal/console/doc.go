// Package console formats messages for a terminal and reads answers from it.
//
// Shell writes plain lines, boxed blocks, multi-line boxes and ERROR/SOLUTION
// reports using a configurable line terminator, and reads trimmed answers that
// may be validated against a set of accepted answers. Rejected, missing and
// abandoned answers are reported through ErrValidationFailure,
// ErrEmptyQuestion and ErrRetriesExhausted.
package console
