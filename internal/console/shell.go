package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/temirov/consoleshell/internal/utils"
)

const (
	blockCornerConstant               = "+"
	blockHorizontalEdgeConstant       = "-"
	blockContentPrefixConstant        = "| "
	blockContentSuffixConstant        = " |"
	blockPaddingCharacterConstant     = " "
	blockHorizontalPaddingConstant    = 2
	errorBlockTitleConstant           = "ERROR"
	solutionBlockTitleConstant        = "SOLUTION"
	emptyLineConstant                 = ""
	writeMessageErrorTemplateConstant = "unable to write message: %w"
)

// Shell writes formatted messages to an output stream and reads answers from an input stream.
// A Shell is not safe for concurrent use.
type Shell struct {
	reader         *bufio.Reader
	writer         io.Writer
	lineTerminator LineTerminator
}

// NewShell constructs a Shell over the provided streams. A nil input behaves as a closed stream and a nil output discards writes.
func NewShell(input io.Reader, output io.Writer, lineTerminator LineTerminator) *Shell {
	if input == nil {
		input = strings.NewReader(emptyLineConstant)
	}
	if output == nil {
		output = io.Discard
	}
	return &Shell{
		reader:         bufio.NewReader(input),
		writer:         output,
		lineTerminator: lineTerminator,
	}
}

// NewStandardShell constructs a Shell bound to the process standard input and output.
func NewStandardShell(lineTerminator LineTerminator) *Shell {
	return NewShell(os.Stdin, utils.NewFlushingWriter(os.Stdout), lineTerminator)
}

// LineTerminator returns the terminator currently appended to written lines.
func (shell *Shell) LineTerminator() LineTerminator {
	return shell.lineTerminator
}

// SetLineTerminator changes the terminator used by all subsequent writes.
func (shell *Shell) SetLineTerminator(lineTerminator LineTerminator) {
	shell.lineTerminator = lineTerminator
}

// UseUnixLineTerminator switches to "\n".
func (shell *Shell) UseUnixLineTerminator() {
	shell.SetLineTerminator(LineTerminatorUnix)
}

// UseWindowsLineTerminator switches to "\r\n".
func (shell *Shell) UseWindowsLineTerminator() {
	shell.SetLineTerminator(LineTerminatorWindows)
}

// UsePlatformLineTerminator switches back to the operating system default.
func (shell *Shell) UsePlatformLineTerminator() {
	shell.SetLineTerminator(LineTerminatorPlatform)
}

// WriteMessage writes the message followed by the current line terminator.
func (shell *Shell) WriteMessage(message string) error {
	if _, writeError := io.WriteString(shell.writer, message+shell.lineTerminator.Sequence()); writeError != nil {
		return fmt.Errorf(writeMessageErrorTemplateConstant, writeError)
	}
	return nil
}

// WriteBlock writes the message inside a box:
//
//	+---------+
//	| message |
//	+---------+
//
// surrounded by blank lines.
func (shell *Shell) WriteBlock(message string) error {
	return shell.writeBox([]string{message}, utf8.RuneCountInString(message))
}

// WriteErrorMessage writes an ERROR block followed by the message and, when provided, a SOLUTION block followed by the solution.
func (shell *Shell) WriteErrorMessage(message string, solution string) error {
	if blockError := shell.WriteBlock(errorBlockTitleConstant); blockError != nil {
		return blockError
	}
	if messageError := shell.WriteMessage(message); messageError != nil {
		return messageError
	}

	if len(solution) > 0 {
		if blockError := shell.WriteBlock(solutionBlockTitleConstant); blockError != nil {
			return blockError
		}
		if solutionError := shell.WriteMessage(solution); solutionError != nil {
			return solutionError
		}
	}

	return shell.WriteMessage(emptyLineConstant)
}

// WriteMultilineText writes a single string as a one-line multiline message.
func (shell *Shell) WriteMultilineText(text string, border bool) error {
	return shell.WriteMultilineMessage([]string{text}, border)
}

// WriteMultilineMessage writes the lines in order. With border enabled every line is padded to the widest line and boxed.
func (shell *Shell) WriteMultilineMessage(lines []string, border bool) error {
	if !border {
		for _, line := range lines {
			if writeError := shell.WriteMessage(line); writeError != nil {
				return writeError
			}
		}
		return nil
	}

	maximumLength := 0
	for _, line := range lines {
		if lineLength := utf8.RuneCountInString(line); lineLength > maximumLength {
			maximumLength = lineLength
		}
	}

	paddedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		paddedLines = append(paddedLines, padRight(line, maximumLength))
	}

	return shell.writeBox(paddedLines, maximumLength)
}

func (shell *Shell) writeBox(lines []string, contentLength int) error {
	border := blockCornerConstant + strings.Repeat(blockHorizontalEdgeConstant, contentLength+blockHorizontalPaddingConstant) + blockCornerConstant

	boxLines := make([]string, 0, len(lines)+4)
	boxLines = append(boxLines, emptyLineConstant, border)
	for _, line := range lines {
		boxLines = append(boxLines, blockContentPrefixConstant+line+blockContentSuffixConstant)
	}
	boxLines = append(boxLines, border, emptyLineConstant)

	for _, boxLine := range boxLines {
		if writeError := shell.WriteMessage(boxLine); writeError != nil {
			return writeError
		}
	}
	return nil
}

func padRight(line string, width int) string {
	missing := width - utf8.RuneCountInString(line)
	if missing <= 0 {
		return line
	}
	return line + strings.Repeat(blockPaddingCharacterConstant, missing)
}
