package console_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/consoleshell/internal/console"
)

const (
	testBlockMessageConstant    = "message"
	testErrorMessageConstant    = "configuration file missing"
	testSolutionMessageConstant = "run init first"
)

func newTestShell(input string) (*console.Shell, *bytes.Buffer) {
	return newTestShellWithReader(strings.NewReader(input))
}

func newTestShellWithReader(input io.Reader) (*console.Shell, *bytes.Buffer) {
	outputBuffer := &bytes.Buffer{}
	return console.NewShell(input, outputBuffer, console.LineTerminatorUnix), outputBuffer
}

func TestShellWriteMessageUsesLineTerminator(testInstance *testing.T) {
	testCases := []struct {
		name           string
		lineTerminator console.LineTerminator
		expectedOutput string
	}{
		{name: "unix", lineTerminator: console.LineTerminatorUnix, expectedOutput: "hello\n"},
		{name: "windows", lineTerminator: console.LineTerminatorWindows, expectedOutput: "hello\r\n"},
		{name: "platform", lineTerminator: console.LineTerminatorPlatform, expectedOutput: "hello" + console.LineTerminatorPlatform.Sequence()},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			outputBuffer := &bytes.Buffer{}
			shell := console.NewShell(nil, outputBuffer, testCase.lineTerminator)

			require.NoError(testInstance, shell.WriteMessage("hello"))
			require.Equal(testInstance, testCase.expectedOutput, outputBuffer.String())
		})
	}
}

func TestShellWriteBlock(testInstance *testing.T) {
	shell, outputBuffer := newTestShell("")

	require.NoError(testInstance, shell.WriteBlock(testBlockMessageConstant))

	expectedOutput := "\n" +
		"+---------+\n" +
		"| message |\n" +
		"+---------+\n" +
		"\n"
	require.Equal(testInstance, expectedOutput, outputBuffer.String())
}

func TestShellWriteBlockBorderMatchesMessageLength(testInstance *testing.T) {
	messages := []string{"x", "ERROR", "a longer message with spaces", "héllo wörld"}

	for _, message := range messages {
		message := message
		testInstance.Run(message, func(testInstance *testing.T) {
			shell, outputBuffer := newTestShell("")
			require.NoError(testInstance, shell.WriteBlock(message))

			lines := strings.Split(outputBuffer.String(), "\n")
			require.Len(testInstance, lines, 6)

			expectedBorder := "+" + strings.Repeat("-", len([]rune(message))+2) + "+"
			require.Equal(testInstance, "", lines[0])
			require.Equal(testInstance, expectedBorder, lines[1])
			require.Equal(testInstance, "| "+message+" |", lines[2])
			require.Equal(testInstance, expectedBorder, lines[3])
			require.Equal(testInstance, "", lines[4])
		})
	}
}

func TestShellWriteErrorMessage(testInstance *testing.T) {
	testCases := []struct {
		name           string
		solution       string
		expectedOutput string
	}{
		{
			name:     "without_solution",
			solution: "",
			expectedOutput: "\n+-------+\n| ERROR |\n+-------+\n\n" +
				testErrorMessageConstant + "\n" +
				"\n",
		},
		{
			name:     "with_solution",
			solution: testSolutionMessageConstant,
			expectedOutput: "\n+-------+\n| ERROR |\n+-------+\n\n" +
				testErrorMessageConstant + "\n" +
				"\n+----------+\n| SOLUTION |\n+----------+\n\n" +
				testSolutionMessageConstant + "\n" +
				"\n",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			shell, outputBuffer := newTestShell("")
			require.NoError(testInstance, shell.WriteErrorMessage(testErrorMessageConstant, testCase.solution))
			require.Equal(testInstance, testCase.expectedOutput, outputBuffer.String())
		})
	}
}

func TestShellWriteMultilineMessage(testInstance *testing.T) {
	testCases := []struct {
		name           string
		lines          []string
		border         bool
		expectedOutput string
	}{
		{
			name:           "bordered_pads_to_widest_line",
			lines:          []string{"a", "bb", "ccc"},
			border:         true,
			expectedOutput: "\n+-----+\n| a   |\n| bb  |\n| ccc |\n+-----+\n\n",
		},
		{
			name:           "unbordered_preserves_order",
			lines:          []string{"first", "second", "third"},
			border:         false,
			expectedOutput: "first\nsecond\nthird\n",
		},
		{
			name:           "empty_bordered_produces_zero_line_box",
			lines:          []string{},
			border:         true,
			expectedOutput: "\n+--+\n+--+\n\n",
		},
		{
			name:           "empty_unbordered_writes_nothing",
			lines:          nil,
			border:         false,
			expectedOutput: "",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			shell, outputBuffer := newTestShell("")
			require.NoError(testInstance, shell.WriteMultilineMessage(testCase.lines, testCase.border))
			require.Equal(testInstance, testCase.expectedOutput, outputBuffer.String())
		})
	}
}

func TestShellWriteMultilineTextTreatsStringAsSingleLine(testInstance *testing.T) {
	shell, outputBuffer := newTestShell("")

	require.NoError(testInstance, shell.WriteMultilineText("solo", true))
	require.Equal(testInstance, "\n+------+\n| solo |\n+------+\n\n", outputBuffer.String())
}

func TestShellMultilineWindowsTerminator(testInstance *testing.T) {
	outputBuffer := &bytes.Buffer{}
	shell := console.NewShell(nil, outputBuffer, console.LineTerminatorWindows)

	require.NoError(testInstance, shell.WriteMultilineMessage([]string{"ab", "c"}, true))
	require.Equal(testInstance, "\r\n+----+\r\n| ab |\r\n| c  |\r\n+----+\r\n\r\n", outputBuffer.String())
}

func TestShellSetLineTerminatorIsIdempotent(testInstance *testing.T) {
	onceBuffer := &bytes.Buffer{}
	onceShell := console.NewShell(nil, onceBuffer, console.LineTerminatorUnix)
	onceShell.SetLineTerminator(console.LineTerminatorWindows)
	require.NoError(testInstance, onceShell.WriteBlock(testBlockMessageConstant))

	twiceBuffer := &bytes.Buffer{}
	twiceShell := console.NewShell(nil, twiceBuffer, console.LineTerminatorUnix)
	twiceShell.SetLineTerminator(console.LineTerminatorWindows)
	twiceShell.SetLineTerminator(console.LineTerminatorWindows)
	require.NoError(testInstance, twiceShell.WriteBlock(testBlockMessageConstant))

	require.Equal(testInstance, onceBuffer.String(), twiceBuffer.String())
	require.Equal(testInstance, console.LineTerminatorWindows, twiceShell.LineTerminator())
}

func TestShellConvenienceTerminatorSetters(testInstance *testing.T) {
	shell := console.NewShell(nil, nil, console.LineTerminatorPlatform)

	shell.UseWindowsLineTerminator()
	require.Equal(testInstance, console.LineTerminatorWindows, shell.LineTerminator())

	shell.UseUnixLineTerminator()
	require.Equal(testInstance, console.LineTerminatorUnix, shell.LineTerminator())

	shell.UsePlatformLineTerminator()
	require.Equal(testInstance, console.LineTerminatorPlatform, shell.LineTerminator())
}

func TestShellWriteMessageReportsWriterFailure(testInstance *testing.T) {
	writeFailure := errors.New("disk full")
	shell := console.NewShell(nil, failingWriter{failure: writeFailure}, console.LineTerminatorUnix)

	writeError := shell.WriteBlock(testBlockMessageConstant)
	require.Error(testInstance, writeError)
	require.ErrorIs(testInstance, writeError, writeFailure)
}

type failingWriter struct {
	failure error
}

func (writer failingWriter) Write(data []byte) (int, error) {
	return 0, writer.failure
}
