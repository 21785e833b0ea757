// Package output exposes the consoleshell write operations as Cobra commands.
//
// MessageCommandBuilder, BlockCommandBuilder, ErrorCommandBuilder and
// LinesCommandBuilder each wrap one console.Shell write operation and render
// to the command's output stream.
package output
