// Package prompt exposes the consoleshell question operations as Cobra commands.
package prompt
