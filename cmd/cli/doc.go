// Package cli constructs the consoleshell command-line interface, wiring the
// Cobra command hierarchy, the Viper configuration loader and zap logging
// around the console package so shell scripts can print boxed messages and
// ask validated questions.
package cli
