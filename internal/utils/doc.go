// Package utils holds the ambient plumbing shared by the consoleshell commands.
//
// ConfigurationLoader merges embedded defaults, configuration files and
// environment variables through Viper, LoggerFactory builds zap loggers and
// FlushingWriter keeps buffered output visible before a prompt blocks on input.
package utils
