package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/consoleshell/internal/console"
	"github.com/temirov/consoleshell/internal/output"
	"github.com/temirov/consoleshell/internal/prompt"
	"github.com/temirov/consoleshell/internal/utils"
	"github.com/temirov/consoleshell/internal/utils/flags"
)

const (
	applicationNameConstant                  = "consoleshell"
	applicationShortDescriptionConstant      = "Write boxed console messages and ask validated questions"
	applicationLongDescriptionConstant       = "consoleshell writes plain, boxed, multi-line and error messages to standard output and reads validated answers from standard input for shell scripts."
	configFileFlagNameConstant               = "config"
	configFileFlagUsageConstant              = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                 = "log-level"
	logLevelFlagUsageConstant                = "Override the configured log level."
	logFormatFlagNameConstant                = "log-format"
	logFormatFlagUsageConstant               = "Override the configured log format (structured or console)."
	lineTerminatorFlagNameConstant           = "line-terminator"
	lineTerminatorFlagUsageConstant          = "Line terminator appended to written lines."
	commonLogLevelConfigKeyConstant          = "common.log_level"
	commonLogFormatConfigKeyConstant         = "common.log_format"
	consoleLineTerminatorConfigKeyConstant   = "console.line_terminator"
	environmentPrefixConstant                = "CONSOLESHELL"
	configurationNameConstant                = "config"
	configurationInitializedMessageConstant  = "configuration initialized"
	configurationLogLevelFieldConstant       = "log_level"
	configurationLogFormatFieldConstant      = "log_format"
	configurationLineTerminatorFieldConstant = "line_terminator"
	configurationFileFieldConstant           = "config_file"
	configurationLoadErrorTemplateConstant   = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant      = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant          = "unable to flush logger: %w"
	lineTerminatorErrorTemplateConstant      = "unable to apply --line-terminator: %w"
	rootCommandDebugMessageConstant          = "consoleshell invoked without a subcommand"
	logFieldArgumentsConstant                = "arguments"
)

// ApplicationConfiguration describes the persisted configuration for the CLI.
type ApplicationConfiguration struct {
	Common  ApplicationCommonConfiguration  `mapstructure:"common"`
	Console ApplicationConsoleConfiguration `mapstructure:"console"`
}

// ApplicationCommonConfiguration stores logging configuration shared across commands.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// ApplicationConsoleConfiguration stores console rendering settings.
type ApplicationConsoleConfiguration struct {
	LineTerminator console.LineTerminator `mapstructure:"line_terminator"`
}

type commandBuilder interface {
	Build() (*cobra.Command, error)
}

// Application wires the Cobra root command, configuration loader, and structured logger.
type Application struct {
	rootCommand             *cobra.Command
	configurationLoader     *utils.ConfigurationLoader
	loggerFactory           *utils.LoggerFactory
	logger                  *zap.Logger
	configuration           ApplicationConfiguration
	configurationMetadata   utils.LoadedConfiguration
	configurationFilePath   string
	logLevelFlagValue       string
	logFormatFlagValue      string
	lineTerminatorFlagValue string
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() *Application {
	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		utils.DefaultSearchPaths(applicationNameConstant),
	)
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())
	configurationLoader.AddDecodeHooks(console.LineTerminatorDecodeHook())

	application := &Application{
		configurationLoader: configurationLoader,
		loggerFactory:       utils.NewLoggerFactory(),
		logger:              zap.NewNop(),
	}

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			application.logger.Debug(rootCommandDebugMessageConstant, zap.Strings(logFieldArgumentsConstant, arguments))
			return command.Help()
		},
	}

	cobraCommand.SetContext(context.Background())
	persistentFlags := cobraCommand.PersistentFlags()
	persistentFlags.StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	persistentFlags.StringVar(&application.logLevelFlagValue, logLevelFlagNameConstant, "", logLevelFlagUsageConstant)
	persistentFlags.StringVar(&application.logFormatFlagValue, logFormatFlagNameConstant, "", logFormatFlagUsageConstant)
	persistentFlags.StringVar(
		&application.lineTerminatorFlagValue,
		lineTerminatorFlagNameConstant,
		"",
		flags.FormatChoiceUsage(string(console.LineTerminatorPlatform), console.LineTerminatorNames(), lineTerminatorFlagUsageConstant),
	)

	outputDependencies := output.Dependencies{
		LoggerProvider: application.currentLogger,
		ShellProvider:  application.newShell,
	}

	builders := []commandBuilder{
		&output.MessageCommandBuilder{Dependencies: outputDependencies},
		&output.BlockCommandBuilder{Dependencies: outputDependencies},
		&output.ErrorCommandBuilder{Dependencies: outputDependencies},
		&output.LinesCommandBuilder{Dependencies: outputDependencies},
		&prompt.AskCommandBuilder{LoggerProvider: application.currentLogger, ShellProvider: application.newShell},
		&prompt.MandatoryCommandBuilder{LoggerProvider: application.currentLogger, ShellProvider: application.newShell},
	}

	for _, builder := range builders {
		if subcommand, buildError := builder.Build(); buildError == nil {
			cobraCommand.AddCommand(subcommand)
		}
	}

	application.rootCommand = cobraCommand

	return application
}

// SetStreams redirects the standard streams used by every command.
func (application *Application) SetStreams(input io.Reader, standardOutput io.Writer, standardError io.Writer) {
	application.rootCommand.SetIn(input)
	application.rootCommand.SetOut(standardOutput)
	application.rootCommand.SetErr(standardError)
}

// Run executes the command hierarchy with the provided arguments and flushes the logger.
func (application *Application) Run(arguments []string) error {
	application.rootCommand.SetArgs(flags.NormalizeToggleArguments(arguments))
	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute runs the command hierarchy with the process arguments.
func (application *Application) Execute() error {
	return application.Run(os.Args[1:])
}

// Configuration returns the configuration resolved by the last run.
func (application *Application) Configuration() ApplicationConfiguration {
	return application.configuration
}

// Execute builds a fresh application instance and executes the root command hierarchy.
func Execute() error {
	return NewApplication().Execute()
}

func (application *Application) currentLogger() *zap.Logger {
	return application.logger
}

func (application *Application) newShell(input io.Reader, standardOutput io.Writer) *console.Shell {
	return console.NewShell(input, utils.NewFlushingWriter(standardOutput), application.configuration.Console.LineTerminator)
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:        string(utils.LogLevelWarn),
		commonLogFormatConfigKeyConstant:       string(utils.LogFormatConsole),
		consoleLineTerminatorConfigKeyConstant: string(console.LineTerminatorPlatform),
	}

	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	application.configurationMetadata = loadedConfiguration

	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = application.logLevelFlagValue
	}

	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = application.logFormatFlagValue
	}

	if application.persistentFlagChanged(command, lineTerminatorFlagNameConstant) {
		lineTerminator, parseError := console.ParseLineTerminator(application.lineTerminatorFlagValue)
		if parseError != nil {
			return fmt.Errorf(lineTerminatorErrorTemplateConstant, parseError)
		}
		application.configuration.Console.LineTerminator = lineTerminator
	}

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		utils.LogLevel(application.configuration.Common.LogLevel),
		utils.LogFormat(application.configuration.Common.LogFormat),
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	application.logger = logger

	application.logger.Debug(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.Stringer(configurationLineTerminatorFieldConstant, application.configuration.Console.LineTerminator),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)

	return nil
}

func (application *Application) flushLogger() error {
	if application.logger == nil {
		return nil
	}

	syncError := application.logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	if rootCommand := command.Root(); rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet != nil && flagSet.Changed(flagName) {
			return true
		}
	}

	return false
}
