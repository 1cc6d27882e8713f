// Package cli provides the command line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/tree2clip/internal/commands"
	"github.com/temirov/tree2clip/internal/config"
	"github.com/temirov/tree2clip/internal/output"
	"github.com/temirov/tree2clip/internal/services/clipboard"
	"github.com/temirov/tree2clip/internal/types"
	"github.com/temirov/tree2clip/internal/utils"
)

const (
	noContentFlagName      = "no-content"
	excludeFlagName        = "exclude"
	excludeFlagShorthand   = "e"
	clipboardFlagName      = "clipboard"
	configFlagName         = "config"
	verboseFlagName        = "verbose"
	versionFlagName        = "version"
	initGlobalFlagName     = "global"
	initForceFlagName      = "force"
	defaultPath            = "."
	versionTemplate        = "tree2clip version: %s\n"
	initCompletedTemplate  = "Configuration written to %s\n"
	rootUse                = "tree2clip [directory]"
	rootShortDescription   = "copy a directory tree and its file contents to the clipboard"
	rootLongDescription    = `tree2clip renders the directory hierarchy as an ASCII tree, appends the text of
every file beneath it, and places the result on the system clipboard.
The tree is also printed to standard output.
Defaults for --exclude, --no-content, and --clipboard may be set in
~/.tree2clip/config.yaml or ./.tree2clip.yaml.`
	rootUsageExample = `  # Copy the current directory
  tree2clip

  # Copy only the tree of ./src
  tree2clip --no-content ./src

  # Skip log and lock files
  tree2clip -e "*.log" -e "*.lock" .

  # Print the tree without touching the clipboard
  tree2clip --clipboard=false`
	initUse                  = "init"
	initShortDescription     = "write a default configuration file"
	noContentFlagDescription = "exclude file contents and copy only the tree structure"
	excludeFlagDescription   = "exclude files matching the glob pattern (repeatable), e.g. --exclude \"*.txt\""
	clipboardFlagDescription = "copy the result to the system clipboard"
	configFlagDescription    = "path to a configuration file"
	verboseFlagDescription   = "log skipped and unreadable paths"
	versionFlagDescription   = "display application version"
	globalFlagDescription    = "write the configuration under the home directory"
	forceFlagDescription     = "overwrite an existing configuration file"

	// errorAbsolutePathFormat reports failure to resolve an absolute path.
	errorAbsolutePathFormat = "abs failed for '%s': %w"
	// errorDirectoryMissingFormat reports a root that is not an existing directory.
	errorDirectoryMissingFormat = "%w: %s"
	// errorLoadConfigurationFormat reports a configuration that cannot be loaded.
	errorLoadConfigurationFormat = "load configuration: %w"
	// errorLoggerFormat reports a failure to rebuild the verbose logger.
	errorLoggerFormat = "configure verbose logging: %w"
	// errorWriteOutputFormat reports a failure to print the tree.
	errorWriteOutputFormat = "write tree to standard output: %w"

	clipboardFailedMessage = "Failed to copy to clipboard"
	logFieldDirectory      = "directory"
	logFieldPatterns       = "excludePatterns"
	logFieldBlocks         = "blocks"
	logRunStarted          = "rendering directory"
	logContentCollected    = "collected file contents"

	// logExcludeIgnored is logged when exclusion patterns meet a run that collects no content.
	logExcludeIgnored = "exclude patterns ignored because file contents are excluded"
)

// ErrDirectoryMissing is returned when the requested root is not an existing directory.
var ErrDirectoryMissing = errors.New("specified directory does not exist")

// Dependencies are the collaborators the command runs against.
type Dependencies struct {
	Copier     clipboard.Copier
	FileSystem afero.Fs
	Logger     *zap.Logger
}

// Execute runs the tree2clip application.
func Execute(logger *zap.Logger) error {
	dependencies := Dependencies{
		Copier:     clipboard.NewService(),
		FileSystem: afero.NewOsFs(),
		Logger:     logger,
	}
	return runRootCommand(dependencies, os.Args[1:], os.Stdout, os.Stderr)
}

// runRootCommand executes the command tree against explicit arguments and writers.
func runRootCommand(dependencies Dependencies, arguments []string, stdout io.Writer, stderr io.Writer) error {
	rootCommand := createRootCommand(&dependencies)
	rootCommand.SetOut(stdout)
	rootCommand.SetErr(stderr)
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, arguments))
	return rootCommand.Execute()
}

// rootOptions stores the values bound to the root command flags.
type rootOptions struct {
	noContent        bool
	excludePatterns  []string
	clipboardEnabled bool
	configPath       string
	verbose          bool
	showVersion      bool
}

// runOptions is the fully resolved configuration of one run.
type runOptions struct {
	directory        string
	noContent        bool
	excludePatterns  []string
	clipboardEnabled bool
}

// createRootCommand builds the root Cobra command.
func createRootCommand(dependencies *Dependencies) *cobra.Command {
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}
	var options rootOptions

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			if !options.verbose {
				return nil
			}
			verboseLogger, loggerError := utils.NewApplicationLogger(true)
			if loggerError != nil {
				return fmt.Errorf(errorLoggerFormat, loggerError)
			}
			dependencies.Logger = verboseLogger
			return nil
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			if options.showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			directory := defaultPath
			if len(arguments) == 1 {
				directory = arguments[0]
			}
			configuration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{ExplicitFilePath: options.configPath})
			if configurationError != nil {
				return fmt.Errorf(errorLoadConfigurationFormat, configurationError)
			}
			resolved := resolveRunOptions(command, directory, options, configuration)
			return runTreeToClipboard(resolved, *dependencies, command.OutOrStdout())
		},
	}

	flagSet := rootCommand.Flags()
	registerBooleanFlag(flagSet, &options.noContent, noContentFlagName, false, noContentFlagDescription)
	flagSet.StringArrayVarP(&options.excludePatterns, excludeFlagName, excludeFlagShorthand, nil, excludeFlagDescription)
	registerBooleanFlag(flagSet, &options.clipboardEnabled, clipboardFlagName, true, clipboardFlagDescription)
	flagSet.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	flagSet.BoolVar(&options.showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.PersistentFlags().BoolVarP(&options.verbose, verboseFlagName, "v", false, verboseFlagDescription)
	rootCommand.MarkFlagsMutuallyExclusive(noContentFlagName, excludeFlagName)

	rootCommand.AddCommand(createInitCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// resolveRunOptions overlays explicitly set flags onto configuration defaults.
func resolveRunOptions(command *cobra.Command, directory string, options rootOptions, configuration config.ApplicationConfiguration) runOptions {
	flagSet := command.Flags()
	resolved := runOptions{
		directory:        directory,
		noContent:        configuration.NoContentOrDefault(options.noContent),
		clipboardEnabled: configuration.ClipboardOrDefault(options.clipboardEnabled),
		excludePatterns:  utils.DeduplicatePatterns(append(append([]string{}, configuration.Exclude...), options.excludePatterns...)),
	}
	if flagSet.Changed(noContentFlagName) {
		resolved.noContent = options.noContent
	}
	if flagSet.Changed(clipboardFlagName) {
		resolved.clipboardEnabled = options.clipboardEnabled
	}
	return resolved
}

// createInitCommand returns the init subcommand.
func createInitCommand() *cobra.Command {
	var global bool
	var force bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if global {
				target = config.InitTargetGlobal
			}
			path, initError := config.InitializeConfiguration(config.InitOptions{Target: target, Force: force})
			if initError != nil {
				return initError
			}
			fmt.Fprintf(command.OutOrStdout(), initCompletedTemplate, path)
			return nil
		},
	}
	initCommand.Flags().BoolVar(&global, initGlobalFlagName, false, globalFlagDescription)
	initCommand.Flags().BoolVar(&force, initForceFlagName, false, forceFlagDescription)
	return initCommand
}

// runTreeToClipboard renders the tree, collects contents unless excluded,
// copies the report, and prints the tree. A clipboard failure is logged and
// does not fail the run.
func runTreeToClipboard(options runOptions, dependencies Dependencies, stdout io.Writer) error {
	validatedPath, validationError := resolveDirectory(dependencies.FileSystem, options.directory)
	if validationError != nil {
		return validationError
	}
	logger := dependencies.Logger
	logger.Debug(logRunStarted, zap.String(logFieldDirectory, validatedPath.AbsolutePath), zap.Strings(logFieldPatterns, options.excludePatterns))

	treeBuilder := commands.NewTreeBuilder(dependencies.FileSystem, logger)
	treeLines := treeBuilder.RenderTree(validatedPath.AbsolutePath, "")
	treeText := output.FormatTree(filepath.Base(validatedPath.AbsolutePath), treeLines)

	if options.noContent && len(options.excludePatterns) > 0 {
		logger.Warn(logExcludeIgnored, zap.Strings(logFieldPatterns, options.excludePatterns))
	}

	var blocks []string
	if !options.noContent {
		collector := commands.NewContentCollector(dependencies.FileSystem, logger)
		blocks = collector.CollectFileContents(validatedPath.AbsolutePath, options.excludePatterns, false)
		logger.Debug(logContentCollected, zap.Int(logFieldBlocks, len(blocks)))
	}
	report := output.FormatReport(treeText, blocks, options.noContent)

	copied := false
	if options.clipboardEnabled && dependencies.Copier != nil {
		if copyError := dependencies.Copier.Copy(report); copyError != nil {
			logger.Warn(clipboardFailedMessage, zap.Error(copyError))
		} else {
			copied = true
		}
	}

	if writeError := output.WriteConsoleSummary(stdout, treeText, copied); writeError != nil {
		return fmt.Errorf(errorWriteOutputFormat, writeError)
	}
	return nil
}

// resolveDirectory converts the input to a clean absolute path and verifies
// that it names an existing directory.
func resolveDirectory(fileSystem afero.Fs, inputPath string) (types.ValidatedPath, error) {
	absolutePath, absolutePathError := filepath.Abs(inputPath)
	if absolutePathError != nil {
		return types.ValidatedPath{}, fmt.Errorf(errorAbsolutePathFormat, inputPath, absolutePathError)
	}
	cleanPath := filepath.Clean(absolutePath)
	if fileSystem == nil {
		fileSystem = afero.NewOsFs()
	}
	isDirectory, statError := afero.IsDir(fileSystem, cleanPath)
	if statError != nil || !isDirectory {
		return types.ValidatedPath{}, fmt.Errorf(errorDirectoryMissingFormat, ErrDirectoryMissing, cleanPath)
	}
	return types.ValidatedPath{AbsolutePath: cleanPath}, nil
}
