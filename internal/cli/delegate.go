package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quartzui/quartz-cli/internal/config"
	"github.com/quartzui/quartz-cli/internal/ext"
	"github.com/quartzui/quartz-cli/internal/project"
)

const (
	runUse              = "run <extension> [args...]"
	runShortDescription = "run a command provided by an app extension (r)"
	runLongDescription  = `Resolve a command installed by a Quartz app extension and execute it with
the remaining arguments. Extension commands are binaries named
quartz-ext-<name> in the project's node_modules/.bin directory.`

	extUse              = "ext"
	extShortDescription = "list installed app extensions (e)"

	runnerMissingFormat    = "project runner %s is not installed; run your package manager's install first"
	notInProjectFormat     = "%q must be run inside a Quartz project: %w"
	unknownExtensionFormat = "Unknown command %q, showing general help\n"
	noExtensionsMessage    = " No app extensions are installed"
)

// delegatedCommandDefinition is one built-in command that hands off to the
// project-local runner script.
type delegatedCommandDefinition struct {
	name  string
	short string
}

var delegatedCommandDefinitions = []delegatedCommandDefinition{
	{commandDev, devShortDescription},
	{commandBuild, buildShortDescription},
	{commandClean, cleanShortDescription},
	{commandMode, modeShortDescription},
	{commandNew, newShortDescription},
	{commandTest, testShortDescription},
}

// newDelegatedCommands builds the commands that delegate to the project
// runner. Flag parsing is disabled so runner flags pass through untouched.
func newDelegatedCommands(options executionOptions) []*cobra.Command {
	commands := make([]*cobra.Command, 0, len(delegatedCommandDefinitions))
	for _, definition := range delegatedCommandDefinitions {
		commands = append(commands, &cobra.Command{
			Use:                definition.name,
			Short:              definition.short,
			Args:               cobra.ArbitraryArgs,
			DisableFlagParsing: true,
			RunE:               runDelegated(options, definition.name),
		})
	}
	return commands
}

func runDelegated(options executionOptions, commandName string) func(*cobra.Command, []string) error {
	return func(command *cobra.Command, arguments []string) error {
		projectInfo, locateError := project.Locate(options.workingDirectory)
		if locateError != nil {
			return fmt.Errorf(notInProjectFormat, commandName, locateError)
		}
		runnerPath := projectInfo.RunnerPath()
		applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
			WorkingDirectory: projectInfo.RootDirectory,
		})
		if configurationError != nil {
			return configurationError
		}
		if applicationConfiguration.Runner.Script != "" {
			runnerPath = applicationConfiguration.Runner.Script
		}
		if _, statError := os.Stat(runnerPath); statError != nil {
			return fmt.Errorf(runnerMissingFormat, runnerPath)
		}
		options.logger.Debug("delegating to project runner",
			zap.String("command", commandName),
			zap.String("runner", runnerPath),
		)
		return runScript(options, projectInfo.RootDirectory, runnerPath, append([]string{commandName}, arguments...))
	}
}

// newRunCommand returns the extension-command runner. With fallbackToHelp
// set (the dispatcher rewrote an unknown token), a missing extension shows
// general help instead of failing.
func newRunCommand(options executionOptions, fallbackToHelp bool) *cobra.Command {
	runCommand := &cobra.Command{
		Use:                runUse,
		Short:              runShortDescription,
		Long:               runLongDescription,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if len(arguments) == 0 {
				return command.Help()
			}
			fallback := func(cause error) error {
				if fallbackToHelp {
					fmt.Fprintf(options.stderr, unknownExtensionFormat, arguments[0])
					return command.Root().Help()
				}
				return cause
			}
			projectInfo, locateError := project.Locate(options.workingDirectory)
			if locateError != nil {
				return fallback(locateError)
			}
			commandPath, resolveError := ext.ResolveCommand(projectInfo, arguments[0])
			if resolveError != nil {
				return fallback(resolveError)
			}
			options.logger.Debug("running extension command", zap.String("path", commandPath))
			return runScript(options, projectInfo.RootDirectory, commandPath, arguments[1:])
		},
	}
	return runCommand
}

// newExtCommand returns the extension listing command.
func newExtCommand(options executionOptions) *cobra.Command {
	return &cobra.Command{
		Use:   extUse,
		Short: extShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			projectInfo, locateError := project.Locate(options.workingDirectory)
			if locateError != nil {
				return locateError
			}
			extensions, listError := ext.Installed(projectInfo)
			if listError != nil {
				return listError
			}
			if len(extensions) == 0 {
				fmt.Fprintln(options.stdout, noExtensionsMessage)
				return nil
			}
			for _, extension := range extensions {
				line := fmt.Sprintf(" * %s@%s", extension.PackageName, extension.Version)
				if extension.Description != "" {
					line += " - " + extension.Description
				}
				if extension.HasAPI {
					line += " [api]"
				}
				if extension.CommandPath != "" {
					line += " [command]"
				}
				fmt.Fprintln(options.stdout, line)
			}
			return nil
		},
	}
}

func runScript(options executionOptions, workingDirectory string, path string, arguments []string) error {
	// #nosec G204 -- path is resolved from the project's own bin directory.
	command := exec.Command(path, arguments...)
	command.Dir = workingDirectory
	command.Stdin = os.Stdin
	command.Stdout = options.stdout
	command.Stderr = options.stderr
	return command.Run()
}
