// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quartzui/quartz-cli/internal/services/browser"
	"github.com/quartzui/quartz-cli/internal/services/clipboard"
	"github.com/quartzui/quartz-cli/internal/utils"
)

const (
	rootShortDescription = "Quartz framework command line interface"
	rootLongDescription  = `quartz manages Quartz framework projects and inspects their API surface.
Built-in commands delegate to the project-local runner; anything else is
resolved against installed app extensions. Single-letter shortcuts exist
for every built-in command (for example "quartz d" starts the dev server).`

	versionTemplate = "quartz version: %s\n"

	devShortDescription   = "start the development server (d)"
	buildShortDescription = "build the project for production (b)"
	cleanShortDescription = "clean build artifacts (c)"
	modeShortDescription  = "add or remove project modes (m)"
	newShortDescription   = "scaffold project entities (n)"
	testShortDescription  = "run project tests (t)"
)

// executionOptions carries the ambient collaborators of a CLI run so tests
// can substitute every boundary.
type executionOptions struct {
	stdout           io.Writer
	stderr           io.Writer
	workingDirectory string
	logger           *zap.Logger
	browserOpener    browser.Opener
	clipboardCopier  clipboard.Copier
}

// Execute runs the quartz application.
func Execute(logger *zap.Logger) error {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return fmt.Errorf("unable to determine working directory: %w", workingDirectoryError)
	}
	return executeWithOptions(os.Args[1:], executionOptions{
		stdout:           os.Stdout,
		stderr:           os.Stderr,
		workingDirectory: workingDirectory,
		logger:           logger,
		browserOpener:    newBrowserOpener(os.Stderr),
		clipboardCopier:  clipboard.NewService(),
	})
}

// newBrowserOpener returns the platform browser service, or a printing
// stand-in on headless Linux where xdg-open has no display to attach to.
func newBrowserOpener(stderr io.Writer) browser.Opener {
	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return browser.PrintOpener{Printf: func(format string, arguments ...any) {
			fmt.Fprintf(stderr, format, arguments...)
		}}
	}
	return browser.NewService()
}

// executeWithOptions resolves the top-level command and hands the residual
// arguments to the matching cobra subcommand.
func executeWithOptions(arguments []string, options executionOptions) error {
	if options.logger == nil {
		options.logger = zap.NewNop()
	}
	resolved := resolveCommandLine(arguments)
	if resolved.Warning != "" {
		fmt.Fprintln(options.stderr, resolved.Warning)
	}
	if resolved.ShowVersion {
		fmt.Fprintf(options.stdout, versionTemplate, utils.GetApplicationVersion())
		return nil
	}
	rootCommand := createRootCommand(options, resolved.FallbackToHelp)
	rootCommand.SetOut(options.stdout)
	rootCommand.SetErr(options.stderr)
	rootCommand.SetArgs(append([]string{resolved.CommandName}, resolved.Arguments...))
	return rootCommand.Execute()
}

// createRootCommand builds the root cobra command with every built-in
// subcommand attached.
func createRootCommand(options executionOptions, fallbackToHelp bool) *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           utils.ApplicationName,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
	}
	rootCommand.AddCommand(
		newDescribeCommand(options),
		newInfoCommand(options),
		newExtCommand(options),
		newRunCommand(options, fallbackToHelp),
	)
	rootCommand.AddCommand(newDelegatedCommands(options)...)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}
