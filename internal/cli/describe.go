package cli

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/quartzui/quartz-cli/internal/api"
	"github.com/quartzui/quartz-cli/internal/config"
	"github.com/quartzui/quartz-cli/internal/describe"
	"github.com/quartzui/quartz-cli/internal/project"
)

const (
	describeUse              = "describe <name|list> [filter]"
	describeShortDescription = "describe a component, directive or plugin API"
	describeLongDescription  = `Print a human-readable report of an API descriptor from the installed
framework or app extensions. Part flags restrict the report to selected
sections; without any part flag everything except docs is shown.
Use "quartz describe list" to enumerate every known API entry.`
	describeUsageExample = `  # Show only properties and events of QBtn
  quartz describe QBtn -p -e

  # List every API entry mentioning storage
  quartz describe list storage

  # Open the documentation page of a directive
  quartz describe Ripple --docs`

	listToken = "list"

	filterFlagName          = "filter"
	filterFlagShorthand     = "f"
	filterFlagDescription   = "only show members whose name contains the filter"
	copyFlagName            = "copy"
	copyFlagShorthand       = "c"
	copyFlagDescription     = "copy the rendered report to the system clipboard"
	noColorFlagName         = "no-color"
	noColorFlagDescription  = "disable styled output"
	clipboardMissingMessage = "clipboard service is not available"
)

type describeFlagValues struct {
	parts           describe.PartsSelection
	filter          string
	copyToClipboard bool
	noColor         bool
}

// newDescribeCommand returns the describe subcommand.
func newDescribeCommand(options executionOptions) *cobra.Command {
	var flagValues describeFlagValues

	describeCommand := &cobra.Command{
		Use:     describeUse,
		Short:   describeShortDescription,
		Long:    describeLongDescription,
		Example: describeUsageExample,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(command *cobra.Command, arguments []string) error {
			return runDescribe(options, flagValues, arguments)
		},
	}

	registerPartFlags(describeCommand.Flags(), &flagValues.parts)
	describeCommand.Flags().StringVarP(&flagValues.filter, filterFlagName, filterFlagShorthand, "", filterFlagDescription)
	describeCommand.Flags().BoolVarP(&flagValues.copyToClipboard, copyFlagName, copyFlagShorthand, false, copyFlagDescription)
	describeCommand.Flags().BoolVar(&flagValues.noColor, noColorFlagName, false, noColorFlagDescription)
	return describeCommand
}

func runDescribe(options executionOptions, flagValues describeFlagValues, arguments []string) error {
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: options.workingDirectory,
	})
	if configurationError != nil {
		return configurationError
	}

	memberFilter := flagValues.filter
	if memberFilter == "" && len(arguments) > 1 {
		memberFilter = arguments[1]
	}

	copyRequested := flagValues.copyToClipboard
	if !copyRequested && applicationConfiguration.Describe.Clipboard != nil {
		copyRequested = *applicationConfiguration.Describe.Clipboard
	}

	colorEnabled := describe.ColorEnabled(options.stdout)
	if applicationConfiguration.Describe.Color != nil && !*applicationConfiguration.Describe.Color {
		colorEnabled = false
	}
	if flagValues.noColor || copyRequested {
		// ANSI sequences must not end up on the clipboard.
		colorEnabled = false
	}
	styles := describe.NewStyles(colorEnabled)

	projectInfo, locateError := project.Locate(options.workingDirectory)
	if locateError != nil {
		return locateError
	}
	store := api.NewStore(projectInfo)

	outputWriter := options.stdout
	var clipboardBuffer *bytes.Buffer
	if copyRequested {
		clipboardBuffer = &bytes.Buffer{}
		outputWriter = io.MultiWriter(options.stdout, clipboardBuffer)
	}

	if arguments[0] == listToken {
		names, indexError := store.Index()
		if indexError != nil {
			return indexError
		}
		describe.RenderList(outputWriter, styles, names, memberFilter)
		return copyToClipboard(options, copyRequested, clipboardBuffer)
	}

	descriptor, supplier, resolveError := store.Resolve(arguments[0])
	if resolveError != nil {
		return resolveError
	}

	renderer := describe.NewRenderer(outputWriter, styles)
	renderer.Render(descriptor, supplier, flagValues.parts, memberFilter)

	if flagValues.parts.Effective().Docs && descriptor.Meta.DocsURL != "" && options.browserOpener != nil {
		// Fire-and-forget: the URL is already part of the report.
		options.browserOpener.Open(descriptor.Meta.DocsURL)
	}

	return copyToClipboard(options, copyRequested, clipboardBuffer)
}

func copyToClipboard(options executionOptions, copyRequested bool, clipboardBuffer *bytes.Buffer) error {
	if !copyRequested || clipboardBuffer == nil {
		return nil
	}
	if options.clipboardCopier == nil {
		return fmt.Errorf(clipboardMissingMessage)
	}
	return options.clipboardCopier.Copy(clipboardBuffer.String())
}
