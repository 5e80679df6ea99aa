package cli

import (
	"github.com/spf13/pflag"

	"github.com/quartzui/quartz-cli/internal/describe"
)

// partFlagDefinition binds one API part flag to its selection field.
type partFlagDefinition struct {
	name        string
	shorthand   string
	description string
	target      func(selection *describe.PartsSelection) *bool
}

var partFlagDefinitions = []partFlagDefinition{
	{"props", "p", "show properties", func(selection *describe.PartsSelection) *bool { return &selection.Props }},
	{"slots", "s", "show slots", func(selection *describe.PartsSelection) *bool { return &selection.Slots }},
	{"methods", "m", "show methods", func(selection *describe.PartsSelection) *bool { return &selection.Methods }},
	{"events", "e", "show events", func(selection *describe.PartsSelection) *bool { return &selection.Events }},
	{"value", "v", "show directive value", func(selection *describe.PartsSelection) *bool { return &selection.Value }},
	{"arg", "a", "show directive argument", func(selection *describe.PartsSelection) *bool { return &selection.Arg }},
	{"modifiers", "M", "show directive modifiers", func(selection *describe.PartsSelection) *bool { return &selection.Modifiers }},
	{"injection", "i", "show plugin injection point", func(selection *describe.PartsSelection) *bool { return &selection.Injection }},
	{"quartz", "q", "show framework configuration options", func(selection *describe.PartsSelection) *bool { return &selection.Quartz }},
	{"docs", "d", "open the documentation URL in a browser", func(selection *describe.PartsSelection) *bool { return &selection.Docs }},
}

// registerPartFlags adds every API part flag to the flag set.
func registerPartFlags(flagSet *pflag.FlagSet, selection *describe.PartsSelection) {
	for _, definition := range partFlagDefinitions {
		flagSet.BoolVarP(definition.target(selection), definition.name, definition.shorthand, false, definition.description)
	}
}
