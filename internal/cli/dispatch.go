package cli

import "strings"

const (
	commandDev      = "dev"
	commandBuild    = "build"
	commandExt      = "ext"
	commandRun      = "run"
	commandClean    = "clean"
	commandMode     = "mode"
	commandInfo     = "info"
	commandNew      = "new"
	commandTest     = "test"
	commandHelp     = "help"
	commandDescribe = "describe"

	versionFlagShort = "-v"
	versionFlagLong  = "--version"
	helpFlagShort    = "-h"
	helpFlagLong     = "--help"

	misplacedOptionWarning = "Warning: command must come before options"
)

// commandAliases maps single-letter shortcuts to full command names.
// Resolution is case-sensitive and exact; there is no fuzzy matching.
var commandAliases = map[string]string{
	"d": commandDev,
	"b": commandBuild,
	"e": commandExt,
	"r": commandRun,
	"c": commandClean,
	"m": commandMode,
	"i": commandInfo,
	"n": commandNew,
	"t": commandTest,
	"h": commandHelp,
}

// knownCommands is the fixed allow-list of built-in commands.
var knownCommands = map[string]struct{}{
	commandDev:      {},
	commandBuild:    {},
	commandExt:      {},
	commandRun:      {},
	commandClean:    {},
	commandMode:     {},
	commandInfo:     {},
	commandNew:      {},
	commandTest:     {},
	commandHelp:     {},
	commandDescribe: {},
}

// resolution is the outcome of top-level command resolution.
type resolution struct {
	CommandName    string
	Arguments      []string
	Warning        string
	ShowVersion    bool
	FallbackToHelp bool
}

// resolveCommandLine determines which subcommand the argument vector
// addresses. Unknown single letters pass through unchanged and fail the
// allow-list check; an unrecognized non-option token is handed to the run
// command as a candidate extension command, with general help as the
// fallback when it cannot be found.
func resolveCommandLine(arguments []string) resolution {
	if len(arguments) == 0 {
		return resolution{CommandName: commandHelp}
	}
	candidate := arguments[0]
	resolved := candidate
	if len(candidate) == 1 {
		if fullName, aliased := commandAliases[candidate]; aliased {
			resolved = fullName
		}
	}
	if _, known := knownCommands[resolved]; known {
		return resolution{CommandName: resolved, Arguments: arguments[1:]}
	}
	switch candidate {
	case versionFlagShort, versionFlagLong:
		return resolution{ShowVersion: true}
	case helpFlagShort, helpFlagLong:
		return resolution{CommandName: commandHelp}
	}
	if strings.HasPrefix(candidate, "-") {
		return resolution{CommandName: commandHelp, Warning: misplacedOptionWarning}
	}
	return resolution{CommandName: commandRun, Arguments: arguments, FallbackToHelp: true}
}
