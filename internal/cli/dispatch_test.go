package cli

import (
	"reflect"
	"testing"
)

func TestResolveCommandLineAliases(testingHandle *testing.T) {
	for alias, fullName := range commandAliases {
		resolved := resolveCommandLine([]string{alias, "--flag", "value"})
		if resolved.CommandName != fullName {
			testingHandle.Fatalf("alias %q: expected %q, got %q", alias, fullName, resolved.CommandName)
		}
		if !reflect.DeepEqual(resolved.Arguments, []string{"--flag", "value"}) {
			testingHandle.Fatalf("alias %q: arguments not forwarded: %v", alias, resolved.Arguments)
		}
		if resolved.Warning != "" || resolved.ShowVersion || resolved.FallbackToHelp {
			testingHandle.Fatalf("alias %q produced unexpected side outcome: %+v", alias, resolved)
		}
	}
}

func TestResolveCommandLineFullNameConsumesToken(testingHandle *testing.T) {
	resolved := resolveCommandLine([]string{"describe", "QBtn", "--props"})
	if resolved.CommandName != commandDescribe {
		testingHandle.Fatalf("expected describe, got %q", resolved.CommandName)
	}
	if !reflect.DeepEqual(resolved.Arguments, []string{"QBtn", "--props"}) {
		testingHandle.Fatalf("unexpected arguments %v", resolved.Arguments)
	}
}

func TestResolveCommandLineEmptyShowsHelp(testingHandle *testing.T) {
	resolved := resolveCommandLine(nil)
	if resolved.CommandName != commandHelp {
		testingHandle.Fatalf("expected help, got %q", resolved.CommandName)
	}
}

func TestResolveCommandLineVersionFlags(testingHandle *testing.T) {
	for _, flag := range []string{versionFlagShort, versionFlagLong} {
		resolved := resolveCommandLine([]string{flag})
		if !resolved.ShowVersion {
			testingHandle.Fatalf("flag %q did not request the version", flag)
		}
		if resolved.CommandName != "" {
			testingHandle.Fatalf("flag %q resolved to a command: %q", flag, resolved.CommandName)
		}
	}
}

func TestResolveCommandLineHelpFlags(testingHandle *testing.T) {
	for _, flag := range []string{helpFlagShort, helpFlagLong} {
		resolved := resolveCommandLine([]string{flag})
		if resolved.CommandName != commandHelp || resolved.Warning != "" {
			testingHandle.Fatalf("flag %q: unexpected resolution %+v", flag, resolved)
		}
	}
}

func TestResolveCommandLineMisplacedOptionWarns(testingHandle *testing.T) {
	resolved := resolveCommandLine([]string{"--props", "describe"})
	if resolved.CommandName != commandHelp {
		testingHandle.Fatalf("expected help, got %q", resolved.CommandName)
	}
	if resolved.Warning != misplacedOptionWarning {
		testingHandle.Fatalf("expected misplaced option warning, got %q", resolved.Warning)
	}
}

func TestResolveCommandLineUnknownTokenFallsBackToRun(testingHandle *testing.T) {
	resolved := resolveCommandLine([]string{"deploy", "--target", "staging"})
	if resolved.CommandName != commandRun {
		testingHandle.Fatalf("expected run, got %q", resolved.CommandName)
	}
	if !resolved.FallbackToHelp {
		testingHandle.Fatalf("expected the help fallback to be armed")
	}
	// The candidate token stays in place so run can resolve it as an
	// extension command.
	if !reflect.DeepEqual(resolved.Arguments, []string{"deploy", "--target", "staging"}) {
		testingHandle.Fatalf("candidate token was consumed: %v", resolved.Arguments)
	}
}

func TestResolveCommandLineUnknownSingleLetterFallsBackToRun(testingHandle *testing.T) {
	resolved := resolveCommandLine([]string{"x"})
	if resolved.CommandName != commandRun || !resolved.FallbackToHelp {
		testingHandle.Fatalf("unexpected resolution %+v", resolved)
	}
	if !reflect.DeepEqual(resolved.Arguments, []string{"x"}) {
		testingHandle.Fatalf("candidate token was consumed: %v", resolved.Arguments)
	}
}
