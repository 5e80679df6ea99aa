package config

import (
	"os"
	"path/filepath"
	"testing"
)

func boolPointer(value bool) *bool {
	return &value
}

func TestMergeProjectOverridesGlobal(testingHandle *testing.T) {
	global := ApplicationConfiguration{
		Describe: DescribeConfiguration{Color: boolPointer(true), Clipboard: boolPointer(false)},
		Runner:   RunnerConfiguration{Script: "quartz-app"},
	}
	local := ApplicationConfiguration{
		Describe: DescribeConfiguration{Color: boolPointer(false)},
	}

	merged := global.Merge(local)
	if merged.Describe.Color == nil || *merged.Describe.Color {
		testingHandle.Fatalf("local color=false must win, got %+v", merged.Describe.Color)
	}
	if merged.Describe.Clipboard == nil || *merged.Describe.Clipboard {
		testingHandle.Fatalf("unset local clipboard must keep the global value")
	}
	if merged.Runner.Script != "quartz-app" {
		testingHandle.Fatalf("unset local runner script must keep the global value, got %q", merged.Runner.Script)
	}
}

func TestMergeCopiesBooleanPointers(testingHandle *testing.T) {
	override := ApplicationConfiguration{Describe: DescribeConfiguration{Color: boolPointer(true)}}
	merged := ApplicationConfiguration{}.Merge(override)
	*override.Describe.Color = false
	if merged.Describe.Color == nil || !*merged.Describe.Color {
		testingHandle.Fatalf("merged configuration must not alias the override's pointer")
	}
}

func TestLoadApplicationConfigurationReadsProjectFile(testingHandle *testing.T) {
	testingHandle.Setenv("XDG_CONFIG_HOME", testingHandle.TempDir())

	workingDirectory := testingHandle.TempDir()
	configPath := filepath.Join(workingDirectory, "quartz.yaml")
	content := "describe:\n  color: false\n  clipboard: true\nrunner:\n  script: custom-runner\n"
	if writeError := os.WriteFile(configPath, []byte(content), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write configuration: %v", writeError)
	}

	loaded, loadError := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory})
	if loadError != nil {
		testingHandle.Fatalf("load failed: %v", loadError)
	}
	if loaded.Describe.Color == nil || *loaded.Describe.Color {
		testingHandle.Fatalf("expected color=false, got %+v", loaded.Describe.Color)
	}
	if loaded.Describe.Clipboard == nil || !*loaded.Describe.Clipboard {
		testingHandle.Fatalf("expected clipboard=true, got %+v", loaded.Describe.Clipboard)
	}
	if loaded.Runner.Script != "custom-runner" {
		testingHandle.Fatalf("expected custom runner script, got %q", loaded.Runner.Script)
	}
}

func TestLoadApplicationConfigurationGlobalThenProject(testingHandle *testing.T) {
	globalHome := testingHandle.TempDir()
	testingHandle.Setenv("XDG_CONFIG_HOME", globalHome)
	globalPath := filepath.Join(globalHome, "quartz", "quartz.yaml")
	if makeDirError := os.MkdirAll(filepath.Dir(globalPath), 0o755); makeDirError != nil {
		testingHandle.Fatalf("failed to create global config directory: %v", makeDirError)
	}
	if writeError := os.WriteFile(globalPath, []byte("describe:\n  color: true\nrunner:\n  script: global-runner\n"), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write global configuration: %v", writeError)
	}

	workingDirectory := testingHandle.TempDir()
	if writeError := os.WriteFile(filepath.Join(workingDirectory, "quartz.yaml"), []byte("describe:\n  color: false\n"), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write project configuration: %v", writeError)
	}

	loaded, loadError := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory})
	if loadError != nil {
		testingHandle.Fatalf("load failed: %v", loadError)
	}
	if loaded.Describe.Color == nil || *loaded.Describe.Color {
		testingHandle.Fatalf("project value must override the global one")
	}
	if loaded.Runner.Script != "global-runner" {
		testingHandle.Fatalf("global runner script must survive the merge, got %q", loaded.Runner.Script)
	}
}

func TestLoadApplicationConfigurationMissingFilesAreFine(testingHandle *testing.T) {
	testingHandle.Setenv("XDG_CONFIG_HOME", testingHandle.TempDir())
	loaded, loadError := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: testingHandle.TempDir()})
	if loadError != nil {
		testingHandle.Fatalf("missing configuration files must not fail: %v", loadError)
	}
	if loaded.Describe.Color != nil || loaded.Runner.Script != "" {
		testingHandle.Fatalf("expected an empty configuration, got %+v", loaded)
	}
}
