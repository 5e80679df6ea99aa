package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestInfoReportsProjectAndMissingTools(testingHandle *testing.T) {
	run := newTestRun(testingHandle)
	// An empty PATH makes every tool probe fail.
	testingHandle.Setenv("PATH", testingHandle.TempDir())
	writeTestFile(testingHandle,
		filepath.Join(run.options.workingDirectory, "node_modules", "quartz", "package.json"),
		`{"name":"quartz","version":"3.2.1"}`)

	if executeError := executeWithOptions([]string{"info"}, run.options); executeError != nil {
		testingHandle.Fatalf("info must not fail when tools are missing: %v", executeError)
	}
	output := run.stdout.String()
	if !strings.Contains(output, "Project root:      "+run.options.workingDirectory) {
		testingHandle.Fatalf("project root missing:\n%s", output)
	}
	if !strings.Contains(output, "Framework version: 3.2.1") {
		testingHandle.Fatalf("framework version missing:\n%s", output)
	}
	for _, toolName := range toolProbes {
		if !strings.Contains(output, toolName+":") {
			testingHandle.Fatalf("probe line for %s missing:\n%s", toolName, output)
		}
	}
	if strings.Count(output, notFoundValue) != len(toolProbes) {
		testingHandle.Fatalf("every unresolvable probe must report %q:\n%s", notFoundValue, output)
	}
}

func TestInfoSucceedsOutsideProject(testingHandle *testing.T) {
	testingHandle.Setenv("PATH", testingHandle.TempDir())
	stdout := &bytes.Buffer{}
	options := executionOptions{
		stdout:           stdout,
		stderr:           &bytes.Buffer{},
		workingDirectory: testingHandle.TempDir(),
	}

	if executeError := executeWithOptions([]string{"i"}, options); executeError != nil {
		testingHandle.Fatalf("info must succeed outside a project: %v", executeError)
	}
	output := stdout.String()
	if !strings.Contains(output, noProjectValue) {
		testingHandle.Fatalf("missing project notice absent:\n%s", output)
	}
	if !strings.Contains(output, notInstalledValue) {
		testingHandle.Fatalf("framework version must report %q:\n%s", notInstalledValue, output)
	}
	if !strings.Contains(output, "CLI version:") {
		testingHandle.Fatalf("CLI version line missing:\n%s", output)
	}
}
