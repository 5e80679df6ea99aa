package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/quartzui/quartz-cli/internal/project"
	"github.com/quartzui/quartz-cli/internal/utils"
)

const (
	infoUse              = "info"
	infoShortDescription = "display environment information (i)"

	notInstalledValue = "not installed"
	notFoundValue     = "not found"
	noProjectValue    = "not inside a Quartz project"
)

// toolProbes are external tools whose versions the info command reports.
// Probes run concurrently; a missing tool is informational, never an error.
var toolProbes = []string{"node", "npm"}

// newInfoCommand returns the info subcommand.
func newInfoCommand(options executionOptions) *cobra.Command {
	return &cobra.Command{
		Use:   infoUse,
		Short: infoShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return runInfo(options)
		},
	}
}

func runInfo(options executionOptions) error {
	projectRoot := noProjectValue
	frameworkVersion := notInstalledValue
	projectInfo, locateError := project.Locate(options.workingDirectory)
	if locateError == nil {
		projectRoot = projectInfo.RootDirectory
		if version, versionError := frameworkPackageVersion(projectInfo); versionError == nil {
			frameworkVersion = version
		}
	} else if !errors.Is(locateError, project.ErrNotFound) {
		return locateError
	}

	toolVersions := make([]string, len(toolProbes))
	var group errgroup.Group
	for probeIndex, probeName := range toolProbes {
		probeIndex, probeName := probeIndex, probeName
		group.Go(func() error {
			toolVersions[probeIndex] = probeToolVersion(probeName)
			return nil
		})
	}
	if waitError := group.Wait(); waitError != nil {
		return waitError
	}

	fmt.Fprintf(options.stdout, " CLI version:       %s\n", utils.GetApplicationVersion())
	fmt.Fprintf(options.stdout, " OS/arch:           %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(options.stdout, " Go runtime:        %s\n", runtime.Version())
	fmt.Fprintf(options.stdout, " Project root:      %s\n", projectRoot)
	fmt.Fprintf(options.stdout, " Framework version: %s\n", frameworkVersion)
	for probeIndex, probeName := range toolProbes {
		fmt.Fprintf(options.stdout, " %-18s %s\n", probeName+":", toolVersions[probeIndex])
	}
	return nil
}

func frameworkPackageVersion(projectInfo project.Info) (string, error) {
	manifestPath := filepath.Join(projectInfo.FrameworkDir(), "package.json")
	manifestData, readError := os.ReadFile(manifestPath)
	if readError != nil {
		return "", readError
	}
	var manifest struct {
		Version string `json:"version"`
	}
	if decodeError := json.Unmarshal(manifestData, &manifest); decodeError != nil {
		return "", decodeError
	}
	if manifest.Version == "" {
		return "", fmt.Errorf("no version in %s", manifestPath)
	}
	return manifest.Version, nil
}

func probeToolVersion(toolName string) string {
	output, probeError := exec.Command(toolName, "--version").Output()
	if probeError != nil {
		return notFoundValue
	}
	return strings.TrimSpace(string(output))
}
