// Package project locates a Quartz project on disk and exposes its layout.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	markerFileName          = "quartz.config.js"
	markerFileNameTS        = "quartz.config.ts"
	nodeModulesDirectory    = "node_modules"
	frameworkPackageName    = "quartz"
	distDirectoryName       = "dist"
	apiDirectoryName        = "api"
	binDirectoryName        = ".bin"
	runnerScriptName        = "quartz-app"
	extensionPackagePattern = "quartz-ext-*"
)

// ErrNotFound reports that no Quartz project marker exists in or above the
// starting directory.
var ErrNotFound = errors.New("no Quartz project found")

// Info describes a located project.
type Info struct {
	RootDirectory string
}

// Locate walks upward from startDirectory until it finds a directory
// containing a quartz.config.js or quartz.config.ts marker.
func Locate(startDirectory string) (Info, error) {
	absoluteStart, absoluteError := filepath.Abs(startDirectory)
	if absoluteError != nil {
		return Info{}, fmt.Errorf("resolve %s: %w", startDirectory, absoluteError)
	}
	currentDirectory := absoluteStart
	for {
		for _, markerName := range []string{markerFileName, markerFileNameTS} {
			markerPath := filepath.Join(currentDirectory, markerName)
			if information, statError := os.Stat(markerPath); statError == nil && !information.IsDir() {
				return Info{RootDirectory: currentDirectory}, nil
			}
		}
		parentDirectory := filepath.Dir(currentDirectory)
		if parentDirectory == currentDirectory {
			break
		}
		currentDirectory = parentDirectory
	}
	return Info{}, fmt.Errorf("%w in or above %s", ErrNotFound, absoluteStart)
}

// NodeModulesDir returns the project's node_modules directory.
func (info Info) NodeModulesDir() string {
	return filepath.Join(info.RootDirectory, nodeModulesDirectory)
}

// FrameworkDir returns the installed framework package directory.
func (info Info) FrameworkDir() string {
	return filepath.Join(info.NodeModulesDir(), frameworkPackageName)
}

// FrameworkAPIDir returns the directory holding the framework's prebuilt
// API metadata files.
func (info Info) FrameworkAPIDir() string {
	return filepath.Join(info.FrameworkDir(), distDirectoryName, apiDirectoryName)
}

// RunnerPath returns the project-local runner script the delegated
// commands hand off to.
func (info Info) RunnerPath() string {
	return filepath.Join(info.NodeModulesDir(), binDirectoryName, runnerScriptName)
}

// BinDir returns the directory extension command binaries install into.
func (info Info) BinDir() string {
	return filepath.Join(info.NodeModulesDir(), binDirectoryName)
}

// ExtensionPackagePattern returns the glob pattern matching installed app
// extension packages relative to node_modules.
func ExtensionPackagePattern() string {
	return extensionPackagePattern
}
