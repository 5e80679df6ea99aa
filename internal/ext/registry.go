// Package ext discovers installed Quartz app extensions and resolves
// extension-provided commands.
package ext

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"

	"github.com/quartzui/quartz-cli/internal/project"
)

const (
	manifestFileName    = "quartz.ext.json"
	commandBinaryPrefix = "quartz-ext-"
	apiDirectoryGlob    = "dist/api/*.json"
)

// ErrCommandNotFound reports that no installed extension provides the
// requested command.
var ErrCommandNotFound = errors.New("extension command not found")

// Extension describes one installed app extension package.
type Extension struct {
	PackageName string
	Version     string
	Description string
	HasAPI      bool
	CommandPath string
}

// manifest is the jsonc-tolerant quartz.ext.json shape. Manifests are
// hand-authored, so comments and trailing commas must parse.
type manifest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// Installed returns every app extension found under the project's
// node_modules, in lexical package order.
func Installed(info project.Info) ([]Extension, error) {
	manifestPattern := filepath.Join(info.NodeModulesDir(), project.ExtensionPackagePattern(), manifestFileName)
	manifestPaths, globError := doublestar.FilepathGlob(manifestPattern)
	if globError != nil {
		return nil, fmt.Errorf("scan extensions: %w", globError)
	}
	sort.Strings(manifestPaths)

	extensions := make([]Extension, 0, len(manifestPaths))
	for _, manifestPath := range manifestPaths {
		parsed, parseError := readManifest(manifestPath)
		if parseError != nil {
			return nil, parseError
		}
		packageDirectory := filepath.Dir(manifestPath)
		packageName := filepath.Base(packageDirectory)
		extension := Extension{
			PackageName: packageName,
			Version:     parsed.Version,
			Description: parsed.Description,
			HasAPI:      hasAPIMetadata(packageDirectory),
		}
		commandPath := filepath.Join(info.BinDir(), packageName)
		if information, statError := os.Stat(commandPath); statError == nil && !information.IsDir() {
			extension.CommandPath = commandPath
		}
		extensions = append(extensions, extension)
	}
	return extensions, nil
}

// ResolveCommand locates the binary for an extension command name. The
// name may be given with or without the package prefix.
func ResolveCommand(info project.Info, name string) (string, error) {
	binaryName := name
	if !strings.HasPrefix(binaryName, commandBinaryPrefix) {
		binaryName = commandBinaryPrefix + name
	}
	commandPath := filepath.Join(info.BinDir(), binaryName)
	information, statError := os.Stat(commandPath)
	if statError != nil || information.IsDir() {
		return "", fmt.Errorf("%w: %q", ErrCommandNotFound, name)
	}
	return commandPath, nil
}

func readManifest(path string) (manifest, error) {
	data, readError := os.ReadFile(path)
	if readError != nil {
		return manifest{}, fmt.Errorf("read extension manifest %s: %w", path, readError)
	}
	var parsed manifest
	if decodeError := json.Unmarshal(jsonc.ToJSON(data), &parsed); decodeError != nil {
		return manifest{}, fmt.Errorf("decode extension manifest %s: %w", path, decodeError)
	}
	return parsed, nil
}

func hasAPIMetadata(packageDirectory string) bool {
	matches, globError := doublestar.FilepathGlob(filepath.Join(packageDirectory, apiDirectoryGlob))
	return globError == nil && len(matches) > 0
}
