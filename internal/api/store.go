package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/quartzui/quartz-cli/internal/project"
)

const (
	indexFileName     = "api-list.json"
	apiFileSuffix     = ".json"
	extensionAPIBlob  = "quartz-ext-*/dist/api"
	frameworkSupplier = "quartz"
)

// Supplier identifies where a descriptor came from: the base framework or
// a named app extension package.
type Supplier string

// SupplierFramework marks descriptors shipped by the framework itself.
const SupplierFramework Supplier = Supplier(frameworkSupplier)

// ErrUnknownName reports that no installed package supplies metadata for
// the requested name.
var ErrUnknownName = errors.New("no API metadata found")

// Store resolves API descriptors from the framework distribution and any
// installed app extensions.
type Store struct {
	frameworkAPIDir string
	nodeModulesDir  string
}

// NewStore builds a store for the given project.
func NewStore(info project.Info) *Store {
	return &Store{
		frameworkAPIDir: info.FrameworkAPIDir(),
		nodeModulesDir:  info.NodeModulesDir(),
	}
}

// Resolve loads the descriptor for name, preferring the framework's own
// metadata over extension-supplied files with the same name.
func (store *Store) Resolve(name string) (*Descriptor, Supplier, error) {
	frameworkPath := filepath.Join(store.frameworkAPIDir, name+apiFileSuffix)
	if descriptor, loadError := loadDescriptorFile(frameworkPath, name); loadError == nil {
		return descriptor, SupplierFramework, nil
	} else if !errors.Is(loadError, os.ErrNotExist) {
		return nil, "", loadError
	}

	extensionPaths, globError := store.extensionAPIFiles(name + apiFileSuffix)
	if globError != nil {
		return nil, "", globError
	}
	for _, extensionPath := range extensionPaths {
		descriptor, loadError := loadDescriptorFile(extensionPath, name)
		if loadError != nil {
			if errors.Is(loadError, os.ErrNotExist) {
				continue
			}
			return nil, "", loadError
		}
		return descriptor, supplierForPath(store.nodeModulesDir, extensionPath), nil
	}
	return nil, "", fmt.Errorf("%w for %q", ErrUnknownName, name)
}

// Index returns every known API entry name: the framework listing in file
// order followed by extension entries in package order.
func (store *Store) Index() ([]string, error) {
	indexPath := filepath.Join(store.frameworkAPIDir, indexFileName)
	indexData, readError := os.ReadFile(indexPath)
	if readError != nil {
		return nil, fmt.Errorf("read API listing %s: %w", indexPath, readError)
	}
	var names []string
	if decodeError := json.Unmarshal(indexData, &names); decodeError != nil {
		return nil, fmt.Errorf("decode API listing %s: %w", indexPath, decodeError)
	}

	extensionPaths, globError := store.extensionAPIFiles("*" + apiFileSuffix)
	if globError != nil {
		return nil, globError
	}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		seen[name] = struct{}{}
	}
	for _, extensionPath := range extensionPaths {
		name := strings.TrimSuffix(filepath.Base(extensionPath), apiFileSuffix)
		if name == strings.TrimSuffix(indexFileName, apiFileSuffix) {
			continue
		}
		if _, duplicate := seen[name]; duplicate {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}

func (store *Store) extensionAPIFiles(fileGlob string) ([]string, error) {
	pattern := filepath.Join(store.nodeModulesDir, extensionAPIBlob, fileGlob)
	matches, globError := doublestar.FilepathGlob(pattern)
	if globError != nil {
		return nil, fmt.Errorf("scan extension metadata: %w", globError)
	}
	sort.Strings(matches)
	return matches, nil
}

func loadDescriptorFile(path string, name string) (*Descriptor, error) {
	data, readError := os.ReadFile(path)
	if readError != nil {
		return nil, readError
	}
	var descriptor Descriptor
	if decodeError := json.Unmarshal(data, &descriptor); decodeError != nil {
		return nil, fmt.Errorf("decode API metadata %s: %w", path, decodeError)
	}
	descriptor.Name = name
	return &descriptor, nil
}

func supplierForPath(nodeModulesDir string, path string) Supplier {
	relativePath, relativeError := filepath.Rel(nodeModulesDir, path)
	if relativeError != nil {
		return SupplierFramework
	}
	segments := strings.Split(filepath.ToSlash(relativePath), "/")
	if len(segments) == 0 {
		return SupplierFramework
	}
	return Supplier(segments[0])
}
