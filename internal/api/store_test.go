package api

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/quartzui/quartz-cli/internal/project"
)

func writeTestFile(testingHandle *testing.T, filePath string, content string) {
	testingHandle.Helper()
	if makeDirError := os.MkdirAll(filepath.Dir(filePath), 0o755); makeDirError != nil {
		testingHandle.Fatalf("failed to create directory for %s: %v", filePath, makeDirError)
	}
	if writeError := os.WriteFile(filePath, []byte(content), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write %s: %v", filePath, writeError)
	}
}

// newTestProject lays out a minimal Quartz project with framework metadata
// and one app extension.
func newTestProject(testingHandle *testing.T) project.Info {
	testingHandle.Helper()
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "quartz.config.js"), "module.exports = {}\n")

	frameworkAPIDir := filepath.Join(rootDirectory, "node_modules", "quartz", "dist", "api")
	writeTestFile(testingHandle, filepath.Join(frameworkAPIDir, "QBtn.json"),
		`{"type":"component","props":{"color":{"type":"String","desc":"brand color"}}}`)
	writeTestFile(testingHandle, filepath.Join(frameworkAPIDir, "api-list.json"),
		`["QLocalStorage","QIcon","QBtn"]`)

	extensionAPIDir := filepath.Join(rootDirectory, "node_modules", "quartz-ext-maps", "dist", "api")
	writeTestFile(testingHandle, filepath.Join(extensionAPIDir, "QMap.json"),
		`{"type":"component","props":{"zoom":{"type":"Number"}}}`)
	writeTestFile(testingHandle, filepath.Join(extensionAPIDir, "QBtn.json"),
		`{"type":"component","props":{"shadowed":{"type":"Boolean"}}}`)

	information, locateError := project.Locate(rootDirectory)
	if locateError != nil {
		testingHandle.Fatalf("failed to locate test project: %v", locateError)
	}
	return information
}

func TestResolvePrefersFrameworkMetadata(testingHandle *testing.T) {
	store := NewStore(newTestProject(testingHandle))
	descriptor, supplier, resolveError := store.Resolve("QBtn")
	if resolveError != nil {
		testingHandle.Fatalf("resolve failed: %v", resolveError)
	}
	if supplier != SupplierFramework {
		testingHandle.Fatalf("expected framework supplier, got %q", supplier)
	}
	if descriptor.Name != "QBtn" {
		testingHandle.Fatalf("unexpected descriptor name %q", descriptor.Name)
	}
	if _, found := descriptor.Component.Props.Get("color"); !found {
		testingHandle.Fatalf("framework descriptor was shadowed by the extension copy")
	}
}

func TestResolveFindsExtensionMetadata(testingHandle *testing.T) {
	store := NewStore(newTestProject(testingHandle))
	descriptor, supplier, resolveError := store.Resolve("QMap")
	if resolveError != nil {
		testingHandle.Fatalf("resolve failed: %v", resolveError)
	}
	if supplier != Supplier("quartz-ext-maps") {
		testingHandle.Fatalf("expected extension supplier, got %q", supplier)
	}
	if descriptor.Kind != KindComponent {
		testingHandle.Fatalf("unexpected kind %q", descriptor.Kind)
	}
}

func TestResolveUnknownNameFails(testingHandle *testing.T) {
	store := NewStore(newTestProject(testingHandle))
	_, _, resolveError := store.Resolve("QDoesNotExist")
	if resolveError == nil || !errors.Is(resolveError, ErrUnknownName) {
		testingHandle.Fatalf("expected ErrUnknownName, got %v", resolveError)
	}
}

func TestIndexMergesFrameworkAndExtensions(testingHandle *testing.T) {
	store := NewStore(newTestProject(testingHandle))
	names, indexError := store.Index()
	if indexError != nil {
		testingHandle.Fatalf("index failed: %v", indexError)
	}
	expected := []string{"QLocalStorage", "QIcon", "QBtn", "QMap"}
	if len(names) != len(expected) {
		testingHandle.Fatalf("expected %v, got %v", expected, names)
	}
	for index, expectedName := range expected {
		if names[index] != expectedName {
			testingHandle.Fatalf("entry %d: expected %q, got %q", index, expectedName, names[index])
		}
	}
}

func TestIndexFailsWithoutListing(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "quartz.config.js"), "module.exports = {}\n")
	information, locateError := project.Locate(rootDirectory)
	if locateError != nil {
		testingHandle.Fatalf("failed to locate test project: %v", locateError)
	}
	store := NewStore(information)
	if _, indexError := store.Index(); indexError == nil {
		testingHandle.Fatalf("expected an error when the API listing is missing")
	}
}
