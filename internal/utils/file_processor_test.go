package utils

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

const testGeneratedHeader = "// Code generated by doppel. DO NOT EDIT."

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("creating %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", rel, err)
		}
	}
}

func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()
	var rels []string
	for _, path := range paths {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			t.Fatalf("relativizing %s: %v", path, err)
		}
		rels = append(rels, filepath.ToSlash(rel))
	}
	sort.Strings(rels)
	return rels
}

func TestCollectSwiftFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"Sources/App/Service.swift":       "protocol Service {}\n",
		"Sources/App/Model.swift":         "struct Model {}\n",
		"Sources/App/README.md":           "notes\n",
		"Sources/App/.hidden.swift":       "struct Hidden {}\n",
		".build/checkouts/Dep.swift":      "struct Dep {}\n",
		"Pods/Pod/Pod.swift":              "struct Pod {}\n",
		"DerivedData/Cache.swift":         "struct Cache {}\n",
		".git/hooks/sample.swift":         "struct Sample {}\n",
		"Tests/AppTests/ServiceSpy.swift": testGeneratedHeader + "\n\nimport Foundation\n",
	})

	processor := NewFileProcessor(testGeneratedHeader)
	files, err := processor.CollectSwiftFiles(root)
	if err != nil {
		t.Fatalf("CollectSwiftFiles failed: %v", err)
	}

	got := relPaths(t, root, files)
	want := []string{
		"Sources/App/Model.swift",
		"Sources/App/Service.swift",
	}
	if len(got) != len(want) {
		t.Fatalf("collected %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("collected[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCollectGeneratedFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"Sources/App/Service.swift":        "protocol Service {}\n",
		"Tests/AppTests/ServiceSpy.swift":  testGeneratedHeader + "\n\nimport Foundation\n",
		"Tests/AppTests/ServiceMock.swift": testGeneratedHeader + "\n\nimport Foundation\n",
		"Tests/AppTests/Manual.swift":      "// hand written\nfinal class Manual {}\n",
	})

	processor := NewFileProcessor(testGeneratedHeader)
	files, err := processor.CollectGeneratedFiles(root)
	if err != nil {
		t.Fatalf("CollectGeneratedFiles failed: %v", err)
	}

	got := relPaths(t, root, files)
	want := []string{
		"Tests/AppTests/ServiceMock.swift",
		"Tests/AppTests/ServiceSpy.swift",
	}
	if len(got) != len(want) {
		t.Fatalf("collected %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("collected[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCollectSwiftFilesMissingRoot(t *testing.T) {
	processor := NewFileProcessor(testGeneratedHeader)

	_, err := processor.CollectSwiftFiles(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected an error for a missing root")
	}
}

func TestIsGeneratedFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"Generated.swift":   testGeneratedHeader + "\n\nimport Foundation\n",
		"Manual.swift":      "import Foundation\n",
		"LeadingWS.swift":   "   " + testGeneratedHeader + "\nimport Foundation\n",
		"WrongHeader.swift": "// Code generated by somethingelse. DO NOT EDIT.\n",
	})

	processor := NewFileProcessor(testGeneratedHeader)

	tests := []struct {
		name     string
		expected bool
	}{
		{"Generated.swift", true},
		{"Manual.swift", false},
		{"LeadingWS.swift", true},
		{"WrongHeader.swift", false},
	}
	for _, tt := range tests {
		if got := processor.IsGeneratedFile(filepath.Join(root, tt.name)); got != tt.expected {
			t.Errorf("IsGeneratedFile(%s) = %v, want %v", tt.name, got, tt.expected)
		}
	}

	if processor.IsGeneratedFile(filepath.Join(root, "Absent.swift")) {
		t.Error("IsGeneratedFile should be false for unreadable files")
	}
}

func TestShouldSkipDir(t *testing.T) {
	skipped := []string{".build", "DerivedData", "Pods", "Carthage", ".git", ".swiftpm"}
	for _, name := range skipped {
		if !shouldSkipDir(name) {
			t.Errorf("shouldSkipDir(%q) = false", name)
		}
	}

	kept := []string{"Sources", "Tests", "App", "build"}
	for _, name := range kept {
		if shouldSkipDir(name) {
			t.Errorf("shouldSkipDir(%q) = true", name)
		}
	}
}
