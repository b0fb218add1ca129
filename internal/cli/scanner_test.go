package cli

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/doppel/internal/templates"
)

func writeSwiftTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestCollectInputsDirectory(t *testing.T) {
	root := t.TempDir()
	writeSwiftTree(t, root, map[string]string{
		"Sources/App/Service.swift": "protocol Service {}\n",
		"Sources/App/Model.swift":   "struct Model {}\n",
		"Sources/App/notes.txt":     "not swift\n",
		".build/Dep.swift":          "struct Dep {}\n",
	})

	files, err := NewSourceScanner().CollectInputs([]string{root})
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.True(t, sort.StringsAreSorted(files))
	assert.Equal(t, filepath.Join(root, "Sources/App/Model.swift"), files[0])
	assert.Equal(t, filepath.Join(root, "Sources/App/Service.swift"), files[1])
}

func TestCollectInputsWildcardSuffix(t *testing.T) {
	root := t.TempDir()
	writeSwiftTree(t, root, map[string]string{
		"Sources/App/Service.swift": "protocol Service {}\n",
	})

	files, err := NewSourceScanner().CollectInputs([]string{root + "/..."})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(root, "Sources/App/Service.swift"), files[0])
}

func TestCollectInputsExplicitFile(t *testing.T) {
	root := t.TempDir()
	writeSwiftTree(t, root, map[string]string{
		"Service.swift": "protocol Service {}\n",
	})
	path := filepath.Join(root, "Service.swift")

	files, err := NewSourceScanner().CollectInputs([]string{path})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestCollectInputsDeduplicates(t *testing.T) {
	root := t.TempDir()
	writeSwiftTree(t, root, map[string]string{
		"Service.swift": "protocol Service {}\n",
	})
	path := filepath.Join(root, "Service.swift")

	files, err := NewSourceScanner().CollectInputs([]string{root, path, path})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestCollectInputsSkipsGeneratedFiles(t *testing.T) {
	root := t.TempDir()
	writeSwiftTree(t, root, map[string]string{
		"Service.swift":    "protocol Service {}\n",
		"ServiceSpy.swift": templates.GeneratedHeader + "\n\nimport Foundation\n",
	})

	files, err := NewSourceScanner().CollectInputs([]string{root})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(root, "Service.swift"), files[0])
}

func TestCollectInputsMissingPath(t *testing.T) {
	_, err := NewSourceScanner().CollectInputs([]string{filepath.Join(t.TempDir(), "absent")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to stat")
}

func TestCollectInputsRejectsNonSwiftFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text\n"), 0644))

	_, err := NewSourceScanner().CollectInputs([]string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input")
}
