package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveExplicitWins(t *testing.T) {
	resolver := &OutputResolver{Explicit: "out", Config: "cfg"}
	assert.Equal(t, "out", resolver.Resolve("Sources/App/Service.swift"))
}

func TestResolveConfigBeatsConvention(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Tests", "AppTests"), 0755))

	resolver := &OutputResolver{Config: "cfg"}
	assert.Equal(t, "cfg", resolver.Resolve(filepath.Join(root, "Sources", "App", "Service.swift")))
}

func TestResolveTestsConvention(t *testing.T) {
	root := t.TempDir()
	testsDir := filepath.Join(root, "Tests", "AppTests")
	require.NoError(t, os.MkdirAll(testsDir, 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Sources", "App"), 0755))

	resolver := &OutputResolver{}
	input := filepath.Join(root, "Sources", "App", "Service.swift")
	assert.Equal(t, testsDir, resolver.Resolve(input))
}

func TestResolveConventionCoversNestedSources(t *testing.T) {
	root := t.TempDir()
	testsDir := filepath.Join(root, "Tests", "AppTests")
	require.NoError(t, os.MkdirAll(testsDir, 0755))

	resolver := &OutputResolver{}
	input := filepath.Join(root, "Sources", "App", "Networking", "Client.swift")
	assert.Equal(t, testsDir, resolver.Resolve(input))
}

func TestResolveConventionNeedsExistingTestsDir(t *testing.T) {
	root := t.TempDir()
	input := filepath.Join(root, "Sources", "App", "Service.swift")
	require.NoError(t, os.MkdirAll(filepath.Dir(input), 0755))

	resolver := &OutputResolver{}
	assert.Equal(t, filepath.Dir(input), resolver.Resolve(input))
}

func TestResolveConventionNeedsTargetComponent(t *testing.T) {
	root := t.TempDir()
	// a file directly under Sources has no target to map
	input := filepath.Join(root, "Sources", "Service.swift")
	require.NoError(t, os.MkdirAll(filepath.Dir(input), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Tests"), 0755))

	resolver := &OutputResolver{}
	assert.Equal(t, filepath.Dir(input), resolver.Resolve(input))
}

func TestResolveFallsBackToInputDir(t *testing.T) {
	root := t.TempDir()
	input := filepath.Join(root, "Lib", "Service.swift")
	require.NoError(t, os.MkdirAll(filepath.Dir(input), 0755))

	resolver := &OutputResolver{}
	assert.Equal(t, filepath.Join(root, "Lib"), resolver.Resolve(input))
}

func TestResolveConventionRequiresDirNotFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Tests"), 0755))
	// a file where the Tests target dir would be does not count
	require.NoError(t, os.WriteFile(filepath.Join(root, "Tests", "AppTests"), []byte("x"), 0644))

	resolver := &OutputResolver{}
	input := filepath.Join(root, "Sources", "App", "Service.swift")
	assert.Equal(t, filepath.Dir(input), resolver.Resolve(input))
}
