package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// OutputResolver decides where one input file's artifacts land. The -o flag
// beats the config output, which beats the Sources/Tests convention, which
// beats the input file's own directory.
type OutputResolver struct {
	Explicit string // the -o flag, "" when unset
	Config   string // the config output key, "" when unset
}

// Resolve returns the output directory for artifacts of inputFile
func (r *OutputResolver) Resolve(inputFile string) string {
	if r.Explicit != "" {
		return r.Explicit
	}
	if r.Config != "" {
		return r.Config
	}
	if dir, ok := testTargetDir(inputFile); ok {
		return dir
	}
	return filepath.Dir(inputFile)
}

// testTargetDir maps Sources/<Target>/... to the sibling Tests/<Target>Tests
// directory, but only when that directory already exists
func testTargetDir(inputFile string) (string, bool) {
	sep := string(filepath.Separator)
	parts := strings.Split(filepath.Dir(inputFile), sep)

	for i := 0; i+1 < len(parts); i++ {
		if parts[i] != "Sources" {
			continue
		}
		mapped := append(append([]string{}, parts[:i]...), "Tests", parts[i+1]+"Tests")
		candidate := strings.Join(mapped, sep)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, true
		}
		return "", false
	}

	return "", false
}
