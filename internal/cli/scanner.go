package cli

import (
	"os"
	"sort"
	"strings"

	doppelerrors "github.com/toyz/doppel/internal/errors"
	"github.com/toyz/doppel/internal/templates"
	"github.com/toyz/doppel/internal/utils"
)

// SourceScanner resolves CLI inputs into the list of Swift files to process.
// Inputs may be files, directories, or dir/... patterns; directories scan
// recursively either way.
type SourceScanner struct {
	processor *utils.FileProcessor
}

// NewSourceScanner creates a new source scanner
func NewSourceScanner() *SourceScanner {
	return &SourceScanner{
		processor: utils.NewFileProcessor(templates.GeneratedHeader),
	}
}

// Processor exposes the underlying file processor so the run shares its
// read cache
func (s *SourceScanner) Processor() *utils.FileProcessor {
	return s.processor
}

// CollectInputs expands the argument list into unique Swift file paths in
// deterministic order
func (s *SourceScanner) CollectInputs(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(paths ...string) {
		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				files = append(files, p)
			}
		}
	}

	for _, arg := range args {
		path := strings.TrimSuffix(arg, "/...")
		if path == "" {
			path = "."
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, doppelerrors.WrapFileSystemError("stat", path, err)
		}

		if info.IsDir() {
			found, err := s.processor.CollectSwiftFiles(path)
			if err != nil {
				return nil, err
			}
			add(found...)
			continue
		}

		if !strings.HasSuffix(path, ".swift") {
			return nil, doppelerrors.NewValidationError("input", "a .swift file or a directory", path)
		}
		add(path)
	}

	sort.Strings(files)
	return files, nil
}
