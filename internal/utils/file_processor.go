package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// skipDirNames are tool and dependency directories never worth scanning
var skipDirNames = map[string]bool{
	".build":      true, // SwiftPM
	"DerivedData": true, // Xcode
	"Pods":        true, // CocoaPods
	"Carthage":    true,
}

// FileProcessor discovers Swift sources beneath input paths. Files opening
// with the generated header are tool output, not input.
type FileProcessor struct {
	reader          *FileReader
	generatedHeader string
}

// NewFileProcessor creates a processor. generatedHeader is the first line
// that marks a file as previously generated by this tool.
func NewFileProcessor(generatedHeader string) *FileProcessor {
	return &FileProcessor{
		reader:          NewFileReader(),
		generatedHeader: generatedHeader,
	}
}

// Reader exposes the underlying cached reader so one run shares one cache
func (p *FileProcessor) Reader() *FileReader {
	return p.reader
}

// CollectSwiftFiles walks root and returns the Swift sources eligible for
// scanning: not hidden, not under build directories, not generated earlier
func (p *FileProcessor) CollectSwiftFiles(root string) ([]string, error) {
	return p.collect(root, func(path string) bool {
		return !p.IsGeneratedFile(path)
	})
}

// CollectGeneratedFiles walks root and returns only files this tool wrote
func (p *FileProcessor) CollectGeneratedFiles(root string) ([]string, error) {
	return p.collect(root, p.IsGeneratedFile)
}

func (p *FileProcessor) collect(root string, keep func(string) bool) ([]string, error) {
	var files []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// unreadable subtrees are skipped, not fatal
			return nil
		}
		if info.IsDir() {
			if path != root && shouldSkipDir(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(info.Name(), ".swift") || strings.HasPrefix(info.Name(), ".") {
			return nil
		}
		if keep(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, WrapProcessError(fmt.Sprintf("directory walk %s", root), err)
	}

	return files, nil
}

// IsGeneratedFile reports whether the file's first line is the generated
// header
func (p *FileProcessor) IsGeneratedFile(path string) bool {
	data, err := p.reader.ReadFile(path)
	if err != nil {
		return false
	}
	first, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(first) == p.generatedHeader
}

func shouldSkipDir(name string) bool {
	if skipDirNames[name] {
		return true
	}
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
