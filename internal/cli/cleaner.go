package cli

import (
	"os"
	"strings"

	doppelerrors "github.com/toyz/doppel/internal/errors"
	"github.com/toyz/doppel/internal/templates"
	"github.com/toyz/doppel/internal/utils"
)

// Cleaner removes previously generated doppel files. Only files whose first
// line is the generated header are ever touched.
type Cleaner struct {
	processor *utils.FileProcessor
}

// NewCleaner creates a new cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{
		processor: utils.NewFileProcessor(templates.GeneratedHeader),
	}
}

// Clean walks the inputs and deletes generated files, returning the paths
// it removed
func (c *Cleaner) Clean(inputs []string) ([]string, error) {
	var removed []string

	for _, input := range inputs {
		root := strings.TrimSuffix(input, "/...")
		if root == "" {
			root = "."
		}

		files, err := c.processor.CollectGeneratedFiles(root)
		if err != nil {
			return removed, err
		}
		for _, file := range files {
			if err := os.Remove(file); err != nil {
				return removed, doppelerrors.WrapFileSystemError("remove", file, err)
			}
			removed = append(removed, file)
		}
	}

	return removed, nil
}
