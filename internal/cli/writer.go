package cli

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	doppelerrors "github.com/toyz/doppel/internal/errors"
	"github.com/toyz/doppel/internal/utils"
)

// ArtifactWriter writes artifacts atomically: content lands in a uniquely
// named sibling first, then renames over the target, so readers never see a
// half-written file.
type ArtifactWriter struct{}

// NewArtifactWriter creates a new artifact writer
func NewArtifactWriter() *ArtifactWriter {
	return &ArtifactWriter{}
}

// Write formats and writes one artifact into dir, returning the target path
func (w *ArtifactWriter) Write(dir, fileName, content string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", doppelerrors.WrapFileSystemError("create", dir, err)
	}

	target := filepath.Join(dir, fileName)
	tmp := filepath.Join(dir, ".doppel-"+uuid.NewString()+".tmp")

	formatted := utils.FormatSwiftSource(content)
	if err := os.WriteFile(tmp, []byte(formatted), 0644); err != nil {
		return "", doppelerrors.WrapFileSystemError("write", tmp, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return "", doppelerrors.WrapFileSystemError("write", target, err)
	}

	return target, nil
}
