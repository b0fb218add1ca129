package parser

import "github.com/toyz/doppel/internal/models"

// SourceScanner scans Swift sources for marker-annotated declarations
type SourceScanner interface {
	ParseSource(filename, source string) (*models.FileMetadata, error)
	ParseFile(path string) (*models.FileMetadata, error)
}
