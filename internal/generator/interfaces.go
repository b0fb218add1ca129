package generator

import "github.com/toyz/doppel/internal/models"

// CodeGenerator defines the interface for producing Swift test doubles
// from scanned file metadata
type CodeGenerator interface {
	// GenerateFile produces one artifact per marked declaration in the file
	GenerateFile(metadata *models.FileMetadata) (*Result, error)

	// GenerateDouble produces a spy or mock class for one protocol
	GenerateDouble(iface models.InterfaceMetadata, kind models.ArtifactKind) (models.GeneratedArtifact, []string, error)

	// GenerateFactory produces a static factory extension for one struct
	GenerateFactory(record models.RecordMetadata) (models.GeneratedArtifact, []string, error)
}
