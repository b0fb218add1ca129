package parser

import (
	"os"

	"github.com/toyz/doppel/internal/annotations"
	doppelerrors "github.com/toyz/doppel/internal/errors"
	"github.com/toyz/doppel/internal/models"
	"github.com/toyz/doppel/internal/syntax"
)

// Scanner pairs marker comments with the declarations they precede and
// extracts the metadata generation needs
type Scanner struct {
	markers *annotations.MarkerParser

	// DefaultAccess applies when a marker carries no -Access flag
	DefaultAccess models.AccessLevel
}

// NewScanner creates a scanner backed by the built-in marker schemas
func NewScanner() *Scanner {
	return &Scanner{
		markers: annotations.NewMarkerParser(nil),
	}
}

// ParseFile reads and scans a single Swift file
func (s *Scanner) ParseFile(path string) (*models.FileMetadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, doppelerrors.WrapFileSystemError("read", path, err)
	}
	return s.ParseSource(path, string(content))
}

// ParseSource scans source text for marked declarations. Files without any
// raw marker substring return empty metadata without being parsed at all,
// which keeps unmarked files cheap.
func (s *Scanner) ParseSource(filename, source string) (*models.FileMetadata, error) {
	metadata := &models.FileMetadata{SourcePath: filename}

	if !annotations.ContainsActivationMarker(source) {
		return metadata, nil
	}

	file, err := syntax.ParseSource(filename, source)
	if err != nil {
		return nil, err
	}

	for _, decl := range file.Decls {
		marker, err := s.declMarker(decl, filename)
		if err != nil {
			return nil, err
		}
		if marker == nil {
			continue
		}
		s.pair(metadata, marker, decl, filename)
	}

	return metadata, nil
}

// declMarker returns the declaration's marker: the first leading comment
// that parses as one wins, and at most one marker applies per declaration
func (s *Scanner) declMarker(decl syntax.Decl, filename string) (*annotations.ParsedMarker, error) {
	for _, comment := range decl.LeadingComments() {
		location := annotations.SourceLocation{File: filename, Line: comment.Line}
		marker, err := s.markers.ParseMarkerComment(comment.Inner(), location)
		if err != nil {
			return nil, err
		}
		if marker != nil {
			return marker, nil
		}
	}
	return nil, nil
}

// pair matches a marker with its declaration. A marker on the wrong kind of
// declaration is dropped with a note instead of failing the file.
func (s *Scanner) pair(metadata *models.FileMetadata, marker *annotations.ParsedMarker, decl syntax.Decl, filename string) {
	access := s.markerAccess(marker)

	switch marker.Kind {
	case annotations.KindSpy, annotations.KindMock:
		protocol, ok := decl.(*syntax.ProtocolDecl)
		if !ok {
			metadata.Notes = append(metadata.Notes, mismatchNote(marker, decl, "expects a protocol"))
			return
		}
		iface := ExtractInterface(protocol, filename, access)
		if marker.Kind == annotations.KindSpy {
			metadata.Spies = append(metadata.Spies, iface)
		} else {
			metadata.Mocks = append(metadata.Mocks, iface)
		}

	case annotations.KindFactory:
		record, ok := decl.(*syntax.StructDecl)
		if !ok {
			metadata.Notes = append(metadata.Notes, mismatchNote(marker, decl, "expects a struct"))
			return
		}
		metadata.Factories = append(metadata.Factories, ExtractRecord(record, filename, access))
	}
}

// markerAccess resolves the access level for one marker. Schema validation
// already rejected any value outside internal/public.
func (s *Scanner) markerAccess(marker *annotations.ParsedMarker) models.AccessLevel {
	value, ok := marker.Flags["Access"]
	if !ok {
		return s.DefaultAccess
	}
	access, err := models.ParseAccessLevel(value)
	if err != nil {
		return s.DefaultAccess
	}
	return access
}

func mismatchNote(marker *annotations.ParsedMarker, decl syntax.Decl, expectation string) models.ScanNote {
	found := decl.Kind().String()
	return models.ScanNote{
		Marker: marker.Kind.String(),
		Target: decl.DeclName(),
		Line:   marker.Location.Line,
		Reason: expectation + ", found a " + found,
	}
}
