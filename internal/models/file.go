package models

import "fmt"

// FileMetadata represents all marked declarations found in one source file
type FileMetadata struct {
	SourcePath string              // path of the scanned file
	Spies      []InterfaceMetadata // protocols marked doppel::spy
	Mocks      []InterfaceMetadata // protocols marked doppel::mock
	Factories  []RecordMetadata    // structs marked doppel::factory
	Notes      []ScanNote          // markers recognized but not applied
}

// HasTargets reports whether the file contains anything to generate
func (f *FileMetadata) HasTargets() bool {
	return len(f.Spies)+len(f.Mocks)+len(f.Factories) > 0
}

// TargetCount returns the number of doubles the file will produce
func (f *FileMetadata) TargetCount() int {
	return len(f.Spies) + len(f.Mocks) + len(f.Factories)
}

// ScanNote records a marker that was recognized but produced no double,
// such as a factory marker sitting on a protocol
type ScanNote struct {
	Marker string // the marker kind as written
	Target string // name of the declaration under the marker, "" when none
	Line   int    // line of the marker comment
	Reason string // why the marker was dropped
}

// String renders the note for diagnostics
func (n ScanNote) String() string {
	if n.Target == "" {
		return fmt.Sprintf("line %d: doppel::%s %s", n.Line, n.Marker, n.Reason)
	}
	return fmt.Sprintf("line %d: doppel::%s on %s %s", n.Line, n.Marker, n.Target, n.Reason)
}
