package models

// RecordMetadata represents a struct whose stored properties get a factory
type RecordMetadata struct {
	BaseMetadataTrait
	AccessTrait
	GenericParams string   // rendered generic parameter clause, "" when absent
	Inherits      []string // conformance clause, for diagnostics
	Fields        []Field  // stored properties in declaration order
}

// Field represents one stored property of a struct
type Field struct {
	Name     string // property name
	TypeText string // normalized type text
}
