package models

// Metadata is the base interface for all metadata types
type Metadata interface {
	GetName() string
	GetSourceFile() string
	GetLine() int
}

// AccessAware represents metadata that carries a generated access level
type AccessAware interface {
	GetAccess() AccessLevel
}
