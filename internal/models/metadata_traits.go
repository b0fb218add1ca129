package models

// MetadataTraits contains composable trait structs that can be embedded
// to avoid duplication while maintaining flexibility

// BaseMetadataTrait provides core metadata functionality
type BaseMetadataTrait struct {
	Name       string // name of the source declaration
	SourceFile string // file the declaration was found in
	Line       int    // line of the declaration keyword
}

// GetName returns the declaration name
func (b *BaseMetadataTrait) GetName() string {
	return b.Name
}

// GetSourceFile returns the source file path
func (b *BaseMetadataTrait) GetSourceFile() string {
	return b.SourceFile
}

// GetLine returns the declaration line
func (b *BaseMetadataTrait) GetLine() int {
	return b.Line
}

// AccessTrait provides access level functionality
type AccessTrait struct {
	Access AccessLevel // access level for the generated double
}

// GetAccess returns the access level
func (a *AccessTrait) GetAccess() AccessLevel {
	return a.Access
}
