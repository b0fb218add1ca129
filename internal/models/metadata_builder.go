package models

// MetadataBuilder provides a fluent interface for building metadata structures
type MetadataBuilder struct {
	base     *BaseMetadataTrait
	access   *AccessTrait
	inherits []string
}

// NewMetadataBuilder creates a new metadata builder
func NewMetadataBuilder(name, sourceFile string) *MetadataBuilder {
	return &MetadataBuilder{
		base: &BaseMetadataTrait{
			Name:       name,
			SourceFile: sourceFile,
		},
	}
}

// WithLine sets the declaration line
func (b *MetadataBuilder) WithLine(line int) *MetadataBuilder {
	b.base.Line = line
	return b
}

// WithAccess sets the generated access level
func (b *MetadataBuilder) WithAccess(access AccessLevel) *MetadataBuilder {
	b.access = &AccessTrait{Access: access}
	return b
}

// WithInherits adds inheritance clause entries
func (b *MetadataBuilder) WithInherits(names ...string) *MetadataBuilder {
	b.inherits = append(b.inherits, names...)
	return b
}

// BuildInterface creates an InterfaceMetadata
func (b *MetadataBuilder) BuildInterface(methods []Method) *InterfaceMetadata {
	iface := &InterfaceMetadata{
		BaseMetadataTrait: *b.base,
		Inherits:          b.inherits,
		Methods:           methods,
	}

	if b.access != nil {
		iface.AccessTrait = *b.access
	}

	return iface
}

// BuildRecord creates a RecordMetadata
func (b *MetadataBuilder) BuildRecord(genericParams string, fields []Field) *RecordMetadata {
	record := &RecordMetadata{
		BaseMetadataTrait: *b.base,
		GenericParams:     genericParams,
		Inherits:          b.inherits,
		Fields:            fields,
	}

	if b.access != nil {
		record.AccessTrait = *b.access
	}

	return record
}
