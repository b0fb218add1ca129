package annotations

import "fmt"

// Built-in marker schemas

// accessFlagSpec is shared by all marker kinds: every generated double can be
// emitted at internal (default) or public access.
func accessFlagSpec() FlagSpec {
	return FlagSpec{
		Required:      false,
		DefaultValue:  "internal",
		AllowedValues: []string{"internal", "public"},
		Description:   "Access level of the generated declaration: 'internal' (default) or 'public'",
		Validator: func(v string) error {
			if v != "internal" && v != "public" {
				return fmt.Errorf("must be 'internal' or 'public', got '%s'", v)
			}
			return nil
		},
	}
}

// SpyMarkerSchema defines the schema for doppel::spy markers
var SpyMarkerSchema = MarkerSchema{
	Kind:        KindSpy,
	Description: "Marks a protocol for spy generation: a conforming class that records calls",
	Flags: map[string]FlagSpec{
		"Access": accessFlagSpec(),
	},
	Examples: []string{
		"// doppel::spy",
		"// doppel::spy -Access=public",
	},
}

// MockMarkerSchema defines the schema for doppel::mock markers
var MockMarkerSchema = MarkerSchema{
	Kind:        KindMock,
	Description: "Marks a protocol for mock generation: a conforming class with injectable behavior",
	Flags: map[string]FlagSpec{
		"Access": accessFlagSpec(),
	},
	Examples: []string{
		"// doppel::mock",
		"// doppel::mock -Access=public",
	},
}

// FactoryMarkerSchema defines the schema for doppel::factory markers
var FactoryMarkerSchema = MarkerSchema{
	Kind:        KindFactory,
	Description: "Marks a struct for factory generation: a mock() builder with defaulted fields",
	Flags: map[string]FlagSpec{
		"Access": accessFlagSpec(),
	},
	Examples: []string{
		"// doppel::factory",
		"// doppel::factory -Access=public",
	},
}

// RegisterBuiltinSchemas registers all built-in marker schemas with the
// provided registry
func RegisterBuiltinSchemas(registry SchemaRegistry) error {
	schemas := []MarkerSchema{
		SpyMarkerSchema,
		MockMarkerSchema,
		FactoryMarkerSchema,
	}

	for _, schema := range schemas {
		if err := registry.Register(schema.Kind, schema); err != nil {
			return fmt.Errorf("failed to register %s schema: %w", schema.Kind.String(), err)
		}
	}

	return nil
}
