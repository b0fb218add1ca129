package annotations

import (
	"fmt"
	"sort"
	"sync"
)

// SchemaRegistry defines the interface for managing marker schemas
type SchemaRegistry interface {
	// Register a new marker kind with its schema
	Register(kind MarkerKind, schema MarkerSchema) error

	// GetSchema retrieves the schema for a marker kind
	GetSchema(kind MarkerKind) (MarkerSchema, error)

	// ListKinds returns all registered marker kinds
	ListKinds() []MarkerKind

	// IsRegistered checks if a marker kind is registered
	IsRegistered(kind MarkerKind) bool
}

// registry is the concrete implementation of SchemaRegistry
type registry struct {
	mu      sync.RWMutex                // protects concurrent access
	schemas map[MarkerKind]MarkerSchema // schema storage
}

// NewRegistry creates a new marker schema registry
func NewRegistry() SchemaRegistry {
	return &registry{
		schemas: make(map[MarkerKind]MarkerSchema),
	}
}

// defaultRegistry is the global registry instance
var (
	defaultRegistry     SchemaRegistry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the global marker schema registry with the builtin
// schemas registered
func DefaultRegistry() SchemaRegistry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		if err := RegisterBuiltinSchemas(defaultRegistry); err != nil {
			panic(fmt.Sprintf("builtin marker schemas: %v", err))
		}
	})
	return defaultRegistry
}

// Register adds a new marker kind with its schema to the registry
func (r *registry) Register(kind MarkerKind, schema MarkerSchema) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if schema.Kind != kind {
		return fmt.Errorf("schema kind %s does not match marker kind %s",
			schema.Kind.String(), kind.String())
	}

	if _, exists := r.schemas[kind]; exists {
		return fmt.Errorf("marker kind %s is already registered", kind.String())
	}

	if err := r.validateSchema(schema); err != nil {
		return fmt.Errorf("invalid schema for %s: %w", kind.String(), err)
	}

	r.schemas[kind] = schema
	return nil
}

// GetSchema retrieves the schema for a marker kind
func (r *registry) GetSchema(kind MarkerKind) (MarkerSchema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schema, exists := r.schemas[kind]
	if !exists {
		return MarkerSchema{}, fmt.Errorf("marker kind %s is not registered", kind.String())
	}

	return schema, nil
}

// ListKinds returns all registered marker kinds
func (r *registry) ListKinds() []MarkerKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]MarkerKind, 0, len(r.schemas))
	for kind := range r.schemas {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	return kinds
}

// IsRegistered checks if a marker kind is registered
func (r *registry) IsRegistered(kind MarkerKind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.schemas[kind]
	return exists
}

// validateSchema performs basic validation on a schema
func (r *registry) validateSchema(schema MarkerSchema) error {
	for flagName, flagSpec := range schema.Flags {
		if flagName == "" {
			return fmt.Errorf("flag name cannot be empty")
		}

		// A bare flag falls back to its default, so a required flag with a
		// default could never fail
		if flagSpec.Required && flagSpec.DefaultValue != "" {
			return fmt.Errorf("flag %s cannot be both required and defaulted", flagName)
		}

		if flagSpec.DefaultValue != "" && len(flagSpec.AllowedValues) > 0 {
			if !containsString(flagSpec.AllowedValues, flagSpec.DefaultValue) {
				return fmt.Errorf("default value %q for flag %s is not among its allowed values",
					flagSpec.DefaultValue, flagName)
			}
		}
	}

	return nil
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
