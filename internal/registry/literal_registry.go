package registry

import (
	"strings"

	doppelerrors "github.com/toyz/doppel/internal/errors"
	"github.com/toyz/doppel/internal/utils"
)

// LiteralRegistryInterface defines the operations for managing custom
// default-value literals
type LiteralRegistryInterface interface {
	Register(typeText, literal string) (bool, error)
	Get(typeText string) (string, bool)
	Has(typeText string) bool
	Table() map[string]string
	Size() int
}

// LiteralRegistry maps exact Swift type text to a replacement default
// literal. Entries come from configuration and are consulted before the
// builtin primitive table, so an entry for "String" overrides the builtin.
type LiteralRegistry struct {
	items *utils.Registry[string, string]
}

// NewLiteralRegistry creates an empty literal registry
func NewLiteralRegistry() *LiteralRegistry {
	return &LiteralRegistry{
		items: utils.NewRegistry[string, string](),
	}
}

// Register adds or replaces the literal for a type. The returned flag
// reports whether an earlier entry was replaced, so callers can surface
// the override instead of silently shadowing it.
func (r *LiteralRegistry) Register(typeText, literal string) (bool, error) {
	typeText = strings.TrimSpace(typeText)
	if typeText == "" {
		return false, doppelerrors.NewValidationError("literals", "a type name", "an empty key")
	}
	if strings.TrimSpace(literal) == "" {
		return false, doppelerrors.NewValidationError("literals", "a literal expression for "+typeText, "an empty value")
	}

	replaced := r.items.Has(typeText)
	if err := r.items.Register(typeText, literal); err != nil {
		return false, err
	}
	return replaced, nil
}

// RegisterAll registers every entry of a configuration table and returns
// the type names whose literals were replaced
func (r *LiteralRegistry) RegisterAll(table map[string]string) ([]string, error) {
	var replaced []string
	for typeText, literal := range table {
		wasReplaced, err := r.Register(typeText, literal)
		if err != nil {
			return replaced, err
		}
		if wasReplaced {
			replaced = append(replaced, typeText)
		}
	}
	return replaced, nil
}

// Get retrieves the literal registered for a type
func (r *LiteralRegistry) Get(typeText string) (string, bool) {
	return r.items.Get(typeText)
}

// Has checks whether a type has a custom literal
func (r *LiteralRegistry) Has(typeText string) bool {
	return r.items.Has(typeText)
}

// Table returns a snapshot of the registry for the classifier
func (r *LiteralRegistry) Table() map[string]string {
	if r.items.Size() == 0 {
		return nil
	}
	return r.items.GetAll()
}

// Size returns the number of registered literals
func (r *LiteralRegistry) Size() int {
	return r.items.Size()
}
