package annotations

import (
	"strings"
	"testing"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	schema := MarkerSchema{
		Kind:        KindSpy,
		Description: "test schema",
		Flags: map[string]FlagSpec{
			"Access": {DefaultValue: "internal", AllowedValues: []string{"internal", "public"}},
		},
	}

	if err := registry.Register(KindSpy, schema); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if !registry.IsRegistered(KindSpy) {
		t.Error("expected KindSpy to be registered")
	}
	if registry.IsRegistered(KindMock) {
		t.Error("did not expect KindMock to be registered")
	}

	got, err := registry.GetSchema(KindSpy)
	if err != nil {
		t.Fatalf("GetSchema failed: %v", err)
	}
	if got.Description != "test schema" {
		t.Errorf("unexpected schema description %q", got.Description)
	}

	if _, err := registry.GetSchema(KindFactory); err == nil {
		t.Error("expected error for unregistered kind")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	schema := MarkerSchema{Kind: KindMock}

	if err := registry.Register(KindMock, schema); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if err := registry.Register(KindMock, schema); err == nil {
		t.Error("expected error for duplicate registration")
	}
}

func TestRegistryRejectsKindMismatch(t *testing.T) {
	registry := NewRegistry()
	schema := MarkerSchema{Kind: KindSpy}

	err := registry.Register(KindMock, schema)
	if err == nil {
		t.Fatal("expected error for kind mismatch")
	}
	if !strings.Contains(err.Error(), "does not match") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestRegistryValidatesSchemas(t *testing.T) {
	tests := []struct {
		name   string
		schema MarkerSchema
	}{
		{
			name: "empty flag name",
			schema: MarkerSchema{
				Kind:  KindSpy,
				Flags: map[string]FlagSpec{"": {}},
			},
		},
		{
			name: "required flag with default",
			schema: MarkerSchema{
				Kind:  KindSpy,
				Flags: map[string]FlagSpec{"Access": {Required: true, DefaultValue: "internal"}},
			},
		},
		{
			name: "default outside allowed values",
			schema: MarkerSchema{
				Kind: KindSpy,
				Flags: map[string]FlagSpec{
					"Access": {DefaultValue: "open", AllowedValues: []string{"internal", "public"}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewRegistry()
			if err := registry.Register(KindSpy, tt.schema); err == nil {
				t.Error("expected schema validation error")
			}
		})
	}
}

func TestRegistryListKinds(t *testing.T) {
	registry := NewRegistry()
	if err := RegisterBuiltinSchemas(registry); err != nil {
		t.Fatalf("RegisterBuiltinSchemas failed: %v", err)
	}

	kinds := registry.ListKinds()
	if len(kinds) != 3 {
		t.Fatalf("expected 3 registered kinds, got %d", len(kinds))
	}

	seen := map[MarkerKind]bool{}
	for _, kind := range kinds {
		seen[kind] = true
	}
	for _, kind := range []MarkerKind{KindSpy, KindMock, KindFactory} {
		if !seen[kind] {
			t.Errorf("kind %s missing from ListKinds", kind)
		}
	}
}

func TestDefaultRegistryHasBuiltins(t *testing.T) {
	registry := DefaultRegistry()

	for _, kind := range []MarkerKind{KindSpy, KindMock, KindFactory} {
		if !registry.IsRegistered(kind) {
			t.Errorf("default registry missing %s schema", kind)
		}
	}
}
