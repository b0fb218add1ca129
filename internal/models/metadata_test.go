package models

import (
	"testing"
)

// TestDirectStructureUsage ensures structures work with composition
func TestDirectStructureUsage(t *testing.T) {
	iface := &InterfaceMetadata{
		BaseMetadataTrait: BaseMetadataTrait{
			Name:       "UserService",
			SourceFile: "Sources/App/UserService.swift",
			Line:       4,
		},
		AccessTrait: AccessTrait{
			Access: AccessPublic,
		},
		Inherits: []string{"AnyObject"},
		Methods: []Method{
			{
				Name: "fetchUser",
				Parameters: []Parameter{
					{Label: "withID", Name: "id", TypeText: "UUID"},
				},
				IsAsync:    true,
				IsThrows:   true,
				ReturnType: "User",
			},
		},
	}

	if iface.GetName() != "UserService" {
		t.Errorf("Expected Name to be 'UserService', got %s", iface.GetName())
	}
	if iface.GetLine() != 4 {
		t.Errorf("Expected Line to be 4, got %d", iface.GetLine())
	}
	if iface.GetAccess() != AccessPublic {
		t.Errorf("Expected public access, got %s", iface.GetAccess())
	}
	if !iface.Methods[0].HasResult() {
		t.Error("Expected fetchUser to have a result")
	}

	record := &RecordMetadata{
		BaseMetadataTrait: BaseMetadataTrait{
			Name:       "User",
			SourceFile: "Sources/App/User.swift",
		},
		Fields: []Field{
			{Name: "id", TypeText: "UUID"},
			{Name: "name", TypeText: "String"},
		},
	}

	if record.GetAccess() != AccessInternal {
		t.Errorf("Expected internal access by default, got %s", record.GetAccess())
	}
	if len(record.Fields) != 2 {
		t.Errorf("Expected 2 fields, got %d", len(record.Fields))
	}
}

func TestMetadataBuilder(t *testing.T) {
	iface := NewMetadataBuilder("PaymentGateway", "Payments.swift").
		WithLine(12).
		WithAccess(AccessPublic).
		WithInherits("AnyObject", "Sendable").
		BuildInterface([]Method{{Name: "charge"}})

	if iface.GetName() != "PaymentGateway" {
		t.Errorf("Expected Name 'PaymentGateway', got %s", iface.GetName())
	}
	if iface.GetSourceFile() != "Payments.swift" {
		t.Errorf("Expected SourceFile 'Payments.swift', got %s", iface.GetSourceFile())
	}
	if iface.GetLine() != 12 {
		t.Errorf("Expected Line 12, got %d", iface.GetLine())
	}
	if iface.GetAccess() != AccessPublic {
		t.Errorf("Expected public access, got %s", iface.GetAccess())
	}
	if len(iface.Inherits) != 2 {
		t.Errorf("Expected 2 inherited protocols, got %d", len(iface.Inherits))
	}

	record := NewMetadataBuilder("Box", "Box.swift").
		BuildRecord("<Wrapped>", []Field{{Name: "value", TypeText: "Wrapped"}})

	if record.GenericParams != "<Wrapped>" {
		t.Errorf("Expected generic params '<Wrapped>', got %s", record.GenericParams)
	}
	if record.GetAccess() != AccessInternal {
		t.Errorf("Expected internal access by default, got %s", record.GetAccess())
	}
}

func TestArtifactKindNaming(t *testing.T) {
	tests := []struct {
		kind     ArtifactKind
		name     string
		suffix   string
		identity string
	}{
		{ArtifactSpy, "spy", "Spy", "UserServiceSpy"},
		{ArtifactMock, "mock", "Mock", "UserServiceMock"},
		{ArtifactFactory, "factory", "+Mock", "UserService+Mock"},
	}

	for _, tt := range tests {
		if tt.kind.String() != tt.name {
			t.Errorf("Expected kind name %q, got %q", tt.name, tt.kind.String())
		}
		if tt.kind.Suffix() != tt.suffix {
			t.Errorf("Expected suffix %q, got %q", tt.suffix, tt.kind.Suffix())
		}
		if got := tt.kind.Identity("UserService"); got != tt.identity {
			t.Errorf("Expected identity %q, got %q", tt.identity, got)
		}
	}
}

func TestAccessLevel(t *testing.T) {
	if AccessInternal.Prefix() != "" {
		t.Errorf("Expected empty prefix for internal, got %q", AccessInternal.Prefix())
	}
	if AccessPublic.Prefix() != "public " {
		t.Errorf("Expected 'public ' prefix, got %q", AccessPublic.Prefix())
	}

	level, err := ParseAccessLevel("public")
	if err != nil || level != AccessPublic {
		t.Errorf("ParseAccessLevel(public) = %v, %v", level, err)
	}
	level, err = ParseAccessLevel("")
	if err != nil || level != AccessInternal {
		t.Errorf("ParseAccessLevel(empty) = %v, %v", level, err)
	}
	if _, err := ParseAccessLevel("fileprivate"); err == nil {
		t.Error("Expected error for unsupported access level")
	}
}

func TestParameterNames(t *testing.T) {
	tests := []struct {
		param     Parameter
		callSite  string
		signature string
	}{
		{Parameter{Label: "", Name: "name"}, "name", "name"},
		{Parameter{Label: "_", Name: "message"}, "message", "_ message"},
		{Parameter{Label: "withID", Name: "id"}, "withID", "withID id"},
	}

	for _, tt := range tests {
		if got := tt.param.CallSiteName(); got != tt.callSite {
			t.Errorf("CallSiteName(%+v) = %q, expected %q", tt.param, got, tt.callSite)
		}
		if got := tt.param.SignatureName(); got != tt.signature {
			t.Errorf("SignatureName(%+v) = %q, expected %q", tt.param, got, tt.signature)
		}
	}
}

func TestFileMetadataTargets(t *testing.T) {
	empty := &FileMetadata{SourcePath: "Empty.swift"}
	if empty.HasTargets() {
		t.Error("Expected no targets in empty file metadata")
	}

	file := &FileMetadata{
		SourcePath: "Services.swift",
		Spies:      []InterfaceMetadata{{}},
		Mocks:      []InterfaceMetadata{{}, {}},
		Factories:  []RecordMetadata{{}},
	}
	if !file.HasTargets() {
		t.Error("Expected targets")
	}
	if file.TargetCount() != 4 {
		t.Errorf("Expected 4 targets, got %d", file.TargetCount())
	}
}

func TestScanNoteString(t *testing.T) {
	note := ScanNote{Marker: "factory", Target: "UserService", Line: 3, Reason: "applies only to structs"}
	rendered := note.String()
	if rendered != "line 3: doppel::factory on UserService applies only to structs" {
		t.Errorf("Unexpected note rendering: %q", rendered)
	}
}
