package typeinfer

import (
	"reflect"
	"testing"
)

func TestParseClosure(t *testing.T) {
	tests := []struct {
		typeText string
		expected Closure
	}{
		{
			typeText: "() -> Void",
			expected: Closure{ReturnType: "Void"},
		},
		{
			typeText: "(Int) -> Void",
			expected: Closure{Params: []string{"Int"}, ReturnType: "Void"},
		},
		{
			typeText: "(Int, String) -> Bool",
			expected: Closure{Params: []string{"Int", "String"}, ReturnType: "Bool"},
		},
		{
			typeText: "(Result<User, Error>) -> Void",
			expected: Closure{Params: []string{"Result<User, Error>"}, ReturnType: "Void"},
		},
		{
			typeText: "((Int) -> Void, String) -> Bool",
			expected: Closure{Params: []string{"(Int) -> Void", "String"}, ReturnType: "Bool"},
		},
		{
			typeText: "([String: Int], (name: String, age: Int)) -> Void",
			expected: Closure{Params: []string{"[String: Int]", "(name: String, age: Int)"}, ReturnType: "Void"},
		},
		{
			typeText: "@escaping (Int) -> Void",
			expected: Closure{Attributes: []string{"@escaping"}, Params: []string{"Int"}, ReturnType: "Void"},
		},
		{
			typeText: "@Sendable @escaping () -> Void",
			expected: Closure{Attributes: []string{"@Sendable", "@escaping"}, ReturnType: "Void"},
		},
		{
			typeText: "@convention(c) () -> Void",
			expected: Closure{Attributes: []string{"@convention(c)"}, ReturnType: "Void"},
		},
		{
			typeText: "() async throws -> Data",
			expected: Closure{Effects: []string{"async", "throws"}, ReturnType: "Data"},
		},
		{
			typeText: "(Int) -> (String) -> Void",
			expected: Closure{Params: []string{"Int"}, ReturnType: "(String) -> Void"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.typeText, func(t *testing.T) {
			closure, ok := ParseClosure(tt.typeText)
			if !ok {
				t.Fatalf("ParseClosure(%q) = false, expected a closure", tt.typeText)
			}
			if !reflect.DeepEqual(closure, tt.expected) {
				t.Errorf("ParseClosure(%q) = %+v, expected %+v", tt.typeText, closure, tt.expected)
			}
		})
	}
}

func TestParseClosureRejectsNonClosures(t *testing.T) {
	for _, typeText := range []string{
		"Int",
		"String?",
		"(Int, String)",
		"[Int]",
		"[(Int) -> Void]",
		"Array<(Int) -> Void>",
		"Wrapper<() -> Void>",
	} {
		t.Run(typeText, func(t *testing.T) {
			if _, ok := ParseClosure(typeText); ok {
				t.Errorf("ParseClosure(%q) = true, expected not a closure", typeText)
			}
		})
	}
}

func TestParseClosureUnparenthesizedParameter(t *testing.T) {
	closure, ok := ParseClosure("Int -> Void")
	if !ok {
		t.Fatal("expected a closure")
	}
	if !reflect.DeepEqual(closure.Params, []string{"Int"}) {
		t.Errorf("Params = %v, expected [Int]", closure.Params)
	}
	if closure.ReturnType != "Void" {
		t.Errorf("ReturnType = %q, expected Void", closure.ReturnType)
	}
}

func TestClosureStoredTypeText(t *testing.T) {
	tests := []struct {
		typeText string
		expected string
	}{
		{"@escaping (Int) -> Void", "(Int) -> Void"},
		{"@autoclosure () -> Bool", "() -> Bool"},
		{"@Sendable @escaping (String) -> Void", "@Sendable (String) -> Void"},
		{"@convention(c) () -> Void", "@convention(c) () -> Void"},
		{"() async throws -> Data", "() async throws -> Data"},
		{"(Int, String) -> Bool", "(Int, String) -> Bool"},
	}

	for _, tt := range tests {
		t.Run(tt.typeText, func(t *testing.T) {
			closure, ok := ParseClosure(tt.typeText)
			if !ok {
				t.Fatalf("ParseClosure(%q) failed", tt.typeText)
			}
			if got := closure.StoredTypeText(); got != tt.expected {
				t.Errorf("StoredTypeText() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestClosureParameterTypeText(t *testing.T) {
	tests := []struct {
		typeText string
		expected string
	}{
		{"() -> Void", "@escaping () -> Void"},
		{"@escaping (Int) -> Void", "@escaping (Int) -> Void"},
		{"@autoclosure () -> Bool", "@autoclosure @escaping () -> Bool"},
		{"@Sendable (String) -> Void", "@Sendable @escaping (String) -> Void"},
	}

	for _, tt := range tests {
		t.Run(tt.typeText, func(t *testing.T) {
			closure, ok := ParseClosure(tt.typeText)
			if !ok {
				t.Fatalf("ParseClosure(%q) failed", tt.typeText)
			}
			if got := closure.ParameterTypeText(); got != tt.expected {
				t.Errorf("ParameterTypeText() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestClosureStubLiteral(t *testing.T) {
	classifier := NewClassifier(nil)

	tests := []struct {
		typeText string
		expected string
	}{
		{"() -> Void", "{}"},
		{"(Int) -> Void", "{ _ in }"},
		{"(Int, String, Bool) -> Void", "{ _, _, _ in }"},
		{"() -> Int", "{ 0 }"},
		{"() -> String", `{ "name" }`},
		{"(Data) -> Bool", "{ _ in false }"},
		{"() -> [Int]", "{ [] }"},
		{"() -> User", `{ "user" }`},
		{"(Int) -> (String) -> Void", "{ _ in { _ in } }"},
	}

	for _, tt := range tests {
		t.Run(tt.typeText, func(t *testing.T) {
			closure, ok := ParseClosure(tt.typeText)
			if !ok {
				t.Fatalf("ParseClosure(%q) failed", tt.typeText)
			}
			if got := closure.StubLiteral(classifier); got != tt.expected {
				t.Errorf("StubLiteral() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestSplitAttributes(t *testing.T) {
	tests := []struct {
		typeText string
		attrs    []string
		rest     string
	}{
		{"Int", nil, "Int"},
		{"@escaping (Int) -> Void", []string{"@escaping"}, "(Int) -> Void"},
		{"@Sendable @escaping () -> Void", []string{"@Sendable", "@escaping"}, "() -> Void"},
		{"@convention(c) () -> Void", []string{"@convention(c)"}, "() -> Void"},
		{"@MainActor User", []string{"@MainActor"}, "User"},
	}

	for _, tt := range tests {
		t.Run(tt.typeText, func(t *testing.T) {
			attrs, rest := SplitAttributes(tt.typeText)
			if !reflect.DeepEqual(attrs, tt.attrs) {
				t.Errorf("attrs = %v, expected %v", attrs, tt.attrs)
			}
			if rest != tt.rest {
				t.Errorf("rest = %q, expected %q", rest, tt.rest)
			}
		})
	}
}
