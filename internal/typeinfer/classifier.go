package typeinfer

import (
	"strings"
	"unicode"
)

// Shape classifies a Swift type expression by the strategy used to
// synthesize its default value.
type Shape int

const (
	ShapePrimitive Shape = iota // literal table hit
	ShapeOptional               // trailing ? or !, or Optional<...>
	ShapeSequence               // [T], Array<...>, Set<...>
	ShapeMapping                // [K: V], Dictionary<...>
	ShapeClosure                // function type
	ShapeNominal                // lossy fallback
)

// String returns the shape name for diagnostics
func (s Shape) String() string {
	switch s {
	case ShapePrimitive:
		return "primitive"
	case ShapeOptional:
		return "optional"
	case ShapeSequence:
		return "sequence"
	case ShapeMapping:
		return "mapping"
	case ShapeClosure:
		return "closure"
	case ShapeNominal:
		return "nominal"
	default:
		return "unknown"
	}
}

// Literal is a synthesized Swift expression together with the shape that
// produced it. Callers use the shape to audit lossy nominal fallbacks.
type Literal struct {
	Code  string
	Shape Shape
}

// BuiltinLiterals maps Swift primitive type names to default value literals
var BuiltinLiterals = map[string]string{
	"String":       `"name"`,
	"Int":          "0",
	"Int8":         "0",
	"Int16":        "0",
	"Int32":        "0",
	"Int64":        "0",
	"UInt":         "0",
	"UInt8":        "0",
	"UInt16":       "0",
	"UInt32":       "0",
	"UInt64":       "0",
	"Double":       "0.0",
	"Float":        "0.0",
	"TimeInterval": "0.0",
	"Bool":         "false",
	"UUID":         "UUID()",
	"Date":         "Date()",
	"Data":         "Data()",
}

// Classifier resolves Swift type text to default value literals. A custom
// literal table from configuration takes precedence over the builtin one.
type Classifier struct {
	custom map[string]string
}

// NewClassifier creates a classifier with an optional custom literal table.
// A nil table means builtins only.
func NewClassifier(custom map[string]string) *Classifier {
	return &Classifier{custom: custom}
}

// Classify reports which default-value strategy applies to the type text
func (c *Classifier) Classify(typeText string) Shape {
	return c.DefaultValue(typeText).Shape
}

// DefaultValue synthesizes a Swift expression producing a placeholder value
// of the given type. First match wins; the order resolves ambiguous cases
// such as optional collections ("[Int]?" is nil, not []).
func (c *Classifier) DefaultValue(typeText string) Literal {
	_, bare := SplitAttributes(strings.TrimSpace(typeText))

	if c.custom != nil {
		if code, ok := c.custom[bare]; ok {
			return Literal{Code: code, Shape: ShapePrimitive}
		}
	}
	if code, ok := BuiltinLiterals[bare]; ok {
		return Literal{Code: code, Shape: ShapePrimitive}
	}

	if strings.HasSuffix(bare, "?") || strings.HasSuffix(bare, "!") {
		return Literal{Code: "nil", Shape: ShapeOptional}
	}

	if strings.HasPrefix(bare, "[") && strings.HasSuffix(bare, "]") {
		if hasTopLevelColon(bare[1 : len(bare)-1]) {
			return Literal{Code: "[:]", Shape: ShapeMapping}
		}
		return Literal{Code: "[]", Shape: ShapeSequence}
	}

	if closure, ok := ParseClosure(typeText); ok {
		return Literal{Code: closure.StubLiteral(c), Shape: ShapeClosure}
	}

	if base, ok := genericBase(bare); ok {
		switch base {
		case "Array", "Set":
			return Literal{Code: "[]", Shape: ShapeSequence}
		case "Dictionary":
			return Literal{Code: "[:]", Shape: ShapeMapping}
		case "Optional":
			return Literal{Code: "nil", Shape: ShapeOptional}
		}
	}

	return Literal{Code: nominalFallback(bare), Shape: ShapeNominal}
}

// IsVoidType reports whether a return type annotation means the function
// returns nothing
func IsVoidType(returnType string) bool {
	t := strings.TrimSpace(returnType)
	return t == "" || t == "Void" || t == "()"
}

// nominalFallback lowers an unknown nominal type to a quoted text literal.
// Deliberately lossy: it only yields a usable value for types expressible
// from a string literal, but it never fails.
func nominalFallback(text string) string {
	name := leadingIdentifier(text)
	if name == "" {
		name = text
	}
	return `"` + strings.ToLower(name) + `"`
}

// genericBase returns the leading name of "Name<...>" when the angle group
// spans the rest of the text
func genericBase(text string) (string, bool) {
	name := leadingIdentifier(text)
	if name == "" || len(name) >= len(text) || text[len(name)] != '<' || !strings.HasSuffix(text, ">") {
		return "", false
	}
	return name, true
}

func leadingIdentifier(text string) string {
	for i, r := range text {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return text[:i]
	}
	return text
}

// hasTopLevelColon reports whether the text contains a ':' outside every
// bracket, paren, and angle group. Arrow tokens are skipped so the '>' of
// "->" does not unbalance the scan.
func hasTopLevelColon(text string) bool {
	depth := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '-' && i+1 < len(text) && text[i+1] == '>' {
			i++
			continue
		}
		switch text[i] {
		case '(', '[', '<':
			depth++
		case ')', ']', '>':
			depth--
		case ':':
			if depth == 0 {
				return true
			}
		}
	}
	return false
}
