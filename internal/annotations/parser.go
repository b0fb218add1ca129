package annotations

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	doppelerrors "github.com/toyz/doppel/internal/errors"
)

// MarkerParser parses doppel marker comments using alecthomas/participle
type MarkerParser struct {
	parser   *participle.Parser[markerExpr]
	registry SchemaRegistry
}

// markerExpr represents the root of a doppel marker
type markerExpr struct {
	Kind  string       `parser:"Prefix @Ident"`
	Items []markerItem `parser:"@@*"`
}

// markerItem represents a single flag, bare or with a value
type markerItem struct {
	Flag  string  `parser:"Dash @Ident"`
	Value *string `parser:"(Equals @(String | Ident))?"`
}

// NewMarkerParser creates a new marker parser validating against the given
// schema registry. A nil registry falls back to the default registry.
func NewMarkerParser(registry SchemaRegistry) *MarkerParser {
	if registry == nil {
		registry = DefaultRegistry()
	}

	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Prefix", Pattern: `doppel::`},
		{Name: "String", Pattern: `"(\\"|[^"])*"`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Dash", Pattern: `-`},
		{Name: "Equals", Pattern: `=`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser := participle.MustBuild[markerExpr](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)

	return &MarkerParser{
		parser:   parser,
		registry: registry,
	}
}

// ParseMarkerComment parses the inner text of a comment. It returns
// (nil, nil) when the text is not a marker at all; a comment that starts
// with the marker prefix but does not parse is an error.
func (p *MarkerParser) ParseMarkerComment(text string, location SourceLocation) (*ParsedMarker, error) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, MarkerPrefix) {
		return nil, nil
	}

	expr, err := p.parser.ParseString(location.File, trimmed)
	if err != nil {
		return nil, doppelerrors.NewMarkerError("malformed marker comment", trimmed).
			WithLocation(errorLocation(location)).
			WithSuggestion("expected 'doppel::<kind> [-Flag=value]', e.g. 'doppel::spy -Access=public'")
	}

	kind, err := ParseMarkerKind(expr.Kind)
	if err != nil {
		return nil, doppelerrors.NewMarkerError("unknown marker kind '"+expr.Kind+"'", trimmed).
			WithLocation(errorLocation(location)).
			WithSuggestion("valid marker kinds: spy, mock, factory")
	}

	if !p.registry.IsRegistered(kind) {
		return nil, doppelerrors.NewMarkerError("marker kind '"+expr.Kind+"' has no registered schema", trimmed).
			WithLocation(errorLocation(location))
	}

	schema, err := p.registry.GetSchema(kind)
	if err != nil {
		return nil, doppelerrors.Wrap(doppelerrors.SchemaErrorCode, "marker schema lookup failed", err)
	}

	marker := &ParsedMarker{
		Kind:     kind,
		Flags:    make(map[string]string),
		Location: location,
		Raw:      trimmed,
	}

	for _, item := range expr.Items {
		if err := p.applyFlag(marker, schema, item, location); err != nil {
			return nil, err
		}
	}

	for flagName, spec := range schema.Flags {
		if spec.Required && !marker.HasFlag(flagName) {
			return nil, doppelerrors.NewMarkerError(
				"missing required flag '-"+flagName+"' on doppel::"+kind.String()+" marker", trimmed).
				WithLocation(errorLocation(location))
		}
	}

	return marker, nil
}

// applyFlag validates one flag item against the schema and records it
func (p *MarkerParser) applyFlag(marker *ParsedMarker, schema MarkerSchema, item markerItem, location SourceLocation) error {
	spec, exists := schema.Flags[item.Flag]
	if !exists {
		return doppelerrors.NewUnknownFlagError(marker.Kind.String(), item.Flag, schema.FlagNames()).
			WithLocation(errorLocation(location))
	}

	value := spec.DefaultValue
	if item.Value != nil {
		value = unquote(*item.Value)
	}
	if value == "" {
		return doppelerrors.NewMarkerError("flag '-"+item.Flag+"' requires a value", marker.Raw).
			WithLocation(errorLocation(location)).
			WithSuggestion("write -" + item.Flag + "=<value>")
	}

	if len(spec.AllowedValues) > 0 && !containsString(spec.AllowedValues, value) {
		return doppelerrors.NewMarkerError(
			"invalid value '"+value+"' for flag '-"+item.Flag+"'", marker.Raw).
			WithLocation(errorLocation(location)).
			WithSuggestion("valid values: " + strings.Join(spec.AllowedValues, ", "))
	}

	if spec.Validator != nil {
		if err := spec.Validator(value); err != nil {
			return doppelerrors.NewMarkerError(
				"flag '-"+item.Flag+"' validation failed: "+err.Error(), marker.Raw).
				WithLocation(errorLocation(location))
		}
	}

	marker.Flags[item.Flag] = value
	return nil
}

// ActivationMarkers returns the raw marker substrings that activate
// generation for a file
func ActivationMarkers() []string {
	return []string{
		KindSpy.Marker(),
		KindMock.Marker(),
		KindFactory.Marker(),
	}
}

// ContainsActivationMarker reports whether the text contains any raw marker.
// This is the cheap pre-check run on whole file contents before parsing.
func ContainsActivationMarker(text string) bool {
	for _, marker := range ActivationMarkers() {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
		s = strings.ReplaceAll(s, `\"`, `"`)
	}
	return s
}

func errorLocation(loc SourceLocation) doppelerrors.SourceLocation {
	return doppelerrors.SourceLocation{
		File:   loc.File,
		Line:   loc.Line,
		Column: loc.Column,
	}
}
