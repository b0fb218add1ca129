package typeinfer

import "strings"

// Closure is a decomposed Swift function type. Splitting happens on the
// canonical text the parser renders, so attribute and arrow spacing are
// predictable.
type Closure struct {
	Attributes []string // leading @attributes, in source order
	Params     []string // parameter types, one per top-level comma
	Effects    []string // async/throws between the parameter list and arrow
	ReturnType string
}

// escaping-family attributes are valid on parameters but not on stored
// properties; their presence is positional, not part of the type identity
var storedIllegalAttributes = map[string]bool{
	"@escaping":    true,
	"@autoclosure": true,
}

// ParseClosure splits a function type at its first top-level arrow. It
// returns false for anything that is not a function type, including types
// whose only arrows sit inside generic arguments or nested tuples.
func ParseClosure(typeText string) (Closure, bool) {
	attrs, rest := SplitAttributes(strings.TrimSpace(typeText))

	arrow := indexTopLevelArrow(rest)
	if arrow < 0 {
		return Closure{}, false
	}

	head := strings.TrimSpace(rest[:arrow])
	c := Closure{
		Attributes: attrs,
		ReturnType: strings.TrimSpace(rest[arrow+2:]),
	}

	if strings.HasPrefix(head, "(") {
		closeIdx := matchingParen(head)
		if closeIdx < 0 {
			return Closure{}, false
		}
		c.Params = splitParams(head[1:closeIdx])
		if effects := strings.Fields(head[closeIdx+1:]); len(effects) > 0 {
			c.Effects = effects
		}
		return c, true
	}

	// Tolerate an unparenthesized single parameter; the parser can hand
	// one through even though current Swift rejects the spelling.
	fields := strings.Fields(head)
	for len(fields) > 0 && isEffectKeyword(fields[len(fields)-1]) {
		c.Effects = append([]string{fields[len(fields)-1]}, c.Effects...)
		fields = fields[:len(fields)-1]
	}
	if len(fields) > 0 {
		c.Params = []string{strings.Join(fields, " ")}
	}
	return c, true
}

// StoredTypeText renders the closure type for a stored-property position,
// where @escaping and @autoclosure are rejected by the compiler.
func (c Closure) StoredTypeText() string {
	var attrs []string
	for _, a := range c.Attributes {
		if !storedIllegalAttributes[attributeName(a)] {
			attrs = append(attrs, a)
		}
	}
	return c.render(attrs)
}

// ParameterTypeText renders the closure type for a parameter position whose
// value the generated code stores; @escaping becomes mandatory there.
func (c Closure) ParameterTypeText() string {
	attrs := c.Attributes
	if !c.hasAttribute("@escaping") {
		attrs = append(append([]string{}, attrs...), "@escaping")
	}
	return c.render(attrs)
}

// StubLiteral synthesizes a no-op closure literal: parameters are ignored,
// and a non-void return evaluates the default literal of the return type.
func (c Closure) StubLiteral(classifier *Classifier) string {
	if IsVoidType(c.ReturnType) {
		if len(c.Params) == 0 {
			return "{}"
		}
		return "{ " + ignoredParams(len(c.Params)) + " in }"
	}

	body := classifier.DefaultValue(c.ReturnType).Code
	if len(c.Params) == 0 {
		return "{ " + body + " }"
	}
	return "{ " + ignoredParams(len(c.Params)) + " in " + body + " }"
}

func (c Closure) render(attrs []string) string {
	var b strings.Builder
	for _, a := range attrs {
		b.WriteString(a)
		b.WriteByte(' ')
	}
	b.WriteByte('(')
	b.WriteString(strings.Join(c.Params, ", "))
	b.WriteByte(')')
	for _, e := range c.Effects {
		b.WriteByte(' ')
		b.WriteString(e)
	}
	b.WriteString(" -> ")
	b.WriteString(c.ReturnType)
	return b.String()
}

func (c Closure) hasAttribute(name string) bool {
	for _, a := range c.Attributes {
		if attributeName(a) == name {
			return true
		}
	}
	return false
}

// attributeName strips an argument list from an attribute, so
// "@convention(c)" compares as "@convention"
func attributeName(attr string) string {
	if i := strings.IndexByte(attr, '('); i >= 0 {
		return attr[:i]
	}
	return attr
}

func ignoredParams(n int) string {
	blanks := make([]string, n)
	for i := range blanks {
		blanks[i] = "_"
	}
	return strings.Join(blanks, ", ")
}

func isEffectKeyword(word string) bool {
	switch word {
	case "async", "throws", "rethrows":
		return true
	}
	return false
}

// SplitAttributes separates leading @attribute tokens from the rest of a
// type expression. An attribute only owns a parenthesized argument list
// when the parenthesis abuts its name, which matches how canonical type
// text is rendered: "@convention(c) () -> Void" keeps "(c)" with the
// attribute while "@escaping (Int) -> Void" keeps its parameter tuple.
func SplitAttributes(typeText string) ([]string, string) {
	var attrs []string
	rest := strings.TrimSpace(typeText)

	for strings.HasPrefix(rest, "@") {
		end := attributeEnd(rest)
		if end <= 1 {
			break
		}
		attrs = append(attrs, rest[:end])
		rest = strings.TrimLeft(rest[end:], " ")
	}

	return attrs, rest
}

func attributeEnd(text string) int {
	i := 1
	for i < len(text) && isIdentByte(text[i]) {
		i++
	}
	if i < len(text) && text[i] == '(' {
		if close := matchingParen(text[i:]); close >= 0 {
			i += close + 1
		}
	}
	return i
}

func isIdentByte(b byte) bool {
	return b == '_' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// matchingParen returns the index of the ')' closing the '(' at text[0],
// or -1 when the group never closes
func matchingParen(text string) int {
	if len(text) == 0 || text[0] != '(' {
		return -1
	}
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
			if depth == 0 && text[i] == ')' {
				return i
			}
		}
	}
	return -1
}

// indexTopLevelArrow finds the first "->" outside every delimiter group
func indexTopLevelArrow(text string) int {
	depth := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '-' && i+1 < len(text) && text[i+1] == '>' {
			if depth == 0 {
				return i
			}
			i++
			continue
		}
		switch text[i] {
		case '(', '[', '<':
			depth++
		case ')', ']', '>':
			depth--
		}
	}
	return -1
}

// splitParams splits a parameter list at top-level commas. Nested closures,
// tuples, and generic arguments stay inside one parameter.
func splitParams(list string) []string {
	var params []string
	depth := 0
	start := 0

	for i := 0; i < len(list); i++ {
		if list[i] == '-' && i+1 < len(list) && list[i+1] == '>' {
			i++
			continue
		}
		switch list[i] {
		case '(', '[', '<':
			depth++
		case ')', ']', '>':
			depth--
		case ',':
			if depth == 0 {
				if param := strings.TrimSpace(list[start:i]); param != "" {
					params = append(params, param)
				}
				start = i + 1
			}
		}
	}

	if tail := strings.TrimSpace(list[start:]); tail != "" {
		params = append(params, tail)
	}
	return params
}
