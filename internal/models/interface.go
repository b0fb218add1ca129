package models

// InterfaceMetadata represents a protocol whose methods get doubled
type InterfaceMetadata struct {
	BaseMetadataTrait
	AccessTrait
	Inherits []string // protocol inheritance clause, for diagnostics
	Methods  []Method // method requirements in declaration order
}

// Method represents one method requirement of a protocol
type Method struct {
	Name       string      // method name
	Parameters []Parameter // parameter clauses in declaration order
	IsAsync    bool        // whether the requirement is async
	IsThrows   bool        // whether the requirement throws or rethrows
	ReturnType string      // normalized return type text, "" for void
}

// HasResult reports whether the method returns a value
func (m Method) HasResult() bool {
	return m.ReturnType != ""
}

// Parameter represents one parameter clause of a method
type Parameter struct {
	Label    string // external argument label; "" when absent, "_" when suppressed
	Name     string // internal parameter name
	TypeText string // normalized type text, attributes included
}

// CallSiteName returns the name a caller writes for this parameter
func (p Parameter) CallSiteName() string {
	if p.Label == "" || p.Label == "_" {
		return p.Name
	}
	return p.Label
}

// SignatureName returns the label/name pair as written in a declaration
func (p Parameter) SignatureName() string {
	if p.Label == "" || p.Label == p.Name {
		return p.Name
	}
	return p.Label + " " + p.Name
}
