package syntax

import "strings"

// Position is a 1-based source position
type Position struct {
	Line   int
	Column int
}

// Comment is a single comment attached to a declaration or member
type Comment struct {
	Text    string // raw text including the comment markers
	Line    int    // line of the first rune
	EndLine int    // line of the last rune (differs for block comments)
}

// Inner returns the comment text without markers, trimmed
func (c Comment) Inner() string {
	return CommentText(c.Text)
}

// DeclKind identifies the kind of a top-level declaration
type DeclKind int

const (
	KindOther DeclKind = iota
	KindProtocol
	KindStruct
	KindClass
	KindEnum
	KindActor
	KindExtension
	KindImport
)

// String returns the Swift keyword for the declaration kind
func (k DeclKind) String() string {
	switch k {
	case KindProtocol:
		return "protocol"
	case KindStruct:
		return "struct"
	case KindClass:
		return "class"
	case KindEnum:
		return "enum"
	case KindActor:
		return "actor"
	case KindExtension:
		return "extension"
	case KindImport:
		return "import"
	default:
		return "declaration"
	}
}

// Decl is a read-only view of a top-level declaration
type Decl interface {
	Kind() DeclKind
	DeclName() string
	LeadingComments() []Comment
	Pos() Position
}

// File is a parsed Swift source file
type File struct {
	Path  string
	Decls []Decl
}

// Protocols returns the protocol declarations in file order
func (f *File) Protocols() []*ProtocolDecl {
	var out []*ProtocolDecl
	for _, d := range f.Decls {
		if p, ok := d.(*ProtocolDecl); ok {
			out = append(out, p)
		}
	}
	return out
}

// Structs returns the struct declarations in file order
func (f *File) Structs() []*StructDecl {
	var out []*StructDecl
	for _, d := range f.Decls {
		if s, ok := d.(*StructDecl); ok {
			out = append(out, s)
		}
	}
	return out
}

// ProtocolDecl is a protocol declaration with its member requirements
type ProtocolDecl struct {
	Name     string
	Inherits []string
	Members  []Member
	Comments []Comment
	Position Position
}

func (d *ProtocolDecl) Kind() DeclKind             { return KindProtocol }
func (d *ProtocolDecl) DeclName() string           { return d.Name }
func (d *ProtocolDecl) LeadingComments() []Comment { return d.Comments }
func (d *ProtocolDecl) Pos() Position              { return d.Position }

// Funcs returns the function requirements in declaration order
func (d *ProtocolDecl) Funcs() []*FuncMember {
	var out []*FuncMember
	for _, m := range d.Members {
		if f, ok := m.(*FuncMember); ok {
			out = append(out, f)
		}
	}
	return out
}

// StructDecl is a struct declaration with its members
type StructDecl struct {
	Name          string
	GenericParams string // rendered generic parameter clause, "" when absent
	Inherits      []string
	Members       []Member
	Comments      []Comment
	Position      Position
}

func (d *StructDecl) Kind() DeclKind             { return KindStruct }
func (d *StructDecl) DeclName() string           { return d.Name }
func (d *StructDecl) LeadingComments() []Comment { return d.Comments }
func (d *StructDecl) Pos() Position              { return d.Position }

// Properties returns the property members in declaration order
func (d *StructDecl) Properties() []*PropertyMember {
	var out []*PropertyMember
	for _, m := range d.Members {
		if p, ok := m.(*PropertyMember); ok {
			out = append(out, p)
		}
	}
	return out
}

// OtherDecl is any top-level declaration the scanner recognizes but does not
// model in detail (classes, enums, actors, extensions, imports, globals)
type OtherDecl struct {
	Keyword  string
	Name     string
	Comments []Comment
	Position Position
}

func (d *OtherDecl) Kind() DeclKind {
	switch d.Keyword {
	case "class":
		return KindClass
	case "enum":
		return KindEnum
	case "actor":
		return KindActor
	case "extension":
		return KindExtension
	case "import":
		return KindImport
	default:
		return KindOther
	}
}

func (d *OtherDecl) DeclName() string           { return d.Name }
func (d *OtherDecl) LeadingComments() []Comment { return d.Comments }
func (d *OtherDecl) Pos() Position              { return d.Position }

// Member is a single member of a protocol or struct body
type Member interface {
	MemberName() string
	Pos() Position
}

// Param is one parameter clause of a function signature. Label is the
// external argument label: empty when only one name is written, "_" when the
// label is suppressed.
type Param struct {
	Label    string
	Name     string
	TypeText string
}

// CallSiteName returns the name a caller uses for this parameter. When the
// label is suppressed the internal name is the only one left to use.
func (p Param) CallSiteName() string {
	if p.Label == "" || p.Label == "_" {
		return p.Name
	}
	return p.Label
}

// FuncMember is a method requirement inside a protocol
type FuncMember struct {
	Name       string
	Params     []Param
	IsAsync    bool
	IsThrows   bool
	ReturnType string // normalized text, "" when no return is declared
	Modifiers  []string
	Comments   []Comment
	Position   Position
}

func (m *FuncMember) MemberName() string { return m.Name }
func (m *FuncMember) Pos() Position      { return m.Position }

// HasModifier reports whether the member carries the given modifier
func (m *FuncMember) HasModifier(name string) bool {
	for _, mod := range m.Modifiers {
		if mod == name {
			return true
		}
	}
	return false
}

// PropertyMember is a let/var member inside a struct
type PropertyMember struct {
	Keyword          string // "let" or "var"
	Name             string
	TypeText         string // normalized text, "" when the annotation is absent
	HasInitializer   bool
	HasAccessorBlock bool // a computed body; property observers do not count
	Modifiers        []string
	Comments         []Comment
	Position         Position
}

func (m *PropertyMember) MemberName() string { return m.Name }
func (m *PropertyMember) Pos() Position      { return m.Position }

// HasModifier reports whether the member carries the given modifier
func (m *PropertyMember) HasModifier(name string) bool {
	for _, mod := range m.Modifiers {
		if mod == name {
			return true
		}
	}
	return false
}

// IsStored reports whether the member behaves like a stored instance property
// with an explicit type annotation
func (m *PropertyMember) IsStored() bool {
	if m.TypeText == "" || m.HasAccessorBlock {
		return false
	}
	if m.HasModifier("static") || m.HasModifier("class") {
		return false
	}
	return true
}

// OtherMember is any member the parser recognizes but does not model
// (initializers, subscripts, property requirements, nested types)
type OtherMember struct {
	Keyword  string
	Name     string
	Position Position
}

func (m *OtherMember) MemberName() string { return m.Name }
func (m *OtherMember) Pos() Position      { return m.Position }

// LeadingCommentLines returns the inner text of each leading comment,
// one entry per comment, in source order
func LeadingCommentLines(d Decl) []string {
	comments := d.LeadingComments()
	lines := make([]string, 0, len(comments))
	for _, c := range comments {
		lines = append(lines, c.Inner())
	}
	return lines
}

// JoinInherits renders an inheritance clause for diagnostics
func JoinInherits(names []string) string {
	return strings.Join(names, ", ")
}
