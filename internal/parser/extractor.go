package parser

import (
	"fmt"

	"github.com/toyz/doppel/internal/models"
	"github.com/toyz/doppel/internal/syntax"
	"github.com/toyz/doppel/internal/typeinfer"
)

// ExtractInterface converts a protocol declaration into interface metadata.
// Only plain method requirements are modeled; property requirements,
// initializers, subscripts and nested types are skipped.
func ExtractInterface(decl *syntax.ProtocolDecl, sourceFile string, access models.AccessLevel) models.InterfaceMetadata {
	funcs := decl.Funcs()
	methods := make([]models.Method, 0, len(funcs))
	for _, fn := range funcs {
		methods = append(methods, methodFromFunc(fn))
	}

	return *models.NewMetadataBuilder(decl.Name, sourceFile).
		WithLine(decl.Position.Line).
		WithAccess(access).
		WithInherits(decl.Inherits...).
		BuildInterface(methods)
}

// ExtractRecord converts a struct declaration into record metadata. Only
// stored properties with an explicit type annotation become fields; a let
// with an initial value is excluded because the memberwise initializer
// will not accept a value for it.
func ExtractRecord(decl *syntax.StructDecl, sourceFile string, access models.AccessLevel) models.RecordMetadata {
	var fields []models.Field
	for _, prop := range decl.Properties() {
		if !prop.IsStored() {
			continue
		}
		if prop.Keyword == "let" && prop.HasInitializer {
			continue
		}
		fields = append(fields, models.Field{
			Name:     prop.Name,
			TypeText: prop.TypeText,
		})
	}

	return *models.NewMetadataBuilder(decl.Name, sourceFile).
		WithLine(decl.Position.Line).
		WithAccess(access).
		WithInherits(decl.Inherits...).
		BuildRecord(decl.GenericParams, fields)
}

func methodFromFunc(fn *syntax.FuncMember) models.Method {
	returnType := fn.ReturnType
	if typeinfer.IsVoidType(returnType) {
		returnType = ""
	}

	return models.Method{
		Name:       fn.Name,
		Parameters: normalizeParams(fn.Params),
		IsAsync:    fn.IsAsync,
		IsThrows:   fn.IsThrows,
		ReturnType: returnType,
	}
}

// normalizeParams maps syntax parameters to model parameters. A parameter
// with no usable internal name ("_: Int" omits both) gets an invented one,
// and its label stays suppressed so the generated signature still conforms.
func normalizeParams(params []syntax.Param) []models.Parameter {
	if len(params) == 0 {
		return nil
	}

	out := make([]models.Parameter, 0, len(params))
	for i, p := range params {
		label := p.Label
		name := p.Name
		if name == "" || name == "_" {
			name = fmt.Sprintf("arg%d", i)
			label = "_"
		}
		out = append(out, models.Parameter{
			Label:    label,
			Name:     name,
			TypeText: p.TypeText,
		})
	}
	return out
}
