package generator

import (
	"fmt"
	"sort"
	"strings"

	doppelerrors "github.com/toyz/doppel/internal/errors"
	"github.com/toyz/doppel/internal/models"
	"github.com/toyz/doppel/internal/templates"
	"github.com/toyz/doppel/internal/typeinfer"
	"github.com/toyz/doppel/internal/utils"
)

// Result carries everything generation produced for one source file
type Result struct {
	Artifacts []models.GeneratedArtifact // one per marked declaration, in source order
	Notes     []string                   // audit trail for lossy default values
}

// Generator assembles Swift test doubles from scanned file metadata.
// Spies and mocks share one renderer and differ only in the name suffix;
// factories render as static extensions over the memberwise initializer.
type Generator struct {
	classifier *typeinfer.Classifier
	imports    []string
}

// NewGenerator creates a generator with the builtin literal table and
// Foundation as the only import
func NewGenerator() *Generator {
	return NewGeneratorWithOptions(nil, nil)
}

// NewGeneratorWithOptions creates a generator with a custom classifier and
// extra import lines emitted into every artifact. A nil classifier falls
// back to the builtin literal table.
func NewGeneratorWithOptions(classifier *typeinfer.Classifier, extraImports []string) *Generator {
	if classifier == nil {
		classifier = typeinfer.NewClassifier(nil)
	}

	seen := map[string]bool{"Foundation": true}
	for _, imp := range extraImports {
		if imp = strings.TrimSpace(imp); imp != "" {
			seen[imp] = true
		}
	}
	imports := make([]string, 0, len(seen))
	for imp := range seen {
		imports = append(imports, imp)
	}
	sort.Strings(imports)

	return &Generator{
		classifier: classifier,
		imports:    imports,
	}
}

// GenerateFile produces one artifact per marked declaration in the file,
// ordered by the source line of the declaration
func (g *Generator) GenerateFile(metadata *models.FileMetadata) (*Result, error) {
	type placed struct {
		line     int
		artifact models.GeneratedArtifact
	}

	result := &Result{}
	var all []placed

	for i := range metadata.Spies {
		artifact, notes, err := g.GenerateDouble(metadata.Spies[i], models.ArtifactSpy)
		if err != nil {
			return nil, err
		}
		all = append(all, placed{metadata.Spies[i].GetLine(), artifact})
		result.Notes = append(result.Notes, notes...)
	}
	for i := range metadata.Mocks {
		artifact, notes, err := g.GenerateDouble(metadata.Mocks[i], models.ArtifactMock)
		if err != nil {
			return nil, err
		}
		all = append(all, placed{metadata.Mocks[i].GetLine(), artifact})
		result.Notes = append(result.Notes, notes...)
	}
	for i := range metadata.Factories {
		artifact, notes, err := g.GenerateFactory(metadata.Factories[i])
		if err != nil {
			return nil, err
		}
		all = append(all, placed{metadata.Factories[i].GetLine(), artifact})
		result.Notes = append(result.Notes, notes...)
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].line < all[j].line })
	for _, p := range all {
		result.Artifacts = append(result.Artifacts, p.artifact)
	}

	return result, nil
}

// GenerateDouble produces a spy or mock class for one protocol
func (g *Generator) GenerateDouble(iface models.InterfaceMetadata, kind models.ArtifactKind) (models.GeneratedArtifact, []string, error) {
	identity := kind.Identity(iface.GetName())
	access := iface.GetAccess().Prefix()

	var notes []string
	var blocks [][]string

	// arguments records, one per method that takes parameters
	for _, m := range iface.Methods {
		if len(m.Parameters) > 0 {
			blocks = append(blocks, g.argumentsStruct(m, access))
		}
	}

	// call tracking, one member per method
	var trackers []string
	for _, m := range iface.Methods {
		trackers = append(trackers, trackerLine(m, access))
	}
	if len(trackers) > 0 {
		blocks = append(blocks, trackers)
	}

	// failure producers for throwing methods
	var failures []string
	for _, m := range iface.Methods {
		if m.IsThrows {
			failures = append(failures, access+"var "+failureName(m)+": (() -> Error)?")
		}
	}
	if len(failures) > 0 {
		blocks = append(blocks, failures)
	}

	// injected return values for non-void methods
	var returns []string
	for _, m := range iface.Methods {
		if m.HasResult() {
			returns = append(returns, access+"let "+returnName(m)+": "+g.storedType(m.ReturnType))
		}
	}
	if len(returns) > 0 {
		blocks = append(blocks, returns)
	}

	if params := g.initParams(iface, &notes); len(params) > 0 {
		blocks = append(blocks, initBlock(params, access))
	}

	for _, m := range iface.Methods {
		blocks = append(blocks, methodBlock(m, access))
	}

	content, err := templates.GenerateDouble(templates.DoubleData{
		Access:     access,
		Name:       identity,
		SourceName: iface.GetName(),
		Imports:    g.imports,
		Blocks:     blocks,
	})
	if err != nil {
		return models.GeneratedArtifact{}, nil, doppelerrors.WrapGenerateError(kind.String(), iface.GetName(), err)
	}

	return models.GeneratedArtifact{
		Identity:   identity,
		Kind:       kind,
		SourceName: iface.GetName(),
		SourcePath: iface.GetSourceFile(),
		FileName:   identity + ".swift",
		Content:    content,
	}, notes, nil
}

// GenerateFactory produces a static factory extension for one struct
func (g *Generator) GenerateFactory(record models.RecordMetadata) (models.GeneratedArtifact, []string, error) {
	identity := models.ArtifactFactory.Identity(record.GetName())

	var notes []string
	params := make([]templates.FactoryParamData, len(record.Fields))
	for i, field := range record.Fields {
		params[i] = g.factoryParam(record.GetName(), field, &notes)
		params[i].Last = i == len(record.Fields)-1
	}

	content, err := templates.GenerateFactory(templates.FactoryData{
		Access:  record.GetAccess().Prefix(),
		Name:    record.GetName(),
		Imports: g.imports,
		Params:  params,
	})
	if err != nil {
		return models.GeneratedArtifact{}, nil, doppelerrors.WrapGenerateError("factory", record.GetName(), err)
	}

	return models.GeneratedArtifact{
		Identity:   identity,
		Kind:       models.ArtifactFactory,
		SourceName: record.GetName(),
		SourcePath: record.GetSourceFile(),
		FileName:   identity + ".swift",
		Content:    content,
	}, notes, nil
}

// factoryParam builds one defaulted parameter of the mock factory. Closure
// fields take the escaping parameter form with a synthesized stub; everything
// else defaults through the classifier.
func (g *Generator) factoryParam(owner string, field models.Field, notes *[]string) templates.FactoryParamData {
	if closure, ok := typeinfer.ParseClosure(field.TypeText); ok {
		g.noteClosureStub(notes, owner, field.Name, closure)
		return templates.FactoryParamData{
			Name:    field.Name,
			Type:    closure.ParameterTypeText(),
			Default: closure.StubLiteral(g.classifier),
		}
	}

	lit := g.classifier.DefaultValue(field.TypeText)
	if lit.Shape == typeinfer.ShapeNominal {
		*notes = append(*notes, lossyNote(owner, field.Name, field.TypeText, lit.Code))
	}
	return templates.FactoryParamData{
		Name:    field.Name,
		Type:    field.TypeText,
		Default: lit.Code,
	}
}

// initParam is one parameter of the generated initializer
type initParam struct {
	name     string
	typeText string
	def      string // "" means the parameter is required
}

// initParams collects initializer parameters: injected return values first in
// method order, then failure producers defaulting to nil
func (g *Generator) initParams(iface models.InterfaceMetadata, notes *[]string) []initParam {
	var params []initParam
	for _, m := range iface.Methods {
		if !m.HasResult() {
			continue
		}
		p := initParam{name: returnName(m), typeText: m.ReturnType}
		if closure, ok := typeinfer.ParseClosure(m.ReturnType); ok {
			// assigning the parameter to the stored member escapes it
			p.typeText = closure.ParameterTypeText()
			p.def = closure.StubLiteral(g.classifier)
			g.noteClosureStub(notes, iface.GetName(), returnName(m), closure)
		}
		params = append(params, p)
	}
	for _, m := range iface.Methods {
		if m.IsThrows {
			params = append(params, initParam{name: failureName(m), typeText: "(() -> Error)?", def: "nil"})
		}
	}
	return params
}

// initBlock renders the initializer with one parameter per line
func initBlock(params []initParam, access string) []string {
	lines := []string{access + "init("}
	for i, p := range params {
		line := "    " + p.name + ": " + p.typeText
		if p.def != "" {
			line += " = " + p.def
		}
		if i < len(params)-1 {
			line += ","
		}
		lines = append(lines, line)
	}
	lines = append(lines, ") {")
	for _, p := range params {
		lines = append(lines, "    self."+p.name+" = "+p.name)
	}
	lines = append(lines, "}")
	return lines
}

// argumentsStruct renders the nested record capturing one call's arguments
func (g *Generator) argumentsStruct(m models.Method, access string) []string {
	lines := []string{access + "struct " + argumentsType(m) + " {"}
	for _, p := range m.Parameters {
		lines = append(lines, "    "+access+"let "+utils.EscapeIdentifier(p.CallSiteName())+": "+g.storedType(p.TypeText))
	}
	lines = append(lines, "}")
	return lines
}

// methodBlock renders one conforming method: record the call, consult the
// failure producer, return the injected value
func methodBlock(m models.Method, access string) []string {
	lines := []string{access + "func " + methodSignature(m) + " {"}
	if len(m.Parameters) > 0 {
		lines = append(lines, "    "+trackerName(m)+".append("+argumentsType(m)+"("+argumentsForward(m)+"))")
	} else {
		lines = append(lines, "    "+trackerName(m)+" += 1")
	}
	if m.IsThrows {
		lines = append(lines,
			"    if let failure = "+failureName(m)+" {",
			"        throw failure()",
			"    }")
	}
	if m.HasResult() {
		lines = append(lines, "    return "+returnName(m))
	}
	lines = append(lines, "}")
	return lines
}

// methodSignature renders the declaration exactly as the protocol requires it
func methodSignature(m models.Method) string {
	var b strings.Builder
	b.WriteString(m.Name)
	b.WriteByte('(')
	for i, p := range m.Parameters {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.SignatureName())
		b.WriteString(": ")
		b.WriteString(p.TypeText)
	}
	b.WriteByte(')')
	if m.IsAsync {
		b.WriteString(" async")
	}
	if m.IsThrows {
		b.WriteString(" throws")
	}
	if m.HasResult() {
		b.WriteString(" -> ")
		b.WriteString(m.ReturnType)
	}
	return b.String()
}

// trackerLine renders the call-tracking member for one method
func trackerLine(m models.Method, access string) string {
	if len(m.Parameters) > 0 {
		return access + "private(set) var " + trackerName(m) + ": [" + argumentsType(m) + "] = []"
	}
	return access + "private(set) var " + trackerName(m) + " = 0"
}

// argumentsForward renders the memberwise call that captures the arguments,
// labeled by the record fields and fed from the internal parameter names
func argumentsForward(m models.Method) string {
	parts := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		parts[i] = utils.EscapeIdentifier(p.CallSiteName()) + ": " + utils.EscapeIdentifier(p.Name)
	}
	return strings.Join(parts, ", ")
}

// storedType returns the type text usable on a stored member: escaping
// attributes dropped from closures, inout never carried over
func (g *Generator) storedType(typeText string) string {
	typeText = strings.TrimPrefix(typeText, "inout ")
	if closure, ok := typeinfer.ParseClosure(typeText); ok {
		return closure.StoredTypeText()
	}
	return typeText
}

// noteClosureStub audits a synthesized stub whose return value came from the
// lossy nominal fallback
func (g *Generator) noteClosureStub(notes *[]string, owner, member string, closure typeinfer.Closure) {
	if typeinfer.IsVoidType(closure.ReturnType) {
		return
	}
	lit := g.classifier.DefaultValue(closure.ReturnType)
	if lit.Shape == typeinfer.ShapeNominal {
		*notes = append(*notes, lossyNote(owner, member, closure.ReturnType, lit.Code))
	}
}

func lossyNote(owner, member, typeText, code string) string {
	return fmt.Sprintf("%s.%s: no literal registered for %s, defaulted to %s", owner, member, typeText, code)
}

func argumentsType(m models.Method) string {
	return utils.UpperFirst(bareName(m.Name)) + "Arguments"
}

func trackerName(m models.Method) string {
	if len(m.Parameters) > 0 {
		return bareName(m.Name) + "Calls"
	}
	return bareName(m.Name) + "CallCount"
}

func failureName(m models.Method) string {
	return bareName(m.Name) + "Failure"
}

func returnName(m models.Method) string {
	return bareName(m.Name) + "ReturnValue"
}

// bareName strips backticks so suffixed member names stay single identifiers
func bareName(name string) string {
	return strings.Trim(name, "`")
}
