package templates

import (
	"bytes"
	"text/template"

	doppelerrors "github.com/toyz/doppel/internal/errors"
)

// GeneratedHeader is the first line of every artifact. The cleaner relies
// on it to tell generated files from hand-written ones.
const GeneratedHeader = "// Code generated by doppel. DO NOT EDIT."

// DoubleData is the payload for a doubled interface artifact. Member lines
// arrive pre-rendered in blocks; the template frames them and separates the
// blocks with blank lines.
type DoubleData struct {
	Access     string // "public " or ""
	Name       string // artifact type name, e.g. UserServiceSpy
	SourceName string // the protocol the class conforms to
	Imports    []string
	Blocks     [][]string
}

// FactoryData is the payload for a record factory artifact
type FactoryData struct {
	Access  string // "public " or ""
	Name    string // the struct the extension targets
	Imports []string
	Params  []FactoryParamData
}

// FactoryParamData is one defaulted factory parameter
type FactoryParamData struct {
	Name    string // field name, also the forwarded argument label
	Type    string // parameter position type (escaping attributes intact)
	Default string
	Last    bool
}

// DoubleTemplate renders a final class conforming to the doubled protocol.
// Spies and mocks share it; the two differ only in the artifact name.
const DoubleTemplate = `// Code generated by doppel. DO NOT EDIT.

{{range .Imports}}import {{.}}
{{end}}
{{.Access}}final class {{.Name}}: {{.SourceName}} {
{{range $i, $block := .Blocks}}{{if $i}}
{{end}}{{range $block}}    {{.}}
{{end}}{{end}}}
`

// FactoryTemplate renders an extension with a static mock() builder whose
// parameters default every stored field.
const FactoryTemplate = `// Code generated by doppel. DO NOT EDIT.

{{range .Imports}}import {{.}}
{{end}}
extension {{.Name}} {
{{- if .Params}}
    {{.Access}}static func mock(
{{- range .Params}}
        {{.Name}}: {{.Type}} = {{.Default}}{{if not .Last}},{{end}}
{{- end}}
    ) -> {{.Name}} {
        {{.Name}}(
{{- range .Params}}
            {{.Name}}: {{.Name}}{{if not .Last}},{{end}}
{{- end}}
        )
    }
{{- else}}
    {{.Access}}static func mock() -> {{.Name}} {
        {{.Name}}()
    }
{{- end}}
}
`

// GenerateDouble renders a spy or mock class artifact
func GenerateDouble(data DoubleData) (string, error) {
	return executeTemplate("double", DoubleTemplate, data)
}

// GenerateFactory renders a record factory artifact
func GenerateFactory(data FactoryData) (string, error) {
	return executeTemplate("factory", FactoryTemplate, data)
}

// executeTemplate executes a Go template with the given data
func executeTemplate(name, templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return "", doppelerrors.WrapTemplateError(name, "parse", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", doppelerrors.WrapTemplateError(name, "execute", err)
	}

	return buf.String(), nil
}

// ExecuteTemplate executes a Go template with the given data (exported
// version for callers bringing their own template text)
func ExecuteTemplate(name, templateStr string, data interface{}) (string, error) {
	return executeTemplate(name, templateStr, data)
}
