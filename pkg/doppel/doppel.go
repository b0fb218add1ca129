// Package doppel exposes the embeddable engine behind the doppel CLI: feed
// it Swift source, get test double artifacts back. Placement, writing, and
// flag handling stay with the caller.
package doppel

import (
	"github.com/toyz/doppel/internal/annotations"
	"github.com/toyz/doppel/internal/generator"
	"github.com/toyz/doppel/internal/models"
	"github.com/toyz/doppel/internal/parser"
	"github.com/toyz/doppel/internal/registry"
	"github.com/toyz/doppel/internal/typeinfer"
)

// Version is the tool version, compared against the config version gate
const Version = "v0.4.1"

// SkipNoMarkers is the skip reason for files without any doppel marker
const SkipNoMarkers = "no doppel markers"

// Artifact is one generated test double
type Artifact struct {
	Identity string // doubled type name, e.g. UserServiceSpy or User+Mock
	FileName string // Identity + ".swift"
	Source   string // generated Swift source
}

// Result is the outcome of processing one source file
type Result struct {
	Artifacts  []Artifact
	Skipped    bool     // true when the file contains no marker at all
	SkipReason string   // why the file was skipped
	Notes      []string // markers dropped for kind mismatch, lossy defaults
}

// Engine turns marked Swift source into test double artifacts
type Engine struct {
	scanner   *parser.Scanner
	generator *generator.Generator
}

type options struct {
	access   string
	literals map[string]string
	imports  []string
}

// Option configures an Engine
type Option func(*options)

// WithAccess sets the default access level of generated declarations,
// "internal" or "public". Markers override it per declaration.
func WithAccess(level string) Option {
	return func(o *options) {
		o.access = level
	}
}

// WithLiterals registers custom default literals, consulted before the
// builtin table
func WithLiterals(literals map[string]string) Option {
	return func(o *options) {
		o.literals = literals
	}
}

// WithImports adds import lines emitted after Foundation in every artifact
func WithImports(imports []string) Option {
	return func(o *options) {
		o.imports = imports
	}
}

// New creates an engine. Options are validated here, so a misconfigured
// access level or literal table fails before any file is touched.
func New(opts ...Option) (*Engine, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	access, err := models.ParseAccessLevel(o.access)
	if err != nil {
		return nil, err
	}

	literals := registry.NewLiteralRegistry()
	if _, err := literals.RegisterAll(o.literals); err != nil {
		return nil, err
	}

	scanner := parser.NewScanner()
	scanner.DefaultAccess = access

	classifier := typeinfer.NewClassifier(literals.Table())

	return &Engine{
		scanner:   scanner,
		generator: generator.NewGeneratorWithOptions(classifier, o.imports),
	}, nil
}

// ProcessFile scans source and produces artifacts. The path is used for
// locations in notes and errors; the source bytes are what gets parsed.
// Files containing no marker substring skip before any parsing happens.
func (e *Engine) ProcessFile(path string, source []byte) (Result, error) {
	text := string(source)
	if !annotations.ContainsActivationMarker(text) {
		return Result{Skipped: true, SkipReason: SkipNoMarkers}, nil
	}

	metadata, err := e.scanner.ParseSource(path, text)
	if err != nil {
		return Result{}, err
	}

	generated, err := e.generator.GenerateFile(metadata)
	if err != nil {
		return Result{}, err
	}

	var result Result
	for _, note := range metadata.Notes {
		result.Notes = append(result.Notes, note.String())
	}
	result.Notes = append(result.Notes, generated.Notes...)

	for _, artifact := range generated.Artifacts {
		result.Artifacts = append(result.Artifacts, Artifact{
			Identity: artifact.Identity,
			FileName: artifact.FileName,
			Source:   artifact.Content,
		})
	}

	return result, nil
}
