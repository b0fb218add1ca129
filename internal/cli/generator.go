package cli

import (
	"path/filepath"
	"time"

	doppelerrors "github.com/toyz/doppel/internal/errors"
	"github.com/toyz/doppel/internal/utils"
	"github.com/toyz/doppel/pkg/doppel"
)

// RunConfig carries everything one generation run needs
type RunConfig struct {
	Inputs    []string
	OutputDir string      // the -o flag, "" when unset
	Access    string      // the --access flag, "" when unset
	List      bool        // dry run: report artifacts without writing
	Config    *FileConfig // loaded config, never nil
}

// GenerationSummary aggregates what a run did
type GenerationSummary struct {
	FilesProcessed   int
	FilesSkipped     int
	ArtifactsWritten int
	GeneratedFiles   []string
	Notes            int
	Duration         time.Duration
}

// Generator coordinates the CLI generation process: collect inputs, run the
// engine per file, resolve placement, write artifacts
type Generator struct {
	scanner     *SourceScanner
	writer      *ArtifactWriter
	reporter    *DiagnosticReporter
	diagnostics *utils.DiagnosticSystem
	summary     GenerationSummary
}

// NewGenerator creates a CLI generator wired to the diagnostic system
func NewGenerator(diagnostics *utils.DiagnosticSystem) *Generator {
	return &Generator{
		scanner:     NewSourceScanner(),
		writer:      NewArtifactWriter(),
		reporter:    NewDiagnosticReporter(diagnostics),
		diagnostics: diagnostics,
	}
}

// GetSummary returns the summary of the last run
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Run executes one generation pass. Setup failures return immediately;
// per-file failures are reported, counted, and folded into the returned
// error at the end, so one bad file never blocks the rest.
func (g *Generator) Run(config RunConfig) error {
	start := time.Now()
	g.summary = GenerationSummary{}

	access := config.Access
	if access == "" {
		access = config.Config.Access
	}

	engine, err := doppel.New(
		doppel.WithAccess(access),
		doppel.WithLiterals(config.Config.Literals),
		doppel.WithImports(config.Config.Imports),
	)
	if err != nil {
		return err
	}

	files, err := g.scanner.CollectInputs(config.Inputs)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		g.diagnostics.Warn("no Swift files found under %v", config.Inputs)
		return nil
	}

	resolver := &OutputResolver{Explicit: config.OutputDir, Config: config.Config.Output}
	reader := g.scanner.Processor().Reader()
	failures := doppelerrors.NewMultipleErrors()

	for _, file := range files {
		g.diagnostics.Verbose("processing %s", file)

		source, err := reader.ReadFile(file)
		if err != nil {
			g.reporter.ReportError(err)
			failures.Add(doppelerrors.AsDoppel(err))
			continue
		}

		result, err := engine.ProcessFile(file, source)
		if err != nil {
			g.reporter.ReportError(err)
			failures.Add(doppelerrors.AsDoppel(err))
			continue
		}

		g.summary.FilesProcessed++

		if result.Skipped {
			g.summary.FilesSkipped++
			g.diagnostics.Verbose("skipping %s: %s", file, result.SkipReason)
			continue
		}

		for _, note := range result.Notes {
			g.reporter.ReportNote(file, note)
			g.summary.Notes++
		}

		outDir := resolver.Resolve(file)
		for _, artifact := range result.Artifacts {
			if config.List {
				g.diagnostics.List("%s", filepath.Join(outDir, artifact.FileName))
				continue
			}

			target, err := g.writer.Write(outDir, artifact.FileName, artifact.Source)
			if err != nil {
				g.reporter.ReportError(err)
				failures.Add(doppelerrors.AsDoppel(err))
				continue
			}
			g.summary.ArtifactsWritten++
			g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, target)
			g.diagnostics.PhaseProgress("Writing " + target)
		}
	}

	g.summary.Duration = time.Since(start)

	if !failures.IsEmpty() {
		return failures
	}
	return nil
}
