package cli

import (
	stderrors "errors"
	"sort"

	doppelerrors "github.com/toyz/doppel/internal/errors"
	"github.com/toyz/doppel/internal/utils"
)

// DiagnosticReporter renders errors with their code, location, suggestions,
// and context through the diagnostic system
type DiagnosticReporter struct {
	diagnostics *utils.DiagnosticSystem
}

// NewDiagnosticReporter creates a new diagnostic reporter
func NewDiagnosticReporter(diagnostics *utils.DiagnosticSystem) *DiagnosticReporter {
	return &DiagnosticReporter{
		diagnostics: diagnostics,
	}
}

// ReportError renders one error. Structured errors show their code and
// suggestions; foreign errors print as-is.
func (r *DiagnosticReporter) ReportError(err error) {
	var derr doppelerrors.DoppelError
	if !stderrors.As(err, &derr) {
		r.diagnostics.Error("%v", err)
		return
	}

	r.diagnostics.Error("%s: %s", derr.ErrorCode(), derr.Error())

	for _, hint := range derr.Suggestions() {
		r.diagnostics.Info("  hint: %s", hint)
	}

	// context keys sorted so error output stays stable
	context := derr.Context()
	keys := make([]string, 0, len(context))
	for key := range context {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		r.diagnostics.Debug("  %s: %v", key, context[key])
	}
}

// ReportNote surfaces a non-fatal note tied to a source file
func (r *DiagnosticReporter) ReportNote(file, note string) {
	r.diagnostics.Verbose("%s: %s", file, note)
}
