package resolve

import (
	"lumen/internal/diag"
	"lumen/internal/source"
)

// CallDiagnostic is one finding constraint solving attached to a completed
// call. Report is the diagnostic's own replay logic: it may emit one
// user-visible report, several, or none at all (when the finding is subsumed
// elsewhere). The binder watches whether anything landed.
type CallDiagnostic interface {
	// Report replays the finding through r. callSpan is the syntactic
	// context of the call being finalized.
	Report(r diag.Reporter, callSpan source.Span)
	// Successful reports whether the originating candidate was applicable.
	Successful() bool
	// Describe is the message payload used when the replay produced no
	// user-visible report.
	Describe() string
}

// ResolutionStatus carries the ordered diagnostics of one completed call.
type ResolutionStatus struct {
	Diagnostics []CallDiagnostic
}

// ReportedDiagnostic is the common concrete CallDiagnostic: it replays
// itself verbatim. A zero Span anchors at the call.
type ReportedDiagnostic struct {
	Code        diag.Code
	Severity    diag.Severity
	Span        source.Span
	Message     string
	Notes       []diag.Note
	FromSuccess bool
}

func (d ReportedDiagnostic) Report(r diag.Reporter, callSpan source.Span) {
	primary := d.Span
	if primary.Empty() {
		primary = callSpan
	}
	r.Report(d.Code, d.Severity, primary, d.Message, d.Notes)
}

func (d ReportedDiagnostic) Successful() bool {
	return d.FromSuccess
}

func (d ReportedDiagnostic) Describe() string {
	if d.Message != "" {
		return d.Message
	}
	return d.Code.Title()
}

// SuppressedDiagnostic deliberately emits nothing when replayed. Inference
// produces these for findings that only matter to candidate ranking; the
// binder's missing-diagnostic net catches any that should have surfaced.
type SuppressedDiagnostic struct {
	Desc        string
	FromSuccess bool
}

func (d SuppressedDiagnostic) Report(diag.Reporter, source.Span) {}

func (d SuppressedDiagnostic) Successful() bool {
	return d.FromSuccess
}

func (d SuppressedDiagnostic) Describe() string {
	return d.Desc
}
