package resolve

import (
	"lumen/internal/diag"
	"lumen/internal/source"
)

// trackingReporter observes whether a diagnostic's replay produced at least
// one user-visible report. One instance per replayed diagnostic.
type trackingReporter struct {
	next     diag.Reporter
	reported bool
}

func (t *trackingReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	t.reported = true
	if t.next != nil {
		t.next.Report(code, sev, primary, msg, notes)
	}
}

// reportCallDiagnostics replays the diagnostics attached to one completed
// simple call, in original order. Each diagnostic ends up in exactly one of
// three states: it reported something concrete, the missing-diagnostic
// fallback fired for it, or it was dropped because the safety-net switch is
// off. The tracking flag rules out a concrete report plus a fallback for
// the same diagnostic.
func (f *Finalizer) reportCallDiagnostics(completed *CompletedSimple) {
	callSpan := f.callSpan(completed)
	for _, d := range completed.Status.Diagnostics {
		tracker := &trackingReporter{next: f.ctx.Reporter}
		d.Report(tracker, callSpan)
		if tracker.reported || !f.ctx.ReportMissingDiagnostic {
			continue
		}
		sev := diag.SevError
		if d.Successful() {
			sev = diag.SevWarning
		}
		diag.NewReportBuilder(f.ctx.Reporter, sev, diag.ResMissingDiagnostic, callSpan, d.Describe()).Emit()
	}
}

func (f *Finalizer) callSpan(completed *CompletedSimple) source.Span {
	if expr := f.ctx.Exprs.Get(completed.Candidate.CallExpr); expr != nil {
		return expr.Span
	}
	return source.Span{}
}
