package diag

import (
	"testing"

	"lumen/internal/source"
)

func TestReportBuilderEmitOnce(t *testing.T) {
	bag := NewBag(8)
	b := ReportError(BagReporter{Bag: bag}, InfTypeMismatch, source.Span{Start: 1, End: 2}, "mismatch").
		WithNote(source.Span{Start: 5, End: 6}, "declared here")

	b.Emit()
	b.Emit()
	b.Emit()

	if bag.Len() != 1 {
		t.Fatalf("bag holds %d diagnostics after repeated Emit, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Severity != SevError || d.Code != InfTypeMismatch || d.Message != "mismatch" {
		t.Errorf("diagnostic mangled: %+v", d)
	}
	if len(d.Notes) != 1 || d.Notes[0].Msg != "declared here" {
		t.Error("note lost")
	}
}

func TestReportShortcutSeverities(t *testing.T) {
	tests := []struct {
		name string
		make func(Reporter) *ReportBuilder
		want Severity
	}{
		{"error", func(r Reporter) *ReportBuilder { return ReportError(r, InfInfo, source.Span{}, "m") }, SevError},
		{"warning", func(r Reporter) *ReportBuilder { return ReportWarning(r, InfInfo, source.Span{}, "m") }, SevWarning},
		{"info", func(r Reporter) *ReportBuilder { return ReportInfo(r, InfInfo, source.Span{}, "m") }, SevInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.make(nil).Diagnostic().Severity; got != tt.want {
				t.Errorf("severity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(8)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.Span{File: 1, Start: 3, End: 7}

	r.Report(InfTypeMismatch, SevError, sp, "dup", nil)
	r.Report(InfTypeMismatch, SevError, sp, "dup", nil)
	r.Report(InfTypeMismatch, SevError, sp, "different message", nil)
	r.Report(InfTypeMismatch, SevWarning, sp, "dup", nil)

	if bag.Len() != 3 {
		t.Fatalf("bag holds %d diagnostics, want 3 unique", bag.Len())
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{InfTypeMismatch, "INF1001"},
		{ResMissingDiagnostic, "RES2001"},
		{ChkDeprecatedCallable, "CHK3001"},
		{IOFixtureError, "IO4001"},
		{ObsTimings, "OBS5001"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("ID(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
