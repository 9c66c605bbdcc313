package diag

import (
	"fmt"
	"sort"
	"strings"

	"lumen/internal/source"
)

type renderedDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatDiagnostics renders diagnostics into a stable, one-line-per-entry
// representation suitable for golden assertions and CLI short output.
func FormatDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	rendered := make([]renderedDiagnostic, 0, len(diags))
	for i := range diags {
		rendered = appendRendered(rendered, &diags[i], fs, includeNotes)
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity < dj.Severity
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})

	var sb strings.Builder
	for _, r := range rendered {
		fmt.Fprintf(&sb, "%s %s %s:%d:%d %s\n", r.Severity, r.Code, r.Path, r.Line, r.Column, r.Message)
	}
	return sb.String()
}

func appendRendered(out []renderedDiagnostic, d *Diagnostic, fs *source.FileSet, includeNotes bool) []renderedDiagnostic {
	start, _ := fs.Resolve(d.Primary)
	file := fs.Get(d.Primary.File)
	out = append(out, renderedDiagnostic{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Path:     file.Path,
		Line:     start.Line,
		Column:   start.Col,
		Message:  d.Message,
	})
	if includeNotes {
		for _, n := range d.Notes {
			nStart, _ := fs.Resolve(n.Span)
			nFile := fs.Get(n.Span.File)
			out = append(out, renderedDiagnostic{
				Severity: "NOTE",
				Code:     d.Code.ID(),
				Path:     nFile.Path,
				Line:     nStart.Line,
				Column:   nStart.Col,
				Message:  n.Msg,
			})
		}
	}
	return out
}
