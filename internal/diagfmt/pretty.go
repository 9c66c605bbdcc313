// Package diagfmt renders diagnostic bags for humans: a header line per
// finding, the offending source line, and a caret underline aligned with
// the primary span.
package diagfmt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lumen/internal/diag"
	"lumen/internal/source"
)

// Pretty formats diagnostics in a human-readable form. It walks bag.Items()
// in order (callers are expected to bag.Sort() first) and prints
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline for the primary span,
// then the notes in the same shape when ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if w == nil || bag == nil {
		return
	}
	p := prettyPrinter{w: w, fs: fs, opts: opts}
	for _, d := range bag.Items() {
		p.printDiagnostic(&d)
	}
}

type prettyPrinter struct {
	w    io.Writer
	fs   *source.FileSet
	opts PrettyOpts
}

func (p *prettyPrinter) printDiagnostic(d *diag.Diagnostic) {
	p.printFinding(d.Severity.String(), d.Code.ID(), d.Primary, d.Message, severityColor(d.Severity))
	if !p.opts.ShowNotes {
		return
	}
	for _, note := range d.Notes {
		p.printFinding("note", "", note.Span, note.Msg, color.New(color.FgCyan))
	}
}

func (p *prettyPrinter) printFinding(sev, code string, span source.Span, msg string, c *color.Color) {
	file, start, end := p.resolve(span)
	label := sev
	if code != "" {
		label = sev + " " + code
	}
	if p.opts.Color {
		label = c.Sprint(label)
	}
	if file == nil {
		fmt.Fprintf(p.w, "%s: %s\n", label, msg)
		return
	}
	fmt.Fprintf(p.w, "%s:%d:%d: %s: %s\n", p.displayPath(file.Path), start.Line, start.Col, label, msg)
	p.printContext(file, start, end, c)
}

// printContext renders the first line of the span with a caret underline.
// Alignment uses display widths so tabs and wide runes do not skew the caret.
func (p *prettyPrinter) printContext(file *source.File, start, end source.LineCol, c *color.Color) {
	line := file.GetLine(start.Line)
	if line == "" && start.Line == 0 {
		return
	}
	gutter := fmt.Sprintf("  %d | ", start.Line)
	fmt.Fprintf(p.w, "%s%s\n", gutter, line)

	startCol := int(start.Col)
	if startCol < 1 {
		startCol = 1
	}
	endCol := len(line) + 1
	if end.Line == start.Line && int(end.Col) <= endCol {
		endCol = int(end.Col)
	}
	prefix, spanned := sliceLine(line, startCol, endCol)

	underline := "^" + strings.Repeat("~", max(runewidth.StringWidth(spanned)-1, 0))
	if p.opts.Color {
		underline = c.Sprint(underline)
	}
	pad := strings.Repeat(" ", runewidth.StringWidth(gutter)+runewidth.StringWidth(prefix))
	fmt.Fprintf(p.w, "%s%s\n", pad, underline)
}

// sliceLine splits a line at 1-based byte columns into the text before the
// span and the spanned text itself.
func sliceLine(line string, startCol, endCol int) (prefix, spanned string) {
	startIdx := min(startCol-1, len(line))
	endIdx := min(endCol-1, len(line))
	if endIdx < startIdx {
		endIdx = startIdx
	}
	return line[:startIdx], line[startIdx:endIdx]
}

func (p *prettyPrinter) resolve(span source.Span) (*source.File, source.LineCol, source.LineCol) {
	// A zero-value span marks diagnostics with no source anchor (I/O
	// failures before any file was registered).
	if p.fs == nil || span == (source.Span{}) || int(span.File) >= p.fs.Len() {
		return nil, source.LineCol{}, source.LineCol{}
	}
	file := p.fs.Get(span.File)
	start, end := p.fs.Resolve(span)
	return file, start, end
}

func (p *prettyPrinter) displayPath(path string) string {
	switch p.opts.PathMode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	case PathModeRelative:
		if wd, err := os.Getwd(); err == nil {
			if rel, err := filepath.Rel(wd, path); err == nil && !strings.HasPrefix(rel, "..") {
				return rel
			}
		}
	case PathModeBasename:
		return filepath.Base(path)
	}
	return path
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}
