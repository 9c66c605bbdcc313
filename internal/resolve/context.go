package resolve

import (
	"lumen/internal/ast"
	"lumen/internal/binding"
	"lumen/internal/diag"
	"lumen/internal/symbols"
	"lumen/internal/types"
)

// Context carries the collaborators one finalization request runs against.
// The whole transform for one top-level call executes synchronously on the
// caller's goroutine; Context performs no locking itself.
type Context struct {
	Exprs    *ast.Exprs
	Types    *types.Interner
	Symbols  *symbols.Table
	Reporter diag.Reporter

	// Store is the binding sink. When nil, only stub reference binding is
	// skipped and diagnostics, type reconciliation and checkers are skipped
	// entirely.
	Store *binding.Store

	// Checkers run against every finalized resolved call, in registration
	// order.
	Checkers []CallChecker

	// ReportMissingDiagnostic enables the safety net that converts
	// diagnostics which produced no report into a synthetic one.
	ReportMissingDiagnostic bool
}
