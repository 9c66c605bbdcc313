package resolve

import (
	"fmt"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/source"
)

// CallChecker inspects one finalized resolved call. Checkers report through
// the context's reporter and return nothing; their failures are their own
// responsibility.
type CallChecker interface {
	Check(call ResolvedCall, anchor ast.ExprID, ctx *Context)
}

// runCheckers invokes every registered checker against every produced view,
// in registration order, inner calls before the outer one. The variable
// component of a variable-as-function composite is checked additionally,
// with the same anchor.
func (f *Finalizer) runCheckers(views []ResolvedCall) {
	for _, view := range views {
		anchor := f.checkerAnchor(view)
		for _, checker := range f.ctx.Checkers {
			checker.Check(view, anchor, f.ctx)
		}
		if composite, ok := view.(*VariableAsFunctionResolved); ok {
			for _, checker := range f.ctx.Checkers {
				checker.Check(composite.VariableCall(), anchor, f.ctx)
			}
		}
	}
}

// checkerAnchor picks the deterministic syntax node diagnostics hang off:
// the callee expression when it exists and is not fabricated, the whole
// call otherwise.
func (f *Finalizer) checkerAnchor(view ResolvedCall) ast.ExprID {
	if callData, ok := f.ctx.Exprs.Call(view.CallExpr()); ok {
		if callData.Callee.IsValid() && !callData.Synthetic {
			return callData.Callee
		}
	}
	return view.CallExpr()
}

func anchorSpan(ctx *Context, anchor ast.ExprID) source.Span {
	if expr := ctx.Exprs.Get(anchor); expr != nil {
		return expr.Span
	}
	return source.Span{}
}

// DeprecationChecker warns on calls to descriptors flagged deprecated.
type DeprecationChecker struct{}

func (DeprecationChecker) Check(call ResolvedCall, anchor ast.ExprID, ctx *Context) {
	decl := ctx.Symbols.Get(call.CandidateDescriptor())
	if decl == nil || !decl.Deprecated() {
		return
	}
	name, _ := ctx.Symbols.Strings.Lookup(decl.Name)
	diag.ReportWarning(ctx.Reporter, diag.ChkDeprecatedCallable, anchorSpan(ctx, anchor),
		fmt.Sprintf("'%s' is deprecated", name)).Emit()
}

// DefaultedParameterChecker notes parameters filled from default values.
// Off by default; enabled through the project manifest.
type DefaultedParameterChecker struct{}

func (DefaultedParameterChecker) Check(call ResolvedCall, anchor ast.ExprID, ctx *Context) {
	resulting := ctx.Symbols.Get(call.ResultingDescriptor())
	if resulting == nil {
		return
	}
	args := call.ValueArguments()
	for _, param := range resulting.Params {
		group, ok := args[param.Index]
		if ok && group.Kind != ArgumentNone {
			continue
		}
		if !param.HasDefault {
			continue
		}
		name, _ := ctx.Symbols.Strings.Lookup(param.Name)
		diag.ReportInfo(ctx.Reporter, diag.ChkDefaultedParameter, anchorSpan(ctx, anchor),
			fmt.Sprintf("parameter '%s' uses its default value", name)).Emit()
	}
}

// DefaultCheckers is the registration set used when no manifest overrides it.
func DefaultCheckers() []CallChecker {
	return []CallChecker{DeprecationChecker{}}
}
