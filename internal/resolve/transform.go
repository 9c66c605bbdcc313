package resolve

import (
	"fmt"

	"lumen/internal/binding"
)

// Outcome is the sealed input to finalization: either a call inference
// completed, or a candidate it only resolved.
type Outcome interface {
	isOutcome()
}

// OnlyResolved wraps a candidate whose constraints were never solved: the
// arity and candidate are chosen, argument types are not final.
type OnlyResolved struct {
	Candidate Candidate
}

func (OnlyResolved) isOutcome() {}

// Completed wraps a fully completed call, possibly carrying nested inner
// calls from argument expressions that were themselves calls.
type Completed struct {
	Call CompletedCall
}

func (Completed) isOutcome() {}

// Finalizer drives the finalization of resolution outcomes against one
// Context. One top-level call at a time; no internal parallelism.
type Finalizer struct {
	ctx *Context
}

func NewFinalizer(ctx *Context) *Finalizer {
	return &Finalizer{ctx: ctx}
}

// TransformAndReport turns one resolution outcome into its public resolved
// call: views are materialized, diagnostics replayed, bindings written,
// argument types reconciled, and once everything is transformed every
// produced view runs through the registered checkers exactly once.
func (f *Finalizer) TransformAndReport(outcome Outcome) ResolvedCall {
	switch o := outcome.(type) {
	case OnlyResolved:
		return f.StubResolvedCall(o.Candidate)
	case Completed:
		var produced []ResolvedCall
		view := f.transformCompleted(o.Call, &produced)
		if f.ctx.Store != nil {
			// Checkers must see fully reconciled, diagnostic-bound calls,
			// nested ones included, each exactly once.
			f.runCheckers(produced)
		}
		return view
	default:
		panic(fmt.Sprintf("resolve: unknown outcome variant %T", outcome))
	}
}

func (f *Finalizer) transformCompleted(call CompletedCall, produced *[]ResolvedCall) ResolvedCall {
	switch c := call.(type) {
	case *CompletedSimple:
		// Inner calls first: their views must exist (and their types be
		// reconciled) before the outer call reads them back.
		for _, inner := range c.Inner {
			f.transformCompleted(inner, produced)
		}
		view := newCompletedView(f.ctx, c)
		if f.ctx.Store != nil {
			f.reportCallDiagnostics(c)
			tr := c.Candidate.tracing()
			tr.BindReference(f.ctx.Store, view.ResultingDescriptor())
			tr.BindResolvedCall(f.ctx.Store, view)
			f.reconcileArguments(view)
		}
		*produced = append(*produced, view)
		return view

	case *CompletedVariableAsFunction:
		for _, inner := range c.Invoke.Inner {
			f.transformCompleted(inner, produced)
		}
		variableView := newCompletedView(f.ctx, c.Variable)
		invokeView := newCompletedView(f.ctx, c.Invoke)
		composite := newVariableAsFunctionResolved(variableView, invokeView)
		if f.ctx.Store != nil {
			// The variable access carries no argument list of its own:
			// diagnostics and reconciliation run on the invoke view only.
			f.reportCallDiagnostics(c.Invoke)
			outer := outerTracing(c)
			outer.BindReference(f.ctx.Store, variableView.ResultingDescriptor())
			outer.BindResolvedCall(f.ctx.Store, composite)
			c.Invoke.Candidate.tracing().BindReference(f.ctx.Store, invokeView.ResultingDescriptor())
			f.reconcileArguments(invokeView)
		}
		*produced = append(*produced, composite)
		return composite

	default:
		panic(fmt.Sprintf("resolve: unknown completed call variant %T", call))
	}
}

// StubResolvedCall builds the stub view of an only-resolved candidate and
// binds its callee reference. No diagnostics are replayed, no checkers run,
// no reconciliation happens: argument types were never finalized.
func (f *Finalizer) StubResolvedCall(cand Candidate) ResolvedCall {
	switch c := cand.(type) {
	case *SimpleCandidate:
		view := newStubView(f.ctx, c)
		if f.ctx.Store != nil {
			c.tracing().BindReference(f.ctx.Store, view.CandidateDescriptor())
		}
		return view

	case *VariableAsFunctionCandidate:
		variableView := newStubView(f.ctx, c.Variable)
		invokeView := newStubView(f.ctx, c.Invoke)
		composite := newVariableAsFunctionResolved(variableView, invokeView)
		if f.ctx.Store != nil {
			outerCandidateTracing(c).BindReference(f.ctx.Store, variableView.CandidateDescriptor())
		}
		return composite

	default:
		panic(fmt.Sprintf("resolve: unknown candidate variant %T", cand))
	}
}

// outerTracing is the strategy of the whole `x()` expression of a
// variable-as-function pair: the invoke's call node with the variable
// access as callee.
func outerTracing(c *CompletedVariableAsFunction) binding.Tracing {
	return binding.CallTracing{
		Call:   c.Invoke.Candidate.CallExpr,
		Callee: c.Variable.Candidate.CallExpr,
	}
}

func outerCandidateTracing(c *VariableAsFunctionCandidate) binding.Tracing {
	return binding.CallTracing{
		Call:   c.Invoke.CallExpr,
		Callee: c.Variable.CallExpr,
	}
}
