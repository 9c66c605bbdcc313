package resolve

import (
	"lumen/internal/ast"
	"lumen/internal/flow"
	"lumen/internal/symbols"
	"lumen/internal/types"
)

// CallPosition tags which parameter/argument pair an expression is being
// checked as. The zero value means "unknown position".
type CallPosition struct {
	Valid      bool
	Callable   symbols.CallableID
	ParamIndex uint32
	Argument   ast.ExprID
}

// narrowedContext combines everything a re-resolution of one argument sees:
// the flow state right after it, the expected type and the call position.
type narrowedContext struct {
	flow     *flow.Info
	expected types.TypeID
	position CallPosition
}

// reconcileArguments refines the recorded types of every value argument of
// a finalized call, now that the full substitution is known. Best effort:
// every "not applicable" case degrades to a no-op.
func (f *Finalizer) reconcileArguments(view ResolvedCall) {
	for _, group := range view.ValueArguments() {
		for _, va := range group.Args {
			f.updateRecordedTypeForArgument(view, va)
		}
	}
}

func (f *Finalizer) updateRecordedTypeForArgument(view ResolvedCall, va ValueArgument) {
	store := f.ctx.Store
	in := f.ctx.Types

	expected := types.NoTypeID
	position := CallPosition{}
	if match, ok := view.ArgumentMapping(va.Expr); ok {
		expected = match.Param.EffectiveExpectedType()
		position = CallPosition{
			Valid:      true,
			Callable:   view.ResultingDescriptor(),
			ParamIndex: match.Param.Index,
			Argument:   va.Expr,
		}
	}
	nctx := narrowedContext{
		flow:     view.FlowAfterArgument(va.Expr),
		expected: expected,
		position: position,
	}

	leaf := f.ctx.Exprs.LastMeaningful(va.Expr)
	if !leaf.IsValid() {
		// Nothing usable under the wrappers (e.g. an empty block).
		return
	}

	recorded, hasRecorded := store.TypeOf(leaf)
	updated := recorded
	hasUpdated := hasRecorded
	if rec, ok := store.ResolvedCallAt(leaf); ok {
		// The argument is itself a call whose overload was just resolved:
		// its resulting return type wins over the provisional record.
		if inner, isView := rec.(ResolvedCall); isView {
			if res := f.ctx.Symbols.Get(inner.ResultingDescriptor()); res != nil && res.Return != types.NoTypeID {
				updated = res.Return
				hasUpdated = true
			}
		}
	}
	if !hasUpdated {
		return
	}

	if !in.Denotable(updated) && !in.ContainsError(updated) {
		updated = in.MaterializeLiteral(updated, nctx.expected)
	}

	if hasRecorded && updated == recorded && !in.ContainsError(recorded) {
		// Equality short-circuit: rewriting here would spuriously re-mark
		// the chain, not just waste time.
		return
	}

	for _, node := range f.ctx.Exprs.DeparenthesizeChain(va.Expr) {
		t := updated
		if f.nullableWidened(node) {
			t = in.Nullable(updated)
		}
		store.RecordType(node, t)
	}
}

// nullableWidened reports whether node crosses a safe-call boundary: a
// safe-qualified expression whose receiver's recorded type is nullable.
func (f *Finalizer) nullableWidened(node ast.ExprID) bool {
	q, ok := f.ctx.Exprs.Qualified(node)
	if !ok || !q.Safe {
		return false
	}
	receiverType, ok := f.ctx.Store.TypeOf(q.Receiver)
	return ok && f.ctx.Types.IsNullable(receiverType)
}
