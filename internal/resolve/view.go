package resolve

import (
	"lumen/internal/ast"
	"lumen/internal/flow"
	"lumen/internal/symbols"
	"lumen/internal/types"
)

// ResolvedCall is the immutable, queryable view over one finalized (or
// stubbed) call resolution. Implementations derive everything lazily from
// the underlying candidate/completed-call data; recomputation is idempotent
// because the inputs never change, so the views need no locking under the
// at-most-one-writer regime the surrounding type-checking pass provides.
type ResolvedCall interface {
	// CallExpr returns the syntactic call site.
	CallExpr() ast.ExprID
	// CandidateDescriptor is the callable as declared.
	CandidateDescriptor() symbols.CallableID
	// ResultingDescriptor is the callable after substitution.
	ResultingDescriptor() symbols.CallableID
	DispatchReceiver() Receiver
	ExtensionReceiver() Receiver
	ExplicitReceiverKind() ExplicitReceiverKind
	// SmartCastDispatchReceiverType is reserved; it is always NoTypeID.
	SmartCastDispatchReceiverType() types.TypeID
	// TypeArguments is the inferred substitution, empty for non-generic
	// callables.
	TypeArguments() types.Substitution
	// ValueArguments maps resulting-signature parameter indices to their
	// argument groups.
	ValueArguments() map[uint32]ResolvedCallArgument
	// ValueArgumentsByIndex returns groups positionally aligned with the
	// resulting signature. ok is false on a gap or a duplicate index.
	ValueArgumentsByIndex() ([]ResolvedCallArgument, bool)
	// ArgumentMapping returns the parameter an argument expression was
	// matched to. ok is false for unmapped expressions, never a panic.
	ArgumentMapping(arg ast.ExprID) (ArgumentMatch, bool)
	// FlowAfterArgument returns the flow state right after the given
	// argument, falling back to the call's result state. Never fails.
	FlowAfterArgument(arg ast.ExprID) *flow.Info
	Status() Status
}

// callBase carries the shared lazy machinery of both view lifecycles.
// The caches go from unset to set exactly once; racing readers recompute
// the same value, so the last write is harmless.
type callBase struct {
	exprs     *ast.Exprs
	table     *symbols.Table
	interner  *types.Interner
	candidate *SimpleCandidate
	resulting symbols.CallableID
	flowOut   *flow.Info

	valueArgs map[uint32]ResolvedCallArgument
	argIndex  map[ast.ExprID]ArgumentMatch

	// indexComputes counts argIndex computations; it stays at one in a
	// correctly caching view.
	indexComputes int
}

func (b *callBase) CallExpr() ast.ExprID {
	return b.candidate.CallExpr
}

func (b *callBase) CandidateDescriptor() symbols.CallableID {
	return b.candidate.Callable
}

func (b *callBase) ResultingDescriptor() symbols.CallableID {
	return b.resulting
}

func (b *callBase) SmartCastDispatchReceiverType() types.TypeID {
	// Deliberately deferred capability: upstream never records one yet.
	return types.NoTypeID
}

// ValueArguments re-keys the candidate's original-parameter groups through
// the resulting signature's parameter indices. Computed once.
func (b *callBase) ValueArguments() map[uint32]ResolvedCallArgument {
	if b.valueArgs != nil {
		return b.valueArgs
	}
	resulting := b.table.Get(b.resulting)
	out := make(map[uint32]ResolvedCallArgument, len(b.candidate.Arguments))
	if resulting != nil {
		for _, param := range resulting.Params {
			if group, ok := b.candidate.Arguments[param.Index]; ok {
				out[param.Index] = group
			}
		}
	}
	b.valueArgs = out
	return out
}

func (b *callBase) ValueArgumentsByIndex() ([]ResolvedCallArgument, bool) {
	resulting := b.table.Get(b.resulting)
	if resulting == nil {
		return nil, false
	}
	args := b.ValueArguments()
	out := make([]ResolvedCallArgument, len(resulting.Params))
	seen := make(map[uint32]bool, len(resulting.Params))
	for _, param := range resulting.Params {
		if seen[param.Index] {
			// Two parameters claiming one position: representation defect.
			return nil, false
		}
		seen[param.Index] = true
		group, ok := args[param.Index]
		if !ok || int(param.Index) >= len(out) {
			return nil, false
		}
		out[param.Index] = group
	}
	return out, true
}

// ArgumentMapping is computed at most once per view, keyed by the resulting
// signature rather than the original one.
func (b *callBase) ArgumentMapping(arg ast.ExprID) (ArgumentMatch, bool) {
	if b.argIndex == nil {
		b.indexComputes++
		b.argIndex = MapArguments(b.table.Get(b.resulting), b.candidate.Arguments)
	}
	match, ok := b.argIndex[arg]
	return match, ok
}

func (b *callBase) FlowAfterArgument(arg ast.ExprID) *flow.Info {
	// The trailing argument lives outside the parentheses; its entry is the
	// only authority for its post-state.
	for _, group := range b.candidate.Arguments {
		for _, va := range group.Args {
			if va.External && va.Expr == arg {
				return va.FlowAfter
			}
		}
	}
	// Ordinary arguments: match structurally against the call's own list.
	if callData, ok := b.exprs.Call(b.candidate.CallExpr); ok {
		for _, ordinary := range callData.Args {
			if ordinary != arg {
				continue
			}
			for _, group := range b.candidate.Arguments {
				for _, va := range group.Args {
					if va.Expr == arg {
						return va.FlowAfter
					}
				}
			}
		}
	}
	// Safety net against representation mismatches: the call's result state.
	return b.flowOut
}

// completedView is the view over a CompletedCall.Simple.
type completedView struct {
	callBase
	completed *CompletedSimple
}

var _ ResolvedCall = (*completedView)(nil)

func newCompletedView(ctx *Context, completed *CompletedSimple) *completedView {
	return &completedView{
		callBase: callBase{
			exprs:     ctx.Exprs,
			table:     ctx.Symbols,
			interner:  ctx.Types,
			candidate: completed.Candidate,
			resulting: completed.Resulting,
			flowOut:   completed.FlowResult,
		},
		completed: completed,
	}
}

func (v *completedView) DispatchReceiver() Receiver {
	return v.completed.DispatchReceiver
}

func (v *completedView) ExtensionReceiver() Receiver {
	return v.completed.ExtensionReceiver
}

func (v *completedView) ExplicitReceiverKind() ExplicitReceiverKind {
	return v.completed.ExplicitReceiver
}

func (v *completedView) TypeArguments() types.Substitution {
	decl := v.table.Get(v.candidate.Callable)
	if decl == nil || len(decl.TypeParams) == 0 {
		return types.EmptySubstitution()
	}
	// Inference guarantees the lists line up; NewSubstitution asserts it.
	return types.NewSubstitution(decl.TypeParams, v.completed.TypeArguments)
}

func (v *completedView) Status() Status {
	return statusOf(v.candidate.Applicability)
}

// stubView wraps a bare candidate whose constraints were never solved.
type stubView struct {
	callBase
}

var _ ResolvedCall = (*stubView)(nil)

func newStubView(ctx *Context, cand *SimpleCandidate) *stubView {
	return &stubView{
		callBase: callBase{
			exprs:     ctx.Exprs,
			table:     ctx.Symbols,
			interner:  ctx.Types,
			candidate: cand,
			resulting: cand.Callable,
			flowOut:   flow.Empty,
		},
	}
}

func (v *stubView) DispatchReceiver() Receiver { return Receiver{} }

func (v *stubView) ExtensionReceiver() Receiver { return Receiver{} }

func (v *stubView) ExplicitReceiverKind() ExplicitReceiverKind { return NoExplicitReceiver }

func (v *stubView) TypeArguments() types.Substitution { return types.EmptySubstitution() }

func (v *stubView) Status() Status { return StatusUnknown }
