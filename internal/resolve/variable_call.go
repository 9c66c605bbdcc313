package resolve

import (
	"lumen/internal/ast"
	"lumen/internal/flow"
	"lumen/internal/symbols"
	"lumen/internal/types"
)

// VariableAsFunctionResolved composes the two views of a
// variable-that-is-invoked: the variable access and the invoke call on it.
// All signature-shaped queries delegate to the invoke view; the variable
// view stays reachable for checkers and clients that care about the access
// itself. Owns-and-delegates, no inheritance.
type VariableAsFunctionResolved struct {
	variable ResolvedCall
	invoke   ResolvedCall
}

var _ ResolvedCall = (*VariableAsFunctionResolved)(nil)

func newVariableAsFunctionResolved(variable, invoke ResolvedCall) *VariableAsFunctionResolved {
	return &VariableAsFunctionResolved{variable: variable, invoke: invoke}
}

// VariableCall returns the inner view of the variable access.
func (v *VariableAsFunctionResolved) VariableCall() ResolvedCall { return v.variable }

// FunctionCall returns the inner view of the invoke call.
func (v *VariableAsFunctionResolved) FunctionCall() ResolvedCall { return v.invoke }

func (v *VariableAsFunctionResolved) CallExpr() ast.ExprID { return v.invoke.CallExpr() }

func (v *VariableAsFunctionResolved) CandidateDescriptor() symbols.CallableID {
	return v.invoke.CandidateDescriptor()
}

func (v *VariableAsFunctionResolved) ResultingDescriptor() symbols.CallableID {
	return v.invoke.ResultingDescriptor()
}

func (v *VariableAsFunctionResolved) DispatchReceiver() Receiver {
	return v.invoke.DispatchReceiver()
}

func (v *VariableAsFunctionResolved) ExtensionReceiver() Receiver {
	return v.invoke.ExtensionReceiver()
}

func (v *VariableAsFunctionResolved) ExplicitReceiverKind() ExplicitReceiverKind {
	return v.invoke.ExplicitReceiverKind()
}

func (v *VariableAsFunctionResolved) SmartCastDispatchReceiverType() types.TypeID {
	return v.invoke.SmartCastDispatchReceiverType()
}

func (v *VariableAsFunctionResolved) TypeArguments() types.Substitution {
	return v.invoke.TypeArguments()
}

func (v *VariableAsFunctionResolved) ValueArguments() map[uint32]ResolvedCallArgument {
	return v.invoke.ValueArguments()
}

func (v *VariableAsFunctionResolved) ValueArgumentsByIndex() ([]ResolvedCallArgument, bool) {
	return v.invoke.ValueArgumentsByIndex()
}

func (v *VariableAsFunctionResolved) ArgumentMapping(arg ast.ExprID) (ArgumentMatch, bool) {
	return v.invoke.ArgumentMapping(arg)
}

func (v *VariableAsFunctionResolved) FlowAfterArgument(arg ast.ExprID) *flow.Info {
	return v.invoke.FlowAfterArgument(arg)
}

func (v *VariableAsFunctionResolved) Status() Status { return v.invoke.Status() }
