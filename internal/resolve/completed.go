package resolve

import (
	"lumen/internal/ast"
	"lumen/internal/flow"
	"lumen/internal/symbols"
	"lumen/internal/types"
)

// Receiver is a bound receiver value: the expression it came from and its
// inferred type. The zero value means "no receiver".
type Receiver struct {
	Expr ast.ExprID
	Type types.TypeID
}

func (r Receiver) Present() bool {
	return r.Expr.IsValid() || r.Type != types.NoTypeID
}

// ExplicitReceiverKind says which of the receivers was written in source.
type ExplicitReceiverKind uint8

const (
	NoExplicitReceiver ExplicitReceiverKind = iota
	ExplicitDispatchReceiver
	ExplicitExtensionReceiver
	BothReceivers
)

func (k ExplicitReceiverKind) String() string {
	switch k {
	case ExplicitDispatchReceiver:
		return "dispatch"
	case ExplicitExtensionReceiver:
		return "extension"
	case BothReceivers:
		return "both"
	default:
		return "none"
	}
}

// CompletedCall is the sealed result of full constraint solving over a
// candidate. Produced once by the inference engine, never mutated.
type CompletedCall interface {
	isCompletedCall()
	CallNode() ast.ExprID
}

// CompletedSimple is a completed call over one callable: the candidate
// descriptor paired with its resulting (substituted) counterpart, the
// resolution status carrying the attached diagnostics, receiver bindings and
// the inferred type-argument list.
type CompletedSimple struct {
	Candidate *SimpleCandidate
	// Resulting is the post-substitution descriptor. Equal to the
	// candidate's descriptor when no substitution applied.
	Resulting         symbols.CallableID
	Status            ResolutionStatus
	DispatchReceiver  Receiver
	ExtensionReceiver Receiver
	ExplicitReceiver  ExplicitReceiverKind
	// TypeArguments are the inferred type arguments, positionally aligned
	// with the candidate's declared type parameters.
	TypeArguments []types.TypeID
	// FlowResult is the flow state after the whole call.
	FlowResult *flow.Info
	// Inner lists completed calls of argument expressions that were
	// themselves calls; they are finalized before this one.
	Inner []CompletedCall
}

func (*CompletedSimple) isCompletedCall() {}

func (c *CompletedSimple) CallNode() ast.ExprID { return c.Candidate.CallExpr }

// CompletedVariableAsFunction is the completed form of a
// variable-as-function pair: the variable access and the invoke call on it.
type CompletedVariableAsFunction struct {
	Variable *CompletedSimple
	Invoke   *CompletedSimple
}

func (*CompletedVariableAsFunction) isCompletedCall() {}

func (c *CompletedVariableAsFunction) CallNode() ast.ExprID { return c.Invoke.Candidate.CallExpr }
