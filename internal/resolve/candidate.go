package resolve

import (
	"lumen/internal/ast"
	"lumen/internal/binding"
	"lumen/internal/symbols"
)

// Candidate is the sealed outcome of overload resolution before constraint
// solving completes: either one callable, or a variable of function type
// together with the synthetic invoke that calls it.
type Candidate interface {
	isCandidate()
	// CallNode is the syntax element the candidate was resolved at.
	CallNode() ast.ExprID
}

// SimpleCandidate is one callable chosen by overload resolution. Immutable
// once produced by inference.
type SimpleCandidate struct {
	Callable      symbols.CallableID
	Applicability Applicability
	CallExpr      ast.ExprID
	CalleeExpr    ast.ExprID
	// Arguments maps original (pre-substitution) parameter indices to their
	// resolved argument groups.
	Arguments map[uint32]ResolvedCallArgument
	// Tracing overrides how this call binds into the store; nil selects the
	// default keyed by CallExpr/CalleeExpr.
	Tracing binding.Tracing
}

func (*SimpleCandidate) isCandidate() {}

func (c *SimpleCandidate) CallNode() ast.ExprID { return c.CallExpr }

// tracing returns the effective binding strategy for this call node.
func (c *SimpleCandidate) tracing() binding.Tracing {
	if c.Tracing != nil {
		return c.Tracing
	}
	return binding.CallTracing{Call: c.CallExpr, Callee: c.CalleeExpr}
}

// VariableAsFunctionCandidate pairs a variable candidate with the nested
// invoke candidate calling it: `x()` where `x` is a property of function
// type.
type VariableAsFunctionCandidate struct {
	Variable *SimpleCandidate
	Invoke   *SimpleCandidate
}

func (*VariableAsFunctionCandidate) isCandidate() {}

func (c *VariableAsFunctionCandidate) CallNode() ast.ExprID { return c.Invoke.CallExpr }
