package resolve

import (
	"lumen/internal/ast"
	"lumen/internal/flow"
	"lumen/internal/symbols"
)

// ValueArgument is one concrete argument expression together with the
// flow-state snapshot taken right after it was evaluated. External marks the
// designated trailing argument outside the parentheses.
type ValueArgument struct {
	Expr      ast.ExprID
	FlowAfter *flow.Info
	External  bool
}

// ArgumentGroupKind distinguishes the three shapes one formal parameter's
// arguments can take.
type ArgumentGroupKind uint8

const (
	// ArgumentNone: no argument supplied, the default value applies.
	ArgumentNone ArgumentGroupKind = iota
	// ArgumentSimple: exactly one expression.
	ArgumentSimple
	// ArgumentVararg: a group of expressions collapsed into one slot.
	ArgumentVararg
)

// ResolvedCallArgument is the per-parameter argument group produced by
// overload resolution. Immutable.
type ResolvedCallArgument struct {
	Kind ArgumentGroupKind
	Args []ValueArgument
}

// NoArgument marks a defaulted parameter.
func NoArgument() ResolvedCallArgument {
	return ResolvedCallArgument{Kind: ArgumentNone}
}

// SimpleArgument wraps a single expression argument.
func SimpleArgument(arg ValueArgument) ResolvedCallArgument {
	return ResolvedCallArgument{Kind: ArgumentSimple, Args: []ValueArgument{arg}}
}

// VarargArgument groups the supplied expressions, in supplied order.
func VarargArgument(args ...ValueArgument) ResolvedCallArgument {
	return ResolvedCallArgument{Kind: ArgumentVararg, Args: args}
}

// MatchStatus qualifies an argument-to-parameter association. At this stage
// inference has already validated arity and types, so success is the only
// produced value; the enum leaves room for the checkers' richer verdicts.
type MatchStatus uint8

const (
	MatchSuccess MatchStatus = iota
)

func (s MatchStatus) String() string {
	if s == MatchSuccess {
		return "success"
	}
	return "unknown"
}

// ArgumentMatch associates one argument expression with the formal parameter
// (of the resulting, substituted signature) it was mapped to.
type ArgumentMatch struct {
	Param  symbols.ValueParam
	Status MatchStatus
}

// MapArguments builds the argument-expression index for a resulting
// signature: every concrete expression inside a parameter's argument group
// is recorded as matched to that parameter. Parameters without an entry are
// implicitly defaulted and contribute nothing; lookups for their
// expressions fall through to "unmapped". Pure function.
func MapArguments(resulting *symbols.Callable, args map[uint32]ResolvedCallArgument) map[ast.ExprID]ArgumentMatch {
	out := make(map[ast.ExprID]ArgumentMatch, len(args))
	if resulting == nil {
		return out
	}
	for _, param := range resulting.Params {
		group, ok := args[param.Index]
		if !ok || group.Kind == ArgumentNone {
			continue
		}
		for _, va := range group.Args {
			if !va.Expr.IsValid() {
				continue
			}
			out[va.Expr] = ArgumentMatch{Param: param, Status: MatchSuccess}
		}
	}
	return out
}
