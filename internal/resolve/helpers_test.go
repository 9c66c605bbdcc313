package resolve

import (
	"lumen/internal/ast"
	"lumen/internal/binding"
	"lumen/internal/diag"
	"lumen/internal/source"
	"lumen/internal/symbols"
	"lumen/internal/types"
)

type testEnv struct {
	builder  *ast.Builder
	interner *types.Interner
	table    *symbols.Table
	store   *binding.Store
	bag     *diag.Bag
	ctx     *Context
}

func newTestEnv() *testEnv {
	builder := ast.NewBuilder(ast.Hints{})
	interner := types.NewInterner()
	table := symbols.NewTable(symbols.Hints{}, builder.Strings)
	store := binding.NewStore()
	bag := diag.NewBag(32)
	env := &testEnv{
		builder:  builder,
		interner: interner,
		table:    table,
		store:    store,
		bag:      bag,
	}
	env.ctx = &Context{
		Exprs:                   builder.Exprs,
		Types:                   interner,
		Symbols:                 table,
		Store:                   store,
		Reporter:                &diag.BagReporter{Bag: bag},
		ReportMissingDiagnostic: true,
	}
	return env
}

var nextSpan uint32

func span() source.Span {
	nextSpan += 2
	return source.Span{Start: nextSpan, End: nextSpan + 1}
}

func (env *testEnv) ident(name string) ast.ExprID {
	return env.builder.Exprs.NewIdent(span(), env.builder.Intern(name))
}

func (env *testEnv) intLit(value string) ast.ExprID {
	return env.builder.Exprs.NewLit(span(), ast.ExprLitInt, env.builder.Intern(value))
}

// fn registers a function descriptor with non-vararg parameters of the
// given types.
func (env *testEnv) fn(name string, paramTypes []types.TypeID, ret types.TypeID) symbols.CallableID {
	params := make([]symbols.ValueParam, len(paramTypes))
	for i, t := range paramTypes {
		params[i] = symbols.ValueParam{
			Name:  env.builder.Intern("p"),
			Index: uint32(i),
			Type:  t,
		}
	}
	return env.table.NewFunction(env.builder.Intern(name), source.Span{}, params, nil, ret)
}

// call builds `name(args...)` and a matching candidate with one simple
// argument group per parameter.
func (env *testEnv) call(callable symbols.CallableID, args ...ast.ExprID) *SimpleCandidate {
	decl := env.table.Get(callable)
	callee := env.builder.Exprs.NewIdent(span(), decl.Name)
	callExpr := env.builder.Exprs.NewCall(span(), callee, args, ast.NoExprID, false)
	groups := make(map[uint32]ResolvedCallArgument, len(args))
	for i, arg := range args {
		groups[uint32(i)] = SimpleArgument(ValueArgument{Expr: arg})
	}
	return &SimpleCandidate{
		Callable:      callable,
		Applicability: ApplicabilityResolved,
		CallExpr:      callExpr,
		CalleeExpr:    callee,
		Arguments:     groups,
	}
}

func (env *testEnv) completed(cand *SimpleCandidate, diags ...CallDiagnostic) *CompletedSimple {
	return &CompletedSimple{
		Candidate: cand,
		Resulting: cand.Callable,
		Status:    ResolutionStatus{Diagnostics: diags},
	}
}

func (env *testEnv) finalizer() *Finalizer {
	return NewFinalizer(env.ctx)
}

// countingChecker records every (call, anchor) pair it sees.
type countingChecker struct {
	seen    []ResolvedCall
	anchors []ast.ExprID
}

func (c *countingChecker) Check(call ResolvedCall, anchor ast.ExprID, _ *Context) {
	c.seen = append(c.seen, call)
	c.anchors = append(c.anchors, anchor)
}
