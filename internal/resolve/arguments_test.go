package resolve

import (
	"testing"

	"lumen/internal/ast"
	"lumen/internal/symbols"
)

func TestMapArgumentsNilDescriptor(t *testing.T) {
	out := MapArguments(nil, map[uint32]ResolvedCallArgument{
		0: SimpleArgument(ValueArgument{Expr: 1}),
	})
	if len(out) != 0 {
		t.Fatalf("nil descriptor produced %d matches, want none", len(out))
	}
}

func TestMapArgumentsSkipsDefaultedAndInvalid(t *testing.T) {
	env := newTestEnv()
	b := env.interner.Builtins()
	resulting := env.table.Get(env.table.NewFunction(env.builder.Intern("f"), span(), []symbols.ValueParam{
		{Name: env.builder.Intern("a"), Index: 0, Type: b.Int},
		{Name: env.builder.Intern("b"), Index: 1, Type: b.Int, HasDefault: true},
		{Name: env.builder.Intern("c"), Index: 2, Type: b.Int},
	}, nil, b.Unit))

	supplied := env.intLit("1")
	out := MapArguments(resulting, map[uint32]ResolvedCallArgument{
		0: SimpleArgument(ValueArgument{Expr: supplied}),
		1: NoArgument(),
		2: SimpleArgument(ValueArgument{Expr: ast.NoExprID}),
	})

	if len(out) != 1 {
		t.Fatalf("got %d matches, want 1", len(out))
	}
	match, ok := out[supplied]
	if !ok || match.Param.Index != 0 || match.Status != MatchSuccess {
		t.Fatalf("supplied argument matched as %+v", match)
	}
}

func TestArgumentGroupConstructors(t *testing.T) {
	if g := NoArgument(); g.Kind != ArgumentNone || len(g.Args) != 0 {
		t.Fatal("NoArgument not empty")
	}
	if g := SimpleArgument(ValueArgument{Expr: 1}); g.Kind != ArgumentSimple || len(g.Args) != 1 {
		t.Fatal("SimpleArgument malformed")
	}
	g := VarargArgument(ValueArgument{Expr: 1}, ValueArgument{Expr: 2})
	if g.Kind != ArgumentVararg || len(g.Args) != 2 {
		t.Fatal("VarargArgument malformed")
	}
}
