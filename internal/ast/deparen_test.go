package ast

import (
	"testing"

	"lumen/internal/source"
)

func buildTestExprs() (*Builder, *Exprs) {
	b := NewBuilder(Hints{})
	return b, b.Exprs
}

func TestTransparentKinds(t *testing.T) {
	transparent := []ExprKind{ExprParen, ExprLabeled, ExprAnnotated}
	opaque := []ExprKind{ExprIdent, ExprLit, ExprCall, ExprQualified, ExprBlock}
	for _, k := range transparent {
		if !k.Transparent() {
			t.Errorf("%v should be transparent", k)
		}
	}
	for _, k := range opaque {
		if k.Transparent() {
			t.Errorf("%v should not be transparent", k)
		}
	}
}

func TestUnwrapOnce(t *testing.T) {
	b, e := buildTestExprs()
	lit := e.NewLit(source.Span{}, ExprLitInt, b.Intern("1"))
	paren := e.NewParen(source.Span{}, lit)
	labeled := e.NewLabeled(source.Span{}, b.Intern("tag"), paren)
	annotated := e.NewAnnotated(source.Span{}, labeled)

	if inner, ok := e.UnwrapOnce(annotated); !ok || inner != labeled {
		t.Error("annotation wrapper not unwrapped")
	}
	if inner, ok := e.UnwrapOnce(labeled); !ok || inner != paren {
		t.Error("label wrapper not unwrapped")
	}
	if inner, ok := e.UnwrapOnce(paren); !ok || inner != lit {
		t.Error("paren wrapper not unwrapped")
	}
	if _, ok := e.UnwrapOnce(lit); ok {
		t.Error("literal must not unwrap")
	}
	if _, ok := e.UnwrapOnce(NoExprID); ok {
		t.Error("sentinel must not unwrap")
	}
}

func TestLastMeaningful(t *testing.T) {
	b, e := buildTestExprs()

	lit := e.NewLit(source.Span{}, ExprLitInt, b.Intern("1"))
	wrapped := e.NewParen(source.Span{}, e.NewLabeled(source.Span{}, b.Intern("l"), lit))
	if got := e.LastMeaningful(wrapped); got != lit {
		t.Errorf("through wrappers: got %d, want %d", got, lit)
	}

	// A block contributes its last statement.
	other := e.NewIdent(source.Span{}, b.Intern("x"))
	block := e.NewBlock(source.Span{}, []ExprID{other, lit})
	if got := e.LastMeaningful(block); got != lit {
		t.Errorf("block: got %d, want last statement %d", got, lit)
	}

	// A qualified access contributes its selector.
	sel := e.NewIdent(source.Span{}, b.Intern("sel"))
	qual := e.NewQualified(source.Span{}, other, sel, true)
	if got := e.LastMeaningful(qual); got != sel {
		t.Errorf("qualified: got %d, want selector %d", got, sel)
	}

	// Empty blocks bottom out in nothing.
	empty := e.NewBlock(source.Span{}, nil)
	if got := e.LastMeaningful(empty); got != NoExprID {
		t.Errorf("empty block: got %d, want none", got)
	}
	if got := e.LastMeaningful(NoExprID); got != NoExprID {
		t.Errorf("sentinel: got %d, want none", got)
	}
}

func TestDeparenthesizeChain(t *testing.T) {
	b, e := buildTestExprs()

	// (label@ { stmt; recv?.sel }): the chain must list the non-transparent
	// stops root-to-leaf: block, qualified, selector.
	sel := e.NewIdent(source.Span{}, b.Intern("sel"))
	recv := e.NewIdent(source.Span{}, b.Intern("recv"))
	qual := e.NewQualified(source.Span{}, recv, sel, true)
	stmt := e.NewIdent(source.Span{}, b.Intern("stmt"))
	block := e.NewBlock(source.Span{}, []ExprID{stmt, qual})
	root := e.NewParen(source.Span{}, e.NewLabeled(source.Span{}, b.Intern("l"), block))

	chain := e.DeparenthesizeChain(root)
	want := []ExprID{block, qual, sel}
	if len(chain) != len(want) {
		t.Fatalf("chain %v, want %v", chain, want)
	}
	for i := range want {
		if chain[i] != want[i] {
			t.Fatalf("chain %v, want %v", chain, want)
		}
	}
}

func TestDeparenthesizeChainLeafOnly(t *testing.T) {
	b, e := buildTestExprs()
	lit := e.NewLit(source.Span{}, ExprLitInt, b.Intern("1"))
	chain := e.DeparenthesizeChain(lit)
	if len(chain) != 1 || chain[0] != lit {
		t.Fatalf("chain %v, want just the leaf", chain)
	}
}

func TestDeparenthesizeChainUnusable(t *testing.T) {
	_, e := buildTestExprs()
	empty := e.NewBlock(source.Span{}, nil)
	if chain := e.DeparenthesizeChain(empty); chain != nil {
		t.Fatalf("chain over an empty block = %v, want nil", chain)
	}
	if chain := e.DeparenthesizeChain(NoExprID); chain != nil {
		t.Fatalf("chain over the sentinel = %v, want nil", chain)
	}
}
