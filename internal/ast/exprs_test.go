package ast

import (
	"testing"

	"lumen/internal/source"
)

func TestExprAccessorsCheckKind(t *testing.T) {
	b, e := buildTestExprs()
	ident := e.NewIdent(source.Span{}, b.Intern("x"))
	call := e.NewCall(source.Span{}, ident, []ExprID{ident}, NoExprID, false)

	if _, ok := e.Call(call); !ok {
		t.Error("Call accessor rejected a call node")
	}
	if _, ok := e.Call(ident); ok {
		t.Error("Call accessor accepted an ident node")
	}
	if _, ok := e.Ident(call); ok {
		t.Error("Ident accessor accepted a call node")
	}
	if _, ok := e.Ident(NoExprID); ok {
		t.Error("accessors must reject the sentinel")
	}
}

func TestExprCallData(t *testing.T) {
	b, e := buildTestExprs()
	callee := e.NewIdent(source.Span{}, b.Intern("f"))
	a1 := e.NewLit(source.Span{}, ExprLitInt, b.Intern("1"))
	trailing := e.NewBlock(source.Span{}, nil)
	call := e.NewCall(source.Span{File: 1, Start: 3, End: 9}, callee, []ExprID{a1}, trailing, true)

	data, ok := e.Call(call)
	if !ok {
		t.Fatal("call data missing")
	}
	if data.Callee != callee || len(data.Args) != 1 || data.Args[0] != a1 {
		t.Error("call payload mangled")
	}
	if data.Trailing != trailing || !data.Synthetic {
		t.Error("trailing/synthetic not preserved")
	}
	if got := e.Get(call).Span; got != (source.Span{File: 1, Start: 3, End: 9}) {
		t.Errorf("span %+v not preserved", got)
	}
}

func TestExprQualifiedData(t *testing.T) {
	b, e := buildTestExprs()
	recv := e.NewIdent(source.Span{}, b.Intern("a"))
	sel := e.NewIdent(source.Span{}, b.Intern("b"))

	safe := e.NewQualified(source.Span{}, recv, sel, true)
	plain := e.NewQualified(source.Span{}, recv, sel, false)

	if data, ok := e.Qualified(safe); !ok || !data.Safe || data.Receiver != recv || data.Selector != sel {
		t.Error("safe access payload mangled")
	}
	if data, ok := e.Qualified(plain); !ok || data.Safe {
		t.Error("plain access must not be safe")
	}
}
