package binding

import (
	"testing"

	"lumen/internal/ast"
	"lumen/internal/symbols"
	"lumen/internal/types"
)

type fakeCall ast.ExprID

func (f fakeCall) CallExpr() ast.ExprID { return ast.ExprID(f) }

func TestStoreRecordAndLookup(t *testing.T) {
	s := NewStore()
	expr := ast.ExprID(1)

	s.RecordType(expr, types.TypeID(7))
	if got, ok := s.TypeOf(expr); !ok || got != types.TypeID(7) {
		t.Error("type record lost")
	}
	// Later writes win.
	s.RecordType(expr, types.TypeID(9))
	if got, _ := s.TypeOf(expr); got != types.TypeID(9) {
		t.Error("later type write must win")
	}

	s.RecordResolvedCall(expr, fakeCall(expr))
	if got, ok := s.ResolvedCallAt(expr); !ok || got.CallExpr() != expr {
		t.Error("resolved-call record lost")
	}

	s.RecordReference(expr, symbols.CallableID(3))
	if got, ok := s.ReferenceAt(expr); !ok || got != symbols.CallableID(3) {
		t.Error("reference record lost")
	}

	if n, c, r := s.Len(); n != 1 || c != 1 || r != 1 {
		t.Errorf("Len = (%d,%d,%d), want (1,1,1)", n, c, r)
	}
}

func TestStoreIgnoresSentinelKeys(t *testing.T) {
	s := NewStore()
	s.RecordType(ast.NoExprID, types.TypeID(1))
	s.RecordResolvedCall(ast.NoExprID, fakeCall(0))
	s.RecordReference(ast.NoExprID, symbols.CallableID(1))
	if n, c, r := s.Len(); n != 0 || c != 0 || r != 0 {
		t.Error("sentinel keys must never be recorded")
	}
}

func TestNilStoreIsInert(t *testing.T) {
	var s *Store
	s.RecordType(ast.ExprID(1), types.TypeID(1))
	s.RecordResolvedCall(ast.ExprID(1), fakeCall(1))
	s.RecordReference(ast.ExprID(1), symbols.CallableID(1))
	if _, ok := s.TypeOf(ast.ExprID(1)); ok {
		t.Error("nil store answered a type query")
	}
	if _, ok := s.ResolvedCallAt(ast.ExprID(1)); ok {
		t.Error("nil store answered a call query")
	}
	if _, ok := s.ReferenceAt(ast.ExprID(1)); ok {
		t.Error("nil store answered a reference query")
	}
	if n, c, r := s.Len(); n != 0 || c != 0 || r != 0 {
		t.Error("nil store must report empty")
	}
}

func TestCallTracing(t *testing.T) {
	s := NewStore()
	call := ast.ExprID(10)
	callee := ast.ExprID(11)

	tr := CallTracing{Call: call, Callee: callee}
	tr.BindReference(s, symbols.CallableID(4))
	tr.BindResolvedCall(s, fakeCall(call))

	if got, ok := s.ReferenceAt(callee); !ok || got != symbols.CallableID(4) {
		t.Error("reference must key off the callee")
	}
	if _, ok := s.ReferenceAt(call); ok {
		t.Error("reference leaked onto the call node")
	}
	if got, ok := s.ResolvedCallAt(call); !ok || got.CallExpr() != call {
		t.Error("resolved call must key off the call node")
	}
}

func TestCallTracingCalleeFallback(t *testing.T) {
	s := NewStore()
	call := ast.ExprID(10)

	tr := CallTracing{Call: call, Callee: ast.NoExprID}
	tr.BindReference(s, symbols.CallableID(4))
	if got, ok := s.ReferenceAt(call); !ok || got != symbols.CallableID(4) {
		t.Error("with no callee the reference must key off the call node")
	}
}
