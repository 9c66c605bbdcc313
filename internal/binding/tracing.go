package binding

import (
	"lumen/internal/ast"
	"lumen/internal/symbols"
)

// Tracing decides how one syntactic call binds its results into the store.
// The finalizer invokes it at prescribed points; it never inspects what the
// strategy actually writes.
type Tracing interface {
	BindReference(store *Store, target symbols.CallableID)
	BindResolvedCall(store *Store, call CallRecord)
}

// CallTracing is the default strategy for a plain call: the reference is
// keyed by the callee expression (the call node itself when there is none)
// and the resolved call by the call node.
type CallTracing struct {
	Call   ast.ExprID
	Callee ast.ExprID
}

func (t CallTracing) BindReference(store *Store, target symbols.CallableID) {
	key := t.Callee
	if !key.IsValid() {
		key = t.Call
	}
	store.RecordReference(key, target)
}

func (t CallTracing) BindResolvedCall(store *Store, call CallRecord) {
	store.RecordResolvedCall(t.Call, call)
}
