// Package binding is the side-table sink call finalization writes into.
// It records per-expression types, resolved calls and callee references the
// way an elaboration pass records its results: keyed by syntax node, with
// last-write-wins semantics.
package binding

import (
	"lumen/internal/ast"
	"lumen/internal/symbols"
	"lumen/internal/types"
)

// CallRecord is implemented by anything recordable in the resolved-call
// slot. The resolve package's views satisfy it.
type CallRecord interface {
	CallExpr() ast.ExprID
}

// Store aggregates the binding slots for one analysis unit. The zero value
// is not usable; construct with NewStore. A nil *Store is a valid "no store"
// and all methods degrade to no-ops / missing values.
type Store struct {
	exprTypes map[ast.ExprID]types.TypeID
	calls     map[ast.ExprID]CallRecord
	refs      map[ast.ExprID]symbols.CallableID
}

func NewStore() *Store {
	return &Store{
		exprTypes: make(map[ast.ExprID]types.TypeID),
		calls:     make(map[ast.ExprID]CallRecord),
		refs:      make(map[ast.ExprID]symbols.CallableID),
	}
}

// RecordType records the type of an expression. Later writes win.
func (s *Store) RecordType(expr ast.ExprID, t types.TypeID) {
	if s == nil || !expr.IsValid() {
		return
	}
	s.exprTypes[expr] = t
}

// TypeOf returns the recorded type for an expression.
func (s *Store) TypeOf(expr ast.ExprID) (types.TypeID, bool) {
	if s == nil {
		return types.NoTypeID, false
	}
	t, ok := s.exprTypes[expr]
	return t, ok
}

// RecordResolvedCall records the resolved call for a call expression.
func (s *Store) RecordResolvedCall(expr ast.ExprID, call CallRecord) {
	if s == nil || !expr.IsValid() {
		return
	}
	s.calls[expr] = call
}

// ResolvedCallAt returns the resolved call recorded for an expression.
func (s *Store) ResolvedCallAt(expr ast.ExprID) (CallRecord, bool) {
	if s == nil {
		return nil, false
	}
	c, ok := s.calls[expr]
	return c, ok
}

// RecordReference records which descriptor a callee expression refers to.
func (s *Store) RecordReference(expr ast.ExprID, target symbols.CallableID) {
	if s == nil || !expr.IsValid() {
		return
	}
	s.refs[expr] = target
}

// ReferenceAt returns the recorded callee reference for an expression.
func (s *Store) ReferenceAt(expr ast.ExprID) (symbols.CallableID, bool) {
	if s == nil {
		return symbols.NoCallableID, false
	}
	id, ok := s.refs[expr]
	return id, ok
}

// Len reports how many slots hold at least one entry, for tests.
func (s *Store) Len() (exprTypes, calls, refs int) {
	if s == nil {
		return 0, 0, 0
	}
	return len(s.exprTypes), len(s.calls), len(s.refs)
}
