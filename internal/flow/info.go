// Package flow exposes the immutable flow-state snapshots produced by the
// data-flow engine: statically known nullability and narrowing facts at one
// program point. Only the query surface needed by call finalization lives
// here; the analysis that builds the snapshots is a separate pass.
package flow

import (
	"lumen/internal/ast"
	"lumen/internal/types"
)

// Info is a persistent fact set. The zero value (nil) is the empty snapshot.
// Refine never mutates: it layers a new fact over the existing chain, so
// snapshots can be shared freely across arguments and calls.
type Info struct {
	parent *Info
	expr   ast.ExprID
	typ    types.TypeID
}

// Empty is the snapshot with no recorded facts.
var Empty *Info

// Refine returns a snapshot that additionally knows expr to have typ.
func (i *Info) Refine(expr ast.ExprID, typ types.TypeID) *Info {
	return &Info{parent: i, expr: expr, typ: typ}
}

// TypeFor returns the narrowed type recorded for expr, if any. Later facts
// shadow earlier ones.
func (i *Info) TypeFor(expr ast.ExprID) (types.TypeID, bool) {
	for cur := i; cur != nil; cur = cur.parent {
		if cur.expr == expr {
			return cur.typ, true
		}
	}
	return types.NoTypeID, false
}

// Len counts the recorded facts, shadowed ones included.
func (i *Info) Len() int {
	n := 0
	for cur := i; cur != nil; cur = cur.parent {
		n++
	}
	return n
}
