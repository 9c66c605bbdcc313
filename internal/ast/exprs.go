package ast

import (
	"lumen/internal/source"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena      *Arena[Expr]
	Idents     *Arena[ExprIdentData]
	Lits       *Arena[ExprLitData]
	Calls      *Arena[ExprCallData]
	Qualifieds *Arena[ExprQualifiedData]
	Parens     *Arena[ExprParenData]
	Labeleds   *Arena[ExprLabeledData]
	Annotateds *Arena[ExprAnnotatedData]
	Blocks     *Arena[ExprBlockData]
}

// NewExprs creates an Exprs with per-kind arenas preallocated to capHint.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:      NewArena[Expr](capHint),
		Idents:     NewArena[ExprIdentData](capHint),
		Lits:       NewArena[ExprLitData](capHint),
		Calls:      NewArena[ExprCallData](capHint),
		Qualifieds: NewArena[ExprQualifiedData](capHint),
		Parens:     NewArena[ExprParenData](capHint),
		Labeleds:   NewArena[ExprLabeledData](capHint),
		Annotateds: NewArena[ExprAnnotatedData](capHint),
		Blocks:     NewArena[ExprBlockData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewIdent creates a new identifier expression.
func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, PayloadID(payload))
}

// Ident returns the identifier data for the given expression ID.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

// NewLit creates a new literal expression.
func (e *Exprs) NewLit(span source.Span, kind ExprLitKind, value source.StringID) ExprID {
	payload := e.Lits.Allocate(ExprLitData{Kind: kind, Value: value})
	return e.new(ExprLit, span, PayloadID(payload))
}

// Lit returns the literal data for the given expression ID.
func (e *Exprs) Lit(id ExprID) (*ExprLitData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Lits.Get(uint32(expr.Payload)), true
}

// NewCall creates a new call expression.
func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID, trailing ExprID, synthetic bool) ExprID {
	payload := e.Calls.Allocate(ExprCallData{
		Callee:    callee,
		Args:      args,
		Trailing:  trailing,
		Synthetic: synthetic,
	})
	return e.new(ExprCall, span, PayloadID(payload))
}

// Call returns the call data for the given expression ID.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

// NewQualified creates receiver.selector; safe marks ?. access.
func (e *Exprs) NewQualified(span source.Span, receiver, selector ExprID, safe bool) ExprID {
	payload := e.Qualifieds.Allocate(ExprQualifiedData{
		Receiver: receiver,
		Selector: selector,
		Safe:     safe,
	})
	return e.new(ExprQualified, span, PayloadID(payload))
}

// Qualified returns the qualified-access data for the given expression ID.
func (e *Exprs) Qualified(id ExprID) (*ExprQualifiedData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprQualified {
		return nil, false
	}
	return e.Qualifieds.Get(uint32(expr.Payload)), true
}

// NewParen creates a parenthesized expression.
func (e *Exprs) NewParen(span source.Span, inner ExprID) ExprID {
	payload := e.Parens.Allocate(ExprParenData{Inner: inner})
	return e.new(ExprParen, span, PayloadID(payload))
}

// Paren returns the paren data for the given expression ID.
func (e *Exprs) Paren(id ExprID) (*ExprParenData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprParen {
		return nil, false
	}
	return e.Parens.Get(uint32(expr.Payload)), true
}

// NewLabeled creates a labeled expression.
func (e *Exprs) NewLabeled(span source.Span, label source.StringID, inner ExprID) ExprID {
	payload := e.Labeleds.Allocate(ExprLabeledData{Label: label, Inner: inner})
	return e.new(ExprLabeled, span, PayloadID(payload))
}

// Labeled returns the label data for the given expression ID.
func (e *Exprs) Labeled(id ExprID) (*ExprLabeledData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLabeled {
		return nil, false
	}
	return e.Labeleds.Get(uint32(expr.Payload)), true
}

// NewAnnotated creates an annotated expression.
func (e *Exprs) NewAnnotated(span source.Span, inner ExprID) ExprID {
	payload := e.Annotateds.Allocate(ExprAnnotatedData{Inner: inner})
	return e.new(ExprAnnotated, span, PayloadID(payload))
}

// Annotated returns the annotation wrapper data for the given expression ID.
func (e *Exprs) Annotated(id ExprID) (*ExprAnnotatedData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprAnnotated {
		return nil, false
	}
	return e.Annotateds.Get(uint32(expr.Payload)), true
}

// NewBlock creates a block expression.
func (e *Exprs) NewBlock(span source.Span, stmts []ExprID) ExprID {
	payload := e.Blocks.Allocate(ExprBlockData{Stmts: stmts})
	return e.new(ExprBlock, span, PayloadID(payload))
}

// Block returns the block data for the given expression ID.
func (e *Exprs) Block(id ExprID) (*ExprBlockData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBlock {
		return nil, false
	}
	return e.Blocks.Get(uint32(expr.Payload)), true
}
