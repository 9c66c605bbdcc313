package ast

import (
	"lumen/internal/source"
)

type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprLit
	ExprCall
	ExprQualified
	ExprParen
	ExprLabeled
	ExprAnnotated
	ExprBlock
)

func (k ExprKind) String() string {
	switch k {
	case ExprIdent:
		return "ident"
	case ExprLit:
		return "lit"
	case ExprCall:
		return "call"
	case ExprQualified:
		return "qualified"
	case ExprParen:
		return "paren"
	case ExprLabeled:
		return "labeled"
	case ExprAnnotated:
		return "annotated"
	case ExprBlock:
		return "block"
	}
	return "unknown"
}

// Transparent reports whether the node only wraps another expression without
// contributing meaning of its own (parens, labels, annotations).
func (k ExprKind) Transparent() bool {
	return k == ExprParen || k == ExprLabeled || k == ExprAnnotated
}

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

type ExprLitKind uint8

const (
	ExprLitInt ExprLitKind = iota
	ExprLitFloat
	ExprLitString
	ExprLitBool
	ExprLitNull
)

type ExprIdentData struct {
	Name source.StringID
}

type ExprLitData struct {
	Kind  ExprLitKind
	Value source.StringID
}

// ExprCallData describes a call: callee, ordinary arguments in source order
// and an optional trailing argument outside the parentheses. Synthetic calls
// are fabricated by desugaring and have no usable callee anchor.
type ExprCallData struct {
	Callee    ExprID
	Args      []ExprID
	Trailing  ExprID
	Synthetic bool
}

// ExprQualifiedData describes receiver.selector or receiver?.selector.
type ExprQualifiedData struct {
	Receiver ExprID
	Selector ExprID
	Safe     bool
}

type ExprParenData struct {
	Inner ExprID
}

type ExprLabeledData struct {
	Label source.StringID
	Inner ExprID
}

type ExprAnnotatedData struct {
	Inner ExprID
}

// ExprBlockData lists the block's statements; the block's value is the last
// one. An empty block has no value.
type ExprBlockData struct {
	Stmts []ExprID
}
