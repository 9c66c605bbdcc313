package types

import "fmt"

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// Kind enumerates all supported kinds of types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindError
	KindUnit
	KindBool
	KindString
	KindInt
	KindFloat
	KindNamed
	KindFn
	KindGenericParam
	// KindIntegerLiteral is the non-denotable placeholder an integer literal
	// carries until its target type is known.
	KindIntegerLiteral
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindError:
		return "error"
	case KindUnit:
		return "unit"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindNamed:
		return "named"
	case KindFn:
		return "fn"
	case KindGenericParam:
		return "generic-param"
	case KindIntegerLiteral:
		return "integer-literal"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Denotable reports whether a type of this kind can be written in source.
func (k Kind) Denotable() bool {
	return k != KindIntegerLiteral && k != KindInvalid
}

// Type is a compact descriptor for any supported type. Payload indexes the
// per-kind info table inside the interner.
type Type struct {
	Kind     Kind
	Payload  uint32
	Nullable bool
}
