package symbols

import (
	"lumen/internal/source"
	"lumen/internal/types"
)

// CallableFlags encode misc attributes for quick checks.
type CallableFlags uint16

const (
	CallableFlagDeprecated CallableFlags = 1 << iota
	CallableFlagSynthetic
	CallableFlagOperator
)

// CallableKind classifies what kind of declaration a descriptor stands for.
type CallableKind uint8

const (
	CallableInvalid CallableKind = iota
	CallableFunction
	CallableVariable
)

func (k CallableKind) String() string {
	switch k {
	case CallableFunction:
		return "function"
	case CallableVariable:
		return "variable"
	default:
		return "invalid"
	}
}

// ValueParam describes one formal value parameter of a function.
type ValueParam struct {
	Name source.StringID
	// Index is the dense 0-based declaration position. Downstream mapping
	// relies on it matching declaration order.
	Index      uint32
	Type       types.TypeID
	VarargElem types.TypeID // element type when vararg, NoTypeID otherwise
	HasDefault bool
}

// IsVararg reports whether the parameter accepts a trailing group of
// arguments.
func (p ValueParam) IsVararg() bool {
	return p.VarargElem != types.NoTypeID
}

// EffectiveExpectedType is the type one supplied argument is checked
// against: the element type for varargs, the declared type otherwise.
func (p ValueParam) EffectiveExpectedType() types.TypeID {
	if p.IsVararg() {
		return p.VarargElem
	}
	return p.Type
}

// Callable is the descriptor of a function or a variable. For variables the
// parameter list is empty and Return carries the variable's value type.
type Callable struct {
	Kind       CallableKind
	Flags      CallableFlags
	Name       source.StringID
	Decl       source.Span
	Params     []ValueParam
	TypeParams []types.TypeID // generic-param TypeIDs in declaration order
	Return     types.TypeID
}

func (c *Callable) Deprecated() bool {
	return c != nil && c.Flags&CallableFlagDeprecated != 0
}
