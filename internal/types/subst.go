package types

import "fmt"

// Substitution maps the type parameters of one callable to inferred type
// arguments, positionally. Immutable once built.
type Substitution struct {
	params []TypeID
	args   []TypeID
}

// EmptySubstitution is the substitution of a callable with no type params.
func EmptySubstitution() Substitution {
	return Substitution{}
}

// NewSubstitution zips declared type parameters with inferred arguments.
// Unequal lengths are a caller contract breach: inference guarantees the
// lists line up before a call reaches finalization.
func NewSubstitution(params, args []TypeID) Substitution {
	if len(params) != len(args) {
		panic(fmt.Sprintf("types: substitution arity mismatch: %d params, %d args", len(params), len(args)))
	}
	return Substitution{
		params: cloneTypeArgs(params),
		args:   cloneTypeArgs(args),
	}
}

func (s Substitution) Empty() bool {
	return len(s.params) == 0
}

func (s Substitution) Len() int {
	return len(s.params)
}

// Lookup returns the type argument for a given generic-param type.
func (s Substitution) Lookup(param TypeID) (TypeID, bool) {
	for i, p := range s.params {
		if p == param {
			return s.args[i], true
		}
	}
	return NoTypeID, false
}

// At returns the i-th (param, arg) pair in declaration order.
func (s Substitution) At(i int) (param, arg TypeID) {
	return s.params[i], s.args[i]
}

// Apply substitutes generic parameters inside id. Function types are rebuilt
// component-wise; nullability of the original position is preserved on the
// substituted type.
func (s Substitution) Apply(in *Interner, id TypeID) TypeID {
	if s.Empty() || id == NoTypeID {
		return id
	}
	tt, ok := in.Lookup(id)
	if !ok {
		return id
	}
	switch tt.Kind {
	case KindGenericParam:
		bare := in.NotNull(id)
		if arg, found := s.Lookup(bare); found {
			if tt.Nullable {
				return in.Nullable(arg)
			}
			return arg
		}
		return id
	case KindFn:
		info, ok := in.FnInfo(id)
		if !ok {
			return id
		}
		params := make([]TypeID, len(info.Params))
		changed := false
		for i, p := range info.Params {
			params[i] = s.Apply(in, p)
			changed = changed || params[i] != p
		}
		result := s.Apply(in, info.Result)
		changed = changed || result != info.Result
		if !changed {
			return id
		}
		out := in.RegisterFn(params, result)
		if tt.Nullable {
			out = in.Nullable(out)
		}
		return out
	default:
		return id
	}
}
