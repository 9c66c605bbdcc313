package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for common primitive types.
type Builtins struct {
	Invalid TypeID
	Error   TypeID
	Unit    TypeID
	Bool    TypeID
	String  TypeID
	Int     TypeID
	Float   TypeID
}

// Interner provides stable TypeIDs by hashing structural descriptors.
type Interner struct {
	types    []Type
	index    map[typeKey]TypeID
	builtins Builtins
	fns      []FnInfo
	named    []NamedInfo
	params   []TypeParamInfo
}

// NewInterner constructs an interner seeded with built-in primitives.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[typeKey]TypeID, 32),
	}
	in.fns = append(in.fns, FnInfo{})       // reserve 0 as invalid sentinel
	in.named = append(in.named, NamedInfo{})
	in.params = append(in.params, TypeParamInfo{})
	in.builtins.Invalid = in.internRaw(Type{Kind: KindInvalid})
	in.builtins.Error = in.Intern(Type{Kind: KindError})
	in.builtins.Unit = in.Intern(Type{Kind: KindUnit})
	in.builtins.Bool = in.Intern(Type{Kind: KindBool})
	in.builtins.String = in.Intern(Type{Kind: KindString})
	in.builtins.Int = in.Intern(Type{Kind: KindInt})
	in.builtins.Float = in.Intern(Type{Kind: KindFloat})
	return in
}

// Builtins returns TypeIDs for primitive types.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures the provided descriptor has a stable TypeID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	key := typeKey(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	return in.internRaw(t)
}

// internRaw adds the descriptor to the storage without consulting the map.
func (in *Interner) internRaw(t Type) TypeID {
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	in.index[typeKey(t)] = id
	return id
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

// Nullable returns the `T?` counterpart of id.
func (in *Interner) Nullable(id TypeID) TypeID {
	tt, ok := in.Lookup(id)
	if !ok {
		return id
	}
	tt.Nullable = true
	return in.Intern(tt)
}

// NotNull strips nullability off id, if any.
func (in *Interner) NotNull(id TypeID) TypeID {
	tt, ok := in.Lookup(id)
	if !ok || !tt.Nullable {
		return id
	}
	tt.Nullable = false
	return in.Intern(tt)
}

// IsNullable reports whether id admits null.
func (in *Interner) IsNullable(id TypeID) bool {
	tt, ok := in.Lookup(id)
	return ok && tt.Nullable
}

// ContainsError reports whether id is the error type or mentions it through
// a function signature.
func (in *Interner) ContainsError(id TypeID) bool {
	tt, ok := in.Lookup(id)
	if !ok {
		return false
	}
	switch tt.Kind {
	case KindError:
		return true
	case KindFn:
		info := in.fns[tt.Payload]
		if in.ContainsError(info.Result) {
			return true
		}
		for _, p := range info.Params {
			if in.ContainsError(p) {
				return true
			}
		}
	}
	return false
}

// Denotable reports whether id can be written in source syntax.
func (in *Interner) Denotable(id TypeID) bool {
	tt, ok := in.Lookup(id)
	return ok && tt.Kind.Denotable()
}

type typeKey struct {
	Kind     Kind
	Payload  uint32
	Nullable bool
}

func cloneTypeArgs(args []TypeID) []TypeID {
	if len(args) == 0 {
		return nil
	}
	out := make([]TypeID, len(args))
	copy(out, args)
	return out
}
