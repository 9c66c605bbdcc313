package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"lumen/internal/source"
	"lumen/internal/types"
)

// Hints provide optional capacity suggestions for the descriptor arena.
type Hints struct{ Callables uint }

// Table stores all callable descriptors in a compact slice-based arena.
type Table struct {
	data    []Callable
	Strings *source.Interner
}

// NewTable builds a fresh table with optional capacity hints.
// If strings is nil, a fresh interner is allocated.
func NewTable(h Hints, strings *source.Interner) *Table {
	if h.Callables == 0 {
		h.Callables = 32
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Table{
		data:    make([]Callable, 1, h.Callables+1), // index 0 reserved for NoCallableID
		Strings: strings,
	}
}

func (t *Table) allocate(c Callable) CallableID {
	value, err := safecast.Conv[uint32](len(t.data))
	if err != nil {
		panic(fmt.Errorf("callable arena overflow: %w", err))
	}
	id := CallableID(value)
	t.data = append(t.data, c)
	return id
}

// NewFunction allocates a function descriptor.
func (t *Table) NewFunction(name source.StringID, decl source.Span, params []ValueParam, typeParams []types.TypeID, ret types.TypeID) CallableID {
	return t.allocate(Callable{
		Kind:       CallableFunction,
		Name:       name,
		Decl:       decl,
		Params:     params,
		TypeParams: typeParams,
		Return:     ret,
	})
}

// NewVariable allocates a variable descriptor; typ is the variable's value
// type (a function type when the variable is invokable).
func (t *Table) NewVariable(name source.StringID, decl source.Span, typ types.TypeID) CallableID {
	return t.allocate(Callable{
		Kind:   CallableVariable,
		Name:   name,
		Decl:   decl,
		Return: typ,
	})
}

// Get returns the descriptor for an ID, or nil for NoCallableID.
func (t *Table) Get(id CallableID) *Callable {
	if id == NoCallableID || int(id) >= len(t.data) {
		return nil
	}
	return &t.data[id]
}

// Len returns the number of allocated descriptors (sentinel excluded).
func (t *Table) Len() int {
	return len(t.data) - 1
}

// Substitute materializes the resulting descriptor of id under sub: every
// parameter and the return type are rewritten, indices and flags survive
// unchanged. With an empty substitution the original ID is returned as is.
func (t *Table) Substitute(id CallableID, sub types.Substitution, in *types.Interner) CallableID {
	if sub.Empty() {
		return id
	}
	orig := t.Get(id)
	if orig == nil {
		return id
	}
	out := Callable{
		Kind:       orig.Kind,
		Flags:      orig.Flags,
		Name:       orig.Name,
		Decl:       orig.Decl,
		TypeParams: orig.TypeParams,
		Return:     sub.Apply(in, orig.Return),
	}
	if len(orig.Params) > 0 {
		out.Params = make([]ValueParam, len(orig.Params))
		for i, p := range orig.Params {
			p.Type = sub.Apply(in, p.Type)
			if p.VarargElem != types.NoTypeID {
				p.VarargElem = sub.Apply(in, p.VarargElem)
			}
			out.Params[i] = p
		}
	}
	return t.allocate(out)
}
