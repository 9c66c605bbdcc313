package ast

import (
	"lumen/internal/source"
)

type Hints struct{ Exprs uint }

// Builder owns the expression arenas and the string interner for one
// analysis unit.
type Builder struct {
	Strings *source.Interner
	Exprs   *Exprs
}

func NewBuilder(hints Hints) *Builder {
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	return &Builder{
		Strings: source.NewInterner(),
		Exprs:   NewExprs(hints.Exprs),
	}
}

func (b *Builder) Intern(s string) source.StringID {
	return b.Strings.Intern(s)
}
