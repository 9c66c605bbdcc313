package types

// IntegerLiteral returns the non-denotable placeholder type carried by an
// integer literal before its target type is known.
func (in *Interner) IntegerLiteral() TypeID {
	return in.Intern(Type{Kind: KindIntegerLiteral})
}

// MaterializeLiteral resolves the integer-literal placeholder against the
// expected type, producing a concrete denotable type. Literals themselves are
// never null, so nullability of the expected type is stripped.
func (in *Interner) MaterializeLiteral(id, expected TypeID) TypeID {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindIntegerLiteral {
		return id
	}
	exp, ok := in.Lookup(expected)
	if !ok {
		return in.builtins.Int
	}
	switch exp.Kind {
	case KindInt, KindFloat, KindNamed:
		return in.NotNull(expected)
	default:
		return in.builtins.Int
	}
}
