package types

import (
	"testing"

	"lumen/internal/source"
)

func TestInternerDedup(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	if got := in.Intern(Type{Kind: KindInt}); got != b.Int {
		t.Errorf("re-interning Int got %v, want the builtin %v", got, b.Int)
	}
	if b.Int == b.Bool || b.Unit == b.String {
		t.Error("distinct builtins share an ID")
	}
	if in.Intern(Type{Kind: KindInvalid}) != NoTypeID {
		t.Error("invalid descriptor must intern to NoTypeID")
	}
}

func TestNullableRoundTrip(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	opt := in.Nullable(b.Int)
	if opt == b.Int {
		t.Fatal("T? must differ from T")
	}
	if !in.IsNullable(opt) || in.IsNullable(b.Int) {
		t.Fatal("IsNullable wrong")
	}
	if in.Nullable(opt) != opt {
		t.Error("T?? must collapse to T?")
	}
	if in.NotNull(opt) != b.Int {
		t.Error("NotNull(T?) must give back T")
	}
	if in.NotNull(b.Int) != b.Int {
		t.Error("NotNull(T) must be a no-op")
	}
}

func TestContainsError(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	if !in.ContainsError(b.Error) {
		t.Error("the error type must contain an error")
	}
	if in.ContainsError(b.Int) {
		t.Error("Int must not contain an error")
	}
	badFn := in.RegisterFn([]TypeID{b.Int, b.Error}, b.Unit)
	if !in.ContainsError(badFn) {
		t.Error("fn with an error parameter must contain an error")
	}
	badRet := in.RegisterFn(nil, b.Error)
	if !in.ContainsError(badRet) {
		t.Error("fn returning the error type must contain an error")
	}
	goodFn := in.RegisterFn([]TypeID{b.Int}, b.Bool)
	if in.ContainsError(goodFn) {
		t.Error("clean fn flagged as containing an error")
	}
}

func TestDenotable(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	if !in.Denotable(b.Int) || !in.Denotable(b.String) {
		t.Error("builtins must be denotable")
	}
	if in.Denotable(in.IntegerLiteral()) {
		t.Error("the integer-literal placeholder must not be denotable")
	}
	if in.Denotable(NoTypeID) {
		t.Error("NoTypeID must not be denotable")
	}
}

func TestMaterializeLiteral(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	lit := in.IntegerLiteral()
	strs := source.NewInterner()
	named := in.RegisterNamed(strs.Intern("Byte"))

	tests := []struct {
		name     string
		expected TypeID
		want     TypeID
	}{
		{"against Int", b.Int, b.Int},
		{"against Float", b.Float, b.Float},
		{"against a named type", named, named},
		{"against nullable Int strips the question", in.Nullable(b.Int), b.Int},
		{"against Bool falls back to Int", b.Bool, b.Int},
		{"against nothing falls back to Int", NoTypeID, b.Int},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := in.MaterializeLiteral(lit, tt.expected); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	// Already-denotable types pass through untouched.
	if got := in.MaterializeLiteral(b.String, b.Int); got != b.String {
		t.Errorf("String materialized into %v", got)
	}
}

func TestRegisterFnInfo(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	fn := in.RegisterFn([]TypeID{b.Int, b.String}, b.Bool)
	info, ok := in.FnInfo(fn)
	if !ok {
		t.Fatal("fn info missing")
	}
	if len(info.Params) != 2 || info.Params[0] != b.Int || info.Params[1] != b.String || info.Result != b.Bool {
		t.Fatalf("fn info mangled: %+v", info)
	}
	if _, ok := in.FnInfo(b.Int); ok {
		t.Error("FnInfo accepted a non-fn type")
	}
}
