package source

import (
	"testing"
)

func TestSpanEmptyAndLen(t *testing.T) {
	tests := []struct {
		name  string
		span  Span
		empty bool
		len   uint32
	}{
		{"zero value", Span{}, true, 0},
		{"point span", Span{File: 1, Start: 5, End: 5}, true, 0},
		{"single byte", Span{File: 1, Start: 5, End: 6}, false, 1},
		{"range", Span{File: 2, Start: 10, End: 25}, false, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Empty(); got != tt.empty {
				t.Errorf("Empty() = %v, want %v", got, tt.empty)
			}
			if got := tt.span.Len(); got != tt.len {
				t.Errorf("Len() = %d, want %d", got, tt.len)
			}
		})
	}
}

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{
			name:     "extend right",
			a:        Span{File: 1, Start: 10, End: 20},
			b:        Span{File: 1, Start: 15, End: 30},
			expected: Span{File: 1, Start: 10, End: 30},
		},
		{
			name:     "extend left",
			a:        Span{File: 1, Start: 10, End: 20},
			b:        Span{File: 1, Start: 2, End: 12},
			expected: Span{File: 1, Start: 2, End: 20},
		},
		{
			name:     "contained",
			a:        Span{File: 1, Start: 10, End: 20},
			b:        Span{File: 1, Start: 12, End: 14},
			expected: Span{File: 1, Start: 10, End: 20},
		},
		{
			name:     "different files untouched",
			a:        Span{File: 1, Start: 10, End: 20},
			b:        Span{File: 2, Start: 0, End: 100},
			expected: Span{File: 1, Start: 10, End: 20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.expected {
				t.Errorf("Cover() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpanContains(t *testing.T) {
	outer := Span{File: 1, Start: 10, End: 20}
	tests := []struct {
		name  string
		inner Span
		want  bool
	}{
		{"itself", outer, true},
		{"strict inside", Span{File: 1, Start: 12, End: 18}, true},
		{"touching both ends", Span{File: 1, Start: 10, End: 20}, true},
		{"overlap left", Span{File: 1, Start: 5, End: 15}, false},
		{"overlap right", Span{File: 1, Start: 15, End: 25}, false},
		{"other file", Span{File: 2, Start: 12, End: 18}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.Contains(tt.inner); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
}
