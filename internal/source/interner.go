package source

import (
	"slices"
)

// StringID is a handle to a string in an Interner.
type StringID uint32

// NoStringID marks the absence of a string; it always resolves to "".
const NoStringID StringID = 0

// Interner deduplicates strings and hands out stable IDs for them.
type Interner struct {
	byID  []string
	index map[string]StringID
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// Intern stores s (once) and returns its ID.
func (i *Interner) Intern(s string) StringID {
	if id, ok := i.index[s]; ok {
		return id
	}
	// Own copy so the interner never aliases a caller's buffer.
	cpy := string([]byte(s))
	id := StringID(len(i.byID))
	i.byID = append(i.byID, cpy)
	i.index[cpy] = id
	return id
}

// Lookup returns the string for id, or ("", false) when id is invalid.
func (i *Interner) Lookup(id StringID) (string, bool) {
	if !i.Has(id) {
		return "", false
	}
	return i.byID[id], true
}

// MustLookup returns the string for id and panics on an invalid ID.
func (i *Interner) MustLookup(id StringID) string {
	s, ok := i.Lookup(id)
	if !ok {
		panic("invalid string ID")
	}
	return s
}

func (i *Interner) Has(id StringID) bool {
	return int(id) < len(i.byID)
}

func (i *Interner) Len() int {
	return len(i.byID)
}

// Snapshot returns a copy of all interned strings, indexed by StringID.
func (i *Interner) Snapshot() []string {
	return slices.Clone(i.byID)
}
