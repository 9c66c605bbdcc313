package types

import (
	"fmt"

	"lumen/internal/source"

	"fortio.org/safecast"
)

// NamedInfo stores metadata for nominal (user-declared) types.
type NamedInfo struct {
	Name source.StringID
}

// RegisterNamed creates or finds a nominal type with the given name.
func (in *Interner) RegisterNamed(name source.StringID) TypeID {
	for id := TypeID(1); int(id) < len(in.types); id++ {
		tt := in.types[id]
		if tt.Kind != KindNamed || tt.Nullable {
			continue
		}
		if in.named[tt.Payload].Name == name {
			return id
		}
	}
	in.named = append(in.named, NamedInfo{Name: name})
	slot, err := safecast.Conv[uint32](len(in.named) - 1)
	if err != nil {
		panic(fmt.Errorf("named info overflow: %w", err))
	}
	return in.internRaw(Type{Kind: KindNamed, Payload: slot})
}

// NamedInfo returns metadata for a nominal type.
func (in *Interner) NamedInfo(id TypeID) (*NamedInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindNamed {
		return nil, false
	}
	if int(tt.Payload) >= len(in.named) {
		return nil, false
	}
	return &in.named[tt.Payload], true
}
