package types

import (
	"fmt"

	"lumen/internal/source"

	"fortio.org/safecast"
)

// TypeParamInfo stores metadata about a generic type parameter.
type TypeParamInfo struct {
	Name  source.StringID
	Owner uint32 // owning callable
	Index uint32 // dense 0-based declaration position
}

// RegisterTypeParam allocates a new generic parameter descriptor.
func (in *Interner) RegisterTypeParam(name source.StringID, owner, index uint32) TypeID {
	slot := in.appendTypeParamInfo(TypeParamInfo{
		Name:  name,
		Owner: owner,
		Index: index,
	})
	return in.internRaw(Type{Kind: KindGenericParam, Payload: slot})
}

// TypeParamInfo returns metadata for the provided generic parameter.
func (in *Interner) TypeParamInfo(id TypeID) (*TypeParamInfo, bool) {
	if id == NoTypeID {
		return nil, false
	}
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindGenericParam {
		return nil, false
	}
	if tt.Payload == 0 || int(tt.Payload) >= len(in.params) {
		return nil, false
	}
	info := in.params[tt.Payload]
	return &info, true
}

func (in *Interner) appendTypeParamInfo(info TypeParamInfo) uint32 {
	in.params = append(in.params, info)
	slot, err := safecast.Conv[uint32](len(in.params) - 1)
	if err != nil {
		panic(fmt.Errorf("type param index overflow: %w", err))
	}
	return slot
}
