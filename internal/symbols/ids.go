package symbols

// CallableID identifies a callable descriptor inside the table arena.
type CallableID uint32

const (
	// NoCallableID marks the absence of a descriptor reference.
	NoCallableID CallableID = 0
)

// IsValid reports whether the ID refers to an allocated descriptor.
func (id CallableID) IsValid() bool { return id != NoCallableID }
