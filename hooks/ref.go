package hooks

// HookRef encodes both the list generation (upper 32 bits) and the hook position (lower 32 bits)
type HookRef uint64

// InvalidHookRef is returned by Push when the hook could not be registered.
const InvalidHookRef = ^HookRef(0)

// NewHookRef creates a HookRef from a generation and a hook position
func NewHookRef(generation uint32, position uint32) HookRef {
	return HookRef(uint64(generation)<<32 | uint64(position))
}

// Generation extracts the render generation the ref was handed out in
func (r HookRef) Generation() uint32 {
	return uint32(r >> 32)
}

// Position extracts the hook position from the ref
func (r HookRef) Position() uint32 {
	return uint32(r & 0xFFFFFFFF)
}

// Ref is a typed, generation-checked handle to a hook value.
// A Ref is only valid for the render cycle it was obtained in; once the list
// is Reset, Get rejects it instead of handing out the same value twice.
type Ref[T any] struct {
	list *List
	id   HookRef
}

// ID returns the packed generation and position of the ref.
func (r Ref[T]) ID() HookRef {
	return r.id
}

// Get resolves the ref against its list.
func (r Ref[T]) Get() (*T, error) {
	if r.list == nil {
		return nil, ErrStaleRef
	}
	if r.list.disposed {
		return nil, ErrDisposed
	}
	if r.id.Generation() != r.list.generation {
		return nil, &StaleRefError{Ref: r.id, Current: r.list.generation}
	}

	pos := int(r.id.Position())
	if pos >= len(r.list.entries) {
		return nil, &StaleRefError{Ref: r.id, Current: r.list.generation}
	}

	slot, ok := r.list.entries[pos].(*hookSlot[T])
	if !ok {
		return nil, newTypeMismatch[T](pos, r.list.entries[pos])
	}
	return &slot.value, nil
}
