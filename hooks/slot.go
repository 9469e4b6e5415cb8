package hooks

import "reflect"

// erasedHook is the type-erased form of a registered hook.
type erasedHook interface {
	Type() reflect.Type
	Value() any
	teardown()
}

// hookSlot stores a single hook value of type T together with its teardown.
type hookSlot[T any] struct {
	value    T
	cleanup  func(*T)
	consumed bool
}

func (h *hookSlot[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

// Value returns a pointer to the stored value.
func (h *hookSlot[T]) Value() any {
	return &h.value
}

// teardown runs the cleanup at most once, even if it panics.
func (h *hookSlot[T]) teardown() {
	if h.consumed {
		return
	}
	h.consumed = true
	if h.cleanup != nil {
		h.cleanup(&h.value)
	}
}
