package hooks

import (
	"errors"
	"iter"
	"runtime/debug"
)

// List is the ordered hook store of a single scope.
//
// Every render walks the list from the start: Next returns the value stored
// at the cursor and advances it, Push appends a new hook when Next reports
// ErrExhausted. Entries are never removed or reordered; Dispose tears all of
// them down at once, in insertion order.
//
// The zero value is an empty list ready for use. A List is not safe for
// concurrent use and must be owned by exactly one scope.
//
// Pointers returned by Next stay valid in the Go memory sense for as long as
// the list lives, but they belong to the render cycle that produced them: the
// driver calls Reset only after every pointer from the previous cycle is out
// of use. Callers that need to hold on to a hook across calls should take a
// Ref from NextRef, which is rejected once the list is Reset.
type List struct {
	entries    []erasedHook
	cursor     int
	generation uint32
	disposed   bool
	disposing  bool
}

// Next returns the hook at the cursor as *T and advances the cursor.
// It returns ErrExhausted when the cursor is at the end of the list and a
// *TypeMismatchError when the stored hook is not a T. The cursor only moves
// on success.
func Next[T any](l *List) (*T, error) {
	slot, err := peek[T](l)
	if err != nil {
		return nil, err
	}
	l.cursor++
	return &slot.value, nil
}

// NextRef is like Next but returns a Ref bound to the current generation.
func NextRef[T any](l *List) (Ref[T], error) {
	pos := l.cursor
	if _, err := peek[T](l); err != nil {
		return Ref[T]{}, err
	}
	l.cursor++
	return Ref[T]{list: l, id: NewHookRef(l.generation, uint32(pos))}, nil
}

func peek[T any](l *List) (*hookSlot[T], error) {
	if l.disposed {
		return nil, ErrDisposed
	}
	if l.cursor >= len(l.entries) {
		return nil, ErrExhausted
	}
	entry := l.entries[l.cursor]
	slot, ok := entry.(*hookSlot[T])
	if !ok {
		return nil, newTypeMismatch[T](l.cursor, entry)
	}
	return slot, nil
}

// Push appends a new hook holding initial. The teardown, which may be nil,
// runs once with the final value when the list is disposed.
// Push never moves the cursor.
//
// Pushing onto a disposed list runs the teardown immediately and returns
// InvalidHookRef.
func Push[T any](l *List, initial T, teardown func(*T)) HookRef {
	slot := &hookSlot[T]{value: initial, cleanup: teardown}
	if l.disposed {
		slot.teardown()
		return InvalidHookRef
	}
	l.entries = append(l.entries, slot)
	return NewHookRef(l.generation, uint32(len(l.entries)-1))
}

// Reset rewinds the cursor to the first hook and starts a new generation.
// Refs handed out before the reset are rejected afterwards.
//
// The driver must only call Reset between renders, once nothing from the
// previous render (including descendant scopes) still uses a pointer
// obtained from Next.
func (l *List) Reset() {
	l.cursor = 0
	l.generation++
}

// Len returns the number of registered hooks.
func (l *List) Len() int {
	return len(l.entries)
}

// Position returns the cursor position.
func (l *List) Position() int {
	return l.cursor
}

// AtEnd reports whether the cursor is past the last registered hook.
func (l *List) AtEnd() bool {
	return l.cursor >= len(l.entries)
}

// Generation returns the number of resets so far.
func (l *List) Generation() uint32 {
	return l.generation
}

// Disposed reports whether Dispose has run.
func (l *List) Disposed() bool {
	return l.disposed
}

// All iterates over every hook in insertion order, yielding its position and
// a pointer to its value.
func (l *List) All() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i, entry := range l.entries {
			if !yield(i, entry.Value()) {
				return
			}
		}
	}
}

// Dispose runs every teardown once, oldest hook first, and releases the
// hooks. A panicking teardown does not stop the remaining ones; each panic is
// returned as a *TeardownError joined into the result.
// Calling Dispose again, including from inside a teardown, does nothing.
// Hooks pushed by a teardown are torn down after the existing ones.
func (l *List) Dispose() error {
	if l.disposed || l.disposing {
		return nil
	}
	l.disposing = true

	// Teardowns may push new hooks; those are torn down in order too.
	var errs []error
	for i := 0; i < len(l.entries); i++ {
		if err := runTeardown(i, l.entries[i]); err != nil {
			errs = append(errs, err)
		}
	}

	l.entries = nil
	l.cursor = 0
	l.disposed = true
	l.disposing = false
	return errors.Join(errs...)
}

func runTeardown(pos int, entry erasedHook) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &TeardownError{
				Position:   pos,
				Type:       entry.Type(),
				Recovered:  r,
				StackTrace: string(debug.Stack()),
			}
		}
	}()
	entry.teardown()
	return nil
}
