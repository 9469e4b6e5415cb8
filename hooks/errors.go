package hooks

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrExhausted reports that no hook has been registered at the cursor yet.
	// It is the expected signal to Push a new hook.
	ErrExhausted = errors.New("hooks: no hook registered at cursor")
	// ErrTypeMismatch reports that the hook at the cursor holds a different type.
	// It means the hook call order changed between renders.
	ErrTypeMismatch = errors.New("hooks: hook type mismatch")
	// ErrStaleRef reports a Ref used after the list was reset.
	ErrStaleRef = errors.New("hooks: stale hook reference")
	// ErrDisposed reports access to a disposed list or scope.
	ErrDisposed = errors.New("hooks: disposed")
	// ErrReentrantRender reports a Render call on a scope that is already rendering.
	ErrReentrantRender = errors.New("hooks: scope is already rendering")
)

// TypeMismatchError describes a typed read at a position holding another type.
type TypeMismatchError struct {
	// Position is the cursor position of the read.
	Position int
	// Want is the requested type.
	Want reflect.Type
	// Got is the type stored at Position.
	Got reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("hooks: hook %d holds %s, requested %s (hook call order changed between renders)", e.Position, e.Got, e.Want)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

func newTypeMismatch[T any](pos int, h erasedHook) *TypeMismatchError {
	return &TypeMismatchError{
		Position: pos,
		Want:     reflect.TypeFor[T](),
		Got:      h.Type(),
	}
}

// StaleRefError describes a Ref resolved in a later generation than it was issued in.
type StaleRefError struct {
	Ref     HookRef
	Current uint32
}

func (e *StaleRefError) Error() string {
	return fmt.Sprintf("hooks: ref to hook %d from generation %d used in generation %d", e.Ref.Position(), e.Ref.Generation(), e.Current)
}

func (e *StaleRefError) Unwrap() error {
	return ErrStaleRef
}

// TeardownError records a teardown that panicked during disposal.
type TeardownError struct {
	Position   int
	Type       reflect.Type
	Recovered  any
	StackTrace string
}

func (e *TeardownError) Error() string {
	return fmt.Sprintf("hooks: teardown of hook %d (%s) panicked: %v", e.Position, e.Type, e.Recovered)
}

// RenderError represents a failed scope render.
type RenderError struct {
	// Scope is the name of the scope that failed.
	Scope string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error. For panics carrying an error it is that error.
	Err error
	// StackTrace contains the call stack at the time of a panic.
	StackTrace string
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("hooks: render %s: %v", e.Scope, e.Err)
	}
	return fmt.Sprintf("hooks: panic in render %s: %v", e.Scope, e.Recovered)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// HookOrderError reports that a render consumed a different number of hooks
// than the first successful render of the scope.
type HookOrderError struct {
	Want int
	Got  int
}

func (e *HookOrderError) Error() string {
	return fmt.Sprintf("hooks: render used %d hooks, previous renders used %d (hook calls must not be conditional)", e.Got, e.Want)
}
