package hooks

import (
	"errors"
	"reflect"
)

// Disposable is implemented by controllers that hold resources.
type Disposable interface {
	Dispose()
}

// use returns the hook at the cursor, registering the value built by create
// the first time the position is reached. Order violations panic and are
// reported by Scope.Render as a *RenderError.
func use[T any](s *Scope, create func() (T, func(*T))) *T {
	v, err := Next[T](&s.hooks)
	if err == nil {
		return v
	}
	if !errors.Is(err, ErrExhausted) {
		panic(err)
	}

	initial, teardown := create()
	Push(&s.hooks, initial, teardown)
	v, err = Next[T](&s.hooks)
	if err != nil {
		panic(err)
	}
	return v
}

// UseRef returns a pointer to a value that persists across renders.
// initial is only called on the first render.
//
// Example:
//
//	clicks := hooks.UseRef(s, func() int { return 0 })
//	*clicks++
func UseRef[T any](s *Scope, initial func() T) *T {
	return use(s, func() (T, func(*T)) {
		return initial(), nil
	})
}

// State holds a value and marks its scope for re-render when it changes.
//
// State is NOT thread-safe. It must only be used from the goroutine that
// drives the runtime.
type State[T any] struct {
	scope *Scope
	value T
}

// UseState returns the state hook at the current position.
//
// Example:
//
//	count := hooks.UseState(s, 0)
//	count.Set(count.Value() + 1)
func UseState[T any](s *Scope, initial T) *State[T] {
	return use(s, func() (State[T], func(*State[T])) {
		return State[T]{scope: s, value: initial}, nil
	})
}

// Value returns the current value.
func (st *State[T]) Value() T {
	return st.value
}

// Set updates the value and schedules a render.
func (st *State[T]) Set(value T) {
	st.value = value
	st.scope.MarkNeedsRender()
}

// Update applies a transformation to the current value and schedules a render.
func (st *State[T]) Update(transform func(T) T) {
	st.value = transform(st.value)
	st.scope.MarkNeedsRender()
}

type memo[T any] struct {
	value T
	deps  []any
}

// UseMemo returns the cached result of compute, recomputing it when deps
// change. Deps are compared with reflect.DeepEqual.
func UseMemo[T any](s *Scope, compute func() T, deps ...any) T {
	m := use(s, func() (memo[T], func(*memo[T])) {
		return memo[T]{value: compute(), deps: deps}, nil
	})
	if !reflect.DeepEqual(m.deps, deps) {
		m.value = compute()
		m.deps = deps
	}
	return m.value
}

type effect struct {
	deps    []any
	cleanup func()
	ran     bool
}

func (e *effect) runCleanup() {
	if e.cleanup != nil {
		cleanup := e.cleanup
		e.cleanup = nil
		cleanup()
	}
}

// UseEffect runs fn after the render when deps changed since the last run.
// With no deps it runs once, after the first render. The function returned by
// fn, if any, runs before the next run and when the scope is disposed.
//
// Example:
//
//	hooks.UseEffect(s, func() func() {
//	    unsub := feed.Subscribe(onItem)
//	    return unsub
//	}, feed)
func UseEffect(s *Scope, fn func() func(), deps ...any) {
	e := use(s, func() (effect, func(*effect)) {
		return effect{}, (*effect).runCleanup
	})
	if e.ran && reflect.DeepEqual(e.deps, deps) {
		return
	}
	s.effects = append(s.effects, func() {
		e.runCleanup()
		e.deps = deps
		e.ran = true
		e.cleanup = fn()
	})
}

// UseController creates a controller on the first render and disposes it
// when the scope is disposed.
//
// Example:
//
//	ticker := hooks.UseController(s, func() *Ticker {
//	    return NewTicker(time.Second)
//	})
func UseController[C Disposable](s *Scope, create func() C) C {
	c := use(s, func() (C, func(*C)) {
		return create(), func(c *C) { (*c).Dispose() }
	})
	return *c
}
