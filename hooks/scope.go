package hooks

import (
	"errors"
	"runtime/debug"
	"time"
)

// Scope owns the hook list of one component and drives its renders.
//
// A render rewinds the list, runs the body, then runs the effects queued by
// UseEffect. The body must call hooks in the same order on every render; the
// first successful render fixes the hook count and later renders that use a
// different number of hooks fail with a *HookOrderError.
type Scope struct {
	id        ScopeId
	name      string
	render    func(*Scope)
	runtime   *Runtime
	hooks     List
	effects   []func()
	committed int
	rendered  bool
	rendering bool
	dirty     bool
	stats     renderStats
}

// NewScope creates a standalone scope that is not attached to a Runtime.
func NewScope(name string, render func(*Scope)) *Scope {
	return &Scope{
		name:   name,
		render: render,
		dirty:  true,
	}
}

// ID returns the scope id assigned by the runtime, or 0 for standalone scopes.
func (s *Scope) ID() ScopeId {
	return s.id
}

// Name returns the scope name.
func (s *Scope) Name() string {
	return s.name
}

// Runtime returns the runtime the scope is mounted in, or nil.
func (s *Scope) Runtime() *Runtime {
	return s.runtime
}

// Hooks returns the hook list of the scope.
func (s *Scope) Hooks() *List {
	return &s.hooks
}

// MarkNeedsRender flags the scope for the next Runtime.Once.
func (s *Scope) MarkNeedsRender() {
	if s.hooks.disposed {
		return
	}
	s.dirty = true
}

// NeedsRender reports whether the scope has been flagged for a render.
func (s *Scope) NeedsRender() bool {
	return s.dirty && !s.hooks.disposed
}

// Rendering reports whether the scope body is currently running.
func (s *Scope) Rendering() bool {
	return s.rendering
}

// Render runs one render cycle of the scope. For a mounted scope, runtime
// commands queued by the body are applied once the render returns.
func (s *Scope) Render() error {
	r := s.runtime
	if r == nil {
		return s.renderCycle()
	}

	r.rendering++
	err := s.renderCycle()
	r.rendering--

	if r.rendering == 0 {
		err = errors.Join(err, r.commands.Flush(r))
	}
	return err
}

func (s *Scope) renderCycle() (err error) {
	if s.hooks.disposed {
		return ErrDisposed
	}
	if s.rendering {
		return ErrReentrantRender
	}

	s.rendering = true
	s.dirty = false
	start := time.Now()
	defer func() {
		s.rendering = false
		s.effects = s.effects[:0]
		s.stats.record(time.Since(start), err != nil)
	}()

	s.hooks.Reset()
	if err := s.runBody(); err != nil {
		return err
	}

	used := s.hooks.Position()
	if !s.rendered {
		s.committed = used
		s.rendered = true
	} else if used != s.committed {
		return &RenderError{Scope: s.name, Err: &HookOrderError{Want: s.committed, Got: used}}
	}

	return s.runEffects()
}

func (s *Scope) runBody() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = s.recovered(r)
		}
	}()
	if s.render != nil {
		s.render(s)
	}
	return nil
}

func (s *Scope) runEffects() error {
	var errs []error
	for _, effect := range s.effects {
		if err := s.runEffect(effect); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Scope) runEffect(effect func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = s.recovered(r)
		}
	}()
	effect()
	return nil
}

func (s *Scope) recovered(r any) *RenderError {
	renderErr := &RenderError{
		Scope:      s.name,
		Recovered:  r,
		StackTrace: string(debug.Stack()),
	}
	if err, ok := r.(error); ok {
		renderErr.Err = err
	}
	return renderErr
}

// Dispose tears down every hook of the scope in registration order.
func (s *Scope) Dispose() error {
	s.dirty = false
	return s.hooks.Dispose()
}
