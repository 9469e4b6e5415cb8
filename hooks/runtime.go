package hooks

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/kamstrup/intmap"
)

// ScopeId identifies a scope mounted in a Runtime.
type ScopeId uint64

// ErrUnknownScope reports a scope id that is not mounted.
var ErrUnknownScope = errors.New("hooks: scope not mounted")

// Runtime mounts scopes, renders the ones that need it and disposes them on
// unmount. Structural changes requested while a render is in progress are
// buffered in Commands and applied once the render cycle completes.
type Runtime struct {
	scopes    *intmap.Map[ScopeId, *Scope]
	order     []ScopeId
	nextId    ScopeId
	commands  *Commands
	logger    *slog.Logger
	rendering int
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the logger used for render and teardown failures.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRuntime creates an empty runtime.
func NewRuntime(opts ...Option) *Runtime {
	r := &Runtime{
		scopes:   intmap.New[ScopeId, *Scope](64),
		commands: newCommands(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mount creates a scope for render and flags it for the next Once.
func (r *Runtime) Mount(name string, render func(*Scope)) *Scope {
	r.nextId++
	scope := NewScope(name, render)
	scope.id = r.nextId
	scope.runtime = r

	r.scopes.Put(scope.id, scope)
	r.order = append(r.order, scope.id)
	r.logger.Debug("scope mounted", "scope", name, "id", scope.id)
	return scope
}

// Scope returns the mounted scope with the given id, or nil.
func (r *Runtime) Scope(id ScopeId) *Scope {
	scope, ok := r.scopes.Get(id)
	if !ok {
		return nil
	}
	return scope
}

// Len returns the number of mounted scopes.
func (r *Runtime) Len() int {
	return len(r.order)
}

// Commands returns the buffer flushed at the end of the current render cycle.
func (r *Runtime) Commands() *Commands {
	return r.commands
}

// Render renders a single scope regardless of whether it was flagged.
func (r *Runtime) Render(id ScopeId) error {
	scope, ok := r.scopes.Get(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownScope, id)
	}

	r.rendering++
	err := r.renderScope(scope)
	r.rendering--

	if r.rendering == 0 {
		err = errors.Join(err, r.commands.Flush(r))
	}
	return err
}

// Once renders every flagged scope in mount order, then flushes Commands.
func (r *Runtime) Once() error {
	var errs []error

	r.rendering++
	for _, id := range r.order {
		scope, ok := r.scopes.Get(id)
		if !ok || !scope.NeedsRender() {
			continue
		}
		if err := r.renderScope(scope); err != nil {
			errs = append(errs, err)
		}
	}
	r.rendering--

	if r.rendering == 0 {
		errs = append(errs, r.commands.Flush(r))
	}
	return errors.Join(errs...)
}

func (r *Runtime) renderScope(scope *Scope) error {
	err := scope.Render()
	if err != nil {
		r.logger.Error("scope render failed", "scope", scope.name, "id", scope.id, "error", err)
	}
	return err
}

// Unmount disposes the scope and forgets it. While a render is in progress
// the unmount is deferred to the end of the render cycle.
func (r *Runtime) Unmount(id ScopeId) error {
	if _, ok := r.scopes.Get(id); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownScope, id)
	}
	if r.rendering > 0 {
		r.commands.Unmount(id)
		return nil
	}
	return r.unmount(id)
}

func (r *Runtime) unmount(id ScopeId) error {
	scope, ok := r.scopes.Get(id)
	if !ok {
		return nil
	}
	r.scopes.Del(id)
	r.order = slices.DeleteFunc(r.order, func(other ScopeId) bool { return other == id })

	err := scope.Dispose()
	if err != nil {
		r.logger.Warn("scope teardown failed", "scope", scope.name, "id", id, "error", err)
	}
	r.logger.Debug("scope unmounted", "scope", scope.name, "id", id)
	return err
}

// Close unmounts every scope in mount order.
func (r *Runtime) Close() error {
	var errs []error
	for _, id := range slices.Clone(r.order) {
		if err := r.unmount(id); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
