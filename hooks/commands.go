package hooks

import "errors"

// Commands buffers runtime operations requested during a render. They are
// applied after every scope of the cycle has finished rendering, so no scope
// is disposed while a render may still hold pointers into its hooks.
type Commands struct {
	unmounts []ScopeId
	defers   []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Unmount queues a scope unmount.
func (c *Commands) Unmount(id ScopeId) {
	c.unmounts = append(c.unmounts, id)
}

// Defer queues a function to run after the render cycle.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.unmounts) + len(c.defers)
}

// Flush applies the queued unmounts, then runs the deferred functions, and
// resets the buffer. Commands queued while flushing run in the same flush.
func (c *Commands) Flush(r *Runtime) error {
	var errs []error
	for c.Len() > 0 {
		unmounts := c.unmounts
		defers := c.defers
		c.unmounts = nil
		c.defers = nil

		for _, id := range unmounts {
			if err := r.unmount(id); err != nil {
				errs = append(errs, err)
			}
		}
		for _, fn := range defers {
			fn()
		}
	}
	return errors.Join(errs...)
}
