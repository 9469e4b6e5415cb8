package a

import "github.com/plus3/hooklist/hooks"

func counter(s *hooks.Scope) {
	count := hooks.UseState(s, 0)
	hooks.UseEffect(s, func() func() {
		return nil
	})
	count.Set(1)
}

func conditional(s *hooks.Scope, show bool) {
	if show {
		hooks.UseState(s, "label") // want `hooks.UseState called conditionally`
	} else {
		hooks.UseRef(s, func() int { return 0 }) // want `hooks.UseRef called conditionally`
	}
	if v := hooks.UseState(s, 1); v != nil {
		v.Set(2)
	}
}

func looped(s *hooks.Scope, n int) {
	for i := 0; i < n; i++ {
		hooks.UseState(s, i) // want `hooks.UseState called inside a loop`
	}
	for _, item := range []string{"a", "b"} {
		_ = item
		hooks.UseEffect(s, func() func() { return nil }) // want `hooks.UseEffect called inside a loop`
	}
}

func switched(s *hooks.Scope, mode int) {
	switch mode {
	case 1:
		hooks.UseState(s, 1) // want `hooks.UseState called inside a switch or select case`
	}
}

func shortCircuit(s *hooks.Scope, ok bool) bool {
	return ok && hooks.UseState(s, true) != nil // want `hooks.UseState called conditionally`
}

func nestedComponent(s *hooks.Scope, items []string) {
	for _, item := range items {
		render := func(child *hooks.Scope) {
			hooks.UseState(child, item)
		}
		_ = render
	}
}

func manual(l *hooks.List, first bool) {
	l.Reset()
	if _, err := hooks.Next[int](l); err != nil {
		hooks.Push(l, 0, nil)
	}
	if first {
		hooks.Next[string](l) // want `hooks.Next called conditionally`
	}
}
