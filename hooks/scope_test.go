package hooks_test

import (
	"errors"
	"testing"

	"github.com/plus3/hooklist/hooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockController struct {
	disposed int
}

func (m *mockController) Dispose() {
	m.disposed++
}

func TestUseRefPersists(t *testing.T) {
	var inits int
	var last int
	scope := hooks.NewScope("counter", func(s *hooks.Scope) {
		clicks := hooks.UseRef(s, func() int {
			inits++
			return 0
		})
		*clicks++
		last = *clicks
	})

	for i := 0; i < 3; i++ {
		require.NoError(t, scope.Render())
	}

	assert.Equal(t, 1, inits)
	assert.Equal(t, 3, last)
	assert.Equal(t, 1, scope.Hooks().Len())
}

func TestUseStateMarksNeedsRender(t *testing.T) {
	var count *hooks.State[int]
	scope := hooks.NewScope("state", func(s *hooks.Scope) {
		count = hooks.UseState(s, 10)
	})

	assert.True(t, scope.NeedsRender())
	require.NoError(t, scope.Render())
	assert.False(t, scope.NeedsRender())
	assert.Equal(t, 10, count.Value())

	count.Set(20)
	assert.True(t, scope.NeedsRender())
	require.NoError(t, scope.Render())
	assert.Equal(t, 20, count.Value())

	count.Update(func(v int) int { return v * 2 })
	assert.Equal(t, 40, count.Value())
	assert.True(t, scope.NeedsRender())
}

func TestUseStateStructType(t *testing.T) {
	type Person struct {
		Name string
		Age  int
	}

	var person *hooks.State[Person]
	scope := hooks.NewScope("person", func(s *hooks.Scope) {
		person = hooks.UseState(s, Person{Name: "Alice", Age: 30})
	})
	require.NoError(t, scope.Render())

	person.Update(func(p Person) Person {
		p.Age++
		return p
	})
	require.NoError(t, scope.Render())
	assert.Equal(t, 31, person.Value().Age)
}

func TestUseMemo(t *testing.T) {
	var computes int
	dep := 1
	var result int
	scope := hooks.NewScope("memo", func(s *hooks.Scope) {
		result = hooks.UseMemo(s, func() int {
			computes++
			return dep * 10
		}, dep)
	})

	require.NoError(t, scope.Render())
	require.NoError(t, scope.Render())
	assert.Equal(t, 1, computes)
	assert.Equal(t, 10, result)

	dep = 2
	require.NoError(t, scope.Render())
	assert.Equal(t, 2, computes)
	assert.Equal(t, 20, result)
}

func TestUseEffect(t *testing.T) {
	var log []string
	dep := "a"
	scope := hooks.NewScope("effect", func(s *hooks.Scope) {
		hooks.UseEffect(s, func() func() {
			log = append(log, "run "+dep)
			d := dep
			return func() { log = append(log, "cleanup "+d) }
		}, dep)
	})

	require.NoError(t, scope.Render())
	require.NoError(t, scope.Render())
	assert.Equal(t, []string{"run a"}, log)

	dep = "b"
	require.NoError(t, scope.Render())
	assert.Equal(t, []string{"run a", "cleanup a", "run b"}, log)

	require.NoError(t, scope.Dispose())
	assert.Equal(t, []string{"run a", "cleanup a", "run b", "cleanup b"}, log)
}

func TestUseEffectWithoutDepsRunsOnce(t *testing.T) {
	var runs int
	scope := hooks.NewScope("mount", func(s *hooks.Scope) {
		hooks.UseEffect(s, func() func() {
			runs++
			return nil
		})
	})

	for i := 0; i < 3; i++ {
		require.NoError(t, scope.Render())
	}
	assert.Equal(t, 1, runs)
}

func TestUseController(t *testing.T) {
	var created int
	var controller *mockController
	scope := hooks.NewScope("controller", func(s *hooks.Scope) {
		controller = hooks.UseController(s, func() *mockController {
			created++
			return &mockController{}
		})
	})

	require.NoError(t, scope.Render())
	require.NoError(t, scope.Render())
	assert.Equal(t, 1, created)
	assert.Equal(t, 0, controller.disposed)

	require.NoError(t, scope.Dispose())
	assert.Equal(t, 1, controller.disposed)
}

func TestTeardownOrderFollowsHookOrder(t *testing.T) {
	var log []string
	scope := hooks.NewScope("order", func(s *hooks.Scope) {
		hooks.UseEffect(s, func() func() {
			return func() { log = append(log, "effect") }
		})
		hooks.UseController(s, func() *namedController {
			return &namedController{name: "controller", log: &log}
		})
	})

	require.NoError(t, scope.Render())
	require.NoError(t, scope.Dispose())
	assert.Equal(t, []string{"effect", "controller"}, log)
}

type namedController struct {
	name string
	log  *[]string
}

func (c *namedController) Dispose() {
	*c.log = append(*c.log, c.name)
}

func TestConditionalHookReportsMismatch(t *testing.T) {
	flag := true
	scope := hooks.NewScope("conditional", func(s *hooks.Scope) {
		if flag {
			hooks.UseState(s, "label")
		}
		hooks.UseState(s, 0)
	})

	require.NoError(t, scope.Render())

	flag = false
	err := scope.Render()
	require.Error(t, err)

	var renderErr *hooks.RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Equal(t, "conditional", renderErr.Scope)
	assert.NotNil(t, renderErr.Recovered)
	assert.ErrorIs(t, err, hooks.ErrTypeMismatch)
}

func TestChangedHookCountReported(t *testing.T) {
	extra := false
	scope := hooks.NewScope("count", func(s *hooks.Scope) {
		hooks.UseState(s, 0)
		if extra {
			hooks.UseState(s, 1)
		}
	})

	require.NoError(t, scope.Render())

	extra = true
	err := scope.Render()

	var orderErr *hooks.HookOrderError
	require.True(t, errors.As(err, &orderErr))
	assert.Equal(t, 1, orderErr.Want)
	assert.Equal(t, 2, orderErr.Got)
}

func TestRenderRecoversPanic(t *testing.T) {
	scope := hooks.NewScope("panics", func(s *hooks.Scope) {
		panic("render failed")
	})

	err := scope.Render()

	var renderErr *hooks.RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Equal(t, "render failed", renderErr.Recovered)
	assert.Nil(t, renderErr.Err)
	assert.NotEmpty(t, renderErr.StackTrace)
	assert.False(t, scope.Rendering())
}

func TestEffectsSkippedWhenRenderFails(t *testing.T) {
	var runs int
	fail := false
	scope := hooks.NewScope("skip", func(s *hooks.Scope) {
		hooks.UseEffect(s, func() func() {
			runs++
			return nil
		})
		if fail {
			panic("no")
		}
	})

	fail = true
	require.Error(t, scope.Render())
	assert.Equal(t, 0, runs)

	fail = false
	require.NoError(t, scope.Render())
	assert.Equal(t, 1, runs)
}

func TestReentrantRender(t *testing.T) {
	var inner error
	var scope *hooks.Scope
	scope = hooks.NewScope("reentrant", func(s *hooks.Scope) {
		inner = scope.Render()
	})

	require.NoError(t, scope.Render())
	assert.ErrorIs(t, inner, hooks.ErrReentrantRender)
}

func TestRenderAfterDispose(t *testing.T) {
	scope := hooks.NewScope("gone", func(s *hooks.Scope) {
		hooks.UseState(s, 0)
	})
	require.NoError(t, scope.Render())
	require.NoError(t, scope.Dispose())

	assert.ErrorIs(t, scope.Render(), hooks.ErrDisposed)
	scope.MarkNeedsRender()
	assert.False(t, scope.NeedsRender())
}

func TestScopeStats(t *testing.T) {
	scope := hooks.NewScope("stats", func(s *hooks.Scope) {
		hooks.UseState(s, 0)
		hooks.UseRef(s, func() string { return "" })
	})

	require.NoError(t, scope.Render())
	require.NoError(t, scope.Render())

	stats := scope.CollectStats()
	assert.Equal(t, "stats", stats.Name)
	assert.Equal(t, int64(2), stats.RenderCount)
	assert.Equal(t, int64(0), stats.ErrorCount)
	assert.Equal(t, 2, stats.Hooks.Len)
	assert.Equal(t, []string{"hooks.State[int]", "string"}, stats.Hooks.Types)
	assert.LessOrEqual(t, stats.MinDuration, stats.MaxDuration)
}
