package hooks

type Scope struct{}

type List struct{}

type State[T any] struct{ value T }

func (s *State[T]) Set(v T) { s.value = v }

func (l *List) Reset() {}

func UseState[T any](s *Scope, initial T) *State[T] { return &State[T]{value: initial} }

func UseRef[T any](s *Scope, initial func() T) *T { v := initial(); return &v }

func UseEffect(s *Scope, fn func() func(), deps ...any) {}

func Next[T any](l *List) (*T, error) { return nil, nil }

func Push[T any](l *List, initial T, teardown func(*T)) uint64 { return 0 }
