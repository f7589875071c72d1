package scope

import "sync"

// Switcher holds one callable wrapped once per group, selected at the call
// site by group name. Wrapped callables are cached for the switcher's
// lifetime, so repeated selection of the same group returns the same value.
type Switcher[A, R any] struct {
	fn     Func[A, R]
	mu     sync.Mutex
	groups map[string]Func[A, R]
}

// NewSwitcher returns a switcher over fn. Method values work the same way as
// plain functions: bind the receiver first, then hand the bound method to
// NewSwitcher.
func NewSwitcher[A, R any](fn Func[A, R]) *Switcher[A, R] {
	return &Switcher[A, R]{fn: fn, groups: make(map[string]Func[A, R])}
}

// Group returns fn wrapped for the named group, equivalent to
// Wrap(name, fn).
func (s *Switcher[A, R]) Group(name string) Func[A, R] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if wrapped, ok := s.groups[name]; ok {
		return wrapped
	}
	wrapped := Wrap(name, s.fn)
	s.groups[name] = wrapped
	return wrapped
}

// Switcher0 is a switcher over callables with no arguments beyond the context.
type Switcher0[R any] struct {
	fn     Func0[R]
	mu     sync.Mutex
	groups map[string]Func0[R]
}

// NewSwitcher0 returns a switcher over a no-argument callable.
func NewSwitcher0[R any](fn Func0[R]) *Switcher0[R] {
	return &Switcher0[R]{fn: fn, groups: make(map[string]Func0[R])}
}

// Group returns fn wrapped for the named group.
func (s *Switcher0[R]) Group(name string) Func0[R] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if wrapped, ok := s.groups[name]; ok {
		return wrapped
	}
	wrapped := Wrap0(name, s.fn)
	s.groups[name] = wrapped
	return wrapped
}
