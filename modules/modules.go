package modules

import (
	"sort"
	"sync"

	"github.com/skillsenselab/refgroup/errors"
	"github.com/skillsenselab/refgroup/logger"
)

// Provider constructs a module value. It runs at most once per module name.
type Provider func() (any, error)

// entry guards one provider with once-only construction.
type entry struct {
	provider Provider
	once     sync.Once
	value    any
	err      error
}

var (
	mu        sync.RWMutex
	providers = make(map[string]*entry)
)

// Register makes a module available under name, typically from an init
// function. It panics when the provider is nil or the name is already taken.
func Register(name string, provider Provider) {
	mu.Lock()
	defer mu.Unlock()

	if provider == nil {
		panic("modules: Register provider is nil")
	}
	if _, dup := providers[name]; dup {
		panic("modules: Register called twice for module " + name)
	}
	providers[name] = &entry{provider: provider}

	logger.WithComponent("modules").Debug("module registered",
		logger.Fields(logger.FieldModule, name))
}

// Resolve returns the module value for name, constructing it on first use.
// It fails with a MODULE_RESOLUTION error when the name is unregistered or
// the provider failed.
func Resolve(name string) (any, error) {
	mu.RLock()
	e, ok := providers[name]
	mu.RUnlock()

	if !ok {
		return nil, errors.ModuleResolution(name)
	}

	e.once.Do(func() {
		e.value, e.err = e.provider()
	})
	if e.err != nil {
		return nil, errors.ModuleResolution(name).WithCause(e.err)
	}
	return e.value, nil
}

// Registered returns the names of all registered modules, sorted.
func Registered() []string {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]string, 0, len(providers))
	for name := range providers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// reset clears all providers. Tests only.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	providers = make(map[string]*entry)
}
