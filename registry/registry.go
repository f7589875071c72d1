package registry

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skillsenselab/refgroup/errors"
	"github.com/skillsenselab/refgroup/logger"
	"github.com/skillsenselab/refgroup/observability"
	"github.com/skillsenselab/refgroup/scope"
)

// Registry maps group names to reference bindings. Groups are created
// implicitly on first insertion and rebuilding a group merges into it;
// later inserts under an existing name overwrite.
//
// The registry is safe for concurrent reads. Builder writes are expected to
// happen during setup; racing builds against resolves on the same group is
// unsupported.
type Registry struct {
	id      string
	mu      sync.RWMutex
	groups  map[string]map[string]any
	log     *logger.Logger
	metrics *observability.Metrics
}

// Option configures a Registry.
type Option func(*Registry)

// WithMetrics attaches metric instruments recording resolves and bindings.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Registry) { r.metrics = m }
}

// WithLogger sets the logger used by the registry and its builders.
func WithLogger(l *logger.Logger) Option {
	return func(r *Registry) { r.log = l }
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		id:     uuid.NewString(),
		groups: make(map[string]map[string]any),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = logger.WithComponent("registry")
	}
	return r
}

// ID returns the registry's unique identifier, carried in log fields so
// output from independent registries can be told apart.
func (r *Registry) ID() string { return r.id }

// Resolve returns the value bound under name in the active group for ctx.
// It fails with an UNKNOWN_GROUP error when the active group was never
// built and an UNKNOWN_REFERENCE error when the group holds no such name.
func (r *Registry) Resolve(ctx context.Context, name string) (any, error) {
	group := scope.ActiveGroup(ctx)
	start := time.Now()

	r.mu.RLock()
	refs, groupExists := r.groups[group]
	value, refExists := refs[name]
	r.mu.RUnlock()

	var err error
	switch {
	case !groupExists:
		err = errors.UnknownGroup(group).WithDetail("registry", r.id)
	case !refExists:
		err = errors.UnknownReference(group, name).WithDetail("registry", r.id)
	}

	observability.SetSpanAttribute(ctx, observability.AttrGroup, group)
	observability.SetSpanAttribute(ctx, observability.AttrRef, name)
	r.metrics.RecordResolve(ctx, group, name, time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return value, nil
}

// Has reports whether the group holds a binding under name.
func (r *Registry) Has(group, name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.groups[group][name]
	return ok
}

// Groups returns the names of all built groups, sorted.
func (r *Registry) Groups() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.groups))
	for g := range r.groups {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

// Refs returns the reference names bound in a group, sorted. It fails with
// an UNKNOWN_GROUP error when the group was never built.
func (r *Registry) Refs(group string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	refs, ok := r.groups[group]
	if !ok {
		return nil, errors.UnknownGroup(group).WithDetail("registry", r.id)
	}
	out := make([]string, 0, len(refs))
	for name := range refs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

// Bindings returns a snapshot of all group-to-reference-name bindings.
func (r *Registry) Bindings() map[string][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]string, len(r.groups))
	for g, refs := range r.groups {
		names := make([]string, 0, len(refs))
		for name := range refs {
			names = append(names, name)
		}
		sort.Strings(names)
		out[g] = names
	}
	return out
}

// insert adds a binding, creating the group on first insertion.
func (r *Registry) insert(group, name string, value any) {
	r.mu.Lock()
	refs, ok := r.groups[group]
	if !ok {
		refs = make(map[string]any)
		r.groups[group] = refs
	}
	refs[name] = value
	r.mu.Unlock()

	r.metrics.RecordBind(context.Background(), group, name)
	r.log.Debug("reference bound", logger.Fields(
		logger.FieldRegistry, r.id,
		logger.FieldGroup, group,
		logger.FieldRef, name,
	))
}

// --- Default registry ---

var (
	defaultMu       sync.Mutex
	defaultRegistry *Registry
)

// Default returns the package-level registry, creating it on first use.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultRegistry == nil {
		defaultRegistry = New()
	}
	return defaultRegistry
}

// SetDefault replaces the package-level registry and returns the previous
// one, which may be nil. Tests use this to swap in an isolated instance.
func SetDefault(r *Registry) *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultRegistry
	defaultRegistry = r
	return prev
}

// Build returns a builder over the named group of the default registry.
// An empty group name addresses the default group.
func Build(group string) *Builder {
	return Default().Builder(group)
}

// Resolve resolves name against the default registry.
func Resolve(ctx context.Context, name string) (any, error) {
	return Default().Resolve(ctx, name)
}
