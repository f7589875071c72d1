package registry

import (
	"fmt"
	"reflect"
	"regexp"
	"runtime"
	"strings"

	"github.com/skillsenselab/refgroup/errors"
	"github.com/skillsenselab/refgroup/logger"
	"github.com/skillsenselab/refgroup/modules"
	"github.com/skillsenselab/refgroup/scope"
)

// Builder inserts bindings into one group of a registry. Methods chain and
// never panic; the first binding failure is retained and reported by Err,
// with subsequent binding calls becoming no-ops.
type Builder struct {
	registry *Registry
	group    string
	err      error
	log      *logger.Logger
}

// Builder returns a builder over the named group. An empty group name
// addresses the default group. Groups are created on first insertion, and
// building the same group again merges into the existing bindings.
func (r *Registry) Builder(group string) *Builder {
	if group == "" {
		group = scope.DefaultGroup
	}
	return &Builder{
		registry: r,
		group:    group,
		log:      r.log.WithComponent("builder"),
	}
}

// Group returns the group name this builder addresses.
func (b *Builder) Group() string { return b.group }

// Err returns the first binding failure, or nil.
func (b *Builder) Err() error { return b.err }

// AddNamedRef binds value under name. Later calls with the same name
// overwrite the earlier binding.
func (b *Builder) AddNamedRef(name string, value any) *Builder {
	if b.err != nil {
		return b
	}
	b.registry.insert(b.group, name, value)
	return b
}

// AddRef binds value under its intrinsic name: the function's own name for
// funcs and methods, or the type name for named types. Anonymous values
// have no derivable name and leave the builder with an INVALID_REFERENCE
// error.
func (b *Builder) AddRef(value any) *Builder {
	if b.err != nil {
		return b
	}
	name, err := intrinsicName(value)
	if err != nil {
		b.err = err
		b.log.Error("add ref failed", logger.ErrorFields("add_ref", err))
		return b
	}
	return b.AddNamedRef(name, value)
}

// LazyAddRef resolves a registered module provider by name and binds the
// constructed module under that name. Resolution happens now, not at first
// use; the binding is lazy only in that the caller never touches the module
// package directly. An unknown module leaves the builder with a
// MODULE_RESOLUTION error.
func (b *Builder) LazyAddRef(module string) *Builder {
	if b.err != nil {
		return b
	}
	value, err := modules.Resolve(module)
	if err != nil {
		b.err = err
		b.log.Error("lazy add ref failed", logger.ErrorFields("lazy_add_ref", err))
		return b
	}
	return b.AddNamedRef(module, value)
}

// anonFuncName matches the synthetic names the runtime gives closures,
// e.g. func1 or func2.1.
var anonFuncName = regexp.MustCompile(`^func\d+(\.\d+)*$`)

// intrinsicName derives a binding name from a value: the bare function name
// for funcs, the type name for named types.
func intrinsicName(value any) (string, error) {
	if value == nil {
		return "", errors.InvalidReference("nil value")
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Func {
		fn := runtime.FuncForPC(rv.Pointer())
		if fn == nil {
			return "", errors.InvalidReference("unresolvable function")
		}
		name := fn.Name()
		// Method values carry a -fm suffix, generic instantiations a
		// bracketed type list. Neither belongs in the binding name.
		name = strings.TrimSuffix(name, "-fm")
		if i := strings.Index(name, "["); i >= 0 {
			name = name[:i]
		}
		if i := strings.LastIndex(name, "."); i >= 0 {
			name = name[i+1:]
		}
		if name == "" || anonFuncName.MatchString(name) {
			return "", errors.InvalidReference("anonymous function")
		}
		return name, nil
	}

	t := rv.Type()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return "", errors.InvalidReference(fmt.Sprintf("unnamed %s value", t.Kind()))
	}
	return t.Name(), nil
}
