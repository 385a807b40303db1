package resolver

import (
	"fmt"
	"reflect"

	"github.com/omegamvc/container/definition"
)

// ── Contracts ─────────────────────────────────────────────────────────────────

// Container is the handle resolvers use to look up other entries while
// resolving nested definitions. The root container satisfies it.
type Container interface {
	// Get resolves the named entry, caching singletons.
	Get(name string) (any, error)

	// Has reports whether an entry exists under the name.
	Has(name string) bool
}

// DefinitionResolver turns one kind of definition into a runtime value.
//
// Resolvers are stateless beyond their container and dispatch references:
// each is constructed once and reused for every resolution of its kind.
type DefinitionResolver interface {
	// Resolve produces the definition's value. params are call-time
	// parameters matched against declared parameter names.
	Resolve(def definition.Definition, params map[string]any) (any, error)

	// IsResolvable reports, without side effects, whether Resolve can be
	// expected to succeed.
	IsResolvable(def definition.Definition, params map[string]any) bool
}

// ── Dispatcher ────────────────────────────────────────────────────────────────

// Dispatcher is the composite resolver: it selects the per-kind resolver for
// a definition and delegates. Selection always succeeds for a known kind;
// an unknown kind panics, since it can only come from a new Definition
// variant the dispatch was not taught about.
type Dispatcher struct {
	container Container
	read      VariableReader

	array     *ArrayResolver
	factory   *FactoryResolver
	object    *ObjectCreator
	decorator *DecoratorResolver
	env       *EnvResolver
	instance  *InstanceInjector
	alias     *aliasResolver
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithVariableReader replaces the default environment reading chain.
func WithVariableReader(read VariableReader) Option {
	return func(d *Dispatcher) { d.read = read }
}

// NewDispatcher builds the composite resolver and its per-kind resolvers.
func NewDispatcher(c Container, opts ...Option) *Dispatcher {
	d := &Dispatcher{container: c, read: DefaultReader()}
	for _, opt := range opts {
		opt(d)
	}

	params := NewParameterResolver(d, c)
	d.array = &ArrayResolver{dispatch: d}
	d.factory = &FactoryResolver{dispatch: d, container: c}
	d.object = &ObjectCreator{dispatch: d, params: params}
	d.decorator = &DecoratorResolver{dispatch: d, container: c}
	d.env = &EnvResolver{dispatch: d, read: d.read}
	d.instance = &InstanceInjector{creator: d.object}
	d.alias = &aliasResolver{container: c}
	return d
}

// Resolve dispatches the definition to its per-kind resolver.
func (d *Dispatcher) Resolve(def definition.Definition, params map[string]any) (any, error) {
	return d.resolverFor(def).Resolve(def, params)
}

// IsResolvable dispatches the resolvability check.
func (d *Dispatcher) IsResolvable(def definition.Definition, params map[string]any) bool {
	return d.resolverFor(def).IsResolvable(def, params)
}

func (d *Dispatcher) resolverFor(def definition.Definition) DefinitionResolver {
	switch def.Kind() {
	case definition.KindArray:
		return d.array
	case definition.KindFactory:
		return d.factory
	case definition.KindObject:
		return d.object
	case definition.KindDecorator:
		return d.decorator
	case definition.KindEnvironment:
		return d.env
	case definition.KindInstance:
		return d.instance
	case definition.KindAlias:
		return d.alias
	default:
		panic(fmt.Sprintf("resolver: no resolver for definition kind %v", def.Kind()))
	}
}

// ── Alias resolution ──────────────────────────────────────────────────────────

// aliasResolver redirects resolution to the aliased entry.
type aliasResolver struct {
	container Container
}

func (r *aliasResolver) Resolve(def definition.Definition, _ map[string]any) (any, error) {
	return r.container.Get(def.(*definition.AliasDefinition).Target)
}

func (r *aliasResolver) IsResolvable(def definition.Definition, _ map[string]any) bool {
	return r.container.Has(def.(*definition.AliasDefinition).Target)
}

// ── Call helpers ──────────────────────────────────────────────────────────────

var errType = reflect.TypeOf((*error)(nil)).Elem()

// callResults unpacks a reflected call's return values: nothing, a single
// value, or a value plus a trailing error.
func callResults(out []reflect.Value) (any, error) {
	if len(out) == 0 {
		return nil, nil
	}
	last := out[len(out)-1]
	if last.Type().Implements(errType) {
		if !last.IsNil() {
			return nil, last.Interface().(error)
		}
		out = out[:len(out)-1]
		if len(out) == 0 {
			return nil, nil
		}
	}
	return out[0].Interface(), nil
}
