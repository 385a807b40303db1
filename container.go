package container

import (
	"fmt"
	"sync"

	"github.com/omegamvc/container/definition"
	"github.com/omegamvc/container/resolver"
)

// ── Binding types ─────────────────────────────────────────────────────────────

// Factory is a function that builds a concrete value from the container.
// It is the convenience form for Bind/Singleton; under the hood it becomes
// a factory definition.
type Factory func(c *Container) any

// builder is implemented by the fluent definition builders so they can be
// passed to Set directly.
type builder interface {
	Definition() definition.Definition
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container holds entries — definitions or realized values — and resolves
// them through the definition resolver dispatch.
//
// It supports:
//   - Set (definitions and plain values) / Bind / Singleton / Alias
//   - Get (cached) / Make (fresh, with call-time parameters)
//   - Tags (group multiple entries under one tag)
//   - Extend (decorate resolved entries)
//   - Rebound callbacks
//   - Resolved event callbacks
type Container struct {
	mu sync.RWMutex

	// name → definition.Definition or realized value
	entries map[string]any

	// name → resolved singleton instance
	resolved map[string]any

	// names resolved fresh on every Get (registered via Bind)
	transient map[string]bool

	// tag → []name
	tags map[string][]string

	// rebound callbacks: name → []func(any)
	reboundCallbacks map[string][]func(any)

	// resolved callbacks: []func(name, instance)
	afterResolving []func(string, any)

	dispatch *resolver.Dispatcher
}

// New creates an empty container. Options configure the resolver dispatch,
// e.g. resolver.WithVariableReader to change where environment variable
// definitions read from.
func New(opts ...resolver.Option) *Container {
	c := &Container{
		entries:          make(map[string]any),
		resolved:         make(map[string]any),
		transient:        make(map[string]bool),
		tags:             make(map[string][]string),
		reboundCallbacks: make(map[string][]func(any)),
	}
	c.dispatch = resolver.NewDispatcher(c, opts...)
	// The container is an entry of its own, so factories and autowired
	// constructors can ask for it by name.
	c.Set("container", c)
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Set registers an entry: a definition (named on registration), a fluent
// builder, or a plain pre-built value.
//
//	c.Set("config", cfg)                          // value
//	c.Set("db", container.Create(&DB{}).Definition()) // definition
//	c.Set("db", container.Create(&DB{}))          // builder, same thing
//
// Registering a decorator definition with no decorated target wraps the
// entry previously registered under the same name.
func (c *Container) Set(name string, value any) {
	if b, ok := value.(builder); ok {
		value = b.Definition()
	}

	c.mu.Lock()
	if dec, ok := value.(*definition.DecoratorDefinition); ok && dec.Decorated == nil {
		dec.Decorated = c.previousDefinition(name)
	}
	if def, ok := value.(definition.Definition); ok {
		def.SetName(name)
	}

	_, wasResolved := c.resolved[name]
	delete(c.resolved, name)
	c.entries[name] = value
	rebind := wasResolved && len(c.reboundCallbacks[name]) > 0
	c.mu.Unlock()

	// Rebinding a resolved entry rebuilds it for the rebound listeners.
	if rebind {
		if instance, err := c.Get(name); err == nil {
			c.fireRebound(name, instance)
		}
	}
}

// previousDefinition returns the current entry under name as a definition,
// wrapping plain values so they can be decorated too. Must hold mu.
func (c *Container) previousDefinition(name string) definition.Definition {
	prev, ok := c.entries[name]
	if !ok {
		return nil
	}
	if def, isDef := prev.(definition.Definition); isDef {
		return def
	}
	wrapped := definition.NewInstance(prev, nil)
	wrapped.SetName(name)
	return wrapped
}

// Bind registers a transient factory: a new value is produced on every Get.
//
//	c.Bind("request-id", func(c *container.Container) any { return newID() })
func (c *Container) Bind(name string, factory Factory) {
	c.mu.Lock()
	c.transient[name] = true
	c.mu.Unlock()
	c.Set(name, definition.NewFactory(factory))
}

// Singleton registers a factory whose result is cached after first
// resolution.
//
//	c.Singleton("db", func(c *container.Container) any {
//	    return db.Connect(container.MustResolve[*Config](c, "config"))
//	})
func (c *Container) Singleton(name string, factory Factory) {
	c.mu.Lock()
	delete(c.transient, name)
	c.mu.Unlock()
	c.Set(name, definition.NewFactory(factory))
}

// Alias registers an alternative name for an entry. Resolving the alias
// resolves the target.
func (c *Container) Alias(alias, target string) {
	if alias == target {
		panic(fmt.Sprintf("container: [%s] is aliased to itself", alias))
	}
	c.Set(alias, definition.NewAlias(target))
}

// Extend decorates an entry. Already-resolved singletons are re-wrapped
// immediately; unresolved entries get their definition wrapped so the
// decorator runs on first resolution.
//
//	c.Extend("logger", func(instance any, c *container.Container) any {
//	    return &TimestampLogger{Inner: instance.(*Logger)}
//	})
func (c *Container) Extend(name string, decorate func(instance any, c *Container) any) {
	c.mu.Lock()
	var decorated definition.Definition
	if instance, ok := c.resolved[name]; ok {
		wrapped := definition.NewInstance(instance, nil)
		wrapped.SetName(name)
		decorated = wrapped
	} else {
		decorated = c.previousDefinition(name)
	}
	if decorated == nil {
		c.mu.Unlock()
		panic(fmt.Sprintf("container: cannot extend unknown entry [%s]", name))
	}

	dec := definition.NewDecorator(decorate, decorated)
	dec.SetName(name)

	_, wasResolved := c.resolved[name]
	delete(c.resolved, name)
	c.entries[name] = dec
	c.mu.Unlock()

	if wasResolved {
		if instance, err := c.Get(name); err == nil {
			c.fireRebound(name, instance)
		}
	}
}

// ── Tags ──────────────────────────────────────────────────────────────────────

// Tag associates multiple entries under a named group.
func (c *Container) Tag(names []string, tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tags[tag] = append(c.tags[tag], names...)
}

// Tagged resolves all entries registered under a tag.
func (c *Container) Tagged(tag string) ([]any, error) {
	c.mu.RLock()
	names := c.tags[tag]
	c.mu.RUnlock()

	result := make([]any, 0, len(names))
	for _, name := range names {
		v, err := c.Get(name)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Get resolves an entry by name. Results are cached: subsequent calls
// return the same value, except for entries registered with Bind.
func (c *Container) Get(name string) (any, error) {
	c.mu.RLock()
	if instance, ok := c.resolved[name]; ok {
		c.mu.RUnlock()
		return instance, nil
	}
	entry, ok := c.entries[name]
	transient := c.transient[name]
	c.mu.RUnlock()

	if !ok {
		return nil, definition.NotFoundError{Entry: name}
	}

	def, isDef := entry.(definition.Definition)
	if !isDef {
		return entry, nil
	}

	instance, err := c.dispatch.Resolve(def, nil)
	if err != nil {
		return nil, err
	}

	if !transient {
		c.mu.Lock()
		c.resolved[name] = instance
		c.mu.Unlock()
	}
	c.fireAfterResolving(name, instance)
	return instance, nil
}

// Make resolves an entry fresh — never consulting or filling the singleton
// cache — with optional call-time parameters matched against the
// definition's declared parameter names.
func (c *Container) Make(name string, params map[string]any) (any, error) {
	c.mu.RLock()
	entry, ok := c.entries[name]
	c.mu.RUnlock()

	if !ok {
		return nil, definition.NotFoundError{Entry: name}
	}
	def, isDef := entry.(definition.Definition)
	if !isDef {
		return entry, nil
	}

	instance, err := c.dispatch.Resolve(def, params)
	if err != nil {
		return nil, err
	}
	c.fireAfterResolving(name, instance)
	return instance, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// Has reports whether an entry has been registered.
func (c *Container) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, hasEntry := c.entries[name]
	_, hasResolved := c.resolved[name]
	return hasEntry || hasResolved
}

// Resolved reports whether the entry has been resolved at least once.
func (c *Container) Resolved(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.resolved[name]
	return ok
}

// Forget removes all registrations for an entry (definition + instance).
func (c *Container) Forget(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, name)
	delete(c.resolved, name)
	delete(c.transient, name)
}

// Flush resets the entire container, keeping only its self-registration.
func (c *Container) Flush() {
	c.mu.Lock()
	c.entries = make(map[string]any)
	c.resolved = make(map[string]any)
	c.transient = make(map[string]bool)
	c.tags = make(map[string][]string)
	c.mu.Unlock()
	c.Set("container", c)
}

// Entries returns all registered entry names (for debugging).
func (c *Container) Entries() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.entries)+len(c.resolved))
	for k := range c.entries {
		out = append(out, k)
	}
	for k := range c.resolved {
		if _, already := c.entries[k]; !already {
			out = append(out, k)
		}
	}
	return out
}

// ── Callbacks ─────────────────────────────────────────────────────────────────

// Rebinding registers a callback invoked whenever the entry is re-bound
// after having been resolved.
func (c *Container) Rebinding(name string, cb func(any)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reboundCallbacks[name] = append(c.reboundCallbacks[name], cb)
}

// AfterResolving registers a callback fired after any entry is resolved.
func (c *Container) AfterResolving(cb func(name string, instance any)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.afterResolving = append(c.afterResolving, cb)
}

func (c *Container) fireRebound(name string, instance any) {
	c.mu.RLock()
	cbs := c.reboundCallbacks[name]
	c.mu.RUnlock()
	for _, cb := range cbs {
		cb(instance)
	}
}

func (c *Container) fireAfterResolving(name string, instance any) {
	c.mu.RLock()
	cbs := c.afterResolving
	c.mu.RUnlock()
	for _, cb := range cbs {
		cb(name, instance)
	}
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// Resolve is a generic helper that calls Get and type-asserts the result.
//
//	db, err := container.Resolve[*sql.DB](c, "db")
func Resolve[T any](c *Container, name string) (T, error) {
	var zero T
	instance, err := c.Get(name)
	if err != nil {
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("container: Resolve[%T]: entry %q resolved to %T", zero, name, instance)
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on failure.
func MustResolve[T any](c *Container, name string) T {
	typed, err := Resolve[T](c, name)
	if err != nil {
		panic(err)
	}
	return typed
}
