package container

import (
	"github.com/omegamvc/container/definition"
)

// Fluent builders for the definition kinds, in the spirit of the PHP
// helpers (create, factory, env, get, decorate). Builders can be passed to
// Container.Set directly, or unwrapped with Definition().

// ── Object builder ────────────────────────────────────────────────────────────

// ObjectBuilder fluently assembles an object definition.
//
//	c.Set("mailer", container.Create(&Mailer{}).
//	    Property("From", "noreply@example.com").
//	    Method("Connect", definition.Value(cfg)))
type ObjectBuilder struct {
	def *definition.ObjectDefinition
}

// Create starts an object definition targeting the struct that v is (or
// points to).
func Create(v any) *ObjectBuilder {
	return &ObjectBuilder{def: definition.NewObject(v)}
}

// Constructor binds the parameters of the default construction path. Use
// ConstructedBy to supply a constructor function as well.
func (b *ObjectBuilder) Constructor(params ...definition.Param) *ObjectBuilder {
	b.def.ConstructorParams = params
	return b
}

// ConstructedBy delegates construction to fn, which may return (T) or
// (T, error).
func (b *ObjectBuilder) ConstructedBy(fn any, params ...definition.Param) *ObjectBuilder {
	b.def.Constructor = fn
	if len(params) > 0 {
		b.def.ConstructorParams = params
	}
	return b
}

// Property adds a property injection into an exported field. The value may
// be a nested definition (e.g. Ref("db")).
func (b *ObjectBuilder) Property(name string, value any) *ObjectBuilder {
	b.def.Properties = append(b.def.Properties, definition.PropertyInjection{
		Property: name,
		Value:    value,
	})
	return b
}

// Method adds a method injection, invoked after property injections.
func (b *ObjectBuilder) Method(name string, params ...definition.Param) *ObjectBuilder {
	b.def.Methods = append(b.def.Methods, definition.MethodInjection{
		Method: name,
		Params: params,
	})
	return b
}

// Lazy defers construction behind a *resolver.Lazy thunk forced on first
// use.
func (b *ObjectBuilder) Lazy() *ObjectBuilder {
	b.def.Lazy = true
	return b
}

// Definition returns the built definition.
func (b *ObjectBuilder) Definition() definition.Definition { return b.def }

// ── Instance builder ──────────────────────────────────────────────────────────

// InstanceBuilder assembles an instance definition: property and method
// injections applied to an already-constructed object.
type InstanceBuilder struct {
	def *definition.InstanceDefinition
}

// InjectInto starts an instance definition around an existing object.
func InjectInto(instance any) *InstanceBuilder {
	return &InstanceBuilder{
		def: definition.NewInstance(instance, &definition.ObjectDefinition{}),
	}
}

// Property adds a property injection.
func (b *InstanceBuilder) Property(name string, value any) *InstanceBuilder {
	b.def.Injections.Properties = append(b.def.Injections.Properties, definition.PropertyInjection{
		Property: name,
		Value:    value,
	})
	return b
}

// Method adds a method injection.
func (b *InstanceBuilder) Method(name string, params ...definition.Param) *InstanceBuilder {
	b.def.Injections.Methods = append(b.def.Injections.Methods, definition.MethodInjection{
		Method: name,
		Params: params,
	})
	return b
}

// Definition returns the built definition.
func (b *InstanceBuilder) Definition() definition.Definition { return b.def }

// ── Shorthand helpers ─────────────────────────────────────────────────────────

// FactoryOf builds a factory definition around a callable with optional
// declared parameters.
func FactoryOf(callable any, params ...definition.Param) *definition.FactoryDefinition {
	return definition.NewFactory(callable, params...)
}

// EnvVar builds a required environment variable definition.
func EnvVar(variable string) *definition.EnvDefinition {
	return definition.NewEnv(variable)
}

// EnvVarDefault builds an optional environment variable definition with a
// fallback, which may itself be a definition.
func EnvVarDefault(variable string, def any) *definition.EnvDefinition {
	return definition.NewEnvDefault(variable, def)
}

// Ref builds an alias definition pointing at another entry — the nested
// counterpart of Container.Alias.
func Ref(target string) *definition.AliasDefinition {
	return definition.NewAlias(target)
}

// Decorate builds a decorator with no target; Container.Set wires in the
// entry previously registered under the same name. Resolving it anywhere
// else fails, since decorators cannot be nested.
func Decorate(callable any) *definition.DecoratorDefinition {
	return definition.NewDecorator(callable, nil)
}

// ArrayOf builds an array definition whose values may contain nested
// definitions at any depth.
func ArrayOf(values map[string]any) *definition.ArrayDefinition {
	return definition.NewArray(values)
}
