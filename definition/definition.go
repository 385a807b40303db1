package definition

import "reflect"

// ── Definition kinds ──────────────────────────────────────────────────────────

// Kind discriminates the definition variants the resolver dispatch
// understands. The set is closed: the dispatcher switches over it
// exhaustively, and an unknown kind is a programming error, not a
// recoverable runtime condition.
type Kind int

const (
	// KindArray is a mapping whose values may contain nested definitions.
	KindArray Kind = iota
	// KindFactory produces a value by invoking a callable.
	KindFactory
	// KindObject constructs and injects a struct instance.
	KindObject
	// KindDecorator wraps another definition's resolved value.
	KindDecorator
	// KindEnvironment reads an external variable.
	KindEnvironment
	// KindInstance injects dependencies into an existing object.
	KindInstance
	// KindAlias redirects resolution to another entry.
	KindAlias
)

// String returns the kind name as used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindArray:
		return "array"
	case KindFactory:
		return "factory"
	case KindObject:
		return "object"
	case KindDecorator:
		return "decorator"
	case KindEnvironment:
		return "environment"
	case KindInstance:
		return "instance"
	case KindAlias:
		return "alias"
	}
	return "unknown"
}

// ── Definition ────────────────────────────────────────────────────────────────

// Definition describes how to produce a container entry. It is pure data:
// all behavior lives in the resolver package, which selects a resolver by
// Kind and recurses into nested definitions through the same dispatch.
//
// Definitions are created while the application registers services (the
// provider bind/boot phase) and live for the container's lifetime.
type Definition interface {
	// Name returns the entry name this definition is registered under.
	// Anonymous definitions (nested inside another definition) have an
	// empty name.
	Name() string

	// SetName attaches the entry name. The container calls this when the
	// definition is registered under a key.
	SetName(name string)

	// Kind reports which variant this definition is.
	Kind() Kind
}

// named provides the Name/SetName half of Definition for embedding.
type named struct {
	name string
}

func (n *named) Name() string        { return n.name }
func (n *named) SetName(name string) { n.name = name }

// ── Type keys ─────────────────────────────────────────────────────────────────

// TypeKey returns the package-qualified type name of v, useful as a stable
// entry key when binding interfaces or structs for autowiring.
//
//	key := definition.TypeKey((*UserRepository)(nil)) // "app.UserRepository"
func TypeKey(v any) string {
	return TypeKeyOf(reflect.TypeOf(v))
}

// TypeKeyOf is TypeKey for an already-reflected type. It returns "" for
// unnamed types (func, slice, unnamed struct), which are never autowired.
func TypeKeyOf(t reflect.Type) string {
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return ""
	}
	return t.PkgPath() + "." + t.Name()
}
