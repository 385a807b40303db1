package definition

import "reflect"

// ObjectDefinition describes the construction of a struct instance: the
// target type, an optional constructor function, constructor parameter
// bindings, property injections, method injections, and a laziness flag.
//
// When Constructor is nil the target struct is allocated zero-valued and
// populated through its injections; when it is set, the instance is whatever
// the constructor returns (the target type may then be left nil and is
// derived from the constructor's first result).
type ObjectDefinition struct {
	named

	// Type is the target struct type. Nil means the target was never
	// provided; resolution fails with a descriptive error.
	Type reflect.Type

	// Constructor is an optional func producing the instance. It may
	// return (T) or (T, error).
	Constructor any

	// ConstructorParams binds the constructor's parameters.
	ConstructorParams []Param

	// Properties are applied to the constructed instance in order.
	Properties []PropertyInjection

	// Methods are invoked on the constructed instance in order, after
	// properties.
	Methods []MethodInjection

	// Lazy defers construction behind a thunk forced on first use.
	Lazy bool
}

// NewObject builds an object definition targeting the struct that v is (or
// points to). Pass a zero value or a nil typed pointer:
//
//	definition.NewObject(&UserService{})
//	definition.NewObject((*UserService)(nil))
func NewObject(v any) *ObjectDefinition {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return &ObjectDefinition{Type: t}
}

// NewObjectOf builds an object definition for an already-reflected type.
func NewObjectOf(t reflect.Type) *ObjectDefinition {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return &ObjectDefinition{Type: t}
}

// Kind implements Definition.
func (d *ObjectDefinition) Kind() Kind { return KindObject }

// Instantiable reports whether the target can actually be constructed
// without a constructor function: the type must exist and be a struct.
// Interface targets must be bound to a concrete entry instead.
func (d *ObjectDefinition) Instantiable() bool {
	return d.Type != nil && d.Type.Kind() == reflect.Struct
}
