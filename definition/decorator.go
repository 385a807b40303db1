package definition

// DecoratorDefinition wraps the value produced by another definition.
//
// The callable receives the decorated value and a container handle and
// returns the replacement value. Decorated is the definition being wrapped;
// the container fills it in when a decorator is registered over an existing
// entry, and resolution fails if it is still nil.
type DecoratorDefinition struct {
	named

	Callable  any
	Decorated Definition
}

// NewDecorator builds a decorator over an existing definition. Pass a nil
// decorated definition when registering through the container, which wires
// the previous entry in.
func NewDecorator(callable any, decorated Definition) *DecoratorDefinition {
	return &DecoratorDefinition{Callable: callable, Decorated: decorated}
}

// Kind implements Definition.
func (d *DecoratorDefinition) Kind() Kind { return KindDecorator }
