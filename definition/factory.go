package definition

// FactoryDefinition produces an entry by invoking a callable.
//
// Callable is either a Go func, or a string naming another container entry
// that must itself resolve to a func. Parameters bind the callable's
// parameters; the resolver additionally injects the container and the
// requested definition into parameters whose types accept them.
type FactoryDefinition struct {
	named

	Callable   any
	Parameters []Param
}

// NewFactory builds a factory definition around a callable.
func NewFactory(callable any, params ...Param) *FactoryDefinition {
	return &FactoryDefinition{Callable: callable, Parameters: params}
}

// Kind implements Definition.
func (d *FactoryDefinition) Kind() Kind { return KindFactory }
