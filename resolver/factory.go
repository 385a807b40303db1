package resolver

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/omegamvc/container/definition"
)

// FactoryResolver resolves a factory definition by invoking its callable
// with a fully-built argument list: declared extra parameters (nested
// definitions resolved first), call-time parameters, and the container or
// the definition itself for parameters that accept them.
type FactoryResolver struct {
	dispatch  *Dispatcher
	container Container

	once   sync.Once
	params *ParameterResolver
}

// pipeline lazily constructs the internal parameter-resolution pipeline on
// first use and reuses it for every subsequent factory invocation.
func (r *FactoryResolver) pipeline() *ParameterResolver {
	r.once.Do(func() {
		r.params = NewParameterResolver(r.dispatch, r.container)
	})
	return r.params
}

// Resolve implements DefinitionResolver.
func (r *FactoryResolver) Resolve(def definition.Definition, params map[string]any) (any, error) {
	fd := def.(*definition.FactoryDefinition)

	fn, err := r.callable(fd)
	if err != nil {
		return nil, err
	}

	where := fmt.Sprintf("factory of entry %q", fd.Name())
	args, err := r.pipeline().Resolve(fn.Type(), where, fd.Parameters, params, fd, fd.Name())
	if err != nil {
		return nil, &definition.InvalidDefinitionError{
			Entry:   fd.Name(),
			Message: fmt.Sprintf("container: entry %q cannot be resolved: the factory parameters could not be built", fd.Name()),
			Err:     err,
		}
	}
	return callResults(fn.Call(args))
}

// IsResolvable implements DefinitionResolver: the callable must be a func,
// or a string naming an existing entry.
func (r *FactoryResolver) IsResolvable(def definition.Definition, _ map[string]any) bool {
	fd := def.(*definition.FactoryDefinition)
	switch c := fd.Callable.(type) {
	case nil:
		return false
	case string:
		return r.container.Has(c)
	default:
		return reflect.ValueOf(c).Kind() == reflect.Func
	}
}

// callable materializes the definition's callable. A string callable names
// another container entry that must resolve to a func.
func (r *FactoryResolver) callable(fd *definition.FactoryDefinition) (reflect.Value, error) {
	switch c := fd.Callable.(type) {
	case nil:
		return reflect.Value{}, &definition.InvalidDefinitionError{
			Entry:   fd.Name(),
			Message: fmt.Sprintf("container: entry %q cannot be resolved: factory is nil", fd.Name()),
		}
	case string:
		if !r.container.Has(c) {
			return reflect.Value{}, &definition.InvalidDefinitionError{
				Entry: fd.Name(),
				Message: fmt.Sprintf("container: entry %q cannot be resolved: factory %q is neither a callable nor a valid container entry",
					fd.Name(), c),
			}
		}
		v, err := r.container.Get(c)
		if err != nil {
			return reflect.Value{}, &definition.InvalidDefinitionError{
				Entry:   fd.Name(),
				Message: fmt.Sprintf("container: entry %q cannot be resolved: factory %q failed to resolve", fd.Name(), c),
				Err:     err,
			}
		}
		fn := reflect.ValueOf(v)
		if fn.Kind() != reflect.Func {
			return reflect.Value{}, &definition.InvalidDefinitionError{
				Entry: fd.Name(),
				Message: fmt.Sprintf("container: entry %q cannot be resolved: factory %q resolved to a value of type %T, not a func — register it as a factory or object definition instead",
					fd.Name(), c, v),
			}
		}
		return fn, nil
	default:
		fn := reflect.ValueOf(c)
		if fn.Kind() != reflect.Func {
			return reflect.Value{}, &definition.InvalidDefinitionError{
				Entry: fd.Name(),
				Message: fmt.Sprintf("container: entry %q cannot be resolved: factory of type %T is not callable",
					fd.Name(), c),
			}
		}
		return fn, nil
	}
}
