package resolver

import (
	"fmt"
	"reflect"

	"github.com/omegamvc/container/definition"
)

// DecoratorResolver resolves the decorated definition first, then invokes
// the decorator callable with the decorated value and a container handle,
// returning the callable's result.
type DecoratorResolver struct {
	dispatch  *Dispatcher
	container Container
}

// Resolve implements DefinitionResolver.
func (r *DecoratorResolver) Resolve(def definition.Definition, params map[string]any) (any, error) {
	dec := def.(*definition.DecoratorDefinition)

	if dec.Decorated == nil {
		if dec.Name() == "" {
			return nil, &definition.InvalidDefinitionError{
				Message: "container: decorators cannot be nested in another definition",
			}
		}
		return nil, &definition.InvalidDefinitionError{
			Entry:   dec.Name(),
			Message: fmt.Sprintf("container: entry %q decorates nothing: no previous definition with the same name was found", dec.Name()),
		}
	}

	fn := reflect.ValueOf(dec.Callable)
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return nil, &definition.InvalidDefinitionError{
			Entry:   dec.Name(),
			Message: fmt.Sprintf("container: the decorator of entry %q is not callable", dec.Name()),
		}
	}

	decorated, err := r.dispatch.Resolve(dec.Decorated, params)
	if err != nil {
		return nil, err
	}

	// The callable takes the decorated value, optionally followed by a
	// container handle.
	ft := fn.Type()
	if ft.NumIn() > 2 {
		return nil, &definition.InvalidDefinitionError{
			Entry: dec.Name(),
			Message: fmt.Sprintf("container: the decorator of entry %q must accept the decorated value and optionally a container handle, got %d parameters",
				dec.Name(), ft.NumIn()),
		}
	}

	args := make([]reflect.Value, 0, 2)
	if ft.NumIn() >= 1 {
		arg, err := convert(decorated, ft.In(0), fmt.Sprintf("decorator of entry %q", dec.Name()), 0, dec.Name())
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if ft.NumIn() == 2 {
		cv := reflect.ValueOf(r.container)
		if !cv.Type().AssignableTo(ft.In(1)) {
			return nil, &definition.InvalidDefinitionError{
				Entry: dec.Name(),
				Message: fmt.Sprintf("container: the decorator of entry %q wants a second parameter of type %s, which is not a container handle",
					dec.Name(), ft.In(1)),
			}
		}
		args = append(args, cv)
	}
	return callResults(fn.Call(args))
}

// IsResolvable implements DefinitionResolver.
func (r *DecoratorResolver) IsResolvable(def definition.Definition, _ map[string]any) bool {
	dec := def.(*definition.DecoratorDefinition)
	if dec.Decorated == nil || dec.Callable == nil {
		return false
	}
	return reflect.ValueOf(dec.Callable).Kind() == reflect.Func
}
