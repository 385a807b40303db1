package resolver

import (
	"fmt"
	"reflect"

	"github.com/omegamvc/container/definition"
)

// ParameterResolver builds the positional argument list for a reflected
// function — a constructor, factory callable or injected method — from the
// sources available to it. Per parameter, in priority order:
//
//  1. a call-time parameter matching the declared parameter name
//  2. the declared parameter value at the same positional index
//  3. the container itself, or the definition being resolved, when the
//     parameter type accepts one
//  4. a container entry registered under the parameter's type key
//     (autowiring)
//  5. the declared default value; the variadic tail is always optional
//
// A required parameter with no value from any source fails resolution with
// an error naming the parameter and the enclosing function.
type ParameterResolver struct {
	dispatch  *Dispatcher
	container Container
}

// NewParameterResolver builds a parameter resolver bound to the dispatch
// (for nested definitions) and the container (for autowiring).
func NewParameterResolver(dispatch *Dispatcher, container Container) *ParameterResolver {
	return &ParameterResolver{dispatch: dispatch, container: container}
}

// Resolve produces the argument list for fn.
//
// where names the function in diagnostics (e.g. `constructor of entry "db"`);
// requested is the definition being resolved, injectable into parameters
// that accept it; entry names the owning entry for error context.
func (p *ParameterResolver) Resolve(
	fn reflect.Type,
	where string,
	declared []definition.Param,
	params map[string]any,
	requested definition.Definition,
	entry string,
) ([]reflect.Value, error) {
	numIn := fn.NumIn()
	variadic := fn.IsVariadic()

	// Extra declared parameters feed the variadic tail.
	count := numIn
	if variadic && len(declared) > numIn {
		count = len(declared)
	}

	args := make([]reflect.Value, 0, count)
	for i := 0; i < count; i++ {
		pt := fn.In(min(i, numIn-1))
		tail := variadic && i >= numIn-1
		if tail {
			pt = fn.In(numIn - 1).Elem()
		}

		var spec definition.Param
		if i < len(declared) {
			spec = declared[i]
		}

		// (1) call-time parameter matched by name
		if spec.Name != "" {
			if v, ok := params[spec.Name]; ok {
				arg, err := p.argument(v, pt, spec, where, i, entry)
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				continue
			}
		}

		// (2) declared value at this index
		if spec.HasValue {
			arg, err := p.argument(spec.Value, pt, spec, where, i, entry)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			continue
		}

		// (3) the container or the requested definition
		if arg, ok := p.ambient(pt, requested); ok {
			args = append(args, arg)
			continue
		}

		// (4) autowiring by type key
		if key := definition.TypeKeyOf(pt); key != "" && p.container != nil && p.container.Has(key) {
			v, err := p.container.Get(key)
			if err != nil {
				return nil, err
			}
			arg, err := convert(v, pt, where, i, entry)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			continue
		}

		// (5) declared default, or nothing for the variadic tail
		if spec.HasDefault {
			arg, err := convert(spec.Default, pt, where, i, entry)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			continue
		}
		if tail {
			break
		}

		return nil, &definition.InvalidDefinitionError{
			Entry:   entry,
			Message: fmt.Sprintf("container: parameter %d of %s has no value defined or guessable", i, where),
		}
	}
	return args, nil
}

// argument converts one supplied value, resolving it first when it is a
// nested definition.
//
// Optional slots (those with a declared default) fall back to that default
// when the nested definition reports itself unresolvable ahead of time. A
// definition that claims resolvability but then fails during resolution
// still surfaces its error — the fallback never catches failures after the
// fact.
func (p *ParameterResolver) argument(
	v any,
	pt reflect.Type,
	spec definition.Param,
	where string,
	index int,
	entry string,
) (reflect.Value, error) {
	if def, ok := v.(definition.Definition); ok {
		if spec.HasDefault && !p.dispatch.IsResolvable(def, nil) {
			return convert(spec.Default, pt, where, index, entry)
		}
		resolved, err := p.dispatch.Resolve(def, nil)
		if err != nil {
			return reflect.Value{}, err
		}
		v = resolved
	}
	return convert(v, pt, where, index, entry)
}

// ambient injects the container or the requested definition into parameters
// whose types accept them. Empty interfaces never match: `any` parameters
// must be bound explicitly.
func (p *ParameterResolver) ambient(pt reflect.Type, requested definition.Definition) (reflect.Value, bool) {
	if pt.Kind() == reflect.Interface && pt.NumMethod() == 0 {
		return reflect.Value{}, false
	}
	if p.container != nil {
		if cv := reflect.ValueOf(p.container); cv.IsValid() && cv.Type().AssignableTo(pt) {
			return cv, true
		}
	}
	if requested != nil {
		if rv := reflect.ValueOf(requested); rv.IsValid() && rv.Type().AssignableTo(pt) {
			return rv, true
		}
	}
	return reflect.Value{}, false
}

// convert adapts a supplied value to the parameter type. Nil becomes the
// type's zero value; assignable values pass as-is; convertible values are
// converted, except integer-to-string which Go would interpret as a rune
// conversion ([]byte to string stays allowed).
func convert(v any, pt reflect.Type, where string, index int, entry string) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(pt), nil
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(pt) {
		return rv, nil
	}
	if rv.CanConvert(pt) && !(pt.Kind() == reflect.String && integerKind(rv.Kind())) {
		return rv.Convert(pt), nil
	}
	return reflect.Value{}, &definition.InvalidDefinitionError{
		Entry: entry,
		Message: fmt.Sprintf("container: cannot use value of type %T as parameter %d (%s) of %s",
			v, index, pt, where),
	}
}

// integerKind reports whether k converts to string as a code point rather
// than a formatted number.
func integerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}
