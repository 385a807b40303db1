package resolver

import (
	"fmt"
	"reflect"

	"github.com/omegamvc/container/definition"
)

// ObjectCreator turns an object definition into a constructed,
// fully-injected instance:
//
//  1. lazy definitions return a *Lazy thunk that runs the same creation
//     logic on first force
//  2. the target is verified instantiable (or a constructor func is present)
//  3. constructor arguments are built by the parameter resolver and the
//     instance is created
//  4. property injections assign into exported fields, resolving nested
//     definitions
//  5. method injections resolve their parameter lists like the constructor
//     and are invoked on the new instance
//
// Missing-dependency failures during injection are wrapped with the owning
// entry's name for diagnostic context.
type ObjectCreator struct {
	dispatch *Dispatcher
	params   *ParameterResolver
}

// Resolve implements DefinitionResolver.
func (r *ObjectCreator) Resolve(def definition.Definition, params map[string]any) (any, error) {
	obj := def.(*definition.ObjectDefinition)
	if obj.Lazy {
		return NewLazy(func() (any, error) {
			return r.create(obj, params)
		}), nil
	}
	return r.create(obj, params)
}

// IsResolvable implements DefinitionResolver: the target must be
// instantiable, or construction must be delegated to a constructor func.
func (r *ObjectCreator) IsResolvable(def definition.Definition, _ map[string]any) bool {
	obj := def.(*definition.ObjectDefinition)
	return obj.Instantiable() || obj.Constructor != nil
}

func (r *ObjectCreator) create(obj *definition.ObjectDefinition, params map[string]any) (any, error) {
	instance, err := r.construct(obj, params)
	if err != nil {
		return nil, err
	}
	if err := r.inject(obj.Properties, obj.Methods, obj, instance, params); err != nil {
		return nil, err
	}
	return instance, nil
}

func (r *ObjectCreator) construct(obj *definition.ObjectDefinition, params map[string]any) (any, error) {
	if obj.Constructor != nil {
		fn := reflect.ValueOf(obj.Constructor)
		if fn.Kind() != reflect.Func {
			return nil, &definition.InvalidDefinitionError{
				Entry: obj.Name(),
				Message: fmt.Sprintf("container: entry %q cannot be resolved: the constructor of type %T is not callable",
					obj.Name(), obj.Constructor),
			}
		}
		where := fmt.Sprintf("constructor of entry %q", obj.Name())
		args, err := r.params.Resolve(fn.Type(), where, obj.ConstructorParams, params, obj, obj.Name())
		if err != nil {
			return nil, err
		}
		return callResults(fn.Call(args))
	}

	if !obj.Instantiable() {
		msg := fmt.Sprintf("container: entry %q cannot be resolved: the target type %s is not instantiable", obj.Name(), obj.Type)
		if obj.Type == nil {
			msg = fmt.Sprintf("container: entry %q cannot be resolved: the target type doesn't exist", obj.Name())
		}
		return nil, &definition.InvalidDefinitionError{Entry: obj.Name(), Message: msg}
	}
	return reflect.New(obj.Type).Interface(), nil
}

// inject applies property and method injections to instance. It is shared
// with the instance injector, which applies it to pre-built objects.
func (r *ObjectCreator) inject(
	properties []definition.PropertyInjection,
	methods []definition.MethodInjection,
	owner definition.Definition,
	instance any,
	params map[string]any,
) error {
	iv := reflect.ValueOf(instance)
	sv := iv
	for sv.Kind() == reflect.Ptr {
		sv = sv.Elem()
	}

	for _, prop := range properties {
		if err := r.injectProperty(sv, prop, owner); err != nil {
			return err
		}
	}

	for _, m := range methods {
		if err := r.injectMethod(iv, m, owner, params); err != nil {
			return err
		}
	}
	return nil
}

func (r *ObjectCreator) injectProperty(sv reflect.Value, prop definition.PropertyInjection, owner definition.Definition) error {
	context := fmt.Sprintf("error while injecting property %q of %s", prop.Property, sv.Type())

	if sv.Kind() != reflect.Struct {
		return &definition.DependencyError{
			Entry:   owner.Name(),
			Context: context,
			Err:     fmt.Errorf("target of type %s is not a struct", sv.Type()),
		}
	}
	field := sv.FieldByName(prop.Property)
	if !field.IsValid() {
		return &definition.DependencyError{
			Entry:   owner.Name(),
			Context: context,
			Err:     fmt.Errorf("no such field"),
		}
	}
	if !field.CanSet() {
		// Injection points must be exported; private state stays private.
		return &definition.DependencyError{
			Entry:   owner.Name(),
			Context: context,
			Err:     fmt.Errorf("field is unexported"),
		}
	}

	value := prop.Value
	if def, ok := value.(definition.Definition); ok {
		resolved, err := r.dispatch.Resolve(def, nil)
		if err != nil {
			return &definition.DependencyError{Entry: owner.Name(), Context: context, Err: err}
		}
		value = resolved
	}

	fv, err := convert(value, field.Type(), fmt.Sprintf("property %q", prop.Property), 0, owner.Name())
	if err != nil {
		return &definition.DependencyError{Entry: owner.Name(), Context: context, Err: err}
	}
	field.Set(fv)
	return nil
}

func (r *ObjectCreator) injectMethod(iv reflect.Value, m definition.MethodInjection, owner definition.Definition, params map[string]any) error {
	context := fmt.Sprintf("error while injecting method %q of %s", m.Method, iv.Type())

	fn := iv.MethodByName(m.Method)
	if !fn.IsValid() {
		return &definition.DependencyError{
			Entry:   owner.Name(),
			Context: context,
			Err:     fmt.Errorf("no such method"),
		}
	}

	where := fmt.Sprintf("method %s.%s", iv.Type(), m.Method)
	args, err := r.params.Resolve(fn.Type(), where, m.Params, params, owner, owner.Name())
	if err != nil {
		return &definition.DependencyError{Entry: owner.Name(), Context: context, Err: err}
	}
	if _, err := callResults(fn.Call(args)); err != nil {
		return &definition.DependencyError{Entry: owner.Name(), Context: context, Err: err}
	}
	return nil
}
