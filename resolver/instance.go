package resolver

import (
	"fmt"

	"github.com/omegamvc/container/definition"
)

// InstanceInjector applies an object definition's property and method
// injections to an already-constructed instance, instead of creating one.
type InstanceInjector struct {
	creator *ObjectCreator
}

// Resolve implements DefinitionResolver: it returns the instance with its
// injections applied.
func (r *InstanceInjector) Resolve(def definition.Definition, params map[string]any) (any, error) {
	inst := def.(*definition.InstanceDefinition)

	if inst.Instance == nil {
		return nil, &definition.InvalidDefinitionError{
			Entry:   inst.Name(),
			Message: fmt.Sprintf("container: entry %q cannot be resolved: no instance to inject into", inst.Name()),
		}
	}
	if inst.Injections == nil {
		return inst.Instance, nil
	}

	err := r.creator.inject(inst.Injections.Properties, inst.Injections.Methods, inst, inst.Instance, params)
	if err != nil {
		return nil, err
	}
	return inst.Instance, nil
}

// IsResolvable implements DefinitionResolver.
func (r *InstanceInjector) IsResolvable(def definition.Definition, _ map[string]any) bool {
	return def.(*definition.InstanceDefinition).Instance != nil
}
