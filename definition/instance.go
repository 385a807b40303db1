package definition

// InstanceDefinition injects dependencies into an already-constructed
// object. Injections carries the property and method injections of an
// object definition; its constructor-related fields are ignored.
type InstanceDefinition struct {
	named

	Instance   any
	Injections *ObjectDefinition
}

// NewInstance builds an instance definition around an existing object.
func NewInstance(instance any, injections *ObjectDefinition) *InstanceDefinition {
	return &InstanceDefinition{Instance: instance, Injections: injections}
}

// Kind implements Definition.
func (d *InstanceDefinition) Kind() Kind { return KindInstance }
