package definition

// ArrayDefinition is a mapping of keys to values where any value — at any
// nesting depth, through plain maps and slices — may itself be a Definition.
// Resolution replaces every nested definition with its resolved value and
// leaves all other values untouched.
type ArrayDefinition struct {
	named

	Values map[string]any
}

// NewArray builds an array definition over the given values. The map is
// used as-is; callers should not mutate it after registration.
func NewArray(values map[string]any) *ArrayDefinition {
	if values == nil {
		values = make(map[string]any)
	}
	return &ArrayDefinition{Values: values}
}

// Kind implements Definition.
func (d *ArrayDefinition) Kind() Kind { return KindArray }
