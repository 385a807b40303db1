package definition

// EnvDefinition reads an external variable by name.
//
// A present variable resolves to its string value verbatim, even when empty.
// An absent variable fails resolution unless Optional is set, in which case
// Default is returned — resolved first if it is itself a nested Definition.
type EnvDefinition struct {
	named

	Variable string
	Optional bool
	Default  any
}

// NewEnv builds a required environment variable definition.
func NewEnv(variable string) *EnvDefinition {
	return &EnvDefinition{Variable: variable}
}

// NewEnvDefault builds an optional environment variable definition with a
// fallback value.
func NewEnvDefault(variable string, def any) *EnvDefinition {
	return &EnvDefinition{Variable: variable, Optional: true, Default: def}
}

// Kind implements Definition.
func (d *EnvDefinition) Kind() Kind { return KindEnvironment }
