package definition

// Param supplies one value for a reflected constructor, factory or method
// parameter. Go reflection exposes neither parameter names nor default
// values, so both are declared on the definition instead:
//
//   - Name lets call-time parameters (Container.Make) override this slot
//     by name.
//   - Value is the bound value; it may itself be a nested Definition, which
//     is resolved before the call.
//   - Default is substituted when no value is available from any source, or
//     when Value is a nested Definition that reports itself unresolvable.
//     A parameter with a default is optional.
type Param struct {
	Name       string
	Value      any
	HasValue   bool
	Default    any
	HasDefault bool
}

// Value binds a positional parameter value.
func Value(v any) Param {
	return Param{Value: v, HasValue: true}
}

// Named binds a parameter value under a name that call-time parameters can
// override.
func Named(name string, v any) Param {
	return Param{Name: name, Value: v, HasValue: true}
}

// Skip leaves a parameter slot unbound so later sources (autowiring, the
// declared default) fill it.
func Skip() Param {
	return Param{}
}

// WithDefault marks the parameter optional with the given fallback.
func (p Param) WithDefault(def any) Param {
	p.Default = def
	p.HasDefault = true
	return p
}

// WithName sets the call-time override name.
func (p Param) WithName(name string) Param {
	p.Name = name
	return p
}

// ── Injection specs ───────────────────────────────────────────────────────────

// PropertyInjection assigns a value into an exported struct field after
// construction. The value may be a nested Definition. Unexported fields are
// rejected at injection time: injection points must be part of the type's
// public surface.
type PropertyInjection struct {
	Property string
	Value    any
}

// MethodInjection invokes a method on the constructed instance, resolving
// its parameter list the same way as the constructor's.
type MethodInjection struct {
	Method string
	Params []Param
}
