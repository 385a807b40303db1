package resolver

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"

	"github.com/omegamvc/container/definition"
)

// ── Variable reading strategies ───────────────────────────────────────────────

// VariableReader reads one named variable from an ambient source. The
// boolean reports whether the variable was present at all, keeping an empty
// value distinct from an undefined one.
type VariableReader func(name string) (string, bool)

// ChainReader tries each reader in order and returns the first hit.
func ChainReader(readers ...VariableReader) VariableReader {
	return func(name string) (string, bool) {
		for _, read := range readers {
			if v, ok := read(name); ok {
				return v, true
			}
		}
		return "", false
	}
}

// OSReader reads from the process environment.
func OSReader() VariableReader {
	return os.LookupEnv
}

// MapReader serves variables from a fixed map — explicit overrides, or
// deterministic values in tests.
func MapReader(vars map[string]string) VariableReader {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

// DotenvReader serves variables from the given dotenv files, loaded once on
// first read via godotenv. Missing files are skipped: production
// deployments usually carry no .env. Earlier files win on duplicate keys.
func DotenvReader(files ...string) VariableReader {
	var once sync.Once
	var vars map[string]string
	return func(name string) (string, bool) {
		once.Do(func() {
			vars = make(map[string]string)
			for _, file := range files {
				loaded, err := godotenv.Read(file)
				if err != nil {
					continue
				}
				for k, v := range loaded {
					if _, ok := vars[k]; !ok {
						vars[k] = v
					}
				}
			}
		})
		v, ok := vars[name]
		return v, ok
	}
}

// DefaultReader is the default chain, checking three ambient sources in
// order: the process environment, ".env.local", then ".env".
func DefaultReader() VariableReader {
	return ChainReader(OSReader(), DotenvReader(".env.local"), DotenvReader(".env"))
}

// ── Environment variable resolution ───────────────────────────────────────────

// EnvResolver resolves environment variable definitions through a pluggable
// variable-reading strategy.
type EnvResolver struct {
	dispatch *Dispatcher
	read     VariableReader
}

// Resolve implements DefinitionResolver. A present variable is returned
// verbatim; an absent required variable fails; an absent optional variable
// yields the default, resolved first if it is a nested definition.
func (r *EnvResolver) Resolve(def definition.Definition, params map[string]any) (any, error) {
	env := def.(*definition.EnvDefinition)

	if v, ok := r.read(env.Variable); ok {
		return v, nil
	}
	if !env.Optional {
		return nil, &definition.InvalidDefinitionError{
			Entry:   env.Name(),
			Message: fmt.Sprintf("container: the environment variable %q has not been defined", env.Variable),
		}
	}
	if nested, ok := env.Default.(definition.Definition); ok {
		return r.dispatch.Resolve(nested, params)
	}
	return env.Default, nil
}

// IsResolvable implements DefinitionResolver. Whether the variable is set
// is only known at resolution time, so environment definitions always claim
// resolvability.
func (r *EnvResolver) IsResolvable(definition.Definition, map[string]any) bool {
	return true
}
