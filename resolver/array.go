package resolver

import (
	"fmt"
	"sort"

	"github.com/omegamvc/container/definition"
)

// ArrayResolver resolves an array definition by walking its values
// recursively — through nested maps and slices — and replacing every nested
// definition with its resolved value. Non-definition leaves pass through
// unchanged, so resolving is idempotent for them.
type ArrayResolver struct {
	dispatch *Dispatcher
}

// Resolve implements DefinitionResolver. Keys are visited in sorted order
// so nested resolution side effects are deterministic.
func (r *ArrayResolver) Resolve(def definition.Definition, params map[string]any) (any, error) {
	arr := def.(*definition.ArrayDefinition)

	keys := make([]string, 0, len(arr.Values))
	for k := range arr.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]any, len(arr.Values))
	for _, k := range keys {
		v, err := r.value(arr.Values[k], params)
		if err != nil {
			name := arr.Name()
			if name == "" {
				name = "array"
			}
			return nil, &definition.DependencyError{
				Entry:   arr.Name(),
				Context: fmt.Sprintf("error while resolving %s[%q]", name, k),
				Err:     err,
			}
		}
		out[k] = v
	}
	return out, nil
}

// IsResolvable implements DefinitionResolver. Arrays are always resolvable;
// nested failures surface during Resolve.
func (r *ArrayResolver) IsResolvable(definition.Definition, map[string]any) bool {
	return true
}

func (r *ArrayResolver) value(v any, params map[string]any) (any, error) {
	switch tv := v.(type) {
	case definition.Definition:
		return r.dispatch.Resolve(tv, params)
	case map[string]any:
		out := make(map[string]any, len(tv))
		for k, nested := range tv {
			rv, err := r.value(nested, params)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			out[k] = rv
		}
		return out, nil
	case []any:
		out := make([]any, len(tv))
		for i, nested := range tv {
			rv, err := r.value(nested, params)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = rv
		}
		return out, nil
	default:
		return v, nil
	}
}
