package resolver_test

import (
	"github.com/omegamvc/container/definition"
	"github.com/omegamvc/container/resolver"
)

// fake is a minimal container for exercising resolvers in isolation: a flat
// entry map whose definitions resolve through the dispatcher under test.
type fake struct {
	entries  map[string]any
	dispatch *resolver.Dispatcher
}

func newFake(opts ...resolver.Option) *fake {
	f := &fake{entries: make(map[string]any)}
	f.dispatch = resolver.NewDispatcher(f, opts...)
	return f
}

func (f *fake) set(name string, value any) {
	if def, ok := value.(definition.Definition); ok {
		def.SetName(name)
	}
	f.entries[name] = value
}

func (f *fake) Get(name string) (any, error) {
	v, ok := f.entries[name]
	if !ok {
		return nil, definition.NotFoundError{Entry: name}
	}
	if def, isDef := v.(definition.Definition); isDef {
		return f.dispatch.Resolve(def, nil)
	}
	return v, nil
}

func (f *fake) Has(name string) bool {
	_, ok := f.entries[name]
	return ok
}
