// Package resolver turns definitions into runtime values.
//
// The Dispatcher is the composite resolver: given any definition it selects
// the per-kind resolver and delegates. Per-kind resolvers recurse into
// nested definitions through the same dispatch, so object graphs are
// constructed bottom-up. All resolution is synchronous recursive calls;
// there is no cycle detection, and a definition cycle recurses until the
// stack is exhausted.
//
// The package depends on the container only through the small Container
// interface, which the root package satisfies.
package resolver
