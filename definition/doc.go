// Package definition holds the data model of the container's resolution
// pipeline: one definition type per way of producing an entry (array,
// factory, object, decorator, environment variable, instance, alias),
// parameter and injection specs, and the error taxonomy.
//
// Definitions are pure data with no behavior beyond accessors. The resolver
// package turns them into runtime values; the container package registers
// them and caches the results. The Kind set is closed — the resolver
// dispatch matches it exhaustively, so adding a kind means touching the
// dispatch too.
//
// Nested definitions are legal anywhere a plain value is: array elements,
// factory parameters, property values, method parameters, environment
// defaults. Every nested definition is resolved before being substituted
// into the parent structure; plain values pass through unchanged.
package definition
