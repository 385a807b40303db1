package definition

import "strconv"

// The error taxonomy of the resolution pipeline:
//
//   - NotFoundError: no entry exists for a requested name.
//   - InvalidDefinitionError: the definition itself cannot be honored
//     (missing type, non-callable factory or decorator, parameter without a
//     value, undefined required variable, decorator with no target).
//   - DependencyError: a lower-level failure occurred while injecting
//     dependencies, wrapping the original error with the entry and member
//     that was being injected.
//
// Resolvers enrich and rethrow only the errors they can contextualize;
// nothing is retried. Resolution failures are configuration errors surfaced
// immediately to the caller.

// NotFoundError is returned when no entry or definition exists for a name.
type NotFoundError struct {
	Entry string
}

// Error implements the error interface.
func (e NotFoundError) Error() string {
	// Example: container: no entry or definition found for "db"
	return "container: no entry or definition found for " + strconv.Quote(e.Entry)
}

// InvalidDefinitionError reports a definition that cannot be honored as
// registered. Message carries the full diagnostic text; Entry names the
// offending entry when one exists.
type InvalidDefinitionError struct {
	Entry   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvalidDefinitionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the wrapped cause, if any.
func (e *InvalidDefinitionError) Unwrap() error { return e.Err }

// DependencyError wraps a lower-level failure with the entry and member
// (property, method, key) that was being injected when it occurred.
type DependencyError struct {
	Entry   string
	Context string
	Err     error
}

// Error implements the error interface.
func (e *DependencyError) Error() string {
	// Example: container: error while resolving settings["db"]: ...
	msg := "container: " + e.Context
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the wrapped cause.
func (e *DependencyError) Unwrap() error { return e.Err }
