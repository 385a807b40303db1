package resolver

import (
	"fmt"
	"reflect"
	"sync"
)

// Lazy defers construction of an entry until first use. It replaces the
// generated proxy classes of runtime-reflection containers with an explicit
// thunk the caller forces through Get; the build runs once and the result
// (or error) is memoized.
type Lazy struct {
	once  sync.Once
	build func() (any, error)
	value any
	err   error
}

// NewLazy wraps a build thunk.
func NewLazy(build func() (any, error)) *Lazy {
	return &Lazy{build: build}
}

// Get forces the thunk and returns the memoized result on every subsequent
// call.
func (l *Lazy) Get() (any, error) {
	l.once.Do(func() {
		l.value, l.err = l.build()
		l.build = nil
	})
	return l.value, l.err
}

// Force is the typed counterpart of Get.
func Force[T any](l *Lazy) (T, error) {
	var zero T
	v, err := l.Get()
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, &typeMismatchError{want: reflect.TypeOf((*T)(nil)).Elem().String(), got: v}
	}
	return typed, nil
}

// typeMismatchError reports a lazy value forced as the wrong type.
type typeMismatchError struct {
	want string
	got  any
}

func (e *typeMismatchError) Error() string {
	return fmt.Sprintf("resolver: lazy value of type %T cannot be forced as %s", e.got, e.want)
}
