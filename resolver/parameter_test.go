package resolver_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omegamvc/container/definition"
)

type clock interface {
	Now() int64
}

type frozenClock struct{ at int64 }

func (c *frozenClock) Now() int64 { return c.at }

func TestParameters_CallTimeNameBeatsDeclaredValue(t *testing.T) {
	t.Parallel()

	f := newFake()
	def := definition.NewFactory(
		func(level string, suffix string) string { return level + suffix },
		definition.Named("level", "info"),
		definition.Value("!"),
	)

	got, err := f.dispatch.Resolve(def, map[string]any{"level": "debug"})
	require.NoError(t, err)
	assert.Equal(t, "debug!", got)
}

func TestParameters_AutowiredByTypeKey(t *testing.T) {
	t.Parallel()

	f := newFake()
	f.set(definition.TypeKey((*clock)(nil)), &frozenClock{at: 42})
	def := definition.NewFactory(func(c clock) int64 { return c.Now() })

	got, err := f.dispatch.Resolve(def, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)
}

func TestParameters_AutowiredEntryMayBeADefinition(t *testing.T) {
	t.Parallel()

	f := newFake()
	f.set(definition.TypeKey((*clock)(nil)), definition.NewFactory(func() clock {
		return &frozenClock{at: 7}
	}))
	def := definition.NewFactory(func(c clock) int64 { return c.Now() })

	got, err := f.dispatch.Resolve(def, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)
}

// An optional parameter bound to a definition that reports itself
// unresolvable falls back to the declared default instead of failing.
func TestParameters_OptionalUnresolvableDefinitionFallsBack(t *testing.T) {
	t.Parallel()

	f := newFake()
	unresolvable := &definition.ObjectDefinition{} // no target type
	def := definition.NewFactory(
		func(dsn string) string { return dsn },
		definition.Param{Value: unresolvable, HasValue: true, Default: "sqlite://memory", HasDefault: true},
	)

	got, err := f.dispatch.Resolve(def, nil)
	require.NoError(t, err)
	assert.Equal(t, "sqlite://memory", got)
}

// The fallback only consults IsResolvable ahead of time: a definition that
// claims resolvability but fails during resolution surfaces its error even
// in an optional slot.
func TestParameters_OptionalFailingDefinitionStillErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("flaky dependency")
	f := newFake()
	failing := definition.NewFactory(func() (string, error) { return "", boom })
	def := definition.NewFactory(
		func(dsn string) string { return dsn },
		definition.Param{Value: failing, HasValue: true, Default: "unused", HasDefault: true},
	)

	_, err := f.dispatch.Resolve(def, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

// A required slot resolves its definition normally, errors and all.
func TestParameters_RequiredDefinitionResolved(t *testing.T) {
	t.Parallel()

	f := newFake()
	def := definition.NewFactory(
		func(n int) int { return n * 2 },
		definition.Value(definition.NewFactory(func() int { return 21 })),
	)

	got, err := f.dispatch.Resolve(def, nil)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestParameters_DefaultUsedWhenNothingSupplied(t *testing.T) {
	t.Parallel()

	f := newFake()
	def := definition.NewFactory(
		func(retries int) int { return retries },
		definition.Skip().WithDefault(5),
	)

	got, err := f.dispatch.Resolve(def, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestParameters_VariadicTailIsOptional(t *testing.T) {
	t.Parallel()

	f := newFake()
	def := definition.NewFactory(func(prefix string, rest ...string) int {
		return len(rest)
	}, definition.Value("p"))

	got, err := f.dispatch.Resolve(def, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestParameters_ExtraDeclaredValuesFeedVariadicTail(t *testing.T) {
	t.Parallel()

	f := newFake()
	def := definition.NewFactory(
		func(prefix string, rest ...string) string {
			out := prefix
			for _, r := range rest {
				out += "," + r
			}
			return out
		},
		definition.Value("a"),
		definition.Value("b"),
		definition.Value("c"),
	)

	got, err := f.dispatch.Resolve(def, nil)
	require.NoError(t, err)
	assert.Equal(t, "a,b,c", got)
}

func TestParameters_NilBecomesZeroValue(t *testing.T) {
	t.Parallel()

	f := newFake()
	def := definition.NewFactory(
		func(c clock) bool { return c == nil },
		definition.Value(nil),
	)

	got, err := f.dispatch.Resolve(def, nil)
	require.NoError(t, err)
	assert.Equal(t, true, got)
}

func TestParameters_TypeMismatchNamesParameter(t *testing.T) {
	t.Parallel()

	f := newFake()
	def := definition.NewFactory(
		func(retries int) int { return retries },
		definition.Value([]string{"not", "an", "int"}),
	)
	def.SetName("client")

	_, err := f.dispatch.Resolve(def, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parameter 0")
	assert.Contains(t, err.Error(), "cannot use value")
}

func TestParameters_NumericToStringConversionRejected(t *testing.T) {
	t.Parallel()

	// Go would turn 65 into "A"; that is never what a definition means.
	f := newFake()
	def := definition.NewFactory(
		func(name string) string { return name },
		definition.Value(65),
	)

	_, err := f.dispatch.Resolve(def, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot use value")
}

func TestParameters_ByteSliceToStringConverted(t *testing.T) {
	t.Parallel()

	f := newFake()
	def := definition.NewFactory(
		func(body string) string { return body },
		definition.Value([]byte("payload")),
	)

	got, err := f.dispatch.Resolve(def, nil)
	require.NoError(t, err)
	assert.Equal(t, "payload", got)
}

func TestParameters_EmptyInterfaceNeverAmbient(t *testing.T) {
	t.Parallel()

	f := newFake()
	def := definition.NewFactory(func(v any) any { return v })
	def.SetName("sink")

	_, err := f.dispatch.Resolve(def, nil)
	require.Error(t, err, "any parameters must be bound explicitly")
	assert.Contains(t, err.Error(), "no value defined or guessable")
}
