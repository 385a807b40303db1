package resolver_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omegamvc/container/definition"
	"github.com/omegamvc/container/resolver"
)

type store interface {
	Put(key string, value any)
}

type repository struct {
	DSN     string
	Retries int

	connected bool
	tuned     []string
}

func (r *repository) Connect(dsn string) error {
	if dsn == "" {
		return errors.New("empty dsn")
	}
	r.DSN = dsn
	r.connected = true
	return nil
}

func (r *repository) Tune(options ...string) {
	r.tuned = append(r.tuned, options...)
}

type service struct {
	x int
	y string
}

func newService(x int, y string) *service {
	return &service{x: x, y: y}
}

func TestObject_ZeroConstructionWithProperties(t *testing.T) {
	t.Parallel()

	f := newFake()
	def := definition.NewObject(&repository{})
	def.Properties = []definition.PropertyInjection{
		{Property: "DSN", Value: "postgres://localhost"},
		{Property: "Retries", Value: 3},
	}

	got, err := f.dispatch.Resolve(def, nil)
	require.NoError(t, err)

	repo, ok := got.(*repository)
	require.True(t, ok)
	assert.Equal(t, "postgres://localhost", repo.DSN)
	assert.Equal(t, 3, repo.Retries)
}

func TestObject_PropertyFromNestedDefinition(t *testing.T) {
	t.Parallel()

	f := newFake()
	f.set("dsn", "mysql://db")
	def := definition.NewObject(&repository{})
	def.Properties = []definition.PropertyInjection{
		{Property: "DSN", Value: definition.NewAlias("dsn")},
	}

	got, err := f.dispatch.Resolve(def, nil)
	require.NoError(t, err)
	assert.Equal(t, "mysql://db", got.(*repository).DSN)
}

func TestObject_ConstructorWithDefaultParameter(t *testing.T) {
	t.Parallel()

	// constructor (int, string) with a bound first parameter and a default
	// for the second: x=5, y="default"
	f := newFake()
	def := definition.NewObject(&service{})
	def.Constructor = newService
	def.ConstructorParams = []definition.Param{
		definition.Value(5),
		definition.Skip().WithDefault("default"),
	}

	got, err := f.dispatch.Resolve(def, nil)
	require.NoError(t, err)

	svc := got.(*service)
	assert.Equal(t, 5, svc.x)
	assert.Equal(t, "default", svc.y)
}

func TestObject_ConstructorMissingRequiredParameter(t *testing.T) {
	t.Parallel()

	f := newFake()
	def := definition.NewObject(&service{})
	def.Constructor = newService
	def.ConstructorParams = []definition.Param{definition.Value(5)}
	def.SetName("svc")

	_, err := f.dispatch.Resolve(def, nil)
	require.Error(t, err)

	var invalid *definition.InvalidDefinitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "svc", invalid.Entry)
	assert.Contains(t, err.Error(), "parameter 1")
	assert.Contains(t, err.Error(), `constructor of entry "svc"`)
	assert.Contains(t, err.Error(), "no value defined or guessable")
}

func TestObject_MissingTargetType(t *testing.T) {
	t.Parallel()

	f := newFake()
	def := &definition.ObjectDefinition{}
	def.SetName("ghost")

	_, err := f.dispatch.Resolve(def, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `entry "ghost"`)
	assert.Contains(t, err.Error(), "doesn't exist")
}

func TestObject_NonInstantiableTarget(t *testing.T) {
	t.Parallel()

	f := newFake()
	def := definition.NewObjectOf(reflect.TypeOf((*store)(nil)).Elem())
	def.SetName("store")

	_, err := f.dispatch.Resolve(def, nil)
	require.Error(t, err)

	var invalid *definition.InvalidDefinitionError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "not instantiable")
}

func TestObject_MethodInjection(t *testing.T) {
	t.Parallel()

	f := newFake()
	def := definition.NewObject(&repository{})
	def.Methods = []definition.MethodInjection{
		{Method: "Connect", Params: []definition.Param{definition.Value("postgres://injected")}},
		{Method: "Tune", Params: []definition.Param{definition.Value("fast"), definition.Value("safe")}},
	}

	got, err := f.dispatch.Resolve(def, nil)
	require.NoError(t, err)

	repo := got.(*repository)
	assert.True(t, repo.connected)
	assert.Equal(t, "postgres://injected", repo.DSN)
	assert.Equal(t, []string{"fast", "safe"}, repo.tuned)
}

func TestObject_MethodErrorWrappedWithEntryName(t *testing.T) {
	t.Parallel()

	f := newFake()
	def := definition.NewObject(&repository{})
	def.SetName("repo")
	def.Methods = []definition.MethodInjection{
		{Method: "Connect", Params: []definition.Param{definition.Value("")}},
	}

	_, err := f.dispatch.Resolve(def, nil)
	require.Error(t, err)

	var dep *definition.DependencyError
	require.ErrorAs(t, err, &dep)
	assert.Equal(t, "repo", dep.Entry)
	assert.Contains(t, err.Error(), `method "Connect"`)
	assert.Contains(t, err.Error(), "empty dsn")
}

func TestObject_UnknownPropertyRejected(t *testing.T) {
	t.Parallel()

	f := newFake()
	def := definition.NewObject(&repository{})
	def.SetName("repo")
	def.Properties = []definition.PropertyInjection{{Property: "Nope", Value: 1}}

	_, err := f.dispatch.Resolve(def, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `property "Nope"`)
	assert.Contains(t, err.Error(), "no such field")
}

func TestObject_UnexportedPropertyRejected(t *testing.T) {
	t.Parallel()

	f := newFake()
	def := definition.NewObject(&repository{})
	def.SetName("repo")
	def.Properties = []definition.PropertyInjection{{Property: "connected", Value: true}}

	_, err := f.dispatch.Resolve(def, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexported")
}

func TestObject_NeverReturnsPartialObjectOnFailure(t *testing.T) {
	t.Parallel()

	f := newFake()
	def := definition.NewObject(&repository{})
	def.Properties = []definition.PropertyInjection{
		{Property: "DSN", Value: "set-first"},
		{Property: "Nope", Value: 1},
	}

	got, err := f.dispatch.Resolve(def, nil)
	require.Error(t, err)
	assert.Nil(t, got)
}

func TestObject_LazyReturnsThunk(t *testing.T) {
	t.Parallel()

	built := 0
	f := newFake()
	def := definition.NewObject(&service{})
	def.Constructor = func() *service { built++; return &service{x: built} }
	def.Lazy = true

	got, err := f.dispatch.Resolve(def, nil)
	require.NoError(t, err)
	require.Zero(t, built, "construction must be deferred")

	lazy, ok := got.(*resolver.Lazy)
	require.True(t, ok, "lazy definitions resolve to a thunk, got %T", got)

	svc, err := resolver.Force[*service](lazy)
	require.NoError(t, err)
	assert.Equal(t, 1, svc.x)

	again, err := resolver.Force[*service](lazy)
	require.NoError(t, err)
	assert.Same(t, svc, again)
	assert.Equal(t, 1, built, "thunk runs once")
}

func TestObject_IsResolvable(t *testing.T) {
	t.Parallel()

	f := newFake()

	assert.True(t, f.dispatch.IsResolvable(definition.NewObject(&service{}), nil))
	assert.False(t, f.dispatch.IsResolvable(&definition.ObjectDefinition{}, nil))

	withCtor := &definition.ObjectDefinition{Constructor: func() *service { return nil }}
	assert.True(t, f.dispatch.IsResolvable(withCtor, nil))

	iface := definition.NewObjectOf(reflect.TypeOf((*store)(nil)).Elem())
	assert.False(t, f.dispatch.IsResolvable(iface, nil))
}

func ExampleForce() {
	lazy := resolver.NewLazy(func() (any, error) { return &service{x: 9}, nil })
	svc, _ := resolver.Force[*service](lazy)
	fmt.Println(svc.x)
	// Output: 9
}
