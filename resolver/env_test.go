package resolver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omegamvc/container/definition"
	"github.com/omegamvc/container/resolver"
)

func TestEnv_PresentVariableReturnedVerbatim(t *testing.T) {
	t.Parallel()

	f := newFake(resolver.WithVariableReader(resolver.MapReader(map[string]string{
		"APP_ENV": "production",
	})))

	got, err := f.dispatch.Resolve(definition.NewEnv("APP_ENV"), nil)
	require.NoError(t, err)
	assert.Equal(t, "production", got)
}

func TestEnv_EmptyValueIsStillPresent(t *testing.T) {
	t.Parallel()

	f := newFake(resolver.WithVariableReader(resolver.MapReader(map[string]string{
		"APP_KEY": "",
	})))

	got, err := f.dispatch.Resolve(definition.NewEnvDefault("APP_KEY", "fallback"), nil)
	require.NoError(t, err)
	assert.Equal(t, "", got, "a set-but-empty variable must not trigger the default")
}

func TestEnv_MissingRequiredVariableFails(t *testing.T) {
	t.Parallel()

	f := newFake(resolver.WithVariableReader(resolver.MapReader(nil)))
	def := definition.NewEnv("DATABASE_URL")
	def.SetName("db.dsn")

	_, err := f.dispatch.Resolve(def, nil)
	require.Error(t, err)

	var invalid *definition.InvalidDefinitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "db.dsn", invalid.Entry)
	assert.Contains(t, err.Error(), `"DATABASE_URL"`)
	assert.Contains(t, err.Error(), "has not been defined")
}

func TestEnv_MissingOptionalVariableYieldsDefault(t *testing.T) {
	t.Parallel()

	f := newFake(resolver.WithVariableReader(resolver.MapReader(nil)))

	got, err := f.dispatch.Resolve(definition.NewEnvDefault("APP_DEBUG", "fallback"), nil)
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)
}

func TestEnv_DefinitionDefaultResolvedFirst(t *testing.T) {
	t.Parallel()

	f := newFake(resolver.WithVariableReader(resolver.MapReader(nil)))
	f.set("default.dsn", "sqlite://memory")

	def := definition.NewEnvDefault("DATABASE_URL", definition.NewAlias("default.dsn"))
	got, err := f.dispatch.Resolve(def, nil)
	require.NoError(t, err)
	assert.Equal(t, "sqlite://memory", got)
}

func TestEnv_AlwaysClaimsResolvable(t *testing.T) {
	t.Parallel()

	f := newFake(resolver.WithVariableReader(resolver.MapReader(nil)))
	assert.True(t, f.dispatch.IsResolvable(definition.NewEnv("ANYTHING"), nil))
}

// ── Variable readers ──────────────────────────────────────────────────────────

func TestChainReader_FirstHitWins(t *testing.T) {
	t.Parallel()

	read := resolver.ChainReader(
		resolver.MapReader(map[string]string{"A": "first"}),
		resolver.MapReader(map[string]string{"A": "second", "B": "only"}),
	)

	v, ok := read("A")
	require.True(t, ok)
	assert.Equal(t, "first", v)

	v, ok = read("B")
	require.True(t, ok)
	assert.Equal(t, "only", v)

	_, ok = read("C")
	assert.False(t, ok)
}

func TestOSReader(t *testing.T) {
	t.Setenv("RESOLVER_TEST_OS_VAR", "from-process")

	v, ok := resolver.OSReader()("RESOLVER_TEST_OS_VAR")
	require.True(t, ok)
	assert.Equal(t, "from-process", v)
}

func TestDotenvReader_LoadsFilesOnceEarlierFilesWin(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	local := filepath.Join(dir, ".env.local")
	base := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(local, []byte("APP_PORT=9000\n"), 0o600))
	require.NoError(t, os.WriteFile(base, []byte("APP_PORT=8000\nAPP_NAME=omega\n"), 0o600))

	read := resolver.DotenvReader(local, base)

	v, ok := read("APP_PORT")
	require.True(t, ok)
	assert.Equal(t, "9000", v)

	v, ok = read("APP_NAME")
	require.True(t, ok)
	assert.Equal(t, "omega", v)

	_, ok = read("MISSING")
	assert.False(t, ok)
}

func TestDotenvReader_MissingFilesSkipped(t *testing.T) {
	t.Parallel()

	read := resolver.DotenvReader(filepath.Join(t.TempDir(), "nope.env"))
	_, ok := read("ANYTHING")
	assert.False(t, ok)
}

func TestEnvThroughDotenvFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("MAIL_FROM=noreply@omega.dev\n"), 0o600))

	f := newFake(resolver.WithVariableReader(resolver.DotenvReader(envFile)))

	got, err := f.dispatch.Resolve(definition.NewEnv("MAIL_FROM"), nil)
	require.NoError(t, err)
	assert.Equal(t, "noreply@omega.dev", got)
}
