package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"injection-planner/graph"
	"injection-planner/plan"
)

func TestBindImplementationValidation(t *testing.T) {
	m := newModel(t)
	m.class("app.MemStore", sig())
	m.class("app.SQLStore", sig())
	m.class("app.Clock", sig())
	m.iface("app.Store", "app.MemStore", "app.SQLStore")

	b := plan.NewStaticBindings(m.g)

	require.NoError(t, b.BindImplementation("app.Store", "app.MemStore"))
	require.NoError(t, b.BindImplementation("app.Store", "app.MemStore"), "rebinding to the same class is a no-op")

	err := b.BindImplementation("app.Store", "app.SQLStore")
	require.ErrorIs(t, err, graph.ErrBinding)
	assert.Contains(t, err.Error(), "cannot rebind")

	err = b.BindImplementation("app.Store", "app.Clock")
	require.ErrorIs(t, err, graph.ErrBinding)
	assert.Contains(t, err.Error(), "app.Clock does not implement app.Store")

	err = b.BindImplementation("app.Stor", "app.Clock")
	require.ErrorIs(t, err, graph.ErrNameResolution)

	store, err := m.g.Class("app.Store")
	require.NoError(t, err)

	impl, ok := b.BoundImplementation(store)
	require.True(t, ok)
	assert.Equal(t, "app.MemStore", impl.FullName())
}

func TestBindConstructorRequiresExternalConstructor(t *testing.T) {
	m := newModel(t)
	m.iface("app.Clock")
	m.class("app.SystemClock", sig())

	b := plan.NewStaticBindings(m.g)

	err := b.BindConstructor("app.Clock", "app.SystemClock")
	require.ErrorIs(t, err, graph.ErrBinding)
	assert.Contains(t, err.Error(), "not an external constructor")
}

func TestBindLegacyConstructorValidation(t *testing.T) {
	m := newModel(t)
	m.class("app.Clock", sig())
	m.class("app.Service", sig("app.Clock"))

	b := plan.NewStaticBindings(m.g)

	err := b.BindLegacyConstructor("app.Service")
	require.ErrorIs(t, err, graph.ErrBinding)
	assert.Contains(t, err.Error(), "could not find requested constructor () for class app.Service")

	err = b.BindLegacyConstructor("app.Service", "app.Nope")
	require.ErrorIs(t, err, graph.ErrNameResolution)

	require.NoError(t, b.BindLegacyConstructor("app.Service", "app.Clock"))

	svc, err := m.g.Class("app.Service")
	require.NoError(t, err)

	def, ok := b.LegacyConstructor(svc)
	require.True(t, ok)
	assert.Equal(t, "(app.Clock)", def.String())
}

func TestBindInstance(t *testing.T) {
	m := newModel(t)
	clock := m.class("app.Clock", sig())

	b := plan.NewStaticBindings(m.g)

	require.NoError(t, b.BindInstance("app.Clock", 42))
	require.ErrorIs(t, b.BindInstance("app.Clock", 43), graph.ErrBinding)
	require.ErrorIs(t, b.BindInstance("app.Nope", 1), graph.ErrNameResolution)

	v, ok := b.Instance(clock)
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestBindNamedParameter(t *testing.T) {
	m := newModel(t)
	port := m.named(graph.NamedParameterSpec{Name: "app.Port", ValueType: "int", ShortName: "port"})
	m.class("app.Clock", sig())

	b := plan.NewStaticBindings(m.g)

	require.NoError(t, b.BindNamedParameter("port", "8080"))
	require.NoError(t, b.BindNamedParameter("app.Port", "8080"))
	require.ErrorIs(t, b.BindNamedParameter("app.Port", "9090"), graph.ErrBinding)
	require.ErrorIs(t, b.BindNamedParameter("app.Clock", "x"), graph.ErrBinding)
	require.ErrorIs(t, b.BindNamedParameter("nope", "x"), graph.ErrNameResolution)

	v, ok := b.NamedValue(port)
	require.True(t, ok)
	assert.Equal(t, "8080", v)
}
