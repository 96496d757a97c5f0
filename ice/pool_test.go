package ice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twitter/goice/common/stats"
)

func TestGetRegistryPools(t *testing.T) {
	m := &shapes{}
	r1, err := GetRegistry(m)
	require.NoError(t, err)
	r2, err := GetRegistry(m)
	require.NoError(t, err)
	assert.Same(t, r1, r2)
	assert.Same(t, r1.Module(), m)

	// same bindings, different module
	r3, err := GetRegistry(&shapes{})
	require.NoError(t, err)
	assert.NotSame(t, r1, r3)

	stat := stats.DefaultStatsReceiver()
	PoolStats(stat)
	assert.True(t, stat.Scope("ice").Gauge(stats.IcePooledRegistryGauge).Value() >= 2)
}

func TestGetRegistryWithOthersIsFresh(t *testing.T) {
	m := &shapes{}
	pooled, err := GetRegistry(m)
	require.NoError(t, err)

	extra := newFuncModule(func(m *funcModule, r *Registry) {
		BindDynamicNamed[Shape, *Circle](m, "extra")
	})
	fresh, err := GetRegistry(m, extra)
	require.NoError(t, err)
	assert.NotSame(t, pooled, fresh)

	_, err = GetNamed[Shape](fresh, "extra")
	assert.NoError(t, err)

	again, err := GetRegistry(m)
	require.NoError(t, err)
	assert.Same(t, pooled, again)
}

func TestGetRegistryFailures(t *testing.T) {
	_, err := GetRegistry(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = GetRegistry((*shapes)(nil))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = GetRegistry((*shapes)(nil), &shapes{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	bad := newFuncModule(func(m *funcModule, r *Registry) { panic("bad module") })
	_, err = GetRegistry(bad)
	assert.Error(t, err)
	// failures aren't pooled
	_, err = GetRegistry(bad)
	assert.Error(t, err)
	assert.Equal(t, 2, bad.inits)
}

func TestGetRegistryFromInit(t *testing.T) {
	inner := &shapes{}
	outer := newFuncModule(func(m *funcModule, r *Registry) {
		ir, err := GetRegistry(inner)
		if err != nil {
			panic(err)
		}
		ProvideSingleton[Shape](m, ProviderOf[Shape](ir))
	})

	r, err := GetRegistry(outer)
	require.NoError(t, err)
	ir, err := GetRegistry(inner)
	require.NoError(t, err)
	assert.Same(t, MustGet[Shape](ir), MustGet[Shape](r))
}
