package ice

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingletonBuiltOnceUnderContention(t *testing.T) {
	slow := &counter{make: func(n int32) (Shape, error) {
		time.Sleep(10 * time.Millisecond)
		return &Square{Side: float64(n)}, nil
	}}
	r, err := NewRegistry(newFuncModule(func(m *funcModule, r *Registry) {
		ProvideSingleton[Shape](m, slow)
	}))
	require.NoError(t, err)

	const n = 64
	got := make([]Shape, n)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			got[i], _ = Get[Shape](r)
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, slow.Calls())
	for i := range got {
		require.NotNil(t, got[i])
		assert.Same(t, got[0], got[i])
	}
}

func TestWaitersSeeTheFailure(t *testing.T) {
	release := make(chan struct{})
	c := &counter{make: func(n int32) (Shape, error) {
		<-release
		return nil, errBroken
	}}
	r, err := NewRegistry(newFuncModule(func(m *funcModule, r *Registry) {
		ProvideSingleton[Shape](m, c)
	}))
	require.NoError(t, err)

	const n = 8
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		go func() {
			_, err := Get[Shape](r)
			errs <- err
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	for i := 0; i < n; i++ {
		assert.ErrorIs(t, <-errs, ErrConstructionFailed)
	}
	assert.Empty(t, r.Cached())
}

func TestProviderOfUnderContention(t *testing.T) {
	r := newShapes(t)

	const n = 32
	got := make([]Provider[Shape], n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = NamedProviderOf[Shape](r, "sq")
		}(i)
	}
	wg.Wait()
	for i := range got {
		assert.Same(t, got[0], got[i])
	}
}

func TestClearDuringResolution(t *testing.T) {
	release := make(chan struct{})
	built := make(chan struct{}, 2)
	c := &counter{make: func(n int32) (Shape, error) {
		built <- struct{}{}
		if n == 1 {
			<-release
		}
		return &Square{Side: float64(n)}, nil
	}}
	r, err := NewRegistry(newFuncModule(func(m *funcModule, r *Registry) {
		ProvideSingleton[Shape](m, c)
	}))
	require.NoError(t, err)

	first := make(chan Shape)
	go func() {
		s, _ := Get[Shape](r)
		first <- s
	}()
	<-built
	r.ClearCache()

	// the orphaned construction doesn't block new requests
	second := MustGet[Shape](r)
	close(release)
	orphan := <-first

	assert.Equal(t, &Square{Side: 1}, orphan)
	assert.Equal(t, &Square{Side: 2}, second)
	assert.Same(t, second, MustGet[Shape](r), "the orphan never reached the cache")
}
