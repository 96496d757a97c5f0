package ice

// Provider produces a T, or an error.
type Provider[T any] interface {
	Get() (T, error)
}

// ProviderFunc adapts a plain function to a Provider.
type ProviderFunc[T any] func() (T, error)

func (f ProviderFunc[T]) Get() (T, error) { return f() }

// Injectable is implemented by values that need deferred setup once they are
// obtained. InitInjected runs exactly once per constructed instance, after a
// singleton is published to the cache, so it may resolve values that depend
// back on the instance itself.
type Injectable interface {
	InitInjected(r *Registry) error
}

// lazyProvider is what ProviderOf hands out: every Get is a fresh lookup on
// the Registry, so singleton/dynamic semantics are those of the Key.
type lazyProvider[T any] struct {
	r   *Registry
	key Key
}

func (p *lazyProvider[T]) Get() (T, error) {
	return getKey[T](p.r, p.key)
}

// eraseProvider turns a typed Provider into the Factory a binding stores.
func eraseProvider[T any](p Provider[T]) Factory {
	return func() (interface{}, error) {
		return p.Get()
	}
}
