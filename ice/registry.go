package ice

import (
	"bytes"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/twitter/goice/common/stats"
)

// Registry resolves Keys against a root Module, caching singletons.
// It is safe for concurrent use once its modules are registered.
type Registry struct {
	module    Module
	instances *instanceCache
	providers *providerCache

	stat stats.StatsReceiver
	log  log.FieldLogger

	// modules handed to WithModules, merged once the root is initialized
	pending []Module
}

// New creates a Registry backed by m. m.Init runs exactly once, with the new
// Registry, before New returns; the modules given with WithModules are merged
// afterwards, in order.
func New(m Module, opts ...Option) (*Registry, error) {
	if isNilModule(m) {
		return nil, invalidArgument("the module parameter can not be nil")
	}
	r := &Registry{
		module:    m,
		instances: newInstanceCache(),
		providers: newProviderCache(),
		stat:      stats.NilStatsReceiver(),
		log:       log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := initModule(m, r); err != nil {
		return nil, err
	}
	pending := r.pending
	r.pending = nil
	for i, other := range pending {
		if err := r.Merge(other); err != nil {
			return nil, errors.WithMessagef(err, "ice: merging module %d (%T)", i, other)
		}
	}
	r.stat.Gauge(stats.IceBindingCountGauge).Update(int64(m.Base().Len()))
	r.logger().Debugf("Registry ready with %d bindings", m.Base().Len())
	return r, nil
}

// NewRegistry is New(m, WithModules(others...)). The result is never shared;
// see GetRegistry for the pooled variant.
func NewRegistry(m Module, others ...Module) (*Registry, error) {
	return New(m, WithModules(others...))
}

// Module returns the root module. Merges mutate it in place.
func (r *Registry) Module() Module { return r.module }

// Stats returns the receiver the Registry reports into, scoped under "ice".
func (r *Registry) Stats() stats.StatsReceiver { return r.stat }

// Merge runs other's Init against r and copies its bindings into the root
// module. Singletons cached before the merge stay cached, even if other
// rebinds their keys; call ClearCache to pick up the new bindings.
func (r *Registry) Merge(other Module) error {
	if err := r.module.Base().Merge(r, other); err != nil {
		return err
	}
	r.stat.Counter(stats.IceModuleMergeCounter).Inc(1)
	r.stat.Gauge(stats.IceBindingCountGauge).Update(int64(r.module.Base().Len()))
	r.logger().WithField("merged", other.Base().ID()).Debugf("Merged %T", other)
	return nil
}

// ClearCache drops every cached singleton and provider. Bindings are kept.
// Resolutions running during the clear complete but cache nothing.
func (r *Registry) ClearCache() {
	r.instances.clear()
	r.providers.clear()
	r.stat.Counter(stats.IceCacheClearCounter).Inc(1)
	r.stat.Gauge(stats.IceInstanceCacheSizeGauge).Update(0)
	r.logger().Debug("Cleared instance and provider caches")
}

// Instance resolves key. See the package documentation for the rules.
func (r *Registry) Instance(key Key) (interface{}, error) {
	if key.IsZero() {
		return nil, invalidArgument("the type parameter can not be nil")
	}
	v, err := r.resolve(key, false)
	if err != nil {
		r.stat.Counter(stats.IceResolveErrCounter).Inc(1)
		return nil, err
	}
	return v, nil
}

// Cached returns the keys that currently have a cached singleton.
func (r *Registry) Cached() []Key {
	return sortKeys(r.instances.keys())
}

// Dump renders the bindings and cached keys, for debugging.
func (r *Registry) Dump() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "module %T (%s)\n", r.module, r.module.Base().ID())
	for _, b := range r.module.Base().Bindings() {
		fmt.Fprintf(&buf, "  %v\n", b)
	}
	cached := r.Cached()
	fmt.Fprintf(&buf, "cached (%d):\n", len(cached))
	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, MaxDepth: 2}
	for _, k := range cached {
		if v, ok := r.instances.get(k); ok {
			fmt.Fprintf(&buf, "  %v = %s", k, cfg.Sdump(v))
		}
	}
	return buf.String()
}

func (r *Registry) logger() log.FieldLogger {
	return r.log.WithField("module", r.module.Base().ID())
}

// Get resolves the unnamed key of T.
func Get[T any](r *Registry) (T, error) {
	return getKey[T](r, KeyOf[T]())
}

// GetNamed resolves the key of T under name.
func GetNamed[T any](r *Registry, name string) (T, error) {
	return getKey[T](r, NamedKeyOf[T](name))
}

// MustGet is Get for init-time wiring: it panics on error.
func MustGet[T any](r *Registry) T {
	v, err := Get[T](r)
	if err != nil {
		panic(err)
	}
	return v
}

// MustGetNamed is GetNamed, panicking on error.
func MustGetNamed[T any](r *Registry, name string) T {
	v, err := GetNamed[T](r, name)
	if err != nil {
		panic(err)
	}
	return v
}

// ProviderOf returns the lazy provider for the unnamed key of T. Each Get
// resolves on r at call time. Repeated calls return the same provider until
// ClearCache.
func ProviderOf[T any](r *Registry) Provider[T] {
	return providerFor[T](r, KeyOf[T]())
}

// NamedProviderOf is ProviderOf for the key of T under name.
func NamedProviderOf[T any](r *Registry, name string) Provider[T] {
	return providerFor[T](r, NamedKeyOf[T](name))
}

func providerFor[T any](r *Registry, key Key) Provider[T] {
	if r == nil {
		panic(invalidArgument("the registry parameter can not be nil"))
	}
	p := r.providers.getOrCreate(key, func() interface{} {
		return &lazyProvider[T]{r: r, key: key}
	})
	return p.(Provider[T])
}

func getKey[T any](r *Registry, key Key) (T, error) {
	var zero T
	if r == nil {
		return zero, invalidArgument("the registry parameter can not be nil")
	}
	v, err := r.Instance(key)
	if err != nil {
		return zero, err
	}
	if v == nil {
		// a provider for an interface or pointer type may produce nil
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, invalidArgument("%v resolved to %T", key, v)
	}
	return t, nil
}
