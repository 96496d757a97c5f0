package ice

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/twitter/goice/common/stats"
)

// resolve does the work of Instance once key is known to be valid. A Key
// reached by TypeBinding delegation is delegated: the request was already
// counted against the Key it came in with.
func (r *Registry) resolve(key Key, delegated bool) (interface{}, error) {
	if v, ok := r.instances.get(key); ok {
		r.count(stats.IceInstanceCacheHitCounter, delegated)
		return v, nil
	}

	b, ok := r.module.Base().Binding(key)
	if !ok {
		r.count(stats.IceInstanceCacheMissCounter, delegated)
		return r.construct(key, nil)
	}
	if !b.Singleton() {
		r.count(stats.IceInstanceCacheMissCounter, delegated)
		return r.evaluate(b, nil)
	}
	return r.singleton(key, b, delegated)
}

func (r *Registry) count(name string, delegated bool) {
	if !delegated {
		r.stat.Counter(name).Inc(1)
	}
}

// singleton resolves a singleton binding, building it at most once even when
// several goroutines ask for key at the same time. A goroutine that asks for
// key again while it is still building it gets a *CyclicResolutionError;
// break such cycles with an Injectable hook.
func (r *Registry) singleton(key Key, b Binding, delegated bool) (interface{}, error) {
	g := goroutineID()
	v, hit, f, owner := r.instances.acquire(key, g)
	if hit {
		r.count(stats.IceInstanceCacheHitCounter, delegated)
		return v, nil
	}
	if !owner {
		if g != 0 && f.owner == g {
			return nil, &CyclicResolutionError{Key: key}
		}
		<-f.done
		if f.err == nil {
			r.count(stats.IceInstanceCacheHitCounter, delegated)
		}
		return f.val, f.err
	}
	r.count(stats.IceInstanceCacheMissCounter, delegated)

	var result error
	defer func() {
		if rec := recover(); rec != nil {
			// keep waiters from blocking forever, then let the panic go on
			r.instances.finish(key, f, nil, recovered(rec))
			panic(rec)
		}
		r.instances.finish(key, f, v, result)
		if result == nil {
			r.stat.Gauge(stats.IceInstanceCacheSizeGauge).Update(int64(len(r.instances.keys())))
		}
	}()
	v, result = r.evaluate(b, func(v interface{}) { r.instances.publish(key, f, v) })
	return v, result
}

// evaluate produces a value for b. publish, when not nil, is called with the
// value before the Injectable hook runs.
func (r *Registry) evaluate(b Binding, publish func(interface{})) (interface{}, error) {
	switch b := b.(type) {
	case *TypeBinding:
		target := NewKey(b.Target())
		if target == b.Key() {
			// a type bound to itself, usually to make it a singleton
			return r.construct(target, publish)
		}
		// the target resolves unnamed, and runs its own hook
		v, err := r.resolve(target, true)
		if err != nil {
			return nil, errors.WithMessagef(err, "ice: resolving %v", b.Key())
		}
		if publish != nil {
			publish(v)
		}
		return v, nil

	case *ProviderBinding:
		v, err := r.produce(b.Key(), "factory", b.Factory())
		if err != nil {
			return nil, err
		}
		if publish != nil {
			publish(v)
		}
		return r.inject(b.Key(), v)

	default:
		return nil, &UnknownBindingVariantError{Binding: b}
	}
}

// construct builds key's type with its zero-argument constructor. Unbound
// types come through here with a nil publish: they are never cached.
func (r *Registry) construct(key Key, publish func(interface{})) (interface{}, error) {
	ctor, err := constructorFor(key)
	if err != nil {
		return nil, err
	}
	v, err := r.produce(key, "constructor", ctor)
	if err != nil {
		return nil, err
	}
	if publish != nil {
		publish(v)
	}
	return r.inject(key, v)
}

// produce calls a factory or constructor, turning errors and panics into a
// *ConstructionFailedError.
func (r *Registry) produce(key Key, stage string, f Factory) (v interface{}, result error) {
	defer func(start time.Time) {
		r.stat.Precision(time.Millisecond).Latency(stats.IceConstructLatency_ms).Add(stats.Time.Since(start))
	}(stats.Time.Now())
	defer func() {
		if rec := recover(); rec != nil {
			v, result = nil, &ConstructionFailedError{Key: key, Stage: stage, cause: recovered(rec)}
		}
	}()

	v, err := f()
	if err != nil {
		return nil, &ConstructionFailedError{Key: key, Stage: stage, cause: err}
	}
	r.stat.Counter(stats.IceConstructedCounter).Inc(1)
	r.logger().WithFields(log.Fields{"key": key.String(), "stage": stage}).Debugf("Constructed: %T", v)
	return v, nil
}

// inject runs the Injectable hook of v, if it has one.
func (r *Registry) inject(key Key, v interface{}) (result interface{}, err error) {
	i, ok := v.(Injectable)
	if !ok {
		return v, nil
	}
	defer func() {
		if rec := recover(); rec != nil {
			result, err = nil, &ConstructionFailedError{Key: key, Stage: "hook", cause: recovered(rec)}
		}
	}()
	r.stat.Counter(stats.IceInjectHookCounter).Inc(1)
	if err := i.InitInjected(r); err != nil {
		return nil, &ConstructionFailedError{Key: key, Stage: "hook", cause: err}
	}
	return v, nil
}
