package ice

import (
	"sync"

	"github.com/twitter/goice/common/stats"
)

// pool maps module identity to the Registry GetRegistry built for it.
// Entries live as long as the process.
var pool = struct {
	sync.RWMutex
	byModule map[ModuleID]*pooled
}{byModule: make(map[ModuleID]*pooled)}

// pooled builds its Registry once. The pool lock is not held while building,
// so a module's Init may itself call GetRegistry for other modules.
type pooled struct {
	once sync.Once
	r    *Registry
	err  error
}

// GetRegistry returns the Registry backing m, creating it on first request.
// With others it instead returns a fresh, unshared Registry that has others
// merged in, like NewRegistry.
//
// Pooled registries are never released, so use it only for modules that live
// as long as the process. A module whose construction failed is not pooled.
func GetRegistry(m Module, others ...Module) (*Registry, error) {
	if len(others) > 0 {
		return NewRegistry(m, others...)
	}
	if isNilModule(m) {
		return nil, invalidArgument("the module parameter can not be nil")
	}
	id := m.Base().ID()

	pool.RLock()
	p, ok := pool.byModule[id]
	pool.RUnlock()
	if !ok {
		pool.Lock()
		if p, ok = pool.byModule[id]; !ok {
			p = &pooled{}
			pool.byModule[id] = p
		}
		pool.Unlock()
	}

	p.once.Do(func() {
		p.r, p.err = New(m)
	})
	if p.err != nil {
		pool.Lock()
		if pool.byModule[id] == p {
			delete(pool.byModule, id)
		}
		pool.Unlock()
		return nil, p.err
	}
	return p.r, nil
}

// PoolStats reports the size of the registry pool into stat.
func PoolStats(stat stats.StatsReceiver) {
	pool.RLock()
	n := len(pool.byModule)
	pool.RUnlock()
	stat.Scope("ice").Gauge(stats.IcePooledRegistryGauge).Update(int64(n))
}
