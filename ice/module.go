package ice

//go:generate mockgen -source=module.go -package=ice -destination=module_mock.go

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	uuid "github.com/nu7hatch/gouuid"
	"github.com/pkg/errors"
)

// Module can install many bindings at once.
// Implementations embed BaseModule and do all their registrations in Init.
type Module interface {
	// Init registers the module's bindings. It is called exactly once per
	// Registry the module backs (or is merged into), with that Registry, so
	// factories may capture it to resolve other types.
	Init(r *Registry)

	// Base returns the binding table; embedding BaseModule provides it.
	Base() *BaseModule
}

// ModuleID is the opaque identity handle of a Module.
type ModuleID string

// BaseModule owns a Module's bindings. The zero value is ready to use.
// Registration is a setup-phase activity: don't bind concurrently with
// resolution on a Registry backed by this module.
type BaseModule struct {
	mu       sync.RWMutex
	bindings map[Key]Binding

	idOnce sync.Once
	id     ModuleID
}

func (m *BaseModule) Base() *BaseModule { return m }

// ID returns the module's identity handle, issued on first use.
func (m *BaseModule) ID() ModuleID {
	m.idOnce.Do(func() {
		if u, err := uuid.NewV4(); err == nil {
			m.id = ModuleID(u.String())
		} else {
			// heap addresses are stable, good enough when crypto/rand is not
			m.id = ModuleID(fmt.Sprintf("module-%p", m))
		}
	})
	return m.id
}

// BindType registers a TypeBinding. An existing binding for key is replaced.
func (m *BaseModule) BindType(key Key, target reflect.Type, singleton bool) error {
	if key.IsZero() {
		return invalidArgument("the type parameter can not be nil")
	}
	if target == nil {
		return invalidArgument("the target type of %v can not be nil", key)
	}
	if !target.AssignableTo(key.Type()) {
		return invalidArgument("%v is not assignable to %v", target, key.Type())
	}
	m.put(newTypeBinding(key, target, singleton))
	return nil
}

// BindProvider registers a ProviderBinding. An existing binding for key is replaced.
func (m *BaseModule) BindProvider(key Key, f Factory, singleton bool) error {
	if key.IsZero() {
		return invalidArgument("the type parameter can not be nil")
	}
	if f == nil {
		return invalidArgument("the provider of %v can not be nil", key)
	}
	m.put(newProviderBinding(key, f, singleton))
	return nil
}

func (m *BaseModule) put(b Binding) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.bindings == nil {
		m.bindings = make(map[Key]Binding)
	}
	m.bindings[b.Key()] = b
}

// Binding looks up the binding registered for key.
func (m *BaseModule) Binding(key Key) (Binding, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.bindings[key]
	return b, ok
}

// Bindings returns a snapshot of every registered binding, ordered by key.
func (m *BaseModule) Bindings() []Binding {
	m.mu.RLock()
	out := make([]Binding, 0, len(m.bindings))
	for _, b := range m.bindings {
		out = append(out, b)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].Key().String() < out[j].Key().String()
	})
	return out
}

// Len returns the number of registered bindings.
func (m *BaseModule) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.bindings)
}

// Merge runs other's Init against r, then copies all of other's bindings
// into m, each replacing a binding m already has for the same key.
func (m *BaseModule) Merge(r *Registry, other Module) error {
	if isNilModule(other) {
		return invalidArgument("the module parameter can not be nil")
	}
	if err := initModule(other, r); err != nil {
		return err
	}
	for _, b := range other.Base().Bindings() {
		m.put(b)
	}
	return nil
}

// initModule calls m.Init, turning a panic (the generic Bind helpers panic on
// invalid arguments) into an error.
func initModule(m Module, r *Registry) (result error) {
	defer func() {
		if rec := recover(); rec != nil {
			err := recovered(rec)
			if _, ok := err.(*InvalidArgumentError); !ok {
				err = errors.WithMessagef(err, "ice: initializing module %T", m)
			}
			result = err
		}
	}()
	m.Init(r)
	return nil
}

func mustBind(err error) {
	if err != nil {
		panic(err)
	}
}

// isNilModule reports whether m is nil, including a nil pointer (or other
// nilable value) stored in the interface.
func isNilModule(m Module) bool {
	if m == nil {
		return true
	}
	switch v := reflect.ValueOf(m); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func baseOf(m Module) *BaseModule {
	if isNilModule(m) {
		panic(invalidArgument("the module parameter can not be nil"))
	}
	return m.Base()
}

// BindSingleton binds T to the type C. C is resolved (unnamed) in place of T
// and the result is cached. It panics with an *InvalidArgumentError if C is
// not assignable to T.
func BindSingleton[T, C any](m Module) {
	mustBind(baseOf(m).BindType(KeyOf[T](), typeOf[C](), true))
}

// BindDynamic is BindSingleton without caching: each resolution of T
// resolves C again.
func BindDynamic[T, C any](m Module) {
	mustBind(baseOf(m).BindType(KeyOf[T](), typeOf[C](), false))
}

// BindSingletonNamed is BindSingleton for the name-qualified key of T.
func BindSingletonNamed[T, C any](m Module, name string) {
	mustBind(baseOf(m).BindType(NamedKeyOf[T](name), typeOf[C](), true))
}

// BindDynamicNamed is BindDynamic for the name-qualified key of T.
func BindDynamicNamed[T, C any](m Module, name string) {
	mustBind(baseOf(m).BindType(NamedKeyOf[T](name), typeOf[C](), false))
}

// ProvideSingleton binds T to p. p runs on first resolution only.
func ProvideSingleton[T any](m Module, p Provider[T]) {
	mustBind(baseOf(m).BindProvider(KeyOf[T](), providerFactory(p), true))
}

// ProvideDynamic binds T to p. p runs on every resolution.
func ProvideDynamic[T any](m Module, p Provider[T]) {
	mustBind(baseOf(m).BindProvider(KeyOf[T](), providerFactory(p), false))
}

// ProvideSingletonNamed is ProvideSingleton for the name-qualified key of T.
func ProvideSingletonNamed[T any](m Module, name string, p Provider[T]) {
	mustBind(baseOf(m).BindProvider(NamedKeyOf[T](name), providerFactory(p), true))
}

// ProvideDynamicNamed is ProvideDynamic for the name-qualified key of T.
func ProvideDynamicNamed[T any](m Module, name string, p Provider[T]) {
	mustBind(baseOf(m).BindProvider(NamedKeyOf[T](name), providerFactory(p), false))
}

// providerFactory returns nil for a nil provider so BindProvider rejects it.
func providerFactory[T any](p Provider[T]) Factory {
	if p == nil {
		return nil
	}
	if f, ok := p.(ProviderFunc[T]); ok && f == nil {
		return nil
	}
	return eraseProvider(p)
}
