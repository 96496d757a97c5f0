package ice

import (
	"reflect"
	"sync"
)

// constructors is the process-wide table of zero-argument constructors for
// unbound types. It stands in for the ambient reflection other languages get
// for free, so entries usually come from init() blocks.
var constructors = struct {
	sync.RWMutex
	byType map[reflect.Type]Factory
}{byType: make(map[reflect.Type]Factory)}

// RegisterConstructor records ctor as the way to build an unbound T.
// A later registration for the same T replaces the earlier one.
// It panics with an *InvalidArgumentError if ctor is nil or T is an interface.
func RegisterConstructor[T any](ctor func() (T, error)) {
	t := typeOf[T]()
	if ctor == nil {
		panic(invalidArgument("the constructor of %v can not be nil", t))
	}
	if t.Kind() == reflect.Interface {
		panic(invalidArgument("%v is an interface; bind it in a Module instead", t))
	}
	constructors.Lock()
	defer constructors.Unlock()
	constructors.byType[t] = func() (interface{}, error) { return ctor() }
}

func registeredConstructor(t reflect.Type) (Factory, bool) {
	constructors.RLock()
	defer constructors.RUnlock()
	f, ok := constructors.byType[t]
	return f, ok
}

// constructorFor finds how to build an unbound t:
//   - interfaces can't be built: *UnresolvableBindingError
//   - a registered constructor wins
//   - structs and pointers to structs are built by reflection
//   - anything else: *ConstructionUnavailableError
func constructorFor(key Key) (Factory, error) {
	t := key.Type()
	if t.Kind() == reflect.Interface {
		return nil, &UnresolvableBindingError{Key: key}
	}
	if f, ok := registeredConstructor(t); ok {
		return f, nil
	}
	switch {
	case t.Kind() == reflect.Struct:
		return func() (interface{}, error) {
			return reflect.New(t).Elem().Interface(), nil
		}, nil
	case t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Struct:
		return func() (interface{}, error) {
			return reflect.New(t.Elem()).Interface(), nil
		}, nil
	}
	return nil, &ConstructionUnavailableError{Type: t}
}
