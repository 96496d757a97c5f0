/*
ice is a lightweight Dependency Injection Framework

ice's central metaphor is still the "Magic Bag": you put bindings in, and you
take fully-formed values out. This version of the bag is a Registry that
resolves a requested type (optionally disambiguated by a name) to an instance,
and remembers singletons.

Lifecycle

1) Write a Module: embed BaseModule and register bindings in Init
2) Create a Registry from the Module (Init runs exactly once, right there)
  a) or pull the shared Registry for a Module with GetRegistry
  b) or merge more Modules in; later Modules win on conflicting keys
3) Get values

	type shapes struct{ ice.BaseModule }

	func (m *shapes) Init(r *ice.Registry) {
		ice.BindSingleton[Shape, *Circle](m)
		ice.ProvideDynamicNamed[Shape](m, "sq", ice.ProviderFunc[Shape](func() (Shape, error) {
			return &Square{}, nil
		}))
	}

	r, err := ice.NewRegistry(&shapes{})
	circle, err := ice.Get[Shape](r)

Terms

Key: a Go type plus an optional name. No name, the empty name and any other
name are three different Keys.

Binding: how a Key is satisfied. A TypeBinding delegates to another (concrete)
type, a ProviderBinding invokes a factory. Either may be a singleton.

Provider: something that produces a T, or an error.

Module: an ownership scope for Bindings, populated by its Init.

Registry: resolves Keys against its Module's Bindings and caches singletons.

Unbound types

A type nobody bound is constructed directly: with a constructor registered
through RegisterConstructor, or by reflection for struct and pointer-to-struct
types. Such values are never cached, every request builds a fresh one.
Interfaces can not be constructed and must be bound.

Notes

Cached instances survive Merge. Only ClearCache forgets them.

A cycle of bindings (A needs B needs A) is only caught at singletons: the
goroutine building one gets a CyclicResolutionError when it asks for it again.
Dynamic cycles recurse until the stack runs out, and a cycle that crosses
goroutines inside a factory deadlocks. Break cycles with the Injectable hook,
which runs after a singleton is published to the cache.
Other goroutines may see a singleton before its hook has finished.

Binding a type to itself (BindSingleton[*Circle, *Circle]) constructs it
directly and caches it.

(Registry in ice is the equivalent of Guice's Injector or
Dagger 1's ObjectGraph)
*/
package ice
