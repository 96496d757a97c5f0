package ice

import (
	"fmt"
	"reflect"
)

// Binding describes how to satisfy a Key.
// The engine knows two variants: *TypeBinding and *ProviderBinding.
type Binding interface {
	Key() Key
	Singleton() bool
	String() string
}

type binding struct {
	key       Key
	singleton bool
}

func (b binding) Key() Key        { return b.key }
func (b binding) Singleton() bool { return b.singleton }

func (b binding) lifetime() string {
	if b.singleton {
		return "singleton"
	}
	return "dynamic"
}

// TypeBinding resolves its Key by resolving Target, unnamed, instead.
type TypeBinding struct {
	binding
	target reflect.Type
}

func newTypeBinding(key Key, target reflect.Type, singleton bool) *TypeBinding {
	return &TypeBinding{binding{key, singleton}, target}
}

// Target is the type resolved in place of the Key's type.
func (b *TypeBinding) Target() reflect.Type { return b.target }

func (b *TypeBinding) String() string {
	return fmt.Sprintf("TypeBinding %v -> %v (%s)", b.key, b.target, b.lifetime())
}

// Factory is the type-erased form of a Provider.
type Factory func() (interface{}, error)

// ProviderBinding resolves its Key by invoking a factory.
type ProviderBinding struct {
	binding
	factory Factory
}

func newProviderBinding(key Key, f Factory, singleton bool) *ProviderBinding {
	return &ProviderBinding{binding{key, singleton}, f}
}

// Factory returns the factory invoked for every (uncached) resolution.
func (b *ProviderBinding) Factory() Factory { return b.factory }

func (b *ProviderBinding) String() string {
	return fmt.Sprintf("ProviderBinding %v (%s)", b.key, b.lifetime())
}
