package ice

import (
	"fmt"
	"reflect"
	"sort"
)

// Key identifies a binding: a type plus an optional name.
// Keys are comparable and are used directly as map keys.
type Key struct {
	typ   reflect.Type
	name  string
	named bool
}

// NewKey returns the unnamed Key for t.
func NewKey(t reflect.Type) Key {
	return Key{typ: t}
}

// NewNamedKey returns the Key for t under name. The empty name is a name.
func NewNamedKey(t reflect.Type, name string) Key {
	return Key{typ: t, name: name, named: true}
}

// KeyOf returns the unnamed Key for T. T may be an interface type.
func KeyOf[T any]() Key {
	return NewKey(typeOf[T]())
}

// NamedKeyOf returns the Key for T under name.
func NamedKeyOf[T any](name string) Key {
	return NewNamedKey(typeOf[T](), name)
}

// Type returns the bound type.
func (k Key) Type() reflect.Type { return k.typ }

// Name returns the name of the key and whether it has one.
func (k Key) Name() (string, bool) { return k.name, k.named }

// IsZero reports whether the key has no type.
func (k Key) IsZero() bool { return k.typ == nil }

// Unnamed returns the Key for the same type without a name.
func (k Key) Unnamed() Key { return Key{typ: k.typ} }

func (k Key) String() string {
	t := "<nil>"
	if k.typ != nil {
		t = k.typ.String()
	}
	if !k.named {
		return t
	}
	return fmt.Sprintf("%s[%q]", t, k.name)
}

// typeOf works for interface types too, unlike reflect.TypeOf on a zero value.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func sortKeys(keys []Key) []Key {
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}
