package ice

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Sentinels for errors.Is. Every error the engine returns matches one of them.
var (
	ErrInvalidArgument         = errors.New("ice: invalid argument")
	ErrUnresolvable            = errors.New("ice: unresolvable binding")
	ErrConstructionUnavailable = errors.New("ice: construction unavailable")
	ErrConstructionFailed      = errors.New("ice: construction failed")
	ErrUnknownBindingVariant   = errors.New("ice: unknown binding variant")
	ErrCyclicResolution        = errors.New("ice: cyclic resolution")
)

// InvalidArgumentError is returned (or panicked, from the generic Bind helpers)
// when a required argument is missing or does not fit.
type InvalidArgumentError struct {
	Reason string
}

func invalidArgument(format string, a ...interface{}) *InvalidArgumentError {
	return &InvalidArgumentError{Reason: fmt.Sprintf(format, a...)}
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("ice: invalid argument: %s", e.Reason)
}

func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// UnresolvableBindingError means an interface was requested and nothing binds it.
type UnresolvableBindingError struct {
	Key Key
}

func (e *UnresolvableBindingError) Error() string {
	return fmt.Sprintf("ice: can't find binding for interface %v", e.Key)
}

func (e *UnresolvableBindingError) Is(target error) bool { return target == ErrUnresolvable }

// ConstructionUnavailableError means an unbound concrete type has no
// zero-argument constructor: none was registered and reflection can't build it.
type ConstructionUnavailableError struct {
	Type reflect.Type
}

func (e *ConstructionUnavailableError) Error() string {
	return fmt.Sprintf("ice: can't find the zero-argument constructor of type %v (kind %v)", e.Type, e.Type.Kind())
}

func (e *ConstructionUnavailableError) Is(target error) bool {
	return target == ErrConstructionUnavailable
}

// ConstructionFailedError wraps a failure raised by a constructor, a factory
// or an Injectable hook.
type ConstructionFailedError struct {
	Key   Key
	Stage string // "constructor", "factory" or "hook"
	cause error
}

func (e *ConstructionFailedError) Error() string {
	return fmt.Sprintf("ice: %s of %v failed: %v", e.Stage, e.Key, e.cause)
}

// Cause makes the error work with errors.Cause.
func (e *ConstructionFailedError) Cause() error { return e.cause }

func (e *ConstructionFailedError) Unwrap() error { return e.cause }

func (e *ConstructionFailedError) Is(target error) bool { return target == ErrConstructionFailed }

// UnknownBindingVariantError signals an engine bug: a Binding that is neither
// a *TypeBinding nor a *ProviderBinding reached resolution.
type UnknownBindingVariantError struct {
	Binding Binding
}

func (e *UnknownBindingVariantError) Error() string {
	return fmt.Sprintf("ice: unknown binding type %T for %v", e.Binding, e.Binding.Key())
}

func (e *UnknownBindingVariantError) Is(target error) bool {
	return target == ErrUnknownBindingVariant
}

// CyclicResolutionError is returned when a singleton is requested again by
// the goroutine that is still building it.
type CyclicResolutionError struct {
	Key Key
}

func (e *CyclicResolutionError) Error() string {
	return fmt.Sprintf("ice: %v was requested while it was being built", e.Key)
}

func (e *CyclicResolutionError) Is(target error) bool { return target == ErrCyclicResolution }

// recovered turns a recovered panic value into an error.
func recovered(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return errors.Errorf("panic: %v", r)
}
