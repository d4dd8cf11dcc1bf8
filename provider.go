// Copyright (c) 2026 The facx Authors.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package facx

import "reflect"

// Provider is the service-provider contract application code programs
// against. [Adapter] is the canonical implementation; facxtest wraps it for
// tests.
//
// Methods take [reflect.Type] tokens so that callers which discover service
// types at runtime can use them directly. Code that knows its types at
// compile time should prefer the package-level generic helpers.
//
// All methods are safe for concurrent use when the implementation is backed
// by a [container.Container].
type Provider interface {
	// CanResolve reports whether the service type is currently
	// registered. It never builds an instance and gives no guarantee
	// that a later Resolve will succeed.
	CanResolve(service reflect.Type) (bool, error)

	// Resolve returns an instance of the service, building it (and its
	// dependencies) as the registration prescribes. A missing
	// registration is reported via a *container.NotRegisteredError; a
	// failed build via a *container.ResolutionError wrapping the cause.
	Resolve(service reflect.Type) (any, error)

	// TryResolve is Resolve, except a missing registration is reported
	// as ok == false with a nil error. Failures while building a
	// registered service are still errors.
	TryResolve(service reflect.Type) (value any, ok bool, err error)

	// GetSingleton returns the shared instance of a service registered
	// as a root-scoped singleton. A missing registration is a
	// *container.NotRegisteredError; a registration with any other
	// sharing fails with an error wrapping ErrNotSingleton, without
	// building anything.
	GetSingleton(service reflect.Type) (any, error)

	// Construct builds an instance of target without consulting or
	// touching the registry: dependencies declared with `inject` tags
	// are resolved, the adapter's property-injection policy is applied,
	// and the result is discarded from the adapter's point of view
	// (nothing is cached or registered).
	Construct(target reflect.Type) (any, error)

	// RegisterSingleton registers a pre-built instance as the service.
	// The instance is shared as-is; no property injection is applied to
	// it. Replaces any previous registration for the service type.
	RegisterSingleton(service reflect.Type, instance any) error

	// RegisterSingletonFactory registers a factory whose first result is
	// shared as a root-scoped singleton: the factory runs at most once,
	// on first resolution. Replaces any previous registration for the
	// service type.
	RegisterSingletonFactory(service reflect.Type, factory any) error

	// RegisterType registers impl as the service with transient sharing:
	// every resolution constructs a fresh impl via reflection. Replaces
	// any previous registration for the service type.
	RegisterType(service, impl reflect.Type) error

	// RegisterFactory registers a factory for the service with transient
	// sharing: every resolution invokes the factory. Replaces any
	// previous registration for the service type.
	RegisterFactory(service reflect.Type, factory any) error

	// CallbackWhenRegistered invokes callback after every future
	// registration that declares the service type, including
	// replacements. Registrations that merely produce an assignable type
	// do not count; existing registrations are not replayed. Callbacks
	// run synchronously on the registering goroutine and may use the
	// provider.
	CallbackWhenRegistered(service reflect.Type, callback func()) error
}
