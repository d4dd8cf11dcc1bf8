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

import (
	"fmt"
	"reflect"
	"time"

	"github.com/lauxjpn/facx/container"
	"github.com/lauxjpn/facx/facxevent"
	"github.com/lauxjpn/facx/internal/facxreflect"
)

// Adapter implements [Provider] on top of a [container.Container].
//
// The adapter holds no locks and no instance state of its own: every
// operation delegates to the container, so a single adapter is safe to
// share across goroutines, including alongside code that uses the container
// directly. Errors are returned to the caller and, when a logger is
// configured, mirrored as [facxevent.Event]s; the adapter never writes to a
// log by itself.
type Adapter struct {
	c        *container.Container
	policy   PropertyInjectionOptions
	selector container.PropertySelector
	log      facxevent.Logger
}

var _ Provider = (*Adapter)(nil)

// New builds an Adapter over c. A nil container or a nil option fails with
// an error wrapping [ErrInvalidArgument].
func New(c *container.Container, opts ...Option) (*Adapter, error) {
	if c == nil {
		return nil, fmt.Errorf("facx.New: nil container: %w", ErrInvalidArgument)
	}
	a := &Adapter{
		c:   c,
		log: facxevent.NopLogger,
	}
	for _, opt := range opts {
		if opt == nil {
			return nil, fmt.Errorf("facx.New: nil Option: %w", ErrInvalidArgument)
		}
		opt.apply(a)
	}
	a.selector = a.policy.selector()
	return a, nil
}

// Container returns the wrapped container, for code that needs the
// operations the provider contract leaves out (scopes, aliases, explicit
// sharing, Close).
func (a *Adapter) Container() *container.Container {
	return a.c
}

// CanResolve reports whether service is currently registered.
func (a *Adapter) CanResolve(service reflect.Type) (bool, error) {
	if service == nil {
		return false, nilArg("CanResolve", "service type")
	}
	return a.c.IsRegistered(service), nil
}

// Resolve returns an instance of service per its current registration.
func (a *Adapter) Resolve(service reflect.Type) (any, error) {
	if service == nil {
		return nil, nilArg("Resolve", "service type")
	}
	value, err := a.c.Resolve(service)
	if err != nil {
		a.log.LogEvent(&facxevent.ResolveFailed{Service: service, Err: err})
		return nil, err
	}
	a.log.LogEvent(&facxevent.Resolved{Service: service})
	return value, nil
}

// TryResolve returns an instance of service, reporting a missing
// registration as ok == false instead of an error.
func (a *Adapter) TryResolve(service reflect.Type) (any, bool, error) {
	if service == nil {
		return nil, false, nilArg("TryResolve", "service type")
	}
	value, ok, err := a.c.TryResolve(service)
	if err != nil {
		a.log.LogEvent(&facxevent.ResolveFailed{Service: service, Err: err})
		return nil, false, err
	}
	if ok {
		a.log.LogEvent(&facxevent.Resolved{Service: service})
	}
	return value, ok, nil
}

// GetSingleton returns the shared instance of a service registered as a
// root-scoped singleton. The registration's sharing is checked before
// anything is built: a service registered with transient or scoped sharing
// fails with an error wrapping [ErrNotSingleton] rather than minting an
// instance the caller would mistake for a shared one.
func (a *Adapter) GetSingleton(service reflect.Type) (any, error) {
	if service == nil {
		return nil, nilArg("GetSingleton", "service type")
	}
	reg, ok := a.c.Lookup(service)
	if !ok {
		err := &container.NotRegisteredError{Service: service}
		a.log.LogEvent(&facxevent.ResolveFailed{Service: service, Err: err})
		return nil, err
	}
	if reg.Sharing() != container.Singleton {
		err := fmt.Errorf("facx: GetSingleton %s: registered as %v: %w",
			facxreflect.TypeName(service), reg.Sharing(), ErrNotSingleton)
		a.log.LogEvent(&facxevent.ResolveFailed{Service: service, Err: err})
		return nil, err
	}
	return a.Resolve(service)
}

// Construct builds an instance of target without registering it. `inject`
// tags on the target are honored and the adapter's property-injection
// policy is applied; the registry itself is not modified.
func (a *Adapter) Construct(target reflect.Type) (any, error) {
	if target == nil {
		return nil, nilArg("Construct", "target type")
	}
	value, err := a.c.Construct(target, a.selector)
	if err != nil {
		a.log.LogEvent(&facxevent.ConstructFailed{Target: target, Err: err})
		return nil, err
	}
	a.log.LogEvent(&facxevent.Constructed{Target: target})
	return value, nil
}

// RegisterSingleton registers a pre-built instance as service, replacing
// any previous registration for that type. The instance is shared exactly
// as given; the property-injection policy is deliberately not applied to
// instances the caller already constructed.
func (a *Adapter) RegisterSingleton(service reflect.Type, instance any) error {
	if service == nil {
		return nilArg("RegisterSingleton", "service type")
	}
	reg, err := a.c.RegisterInstance(service, instance)
	return a.registered(service, reg, err)
}

// RegisterSingletonFactory registers factory as the source of service,
// shared as a root-scoped singleton: the factory runs at most once, on the
// first resolution, and its result is reused afterwards. Replaces any
// previous registration for service.
func (a *Adapter) RegisterSingletonFactory(service reflect.Type, factory any) error {
	if service == nil {
		return nilArg("RegisterSingletonFactory", "service type")
	}
	reg, err := a.c.RegisterFactory(service, factory, a.registerOptions(container.Singleton)...)
	return a.registered(service, reg, err)
}

// RegisterType registers impl as the reflection-constructed implementation
// of service, with transient sharing: every resolution builds a fresh impl.
// Replaces any previous registration for service.
func (a *Adapter) RegisterType(service, impl reflect.Type) error {
	if service == nil {
		return nilArg("RegisterType", "service type")
	}
	if impl == nil {
		return nilArg("RegisterType", "implementation type")
	}
	reg, err := a.c.RegisterType(service, impl, a.registerOptions(container.Transient)...)
	return a.registered(service, reg, err)
}

// RegisterFactory registers factory as the source of service, with
// transient sharing: every resolution invokes the factory. Replaces any
// previous registration for service.
func (a *Adapter) RegisterFactory(service reflect.Type, factory any) error {
	if service == nil {
		return nilArg("RegisterFactory", "service type")
	}
	reg, err := a.c.RegisterFactory(service, factory, a.registerOptions(container.Transient)...)
	return a.registered(service, reg, err)
}

// CallbackWhenRegistered arranges for callback to run after every future
// registration that declares service among its service types.
// Registrations that merely produce an assignable implementation do not
// fire it, and registrations that already exist are not replayed. The
// callback runs synchronously on the registering goroutine, outside
// container locks, so it may resolve and register freely.
func (a *Adapter) CallbackWhenRegistered(service reflect.Type, callback func()) error {
	if service == nil {
		return nilArg("CallbackWhenRegistered", "service type")
	}
	if callback == nil {
		return nilArg("CallbackWhenRegistered", "callback")
	}
	a.c.OnRegistered(func(reg *container.Registration) {
		if !reg.ServesType(service) {
			return
		}
		start := time.Now()
		callback()
		a.log.LogEvent(&facxevent.CallbackInvoked{
			Service: service,
			Runtime: time.Since(start),
		})
	})
	a.log.LogEvent(&facxevent.CallbackRegistered{Service: service})
	return nil
}

// registerOptions carries the adapter's sharing and property-injection
// policy onto a registration.
func (a *Adapter) registerOptions(sharing container.Sharing) []container.RegisterOption {
	opts := []container.RegisterOption{container.WithSharing(sharing)}
	if a.selector != nil {
		opts = append(opts, container.WithPropertyInjection(a.selector))
	}
	return opts
}

// registered reports the outcome of a registration to the event stream and
// hands the error back unchanged.
func (a *Adapter) registered(service reflect.Type, reg *container.Registration, err error) error {
	if err != nil {
		a.log.LogEvent(&facxevent.RegisterFailed{Service: service, Err: err})
		return err
	}
	a.log.LogEvent(&facxevent.Registered{Registration: reg})
	return nil
}

func nilArg(op, what string) error {
	return fmt.Errorf("facx: %s: nil %s: %w", op, what, ErrInvalidArgument)
}
