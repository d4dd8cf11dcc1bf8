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

package container

import (
	"fmt"
	"io"
	"reflect"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/lauxjpn/facx/internal/facxreflect"
)

// Container is a reflection-keyed registry of service registrations. A
// service type maps to at most one current registration; registering a
// service again replaces the previous registration for that type. Every
// mutation is serialized; resolutions may run concurrently with each other
// and with mutations.
//
// The container itself is registered under *Container so that factories
// and injected fields may depend on it.
type Container struct {
	mu        sync.RWMutex
	registry  map[reflect.Type]*Registration
	order     []*Registration
	callbacks []func(*Registration)
	closed    bool

	root *Scope
}

// New returns an empty container.
func New() *Container {
	c := &Container{registry: make(map[reflect.Type]*Registration)}
	c.root = newScope(c, nil)

	self := &Registration{
		id:        uuid.New(),
		services:  []reflect.Type{reflect.TypeOf(c)},
		impl:      reflect.TypeOf(c),
		sharing:   Singleton,
		owned:     false,
		activator: "container",
		built:     true,
		value:     c,
	}
	c.registry[reflect.TypeOf(c)] = self
	c.order = append(c.order, self)
	return c
}

// RegisterInstance registers a pre-built instance as the implementation of
// service. Instance registrations are always Singleton; WithSharing with
// any other mode and WithPropertyInjection are rejected, since the
// container never builds (and so never wires) the instance.
func (c *Container) RegisterInstance(service reflect.Type, instance any, opts ...RegisterOption) (*Registration, error) {
	if service == nil {
		return nil, fmt.Errorf("register instance: nil service type: %w", ErrInvalidArgument)
	}
	if isNil(instance) {
		return nil, fmt.Errorf("register instance for %v: nil instance: %w", service, ErrInvalidArgument)
	}
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("register instance for %v: %w", service, err)
	}
	if cfg.sharingSet && cfg.sharing != Singleton {
		return nil, fmt.Errorf("register instance for %v: instances are always %v, not %v: %w",
			service, Singleton, cfg.sharing, ErrInvalidArgument)
	}
	if cfg.selector != nil {
		return nil, fmt.Errorf("register instance for %v: property injection cannot apply to a pre-built instance: %w",
			service, ErrInvalidArgument)
	}

	it := reflect.TypeOf(instance)
	for _, svc := range append([]reflect.Type{service}, cfg.aliases...) {
		if svc == nil {
			return nil, fmt.Errorf("register instance for %v: nil alias: %w", service, ErrInvalidArgument)
		}
		if !it.AssignableTo(svc) {
			return nil, fmt.Errorf("register instance for %v: %v does not satisfy %v: %w",
				service, it, svc, ErrInvalidArgument)
		}
	}

	reg := &Registration{
		id:        uuid.New(),
		services:  append([]reflect.Type{service}, cfg.aliases...),
		impl:      it,
		sharing:   Singleton,
		owned:     !cfg.external,
		activator: "provided instance",
		built:     true,
		value:     instance,
	}
	return reg, c.install(reg)
}

// RegisterFactory registers factory as the producer for service. The
// factory must be a non-variadic func returning the produced instance,
// optionally followed by an error. Factory parameters are resolved from
// the container at build time. The default sharing is Transient.
func (c *Container) RegisterFactory(service reflect.Type, factory any, opts ...RegisterOption) (*Registration, error) {
	if service == nil {
		return nil, fmt.Errorf("register factory: nil service type: %w", ErrInvalidArgument)
	}
	if isNil(factory) {
		return nil, fmt.Errorf("register factory for %v: nil factory: %w", service, ErrInvalidArgument)
	}
	fv := reflect.ValueOf(factory)
	ft := fv.Type()
	if ft.Kind() != reflect.Func {
		return nil, fmt.Errorf("register factory for %v: %v is not a func: %w", service, ft, ErrInvalidArgument)
	}
	if ft.IsVariadic() {
		return nil, fmt.Errorf("register factory for %v: variadic factories are not supported: %w", service, ErrInvalidArgument)
	}
	switch ft.NumOut() {
	case 1:
	case 2:
		if !facxreflect.IsError(ft.Out(1)) {
			return nil, fmt.Errorf("register factory for %v: second return value must be error, got %v: %w",
				service, ft.Out(1), ErrInvalidArgument)
		}
	default:
		return nil, fmt.Errorf("register factory for %v: factory must return the instance and an optional error: %w",
			service, ErrInvalidArgument)
	}
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("register factory for %v: %w", service, err)
	}

	// A factory returning an interface (commonly any) is checked against
	// the service set at build time; a concrete return type must satisfy
	// it statically.
	out := ft.Out(0)
	for _, svc := range append([]reflect.Type{service}, cfg.aliases...) {
		if svc == nil {
			return nil, fmt.Errorf("register factory for %v: nil alias: %w", service, ErrInvalidArgument)
		}
		if out.Kind() != reflect.Interface && !out.AssignableTo(svc) {
			return nil, fmt.Errorf("register factory for %v: factory produces %v which does not satisfy %v: %w",
				service, out, svc, ErrInvalidArgument)
		}
	}

	impl := out
	if out.Kind() == reflect.Interface {
		impl = nil
	}
	reg := &Registration{
		id:        uuid.New(),
		services:  append([]reflect.Type{service}, cfg.aliases...),
		impl:      impl,
		sharing:   cfg.effectiveSharing(),
		owned:     !cfg.external,
		selector:  cfg.selector,
		activator: "factory " + facxreflect.FuncName(factory),
	}
	reg.build = buildFactory(fv, cfg.selector)
	return reg, c.install(reg)
}

// RegisterType registers a reflectively-built implementation type for
// service. The implementation must be a struct or pointer-to-struct type
// assignable to service; its `inject`-tagged fields become required
// dependencies (`inject:"optional"` fields are skipped when their type is
// not registered). The default sharing is Transient.
func (c *Container) RegisterType(service, impl reflect.Type, opts ...RegisterOption) (*Registration, error) {
	if service == nil || impl == nil {
		return nil, fmt.Errorf("register type: nil service or implementation type: %w", ErrInvalidArgument)
	}
	structT, _, err := implStruct(impl)
	if err != nil {
		return nil, fmt.Errorf("register type %v for %v: %w", impl, service, err)
	}
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("register type %v for %v: %w", impl, service, err)
	}

	// Prefer producing *T; fall back to T when only the value form
	// satisfies the service.
	var produced reflect.Type
	producePtr := false
	switch {
	case reflect.PointerTo(structT).AssignableTo(service):
		produced = reflect.PointerTo(structT)
		producePtr = true
	case structT.AssignableTo(service):
		produced = structT
	default:
		return nil, fmt.Errorf("register type %v for %v: %v does not satisfy %v: %w",
			impl, service, impl, service, ErrInvalidArgument)
	}
	for _, alias := range cfg.aliases {
		if alias == nil {
			return nil, fmt.Errorf("register type %v for %v: nil alias: %w", impl, service, ErrInvalidArgument)
		}
		if !produced.AssignableTo(alias) {
			return nil, fmt.Errorf("register type %v for %v: produced %v does not satisfy alias %v: %w",
				impl, service, produced, alias, ErrInvalidArgument)
		}
	}

	reg := &Registration{
		id:        uuid.New(),
		services:  append([]reflect.Type{service}, cfg.aliases...),
		impl:      produced,
		sharing:   cfg.effectiveSharing(),
		owned:     !cfg.external,
		selector:  cfg.selector,
		activator: fmt.Sprintf("reflection %v", produced),
	}
	reg.build = buildType(structT, producePtr, cfg.selector)
	return reg, c.install(reg)
}

// install makes reg visible under every service type it declares and then
// fires registration callbacks. Callbacks run on the registering goroutine
// with no container locks held.
func (c *Container) install(reg *Registration) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return fmt.Errorf("register %v: %w", reg.services[0], ErrClosed)
	}
	for _, svc := range reg.services {
		c.registry[svc] = reg
	}
	c.order = append(c.order, reg)
	callbacks := make([]func(*Registration), len(c.callbacks))
	copy(callbacks, c.callbacks)
	c.mu.Unlock()

	for _, fn := range callbacks {
		fn(reg)
	}
	return nil
}

// Lookup returns the current registration for service without producing an
// instance.
func (c *Container) Lookup(service reflect.Type) (*Registration, bool) {
	return c.lookup(service)
}

// IsRegistered reports whether a current registration exists for service.
func (c *Container) IsRegistered(service reflect.Type) bool {
	_, ok := c.lookup(service)
	return ok
}

// Registrations returns the registrations that are current for at least
// one service type, in registration order.
func (c *Container) Registrations() []*Registration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	live := make(map[*Registration]struct{}, len(c.registry))
	for _, reg := range c.registry {
		live[reg] = struct{}{}
	}
	out := make([]*Registration, 0, len(live))
	for _, reg := range c.order {
		if _, ok := live[reg]; ok {
			out = append(out, reg)
		}
	}
	return out
}

// OnRegistered subscribes fn to the registration stream. fn is invoked
// once per registration that completes after the subscription, on the
// goroutine performing it; registrations that already exist are not
// replayed.
func (c *Container) OnRegistered(fn func(*Registration)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	c.callbacks = append(c.callbacks, fn)
	c.mu.Unlock()
}

// Resolve produces an instance for service from the root scope.
func (c *Container) Resolve(service reflect.Type) (any, error) {
	return c.root.Resolve(service)
}

// TryResolve produces an instance for service from the root scope,
// reporting (nil, false, nil) when service has no registration.
func (c *Container) TryResolve(service reflect.Type) (any, bool, error) {
	return c.root.TryResolve(service)
}

// Construct builds an instance of target in the root scope without
// requiring a registration for it.
func (c *Container) Construct(target reflect.Type, selector PropertySelector) (any, error) {
	return c.root.Construct(target, selector)
}

// BeginScope opens a child lifetime scope of the root scope.
func (c *Container) BeginScope() *Scope {
	return c.root.BeginScope()
}

// Close closes the root scope (cascading to child scopes and their cached
// instances) and then every cached singleton that the container owns, in
// reverse registration order. Instances registered with ExternallyOwned
// are skipped. Close is idempotent; all later operations fail with
// ErrClosed.
func (c *Container) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	order := make([]*Registration, len(c.order))
	copy(order, c.order)
	c.mu.Unlock()

	errs := []error{c.root.Close()}
	for i := len(order) - 1; i >= 0; i-- {
		reg := order[i]
		if !reg.owned {
			continue
		}
		v, ok := reg.cached()
		if !ok {
			continue
		}
		if closer, ok := v.(io.Closer); ok {
			errs = append(errs, closer.Close())
		}
	}
	return multierr.Combine(errs...)
}

func (c *Container) lookup(service reflect.Type) (*Registration, bool) {
	if service == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	reg, ok := c.registry[service]
	return reg, ok
}

func (c *Container) isClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

func applyOptions(opts []RegisterOption) (*registerConfig, error) {
	cfg := &registerConfig{}
	for _, opt := range opts {
		if opt == nil {
			return nil, fmt.Errorf("nil option: %w", ErrInvalidArgument)
		}
		opt(cfg)
	}
	return cfg, nil
}

func (cfg *registerConfig) effectiveSharing() Sharing {
	if cfg.sharingSet {
		return cfg.sharing
	}
	return Transient
}

// isNil reports whether v is nil, either untyped or a typed nil inside
// the interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
