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

	"go.uber.org/multierr"
)

// Scope is a lifetime scope. Scoped registrations cache one instance per
// Scope; Singleton registrations are shared across all scopes of a
// container; Transient registrations never cache. Closing a scope closes
// the instances it cached, in reverse creation order, and every child
// scope opened from it.
type Scope struct {
	c      *Container
	parent *Scope

	mu        sync.Mutex
	instances map[*Registration]any
	order     []*Registration
	children  []*Scope
	closed    bool
}

func newScope(c *Container, parent *Scope) *Scope {
	return &Scope{
		c:         c,
		parent:    parent,
		instances: make(map[*Registration]any),
	}
}

// BeginScope opens a child lifetime scope.
func (s *Scope) BeginScope() *Scope {
	child := newScope(s.c, s)
	s.mu.Lock()
	s.children = append(s.children, child)
	s.mu.Unlock()
	return child
}

// Resolve produces an instance for the requested service type. It returns
// a *NotRegisteredError when no registration exists and a *ResolutionError
// when a registration exists but producing the instance failed.
func (s *Scope) Resolve(service reflect.Type) (any, error) {
	if err := s.guard(service); err != nil {
		return nil, err
	}
	sess := &session{scope: s}
	return sess.resolve(service, true)
}

// TryResolve is Resolve except that a missing registration is not an
// error: it reports (nil, false, nil). Failures producing an instance from
// an existing registration are still returned.
func (s *Scope) TryResolve(service reflect.Type) (any, bool, error) {
	if err := s.guard(service); err != nil {
		return nil, false, err
	}
	if _, ok := s.c.lookup(service); !ok {
		return nil, false, nil
	}
	sess := &session{scope: s}
	v, err := sess.resolve(service, true)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// Construct builds an instance of target without requiring a registration
// for it. The target must be a struct or pointer-to-struct type; its
// `inject`-tagged fields are satisfied from the container and, when
// selector is non-nil, untagged exported fields the selector accepts are
// auto-wired too. Constructed instances are never cached or tracked for
// disposal.
func (s *Scope) Construct(target reflect.Type, selector PropertySelector) (any, error) {
	if err := s.guard(target); err != nil {
		return nil, err
	}
	structT, producePtr, err := implStruct(target)
	if err != nil {
		return nil, err
	}
	sess := &session{scope: s}
	v, err := sess.buildStruct(structT, producePtr, selector)
	if err != nil {
		return nil, &ResolutionError{Service: target, Err: err}
	}
	return v, nil
}

func (s *Scope) guard(t reflect.Type) error {
	if t == nil {
		return fmt.Errorf("nil service type: %w", ErrInvalidArgument)
	}
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed || s.c.isClosed() {
		return fmt.Errorf("resolve %v: %w", t, ErrClosed)
	}
	return nil
}

// cachedInstance returns the scoped instance for reg, if this scope
// already built one.
func (s *Scope) cachedInstance(reg *Registration) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.instances[reg]
	return v, ok
}

// storeInstance records a freshly built scoped instance. If another
// goroutine won the race, the stored instance wins and the duplicate is
// closed best-effort.
func (s *Scope) storeInstance(reg *Registration, v any) any {
	s.mu.Lock()
	if prior, ok := s.instances[reg]; ok {
		s.mu.Unlock()
		if c, ok := v.(io.Closer); ok && reg.owned {
			_ = c.Close()
		}
		return prior
	}
	s.instances[reg] = v
	s.order = append(s.order, reg)
	s.mu.Unlock()
	return v
}

// Close closes every child scope and then the instances this scope
// cached, in reverse creation order. Close is idempotent; later
// resolutions through the scope fail with ErrClosed.
func (s *Scope) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	children := s.children
	order := s.order
	instances := s.instances
	s.children = nil
	s.order = nil
	s.instances = make(map[*Registration]any)
	s.mu.Unlock()

	var errs []error
	for i := len(children) - 1; i >= 0; i-- {
		errs = append(errs, children[i].Close())
	}
	for i := len(order) - 1; i >= 0; i-- {
		reg := order[i]
		if !reg.owned {
			continue
		}
		if c, ok := instances[reg].(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	return multierr.Combine(errs...)
}
