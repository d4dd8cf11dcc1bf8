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
	"reflect"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/lauxjpn/facx/internal/facxreflect"
)

// PropertySelector decides which exported, settable, untagged struct fields
// of a produced instance are auto-wired from the container. Fields carrying
// an `inject` tag are dependencies and are always satisfied regardless of
// the selector.
type PropertySelector func(reflect.StructField) bool

// buildFunc produces one instance for a registration within a resolution
// session.
type buildFunc func(s *session) (any, error)

// Registration describes one component registered with a Container. Its
// metadata is immutable once the registration is visible; only the cached
// singleton instance mutates, under the registration's own lock.
type Registration struct {
	id        uuid.UUID
	services  []reflect.Type
	impl      reflect.Type
	sharing   Sharing
	owned     bool
	selector  PropertySelector
	activator string
	build     buildFunc

	// Singleton cache. built is only set on success so a failed build is
	// retried by the next resolution.
	mu    sync.Mutex
	built bool
	value any
}

// ID returns the unique identifier assigned to this registration.
func (r *Registration) ID() uuid.UUID { return r.id }

// Services returns the service types this registration satisfies: the
// declared service first, followed by any aliases added with As. The
// returned slice is a copy.
func (r *Registration) Services() []reflect.Type {
	out := make([]reflect.Type, len(r.services))
	copy(out, r.services)
	return out
}

// Implementation returns the concrete type the registration produces, or
// nil when it cannot be known statically.
func (r *Registration) Implementation() reflect.Type { return r.impl }

// Sharing returns the registration's sharing mode.
func (r *Registration) Sharing() Sharing { return r.sharing }

// ExternallyOwned reports whether the container was told not to close the
// instances this registration produces.
func (r *Registration) ExternallyOwned() bool { return !r.owned }

// Activator describes how instances are produced: a provided instance, a
// factory func, or reflection over the implementation type.
func (r *Registration) Activator() string { return r.activator }

// ServesType reports whether t is in the registration's service set. The
// match is on exact type identity, not assignability.
func (r *Registration) ServesType(t reflect.Type) bool {
	for _, s := range r.services {
		if s == t {
			return true
		}
	}
	return false
}

func (r *Registration) String() string {
	return fmt.Sprintf("%s %s <= %s (%s)",
		r.sharing, strings.Join(facxreflect.TypeNames(r.services), ", "), r.activator, r.id)
}

// cached returns the singleton value if one has been built.
func (r *Registration) cached() (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value, r.built
}

// registerConfig collects the effect of RegisterOptions.
type registerConfig struct {
	sharing    Sharing
	sharingSet bool
	aliases    []reflect.Type
	selector   PropertySelector
	external   bool
}

// RegisterOption configures a registration.
type RegisterOption func(*registerConfig)

// WithSharing sets the registration's sharing mode. The default for
// factory and reflective registrations is Transient; instance
// registrations are always Singleton and reject other modes.
func WithSharing(s Sharing) RegisterOption {
	return func(cfg *registerConfig) {
		cfg.sharing = s
		cfg.sharingSet = true
	}
}

// As adds service types the registration satisfies in addition to the one
// it was declared with. Each alias must be satisfiable by the produced
// instances.
func As(services ...reflect.Type) RegisterOption {
	return func(cfg *registerConfig) {
		cfg.aliases = append(cfg.aliases, services...)
	}
}

// WithPropertyInjection enables auto-wiring of untagged exported fields on
// instances produced by this registration. A nil selector wires every such
// field whose type is registered; a non-nil selector restricts wiring to
// the fields it accepts.
func WithPropertyInjection(selector PropertySelector) RegisterOption {
	return func(cfg *registerConfig) {
		if selector == nil {
			selector = func(reflect.StructField) bool { return true }
		}
		cfg.selector = selector
	}
}

// ExternallyOwned excludes instances produced by this registration from
// disposal when the container or scope closes.
func ExternallyOwned() RegisterOption {
	return func(cfg *registerConfig) {
		cfg.external = true
	}
}
