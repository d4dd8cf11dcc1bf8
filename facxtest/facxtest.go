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

// Package facxtest provides a facx provider for unit tests: setup steps
// that a test expects to succeed fail the test immediately instead of
// returning errors the test would have to thread through.
package facxtest

import (
	"reflect"

	"github.com/lauxjpn/facx"
	"github.com/lauxjpn/facx/container"
)

// TB is a subset of the standard library's testing.TB interface. It's
// satisfied by both *testing.T and *testing.B.
type TB interface {
	Errorf(string, ...any)
	FailNow()
}

// Provider is a [facx.Provider] for tests. It embeds a [facx.Adapter] over
// a dedicated container, so the facx generic helpers work with it
// unchanged, and adds test-failing variants of the registration and
// resolution operations.
type Provider struct {
	*facx.Adapter

	tb TB
}

// NewProvider builds a Provider over a fresh container, failing the test
// if the adapter can't be constructed.
func NewProvider(tb TB, opts ...facx.Option) *Provider {
	adapter, err := facx.New(container.New(), opts...)
	if err != nil {
		tb.Errorf("provider didn't build cleanly: %v", err)
		tb.FailNow()
		return nil
	}
	return &Provider{Adapter: adapter, tb: tb}
}

// MustRegisterSingleton registers a pre-built instance as service, failing
// the test on error.
func (p *Provider) MustRegisterSingleton(service reflect.Type, instance any) {
	p.must("register singleton", service, p.RegisterSingleton(service, instance))
}

// MustRegisterSingletonFactory registers a singleton factory for service,
// failing the test on error.
func (p *Provider) MustRegisterSingletonFactory(service reflect.Type, factory any) {
	p.must("register singleton factory", service, p.RegisterSingletonFactory(service, factory))
}

// MustRegisterType registers impl as the implementation of service, failing
// the test on error.
func (p *Provider) MustRegisterType(service, impl reflect.Type) {
	p.must("register type", service, p.RegisterType(service, impl))
}

// MustRegisterFactory registers a transient factory for service, failing
// the test on error.
func (p *Provider) MustRegisterFactory(service reflect.Type, factory any) {
	p.must("register factory", service, p.RegisterFactory(service, factory))
}

// MustResolve resolves service, failing the test on error.
func (p *Provider) MustResolve(service reflect.Type) any {
	value, err := p.Resolve(service)
	p.must("resolve", service, err)
	return value
}

// MustGetSingleton returns the shared instance of service, failing the test
// on error.
func (p *Provider) MustGetSingleton(service reflect.Type) any {
	value, err := p.GetSingleton(service)
	p.must("get singleton", service, err)
	return value
}

// RequireClose closes the backing container, failing the test if any owned
// instance fails to dispose.
func (p *Provider) RequireClose() {
	if err := p.Container().Close(); err != nil {
		p.tb.Errorf("provider didn't close cleanly: %v", err)
		p.tb.FailNow()
	}
}

func (p *Provider) must(op string, service reflect.Type, err error) {
	if err != nil {
		p.tb.Errorf("%s %v didn't succeed: %v", op, service, err)
		p.tb.FailNow()
	}
}
