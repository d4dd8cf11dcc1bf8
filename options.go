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

import "github.com/lauxjpn/facx/facxevent"

// Option configures an [Adapter] at construction time.
type Option interface {
	apply(*Adapter)
}

type optionFunc func(*Adapter)

func (f optionFunc) apply(a *Adapter) { f(a) }

// WithPropertyInjection sets the property-injection policy the adapter
// attaches to every registration it makes, except pre-built instances
// registered through [Adapter.RegisterSingleton], which are handed to the
// container exactly as given.
//
// The default policy is off.
func WithPropertyInjection(opts PropertyInjectionOptions) Option {
	return optionFunc(func(a *Adapter) {
		a.policy = opts
	})
}

// WithLogger sets the logger that receives the adapter's
// [facxevent.Event] stream. A nil logger is ignored; the default is
// [facxevent.NopLogger], which keeps the adapter silent.
func WithLogger(log facxevent.Logger) Option {
	return optionFunc(func(a *Adapter) {
		if log != nil {
			a.log = log
		}
	})
}
