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

// Package container implements the dependency container that facx adapts:
// a reflection-keyed registry of service registrations with sharing modes,
// lifetime scopes, registration metadata, and a registration notification
// stream.
//
// # Registrations
//
// A service type maps to at most one current registration. Components are
// registered three ways:
//
//   - [Container.RegisterInstance] stores a pre-built value (always
//     [Singleton]),
//   - [Container.RegisterFactory] stores a func whose parameters are
//     resolved from the container when an instance is needed,
//   - [Container.RegisterType] stores a struct type built reflectively,
//     with `inject`-tagged fields as its dependencies.
//
// Each registration carries metadata — a unique ID, the service types it
// satisfies, its [Sharing] mode — inspectable through [Container.Lookup]
// without producing an instance.
//
// # Sharing and scopes
//
// [Transient] registrations build a fresh instance per resolution,
// [Scoped] registrations cache one instance per lifetime scope, and
// [Singleton] registrations cache one instance at the root. Child scopes
// are opened with [Container.BeginScope]; closing a scope (or the
// container) closes the io.Closer instances it cached, in reverse
// creation order.
//
// # Notifications
//
// [Container.OnRegistered] subscribes a callback to registrations that
// complete after the subscription. Callbacks run on the registering
// goroutine with no container locks held, so they may register and
// resolve freely.
package container
