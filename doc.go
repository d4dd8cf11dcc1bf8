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

// Package facx adapts a [container.Container] to the service-provider
// contract that application frameworks program against: register a service
// by type, resolve it later, and get told when somebody else registers it.
//
// The split matters because the two sides disagree on defaults. The
// container is explicit about sharing, ownership, and aliases; framework
// code wants four verbs (register, resolve, try, singleton) and expects
// every registration to replace the previous one for the same service
// type. [Adapter] translates between the two without adding locking or
// caching of its own; all state lives in the container it wraps.
//
// Build one adapter per container and share it freely:
//
//	c := container.New()
//	provider, err := facx.New(c)
//	if err != nil {
//		// ...
//	}
//
//	err = facx.RegisterSingleton[Clock](provider, clock.New())
//	clock, err := facx.Resolve[Clock](provider)
//
// The generic helpers ([Resolve], [RegisterSingleton], and friends) are
// thin wrappers over the [Provider] methods, which take [reflect.Type]
// tokens and exist for callers that discover service types at runtime.
//
// # Property injection
//
// Frameworks that attach services to view-model style structs after
// construction can opt in with [WithPropertyInjection]. The policy applies
// to every registration made through the adapter except pre-built
// instances, which the adapter hands over exactly as given:
//
//	provider, err := facx.New(c, facx.WithPropertyInjection(facx.PropertyInjectionOptions{
//		Mode: facx.PropertyInjectionInterfaces,
//	}))
//
// # Observability
//
// The adapter never logs on its own. Pass [WithLogger] a
// [facxevent.Logger] to see registrations, resolutions, and callback
// activity; see the facxevent package for console, zap, slog, and zerolog
// backends.
package facx // import "github.com/lauxjpn/facx"
