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

// RegisterSingleton registers a pre-built instance as the shared
// implementation of T, replacing any previous registration for T.
func RegisterSingleton[T any](p Provider, instance T) error {
	return p.RegisterSingleton(ServiceType[T](), instance)
}

// RegisterSingletonFactory registers factory as the source of T, shared as
// a root-scoped singleton. Factories that take their dependencies as
// parameters can use [Provider.RegisterSingletonFactory] directly; the
// container resolves every parameter.
func RegisterSingletonFactory[T any](p Provider, factory func() (T, error)) error {
	return p.RegisterSingletonFactory(ServiceType[T](), factory)
}

// RegisterType registers Impl as the reflection-constructed implementation
// of Service, with transient sharing. Impl may be a struct or a pointer to
// one.
func RegisterType[Service, Impl any](p Provider) error {
	return p.RegisterType(ServiceType[Service](), ServiceType[Impl]())
}

// RegisterFactory registers factory as the source of T, with transient
// sharing. Factories that take their dependencies as parameters can use
// [Provider.RegisterFactory] directly.
func RegisterFactory[T any](p Provider, factory func() (T, error)) error {
	return p.RegisterFactory(ServiceType[T](), factory)
}

// CallbackWhenRegistered invokes callback after every future registration
// that declares T among its service types.
func CallbackWhenRegistered[T any](p Provider, callback func()) error {
	return p.CallbackWhenRegistered(ServiceType[T](), callback)
}
