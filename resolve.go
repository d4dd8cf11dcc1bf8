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

// ServiceType returns the [reflect.Type] token for T, suitable for the
// non-generic [Provider] methods. Unlike reflect.TypeOf on a value, it
// names interface types themselves:
//
//	facx.ServiceType[io.Writer]() // io.Writer, not the dynamic type
func ServiceType[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// CanResolve reports whether T is currently registered with p.
func CanResolve[T any](p Provider) bool {
	ok, err := p.CanResolve(ServiceType[T]())
	return ok && err == nil
}

// Resolve returns an instance of T from p.
func Resolve[T any](p Provider) (T, error) {
	var zero T
	value, err := p.Resolve(ServiceType[T]())
	if err != nil {
		return zero, err
	}
	return as[T](value), nil
}

// MustResolve is [Resolve], panicking on error. Reserve it for program
// setup paths where a missing service is unrecoverable.
func MustResolve[T any](p Provider) T {
	value, err := Resolve[T](p)
	if err != nil {
		panic(err)
	}
	return value
}

// TryResolve returns an instance of T from p, reporting a missing
// registration as ok == false instead of an error.
func TryResolve[T any](p Provider) (value T, ok bool, err error) {
	var zero T
	v, ok, err := p.TryResolve(ServiceType[T]())
	if err != nil || !ok {
		return zero, false, err
	}
	return as[T](v), true, nil
}

// GetSingleton returns the shared instance of T, which must be registered
// as a root-scoped singleton.
func GetSingleton[T any](p Provider) (T, error) {
	var zero T
	value, err := p.GetSingleton(ServiceType[T]())
	if err != nil {
		return zero, err
	}
	return as[T](value), nil
}

// Construct builds an instance of T through p without registering it.
func Construct[T any](p Provider) (T, error) {
	var zero T
	value, err := p.Construct(ServiceType[T]())
	if err != nil {
		return zero, err
	}
	return as[T](value), nil
}

// as narrows a value the container guaranteed to be assignable to T. The
// reflection fallback covers values whose dynamic type is assignable to T
// without being identical to it, such as a defined type resolved for an
// unnamed service type.
func as[T any](value any) T {
	if out, ok := value.(T); ok {
		return out
	}
	var out T
	reflect.ValueOf(&out).Elem().Set(reflect.ValueOf(value))
	return out
}
