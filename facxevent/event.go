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

package facxevent

import (
	"reflect"
	"time"

	"github.com/lauxjpn/facx/container"
)

// Event is an event emitted by a facx provider.
type Event interface {
	event() // restricts implementations to this package
}

// Passing events by type to make Event hashable in the future.
func (*Registered) event()         {}
func (*RegisterFailed) event()     {}
func (*Resolved) event()           {}
func (*ResolveFailed) event()      {}
func (*Constructed) event()        {}
func (*ConstructFailed) event()    {}
func (*CallbackRegistered) event() {}
func (*CallbackInvoked) event()    {}

// Registered is emitted after a registration became visible in the
// container.
type Registered struct {
	// Registration carries the new registration's metadata: its ID, the
	// service types it satisfies, and its sharing mode.
	Registration *container.Registration
}

// RegisterFailed is emitted when the container rejected a registration.
type RegisterFailed struct {
	Service reflect.Type
	Err     error
}

// Resolved is emitted after an instance was produced for a service.
type Resolved struct {
	Service reflect.Type
}

// ResolveFailed is emitted when producing an instance failed. A tryResolve
// miss is not a failure and emits nothing.
type ResolveFailed struct {
	Service reflect.Type
	Err     error
}

// Constructed is emitted after an unregistered type was built.
type Constructed struct {
	Target reflect.Type
}

// ConstructFailed is emitted when building an unregistered type failed.
type ConstructFailed struct {
	Target reflect.Type
	Err    error
}

// CallbackRegistered is emitted when a registration callback was
// subscribed for a service type.
type CallbackRegistered struct {
	Service reflect.Type
}

// CallbackInvoked is emitted after a registration callback ran.
type CallbackInvoked struct {
	Service reflect.Type
	Runtime time.Duration
}
