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
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/lauxjpn/facx/internal/facxreflect"
)

var (
	// ErrInvalidArgument is wrapped by errors reporting arguments that can
	// never form a valid registration or resolution: nil types, nil
	// instances, factories with unusable signatures, implementations that
	// do not satisfy the declared service.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrClosed is wrapped by errors returned from operations attempted
	// after the container or scope has been closed.
	ErrClosed = errors.New("container is closed")
)

// NotRegisteredError reports that no registration exists for the requested
// service type.
type NotRegisteredError struct {
	Service reflect.Type
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("no registration for %v", facxreflect.TypeName(e.Service))
}

// IsNotRegistered reports whether err, or any error it wraps, is a
// *NotRegisteredError.
func IsNotRegistered(err error) bool {
	var nre *NotRegisteredError
	return errors.As(err, &nre)
}

// ResolutionError reports that a registration exists for the service but
// producing an instance failed. The cause is retained and may itself be a
// *NotRegisteredError (a missing dependency), a *CycleError, or an error
// returned by a factory.
type ResolutionError struct {
	Service reflect.Type
	Err     error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving %v: %v", facxreflect.TypeName(e.Service), e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// CycleError reports a dependency cycle found while producing an instance.
// Path lists the service types on the cycle in resolution order; the last
// element depends on the first.
type CycleError struct {
	Path []reflect.Type
}

func (e *CycleError) Error() string {
	return "dependency cycle: " + strings.Join(facxreflect.TypeNames(e.Path), " -> ")
}
