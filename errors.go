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

import (
	"errors"

	"github.com/lauxjpn/facx/container"
)

// ErrInvalidArgument is wrapped by errors returned for nil or otherwise
// unusable arguments, before the container is touched. It aliases the
// container's sentinel so errors.Is gives one answer no matter which layer
// rejected the call.
var ErrInvalidArgument = container.ErrInvalidArgument

// ErrNotSingleton is wrapped by [Adapter.GetSingleton] errors for services
// that are registered, but not as root-scoped singletons. Resolving such a
// service would mint a fresh instance, which is never what a GetSingleton
// caller wants.
var ErrNotSingleton = errors.New("not registered as a singleton")

// IsNotRegistered reports whether err indicates that a service has no
// registration, including causes buried inside a
// [container.ResolutionError].
func IsNotRegistered(err error) bool {
	return container.IsNotRegistered(err)
}
