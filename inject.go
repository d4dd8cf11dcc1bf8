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
	"fmt"
	"reflect"

	"github.com/lauxjpn/facx/container"
)

// PropertyInjection selects which untagged exported struct fields the
// provider fills in after constructing an instance. Fields tagged
// `inject:""` are declared dependencies and are always filled, whatever the
// mode.
type PropertyInjection int

const (
	// PropertyInjectionNone leaves untagged fields alone. This is the
	// default.
	PropertyInjectionNone PropertyInjection = iota

	// PropertyInjectionInterfaces fills exported interface-typed fields
	// whose type is registered. Concrete-typed fields are left alone.
	PropertyInjectionInterfaces

	// PropertyInjectionAll fills every exported settable field whose type
	// is registered.
	PropertyInjectionAll
)

// String returns a human-readable representation of the mode.
func (pi PropertyInjection) String() string {
	switch pi {
	case PropertyInjectionNone:
		return "None"
	case PropertyInjectionInterfaces:
		return "Interfaces"
	case PropertyInjectionAll:
		return "All"
	default:
		return fmt.Sprintf("PropertyInjection(%d)", int(pi))
	}
}

// PropertyInjectionOptions describes the property-injection policy an
// [Adapter] applies to the registrations it makes. Pass it to
// [WithPropertyInjection].
type PropertyInjectionOptions struct {
	// Mode picks the fields to fill. PropertyInjectionNone disables the
	// policy entirely, including any Selector.
	Mode PropertyInjection

	// Selector, when non-nil, replaces the Mode's default field selection
	// rule. It runs only for exported untagged fields; returning true
	// injects the field if its type is registered, returning false skips
	// it. Ignored while Mode is PropertyInjectionNone.
	Selector func(f reflect.StructField) bool
}

// selector translates the options into the container's per-registration
// selector, or nil when the policy is off.
func (o PropertyInjectionOptions) selector() container.PropertySelector {
	if o.Mode == PropertyInjectionNone {
		return nil
	}
	if o.Selector != nil {
		return container.PropertySelector(o.Selector)
	}
	if o.Mode == PropertyInjectionInterfaces {
		return func(f reflect.StructField) bool {
			return f.Type.Kind() == reflect.Interface
		}
	}
	return func(reflect.StructField) bool { return true }
}
