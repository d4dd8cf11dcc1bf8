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
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyInjectionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "None", PropertyInjectionNone.String())
	assert.Equal(t, "Interfaces", PropertyInjectionInterfaces.String())
	assert.Equal(t, "All", PropertyInjectionAll.String())
	assert.Equal(t, "PropertyInjection(42)", PropertyInjection(42).String())
}

func TestPropertyInjectionSelector(t *testing.T) {
	t.Parallel()

	iface := reflect.StructField{Name: "Log", Type: reflect.TypeOf((*error)(nil)).Elem()}
	concrete := reflect.StructField{Name: "Count", Type: reflect.TypeOf(0)}

	t.Run("none", func(t *testing.T) {
		opts := PropertyInjectionOptions{Mode: PropertyInjectionNone}
		assert.Nil(t, opts.selector())

		opts.Selector = func(reflect.StructField) bool { return true }
		assert.Nil(t, opts.selector(), "selector is ignored while the mode is off")
	})

	t.Run("interfaces", func(t *testing.T) {
		sel := PropertyInjectionOptions{Mode: PropertyInjectionInterfaces}.selector()
		require.NotNil(t, sel)
		assert.True(t, sel(iface))
		assert.False(t, sel(concrete))
	})

	t.Run("all", func(t *testing.T) {
		sel := PropertyInjectionOptions{Mode: PropertyInjectionAll}.selector()
		require.NotNil(t, sel)
		assert.True(t, sel(iface))
		assert.True(t, sel(concrete))
	})

	t.Run("override", func(t *testing.T) {
		sel := PropertyInjectionOptions{
			Mode:     PropertyInjectionAll,
			Selector: func(f reflect.StructField) bool { return f.Name == "Count" },
		}.selector()
		require.NotNil(t, sel)
		assert.False(t, sel(iface))
		assert.True(t, sel(concrete))
	})
}
