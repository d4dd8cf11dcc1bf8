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

package facxreflect

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type hollerer interface {
	Holler()
}

type impl struct{}

func (impl) Holler() {}

func TestTypeName(t *testing.T) {
	t.Run("Primitive", func(t *testing.T) {
		assert.Equal(t, "int", TypeName(reflect.TypeOf(0)))
	})
	t.Run("Pointer", func(t *testing.T) {
		assert.Equal(t, "*facxreflect.impl", TypeName(reflect.TypeOf(&impl{})))
	})
	t.Run("Interface", func(t *testing.T) {
		assert.Equal(t, "facxreflect.hollerer",
			TypeName(reflect.TypeOf((*hollerer)(nil)).Elem()))
	})
	t.Run("Nil", func(t *testing.T) {
		assert.Equal(t, "<nil>", TypeName(nil))
	})
}

func TestTypeNames(t *testing.T) {
	names := TypeNames([]reflect.Type{
		reflect.TypeOf(""),
		reflect.TypeOf((*hollerer)(nil)).Elem(),
	})
	assert.Equal(t, []string{"string", "facxreflect.hollerer"}, names)
}

func someFunc() {}

func TestFuncName(t *testing.T) {
	assert.Equal(t,
		"github.com/lauxjpn/facx/internal/facxreflect.someFunc()",
		FuncName(someFunc))
	assert.Equal(t, "n/a", FuncName(struct{}{}))
}

func TestIsError(t *testing.T) {
	assert.True(t, IsError(reflect.TypeOf((*error)(nil)).Elem()))
	assert.False(t, IsError(reflect.TypeOf("")))
	assert.False(t, IsError(reflect.TypeOf((*hollerer)(nil)).Elem()))
}
