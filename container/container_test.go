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
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

type greeter interface {
	Greet() string
}

type staticGreeter struct {
	msg string
}

func (g *staticGreeter) Greet() string { return g.msg }

type namer interface {
	Name() string
}

func (g *staticGreeter) Name() string { return "static" }

func TestRegisterInstance(t *testing.T) {
	t.Parallel()

	t.Run("registers as singleton", func(t *testing.T) {
		c := New()
		g := &staticGreeter{msg: "hi"}
		reg, err := c.RegisterInstance(typeOf[greeter](), g)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, reg.ID())
		assert.Equal(t, Singleton, reg.Sharing())
		assert.Equal(t, reflect.TypeOf(g), reg.Implementation())
		assert.True(t, reg.ServesType(typeOf[greeter]()))

		got, err := c.Resolve(typeOf[greeter]())
		require.NoError(t, err)
		assert.Same(t, g, got)
	})

	t.Run("rejects nil service type", func(t *testing.T) {
		c := New()
		_, err := c.RegisterInstance(nil, &staticGreeter{})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("rejects nil instance", func(t *testing.T) {
		c := New()
		_, err := c.RegisterInstance(typeOf[greeter](), nil)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("rejects typed nil instance", func(t *testing.T) {
		c := New()
		var g *staticGreeter
		_, err := c.RegisterInstance(typeOf[greeter](), g)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("rejects unsatisfied service", func(t *testing.T) {
		c := New()
		_, err := c.RegisterInstance(typeOf[greeter](), 42)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("rejects non-singleton sharing", func(t *testing.T) {
		c := New()
		_, err := c.RegisterInstance(typeOf[greeter](), &staticGreeter{}, WithSharing(Transient))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("rejects property injection", func(t *testing.T) {
		c := New()
		_, err := c.RegisterInstance(typeOf[greeter](), &staticGreeter{}, WithPropertyInjection(nil))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("aliases satisfy additional services", func(t *testing.T) {
		c := New()
		g := &staticGreeter{msg: "hi"}
		reg, err := c.RegisterInstance(typeOf[greeter](), g, As(typeOf[namer]()))
		require.NoError(t, err)
		assert.True(t, reg.ServesType(typeOf[namer]()))

		byAlias, err := c.Resolve(typeOf[namer]())
		require.NoError(t, err)
		assert.Same(t, g, byAlias)

		lookedUp, ok := c.Lookup(typeOf[namer]())
		require.True(t, ok)
		assert.Same(t, reg, lookedUp)
	})

	t.Run("rejects unsatisfied alias", func(t *testing.T) {
		c := New()
		_, err := c.RegisterInstance(typeOf[*staticGreeter](), &staticGreeter{}, As(typeOf[error]()))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestRegisterFactory(t *testing.T) {
	t.Parallel()

	t.Run("zero-argument factory", func(t *testing.T) {
		c := New()
		_, err := c.RegisterFactory(typeOf[greeter](), func() *staticGreeter {
			return &staticGreeter{msg: "made"}
		})
		require.NoError(t, err)

		got, err := c.Resolve(typeOf[greeter]())
		require.NoError(t, err)
		assert.Equal(t, "made", got.(greeter).Greet())
	})

	t.Run("rejects nil factory", func(t *testing.T) {
		c := New()
		_, err := c.RegisterFactory(typeOf[greeter](), nil)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("rejects non-func factory", func(t *testing.T) {
		c := New()
		_, err := c.RegisterFactory(typeOf[greeter](), "not a func")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("rejects variadic factory", func(t *testing.T) {
		c := New()
		_, err := c.RegisterFactory(typeOf[greeter](), func(msgs ...string) *staticGreeter {
			return &staticGreeter{}
		})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("rejects wrong return shape", func(t *testing.T) {
		c := New()
		_, err := c.RegisterFactory(typeOf[greeter](), func() (*staticGreeter, string) {
			return &staticGreeter{}, ""
		})
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, err = c.RegisterFactory(typeOf[greeter](), func() {})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("rejects incompatible return type", func(t *testing.T) {
		c := New()
		_, err := c.RegisterFactory(typeOf[greeter](), func() int { return 0 })
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("interface return type is checked at resolve time", func(t *testing.T) {
		c := New()
		_, err := c.RegisterFactory(typeOf[greeter](), func() any { return 42 })
		require.NoError(t, err)

		_, err = c.Resolve(typeOf[greeter]())
		var re *ResolutionError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, typeOf[greeter](), re.Service)
	})

	t.Run("defaults to transient", func(t *testing.T) {
		c := New()
		reg, err := c.RegisterFactory(typeOf[*staticGreeter](), func() *staticGreeter {
			return &staticGreeter{}
		})
		require.NoError(t, err)
		assert.Equal(t, Transient, reg.Sharing())
	})
}

func TestRegisterType(t *testing.T) {
	t.Parallel()

	t.Run("pointer implementation", func(t *testing.T) {
		c := New()
		reg, err := c.RegisterType(typeOf[greeter](), typeOf[*staticGreeter]())
		require.NoError(t, err)
		assert.Equal(t, typeOf[*staticGreeter](), reg.Implementation())

		got, err := c.Resolve(typeOf[greeter]())
		require.NoError(t, err)
		assert.IsType(t, &staticGreeter{}, got)
	})

	t.Run("struct implementation is normalized to pointer", func(t *testing.T) {
		c := New()
		reg, err := c.RegisterType(typeOf[greeter](), typeOf[staticGreeter]())
		require.NoError(t, err)
		assert.Equal(t, typeOf[*staticGreeter](), reg.Implementation())
	})

	t.Run("rejects non-struct implementation", func(t *testing.T) {
		c := New()
		_, err := c.RegisterType(typeOf[greeter](), typeOf[int]())
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("rejects implementation that does not satisfy the service", func(t *testing.T) {
		type plain struct{}
		c := New()
		_, err := c.RegisterType(typeOf[greeter](), typeOf[plain]())
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestReplacementRegistration(t *testing.T) {
	t.Parallel()

	c := New()
	first := &staticGreeter{msg: "first"}
	_, err := c.RegisterInstance(typeOf[greeter](), first)
	require.NoError(t, err)

	second := &staticGreeter{msg: "second"}
	reg2, err := c.RegisterInstance(typeOf[greeter](), second)
	require.NoError(t, err)

	got, err := c.Resolve(typeOf[greeter]())
	require.NoError(t, err)
	assert.Same(t, second, got, "later registration must win")

	current, ok := c.Lookup(typeOf[greeter]())
	require.True(t, ok)
	assert.Same(t, reg2, current)

	regs := c.Registrations()
	for _, reg := range regs {
		if reg.ServesType(typeOf[greeter]()) {
			assert.Same(t, reg2, reg, "replaced registration must not be listed")
		}
	}
}

func TestLookupAndIsRegistered(t *testing.T) {
	t.Parallel()

	c := New()
	assert.False(t, c.IsRegistered(typeOf[greeter]()))
	_, ok := c.Lookup(typeOf[greeter]())
	assert.False(t, ok)
	_, ok = c.Lookup(nil)
	assert.False(t, ok)

	reg, err := c.RegisterInstance(typeOf[greeter](), &staticGreeter{})
	require.NoError(t, err)

	assert.True(t, c.IsRegistered(typeOf[greeter]()))
	got, ok := c.Lookup(typeOf[greeter]())
	require.True(t, ok)
	assert.Same(t, reg, got)

	// The container registers itself so factories can depend on it.
	assert.True(t, c.IsRegistered(typeOf[*Container]()))
}

func TestOnRegistered(t *testing.T) {
	t.Parallel()

	t.Run("fires for future registrations only", func(t *testing.T) {
		c := New()
		_, err := c.RegisterInstance(typeOf[*staticGreeter](), &staticGreeter{})
		require.NoError(t, err)

		var seen []*Registration
		c.OnRegistered(func(reg *Registration) { seen = append(seen, reg) })
		assert.Empty(t, seen, "existing registrations must not be replayed")

		reg, err := c.RegisterInstance(typeOf[greeter](), &staticGreeter{})
		require.NoError(t, err)
		require.Len(t, seen, 1)
		assert.Same(t, reg, seen[0])
	})

	t.Run("callback may register and resolve", func(t *testing.T) {
		c := New()
		c.OnRegistered(func(reg *Registration) {
			// Registering the dependent service from inside the callback
			// must not deadlock: callbacks run with no locks held.
			if reg.ServesType(typeOf[greeter]()) {
				_, err := c.RegisterInstance(typeOf[namer](), &staticGreeter{})
				assert.NoError(t, err)
				_, err = c.Resolve(typeOf[greeter]())
				assert.NoError(t, err)
			}
		})

		_, err := c.RegisterInstance(typeOf[greeter](), &staticGreeter{})
		require.NoError(t, err)
		assert.True(t, c.IsRegistered(typeOf[namer]()))
	})

	t.Run("every subscriber sees every registration", func(t *testing.T) {
		c := New()
		var a, b int
		c.OnRegistered(func(*Registration) { a++ })
		c.OnRegistered(func(*Registration) { b++ })

		_, err := c.RegisterInstance(typeOf[greeter](), &staticGreeter{})
		require.NoError(t, err)
		_, err = c.RegisterFactory(typeOf[namer](), func() *staticGreeter { return &staticGreeter{} })
		require.NoError(t, err)

		assert.Equal(t, 2, a)
		assert.Equal(t, 2, b)
	})
}

type closeRecorder struct {
	name string
	log  *[]string
	err  error
}

func (c *closeRecorder) Close() error {
	*c.log = append(*c.log, c.name)
	return c.err
}

func TestContainerClose(t *testing.T) {
	t.Parallel()

	t.Run("closes owned singletons in reverse order", func(t *testing.T) {
		var log []string
		c := New()
		_, err := c.RegisterInstance(typeOf[*closeRecorder](), &closeRecorder{name: "first", log: &log})
		require.NoError(t, err)

		type second struct{ closeRecorder }
		_, err = c.RegisterFactory(typeOf[*second](), func() *second {
			return &second{closeRecorder{name: "second", log: &log}}
		}, WithSharing(Singleton))
		require.NoError(t, err)
		_, err = c.Resolve(typeOf[*second]())
		require.NoError(t, err)

		require.NoError(t, c.Close())
		assert.Equal(t, []string{"second", "first"}, log)
	})

	t.Run("skips externally owned instances", func(t *testing.T) {
		var log []string
		c := New()
		_, err := c.RegisterInstance(typeOf[*closeRecorder](), &closeRecorder{name: "external", log: &log}, ExternallyOwned())
		require.NoError(t, err)

		require.NoError(t, c.Close())
		assert.Empty(t, log)
	})

	t.Run("skips singletons never built", func(t *testing.T) {
		var log []string
		c := New()
		_, err := c.RegisterFactory(typeOf[*closeRecorder](), func() *closeRecorder {
			return &closeRecorder{name: "lazy", log: &log}
		}, WithSharing(Singleton))
		require.NoError(t, err)

		require.NoError(t, c.Close())
		assert.Empty(t, log)
	})

	t.Run("combines close errors", func(t *testing.T) {
		var log []string
		errBoom := errors.New("boom")
		c := New()
		_, err := c.RegisterInstance(typeOf[*closeRecorder](), &closeRecorder{name: "faulty", log: &log, err: errBoom})
		require.NoError(t, err)

		assert.ErrorIs(t, c.Close(), errBoom)
	})

	t.Run("poisons later operations", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Close())

		_, err := c.RegisterInstance(typeOf[greeter](), &staticGreeter{})
		assert.ErrorIs(t, err, ErrClosed)
		_, err = c.Resolve(typeOf[greeter]())
		assert.ErrorIs(t, err, ErrClosed)
		_, _, err = c.TryResolve(typeOf[greeter]())
		assert.ErrorIs(t, err, ErrClosed)

		assert.NoError(t, c.Close(), "close must be idempotent")
	})
}

func TestRegistrationString(t *testing.T) {
	t.Parallel()

	c := New()
	reg, err := c.RegisterInstance(typeOf[greeter](), &staticGreeter{}, As(typeOf[namer]()))
	require.NoError(t, err)

	s := reg.String()
	assert.Contains(t, s, "Singleton")
	assert.Contains(t, s, "container.greeter")
	assert.Contains(t, s, "container.namer")
	assert.Contains(t, s, reg.ID().String())
}

func TestSharingString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Transient", Transient.String())
	assert.Equal(t, "Scoped", Scoped.String())
	assert.Equal(t, "Singleton", Singleton.String())
	assert.Equal(t, "Unknown", Sharing(99).String())
}
