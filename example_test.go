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

package facx_test

import (
	"fmt"
	"log"

	"github.com/lauxjpn/facx"
	"github.com/lauxjpn/facx/container"
)

// Greeter is the service the examples below register and resolve.
type Greeter interface {
	Greet() string
}

// EnglishGreeter is a Greeter implementation.
type EnglishGreeter struct{}

func (EnglishGreeter) Greet() string { return "hello" }

// Banner is built by the examples via property injection; note the absence
// of inject tags.
type Banner struct {
	Greeter Greeter
}

func Example() {
	c := container.New()
	defer c.Close()

	provider, err := facx.New(c)
	if err != nil {
		log.Fatal(err)
	}

	if err := facx.RegisterSingleton[Greeter](provider, EnglishGreeter{}); err != nil {
		log.Fatal(err)
	}

	greeter, err := facx.Resolve[Greeter](provider)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(greeter.Greet())

	// Output:
	// hello
}

func ExampleRegisterSingletonFactory() {
	c := container.New()
	defer c.Close()

	provider, err := facx.New(c)
	if err != nil {
		log.Fatal(err)
	}

	var built int
	err = facx.RegisterSingletonFactory[Greeter](provider, func() (Greeter, error) {
		built++
		return EnglishGreeter{}, nil
	})
	if err != nil {
		log.Fatal(err)
	}

	facx.MustResolve[Greeter](provider)
	facx.MustResolve[Greeter](provider)
	fmt.Println("factory ran", built, "time(s)")

	// Output:
	// factory ran 1 time(s)
}

func ExampleAdapter_GetSingleton() {
	c := container.New()
	defer c.Close()

	provider, err := facx.New(c)
	if err != nil {
		log.Fatal(err)
	}

	// A transient registration builds a fresh instance per resolution, so
	// GetSingleton refuses it outright.
	err = facx.RegisterFactory[Greeter](provider, func() (Greeter, error) {
		return EnglishGreeter{}, nil
	})
	if err != nil {
		log.Fatal(err)
	}

	_, err = facx.GetSingleton[Greeter](provider)
	fmt.Println(err)

	// Output:
	// facx: GetSingleton facx_test.Greeter: registered as Transient: not registered as a singleton
}

func ExampleAdapter_CallbackWhenRegistered() {
	c := container.New()
	defer c.Close()

	provider, err := facx.New(c)
	if err != nil {
		log.Fatal(err)
	}

	err = facx.CallbackWhenRegistered[Greeter](provider, func() {
		fmt.Println("greeter is now available")
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := facx.RegisterSingleton[Greeter](provider, EnglishGreeter{}); err != nil {
		log.Fatal(err)
	}

	// Output:
	// greeter is now available
}

func ExampleWithPropertyInjection() {
	c := container.New()
	defer c.Close()

	provider, err := facx.New(c, facx.WithPropertyInjection(facx.PropertyInjectionOptions{
		Mode: facx.PropertyInjectionInterfaces,
	}))
	if err != nil {
		log.Fatal(err)
	}

	if err := facx.RegisterSingleton[Greeter](provider, EnglishGreeter{}); err != nil {
		log.Fatal(err)
	}

	banner, err := facx.Construct[*Banner](provider)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(banner.Greeter.Greet())

	// Output:
	// hello
}
