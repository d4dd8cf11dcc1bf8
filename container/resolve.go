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
)

// session carries the state of one resolution: the scope the caller
// resolved through and the path of registrations currently being built,
// for cycle detection.
type session struct {
	scope *Scope
	path  []*Registration
}

// resolve produces an instance for service. At the top of a resolution,
// failure to build from an existing registration is wrapped in a
// *ResolutionError; nested resolutions return the raw cause so the top
// level wraps exactly once.
func (s *session) resolve(service reflect.Type, top bool) (any, error) {
	reg, ok := s.scope.c.lookup(service)
	if !ok {
		return nil, &NotRegisteredError{Service: service}
	}
	v, err := s.instantiate(reg)
	if err == nil && !reflect.TypeOf(v).AssignableTo(service) {
		err = fmt.Errorf("registration produced %T which does not satisfy %v", v, service)
	}
	if err != nil {
		if top {
			return nil, &ResolutionError{Service: service, Err: err}
		}
		return nil, err
	}
	return v, nil
}

// instantiate dispatches on the registration's sharing mode. The path
// check runs before any registration lock is taken so that cyclic graphs
// fail with a *CycleError instead of deadlocking.
func (s *session) instantiate(reg *Registration) (any, error) {
	for _, p := range s.path {
		if p == reg {
			return nil, s.cycleError(reg)
		}
	}
	s.path = append(s.path, reg)
	defer func() { s.path = s.path[:len(s.path)-1] }()

	switch reg.sharing {
	case Singleton:
		if v, ok := reg.cached(); ok {
			return v, nil
		}
		reg.mu.Lock()
		defer reg.mu.Unlock()
		if reg.built {
			return reg.value, nil
		}
		v, err := reg.build(s)
		if err != nil {
			return nil, err
		}
		reg.value, reg.built = v, true
		return v, nil

	case Scoped:
		if v, ok := s.scope.cachedInstance(reg); ok {
			return v, nil
		}
		v, err := reg.build(s)
		if err != nil {
			return nil, err
		}
		return s.scope.storeInstance(reg, v), nil

	default:
		return reg.build(s)
	}
}

func (s *session) cycleError(reg *Registration) error {
	start := 0
	for i, p := range s.path {
		if p == reg {
			start = i
			break
		}
	}
	var path []reflect.Type
	for _, p := range s.path[start:] {
		path = append(path, p.services[0])
	}
	path = append(path, reg.services[0])
	return &CycleError{Path: path}
}

// buildFactory returns the build step for a factory registration: resolve
// the factory's parameters, call it, reject nil results, and apply the
// property selector to the produced instance.
func buildFactory(fv reflect.Value, selector PropertySelector) buildFunc {
	ft := fv.Type()
	return func(s *session) (any, error) {
		args := make([]reflect.Value, ft.NumIn())
		for i := range args {
			dep, err := s.resolve(ft.In(i), false)
			if err != nil {
				return nil, fmt.Errorf("factory argument %d: %w", i, err)
			}
			args[i] = reflect.ValueOf(dep)
		}
		results := fv.Call(args)
		if len(results) == 2 && !results[1].IsNil() {
			return nil, results[1].Interface().(error)
		}
		out := results[0]
		if out.Kind() == reflect.Interface {
			out = out.Elem()
		}
		if !out.IsValid() || isNilValue(out) {
			return nil, errors.New("factory returned nil")
		}
		v := out.Interface()
		if selector != nil {
			if err := s.injectProperties(v, selector); err != nil {
				return nil, err
			}
		}
		return v, nil
	}
}

// buildType returns the build step for a reflectively-built registration.
func buildType(structT reflect.Type, producePtr bool, selector PropertySelector) buildFunc {
	return func(s *session) (any, error) {
		return s.buildStruct(structT, producePtr, selector)
	}
}

func (s *session) buildStruct(structT reflect.Type, producePtr bool, selector PropertySelector) (any, error) {
	pv := reflect.New(structT)
	elem := pv.Elem()
	if err := s.injectTagged(elem); err != nil {
		return nil, err
	}
	if selector != nil {
		if err := s.injectSelected(elem, selector); err != nil {
			return nil, err
		}
	}
	if producePtr {
		return pv.Interface(), nil
	}
	return elem.Interface(), nil
}

// injectTagged satisfies `inject`-tagged fields. Tagged fields are
// required dependencies; `inject:"optional"` fields stay zero when their
// type has no registration.
func (s *session) injectTagged(elem reflect.Value) error {
	t := elem.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag, ok := f.Tag.Lookup("inject")
		if !ok {
			continue
		}
		if f.PkgPath != "" {
			return fmt.Errorf("inject tag on unexported field %v.%s: %w", t, f.Name, ErrInvalidArgument)
		}
		optional := tag == "optional"
		if _, registered := s.scope.c.lookup(f.Type); !registered {
			if optional {
				continue
			}
			return fmt.Errorf("field %v.%s: %w", t, f.Name, &NotRegisteredError{Service: f.Type})
		}
		dep, err := s.resolve(f.Type, false)
		if err != nil {
			return fmt.Errorf("field %v.%s: %w", t, f.Name, err)
		}
		elem.Field(i).Set(reflect.ValueOf(dep))
	}
	return nil
}

// injectSelected auto-wires untagged exported fields the selector accepts
// and whose types have registrations. Fields that already hold a value are
// preserved.
func (s *session) injectSelected(elem reflect.Value, selector PropertySelector) error {
	t := elem.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		if _, tagged := f.Tag.Lookup("inject"); tagged {
			continue
		}
		fv := elem.Field(i)
		if !fv.CanSet() || !fv.IsZero() {
			continue
		}
		if !selector(f) {
			continue
		}
		if _, registered := s.scope.c.lookup(f.Type); !registered {
			continue
		}
		dep, err := s.resolve(f.Type, false)
		if err != nil {
			return fmt.Errorf("field %v.%s: %w", t, f.Name, err)
		}
		fv.Set(reflect.ValueOf(dep))
	}
	return nil
}

// injectProperties applies a property selector to an already-built
// instance. Only pointer-to-struct instances are addressable; anything
// else is left untouched.
func (s *session) injectProperties(v any, selector PropertySelector) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return nil
	}
	return s.injectSelected(rv.Elem(), selector)
}

// implStruct normalizes an implementation type to its struct type,
// reporting whether instances are produced as pointers.
func implStruct(t reflect.Type) (structT reflect.Type, producePtr bool, err error) {
	switch {
	case t.Kind() == reflect.Struct:
		return t, false, nil
	case t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct:
		return t.Elem(), true, nil
	default:
		return nil, false, fmt.Errorf("%v is not a struct or pointer-to-struct type: %w", t, ErrInvalidArgument)
	}
}

func isNilValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	}
	return false
}
