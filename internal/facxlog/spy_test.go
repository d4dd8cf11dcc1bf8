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

package facxlog

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lauxjpn/facx/facxevent"
)

func TestSpy(t *testing.T) {
	var s Spy

	t.Run("empty spy", func(t *testing.T) {
		assert.Empty(t, s.Events(), "events must be empty")
		assert.Empty(t, s.EventTypes(), "event types must be empty")
	})

	s.LogEvent(&facxevent.Resolved{Service: reflect.TypeOf("")})
	t.Run("single event", func(t *testing.T) {
		assert.Len(t, s.Events(), 1, "events must hold the logged event")
		assert.Equal(t, []string{"Resolved"}, s.EventTypes(), "event types must match")
	})

	s.LogEvent(&facxevent.CallbackRegistered{Service: reflect.TypeOf("")})
	t.Run("multiple events", func(t *testing.T) {
		assert.Equal(t, []string{"Resolved", "CallbackRegistered"}, s.EventTypes())
	})

	t.Run("events returns a copy", func(t *testing.T) {
		events := s.Events()
		events[0] = &facxevent.Constructed{Target: reflect.TypeOf(0)}
		assert.Equal(t, []string{"Resolved", "CallbackRegistered"}, s.EventTypes(),
			"mutating the returned slice must not affect the spy")
	})

	s.Reset()
	t.Run("reset", func(t *testing.T) {
		assert.Empty(t, s.Events(), "events must be empty")
	})

	s.LogEvent(&facxevent.Resolved{Service: reflect.TypeOf(0)})
	t.Run("use after reset", func(t *testing.T) {
		assert.Equal(t, []string{"Resolved"}, s.EventTypes(), "event types must match")
	})
}
