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
	"fmt"
	"io"
	"strings"

	"github.com/lauxjpn/facx/internal/facxreflect"
)

// ConsoleLogger is an event logger that writes human-readable messages to
// the console.
//
// Use this during development.
type ConsoleLogger struct {
	W io.Writer
}

var _ Logger = (*ConsoleLogger)(nil)

func (l *ConsoleLogger) logf(msg string, args ...any) {
	fmt.Fprintf(l.W, "[facx] "+msg+"\n", args...)
}

// LogEvent logs the given event to the console.
func (l *ConsoleLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		l.logf("REGISTER\t%s\t%v <= %s",
			e.Registration.Sharing(),
			strings.Join(facxreflect.TypeNames(e.Registration.Services()), ", "),
			e.Registration.Activator())
	case *RegisterFailed:
		l.logf("ERROR\t\tFailed to register %v: %v", facxreflect.TypeName(e.Service), e.Err)
	case *Resolved:
		l.logf("RESOLVE\t%v", facxreflect.TypeName(e.Service))
	case *ResolveFailed:
		l.logf("ERROR\t\tFailed to resolve %v: %v", facxreflect.TypeName(e.Service), e.Err)
	case *Constructed:
		l.logf("CONSTRUCT\t%v", facxreflect.TypeName(e.Target))
	case *ConstructFailed:
		l.logf("ERROR\t\tFailed to construct %v: %v", facxreflect.TypeName(e.Target), e.Err)
	case *CallbackRegistered:
		l.logf("CALLBACK\tWaiting for %v", facxreflect.TypeName(e.Service))
	case *CallbackInvoked:
		l.logf("CALLBACK\t%v registered, callback ran in %s", facxreflect.TypeName(e.Service), e.Runtime)
	}
}
