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
	"strings"

	"go.uber.org/zap"

	"github.com/lauxjpn/facx/internal/facxreflect"
)

// ZapLogger is an event logger that logs events to Zap.
type ZapLogger struct {
	Logger *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// LogEvent logs the given event to the provided Zap logger.
func (l *ZapLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		l.Logger.Info("registered",
			zap.String("id", e.Registration.ID().String()),
			zap.String("types", strings.Join(facxreflect.TypeNames(e.Registration.Services()), ", ")),
			zap.Stringer("sharing", e.Registration.Sharing()),
			zap.String("activator", e.Registration.Activator()),
		)
	case *RegisterFailed:
		l.Logger.Error("register failed",
			zap.String("type", facxreflect.TypeName(e.Service)),
			zap.Error(e.Err),
		)
	case *Resolved:
		l.Logger.Info("resolved",
			zap.String("type", facxreflect.TypeName(e.Service)))
	case *ResolveFailed:
		l.Logger.Error("resolve failed",
			zap.String("type", facxreflect.TypeName(e.Service)),
			zap.Error(e.Err),
		)
	case *Constructed:
		l.Logger.Info("constructed",
			zap.String("type", facxreflect.TypeName(e.Target)))
	case *ConstructFailed:
		l.Logger.Error("construct failed",
			zap.String("type", facxreflect.TypeName(e.Target)),
			zap.Error(e.Err),
		)
	case *CallbackRegistered:
		l.Logger.Info("registration callback subscribed",
			zap.String("type", facxreflect.TypeName(e.Service)))
	case *CallbackInvoked:
		l.Logger.Info("registration callback invoked",
			zap.String("type", facxreflect.TypeName(e.Service)),
			zap.String("runtime", e.Runtime.String()),
		)
	}
}
