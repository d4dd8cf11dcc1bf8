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
	"context"
	"log/slog"
	"strings"

	"github.com/lauxjpn/facx/internal/facxreflect"
)

var _ Logger = (*SlogLogger)(nil)

// SlogLogger is an event logger that logs events using a slog logger.
type SlogLogger struct {
	Logger *slog.Logger

	ctx        context.Context
	logLevel   slog.Level
	errorLevel *slog.Level
}

// UseContext sets the context that will be used when logging to slog.
func (l *SlogLogger) UseContext(ctx context.Context) {
	l.ctx = ctx
}

// UseLogLevel sets the level of non-error logs emitted by the provider to
// level.
func (l *SlogLogger) UseLogLevel(level slog.Level) {
	l.logLevel = level
}

// UseErrorLevel sets the level of error logs emitted by the provider to
// level.
func (l *SlogLogger) UseErrorLevel(level slog.Level) {
	l.errorLevel = &level
}

func (l *SlogLogger) logEvent(msg string, fields ...any) {
	l.Logger.Log(l.ctx, l.logLevel, msg, fields...)
}

func (l *SlogLogger) logError(msg string, fields ...any) {
	lvl := slog.LevelError
	if l.errorLevel != nil {
		lvl = *l.errorLevel
	}

	l.Logger.Log(l.ctx, lvl, msg, fields...)
}

// LogEvent logs the given event to the provided slog logger.
func (l *SlogLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		l.logEvent("registered",
			slog.String("id", e.Registration.ID().String()),
			slog.String("types", strings.Join(facxreflect.TypeNames(e.Registration.Services()), ", ")),
			slog.String("sharing", e.Registration.Sharing().String()),
			slog.String("activator", e.Registration.Activator()),
		)
	case *RegisterFailed:
		l.logError("register failed",
			slog.String("type", facxreflect.TypeName(e.Service)),
			slogErr(e.Err),
		)
	case *Resolved:
		l.logEvent("resolved",
			slog.String("type", facxreflect.TypeName(e.Service)))
	case *ResolveFailed:
		l.logError("resolve failed",
			slog.String("type", facxreflect.TypeName(e.Service)),
			slogErr(e.Err),
		)
	case *Constructed:
		l.logEvent("constructed",
			slog.String("type", facxreflect.TypeName(e.Target)))
	case *ConstructFailed:
		l.logError("construct failed",
			slog.String("type", facxreflect.TypeName(e.Target)),
			slogErr(e.Err),
		)
	case *CallbackRegistered:
		l.logEvent("registration callback subscribed",
			slog.String("type", facxreflect.TypeName(e.Service)))
	case *CallbackInvoked:
		l.logEvent("registration callback invoked",
			slog.String("type", facxreflect.TypeName(e.Service)),
			slog.String("runtime", e.Runtime.String()),
		)
	}
}

func slogErr(err error) slog.Attr {
	return slog.String("error", err.Error())
}
