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

	"github.com/rs/zerolog"

	"github.com/lauxjpn/facx/internal/facxreflect"
)

// ZerologLogger is an event logger that logs events to zerolog.
type ZerologLogger struct {
	Logger zerolog.Logger
}

var _ Logger = (*ZerologLogger)(nil)

// LogEvent logs the given event to the provided zerolog logger.
func (l *ZerologLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		l.Logger.Info().
			Str("id", e.Registration.ID().String()).
			Str("types", strings.Join(facxreflect.TypeNames(e.Registration.Services()), ", ")).
			Stringer("sharing", e.Registration.Sharing()).
			Str("activator", e.Registration.Activator()).
			Msg("registered")
	case *RegisterFailed:
		l.Logger.Error().
			Str("type", facxreflect.TypeName(e.Service)).
			Err(e.Err).
			Msg("register failed")
	case *Resolved:
		l.Logger.Info().
			Str("type", facxreflect.TypeName(e.Service)).
			Msg("resolved")
	case *ResolveFailed:
		l.Logger.Error().
			Str("type", facxreflect.TypeName(e.Service)).
			Err(e.Err).
			Msg("resolve failed")
	case *Constructed:
		l.Logger.Info().
			Str("type", facxreflect.TypeName(e.Target)).
			Msg("constructed")
	case *ConstructFailed:
		l.Logger.Error().
			Str("type", facxreflect.TypeName(e.Target)).
			Err(e.Err).
			Msg("construct failed")
	case *CallbackRegistered:
		l.Logger.Info().
			Str("type", facxreflect.TypeName(e.Service)).
			Msg("registration callback subscribed")
	case *CallbackInvoked:
		l.Logger.Info().
			Str("type", facxreflect.TypeName(e.Service)).
			Dur("runtime", e.Runtime).
			Msg("registration callback invoked")
	}
}
