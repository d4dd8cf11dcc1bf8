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

// Package facxevent defines how facx reports the operations it performs.
//
// A provider emits an [Event] for every registration, resolution,
// construction, and callback it handles, and hands it to the [Logger] it
// was configured with. The default is [NopLogger]: the provider itself
// never logs, and errors reach callers as return values only.
//
// # Choosing a Logger
//
// Pass one of the bundled backends to facx.WithLogger:
//
//	p, err := facx.New(c, facx.WithLogger(&facxevent.ZapLogger{Logger: log}))
//
// [ConsoleLogger] writes readable lines to an io.Writer, [ZapLogger] logs
// to Zap, [SlogLogger] to log/slog, and [ZerologLogger] to zerolog.
//
// # Implementing a Custom Logger
//
// Implement the [Logger] interface. The Logger.LogEvent method accepts an
// [Event]; use a type switch to handle each event type. See 'event.go'
// for the list of possible events.
//
//	func (l *MyLogger) LogEvent(e facxevent.Event) {
//		switch e := e.(type) {
//		case *facxevent.Registered:
//			// ...
//		// ...
//		}
//	}
package facxevent
