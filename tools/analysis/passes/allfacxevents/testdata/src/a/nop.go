package a

import "github.com/lauxjpn/facx/facxevent"

type nopLogger struct{}

func (nopLogger) LogEvent(facxevent.Event) {
	// Don't do anything with the event. Should not cause a
	// diagnostic.
}
