package facxevent

// Event mimics the real facxevent.Event, but lives elsewhere.
type Event interface {
	event()
}

// Foo is an event.
type Foo struct{}

func (*Foo) event() {}

// Bar is an event.
type Bar struct{}

func (*Bar) event() {}

// Logger mimics the real facxevent.Logger, but lives elsewhere.
type Logger interface {
	LogEvent(Event)
}
