package a

import (
	"log"

	"github.com/lauxjpn/facx/facxevent"
)

type ptrLogger struct{}

func (*ptrLogger) LogEvent(ev facxevent.Event) { // want `\*ptrLogger doesn't handle \[\*Bar \*Foo\]`
	if e, ok := ev.(*facxevent.Baz); ok {
		log.Print(e)
	}

	if e, ok := ev.(*facxevent.Qux); ok {
		log.Print(e)
	}
}
