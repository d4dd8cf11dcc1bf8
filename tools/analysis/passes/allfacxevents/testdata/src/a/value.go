package a

import (
	"fmt"
	"io"

	"github.com/lauxjpn/facx/facxevent"
)

type valueLogger struct {
	W io.Writer
}

func (l valueLogger) LogEvent(ev facxevent.Event) { // want `valueLogger doesn't handle \[\*Baz \*Qux\]`
	switch ev.(type) {
	case *facxevent.Foo:
		fmt.Fprintln(l.W, ev)
	case *facxevent.Bar:
		fmt.Fprintln(l.W, ev)
	}
}
