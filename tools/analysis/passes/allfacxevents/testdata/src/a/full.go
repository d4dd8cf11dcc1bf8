package a

import (
	"fmt"

	"github.com/lauxjpn/facx/facxevent"
)

type fullLogger struct{}

func (*fullLogger) LogEvent(ev facxevent.Event) {
	switch ev.(type) {
	case *facxevent.Foo, *facxevent.Bar, *facxevent.Baz:
		fmt.Println(ev)
	case *facxevent.Qux:
		fmt.Println(ev)
	}
}
