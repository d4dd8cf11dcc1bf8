package b

import (
	"fmt"

	"b/facxevent"
)

// Logger handles only one event type of a package that merely looks like
// the real facxevent. The pass must leave it alone.
type Logger struct{}

var _ facxevent.Logger = Logger{}

func (Logger) LogEvent(ev facxevent.Event) {
	_, ok := ev.(*facxevent.Foo)
	fmt.Println(ok)
}
