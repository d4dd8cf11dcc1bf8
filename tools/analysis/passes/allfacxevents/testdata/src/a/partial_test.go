package a

import (
	"fmt"

	"github.com/lauxjpn/facx/facxevent"
)

// This logger intentionally doesn't handle everything. We don't expect any
// diagnostics reported for it because it's in a test file.
type partialLogger struct{}

func (partialLogger) LogEvent(ev facxevent.Event) {
	_, ok := ev.(*facxevent.Foo)
	fmt.Println(ok)
}
