package a

import (
	"fmt"

	"github.com/lauxjpn/facx/facxevent"
)

type notALogger struct{}

// Doesn't implement facxevent.Logger because it returns an error. This
// shouldn't cause a diagnostic.

func (*notALogger) LogEvent(ev facxevent.Event) error {
	_, ok := ev.(*facxevent.Foo)
	fmt.Println(ok)
	return nil
}
