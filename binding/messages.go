package binding

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/helmsman/coordinator"
)

// NavigationMsg carries a coordinator event into the bubbletea loop for
// hosts that want to react to navigation changes in their own Update.
type NavigationMsg struct {
	Event coordinator.Event
}

// DeferredMsg re-enters scheduled transition work on the loop. Bindings
// execute Fn when the message reaches their Update.
type DeferredMsg struct {
	Fn func()
}

// ForwardEvents subscribes to a coordinator and forwards every event as a
// NavigationMsg through send (typically tea.Program.Send). Returns the
// unsubscribe func.
func ForwardEvents(c *coordinator.Coordinator, send func(tea.Msg)) func() {
	return c.Subscribe(func(e coordinator.Event) {
		send(NavigationMsg{Event: e})
	})
}
