package binding

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// LoopScheduler implements coordinator.Scheduler by routing the deferred
// callback back through the bubbletea loop as a DeferredMsg, so all state
// mutation stays on the loop. Wire send to tea.Program.Send.
type LoopScheduler struct {
	send func(tea.Msg)
}

func NewLoopScheduler(send func(tea.Msg)) *LoopScheduler {
	return &LoopScheduler{send: send}
}

func (s *LoopScheduler) After(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, func() {
		s.send(DeferredMsg{Fn: fn})
	})
	return func() { t.Stop() }
}
