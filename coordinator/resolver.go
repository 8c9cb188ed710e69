package coordinator

import "time"

// Policy decides how a present request resolves against an existing
// presentation.
type Policy int

const (
	// OverAll stacks the request on top of the deepest presented flow.
	OverAll Policy = iota
	// ReplaceCurrent dismisses this coordinator's presented modal and
	// presents the request in its place once the dismissal has settled.
	ReplaceCurrent
)

// Transition-sequencing delays. Replace keeps two host animations from
// running at once; release keeps a dismissed subtree alive while its close
// animation is still on screen. Tunables, not contracts: only the ordering
// (dismiss settles before the replacement presents) matters.
const (
	defaultReplaceDelay = 150 * time.Millisecond
	defaultReleaseDelay = 500 * time.Millisecond
)

// Scheduler defers work for transition sequencing. After runs fn once d has
// elapsed and returns a cancel func. The default implementation fires on a
// timer goroutine; single-loop hosts should install one that re-enters
// through their event loop (see the binding package).
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

type timerScheduler struct{}

func (timerScheduler) After(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Present resolves a modal request against the current presentation.
//
// With nothing presented the modal attaches here directly. Otherwise OverAll
// forwards the request down to the presented coordinator until a coordinator
// without a modal of its own absorbs it, growing the chain by one; and
// ReplaceCurrent swaps out the leaf presentation: the request descends to
// the leaf's presenter, which dismisses its modal now and schedules the
// request to re-present there once the replace delay has passed, leaving
// the chain depth unchanged.
func (c *Coordinator) Present(m Modal, policy Policy) {
	if c.state.presented == nil {
		c.attach(m)
		return
	}
	switch policy {
	case OverAll:
		c.state.presented.Coordinator.Present(m, policy)
	case ReplaceCurrent:
		if presented := c.state.presented.Coordinator; presented.state.presented != nil {
			presented.Present(m, policy)
			return
		}
		c.DismissPresented()
		c.cancelRepresent = c.sched.After(c.replaceDelay, func() {
			c.cancelRepresent = nil
			c.Present(m, policy)
		})
	}
}

func (c *Coordinator) attach(m Modal) {
	child := m.Flow
	if child == nil {
		// Leaf modal: a placeholder coordinator anchors nested
		// presentation and upward dismissal.
		child = New(WithScheduler(c.sched), WithAppName(c.appName),
			WithDelays(c.replaceDelay, c.releaseDelay))
	}
	child.state.presentedBy = c
	c.state.presented = newPresentation(m, child)
	c.state.emit(PresentEvent{Coordinator: c, Presentation: c.state.presented})
}

// Dismiss asks the presenting parent to dismiss this coordinator's flow.
// A root coordinator has nothing above it; Dismiss is then a no-op and
// returns false.
func (c *Coordinator) Dismiss() bool {
	parent := c.state.presentedBy
	if parent == nil {
		return false
	}
	return parent.DismissPresented()
}

// DismissPresented clears this coordinator's presented modal, detaching the
// dismissed coordinator from the graph. The dismissed subtree is retained
// until the release delay elapses so an in-flight close animation never
// renders from released state. Returns false when nothing is presented.
func (c *Coordinator) DismissPresented() bool {
	dismissed := c.state.presented
	if dismissed == nil {
		return false
	}
	c.state.presented = nil
	dismissed.Coordinator.state.presentedBy = nil
	c.state.retained = dismissed
	if c.cancelRelease != nil {
		c.cancelRelease()
	}
	c.cancelRelease = c.sched.After(c.releaseDelay, func() {
		c.cancelRelease = nil
		if c.state.retained == dismissed {
			c.state.retained = nil
		}
	})
	c.state.emit(DismissEvent{Coordinator: c, Dismissed: dismissed.Coordinator})
	return true
}

// Top walks the presentation chain to the deepest presented coordinator,
// the one whose content is in the foreground.
func (c *Coordinator) Top() *Coordinator {
	top := c
	for top.state.presented != nil {
		top = top.state.presented.Coordinator
	}
	return top
}

// Root walks presentedBy links to the coordinator at the base of the chain.
func (c *Coordinator) Root() *Coordinator {
	root := c
	for root.state.presentedBy != nil {
		root = root.state.presentedBy
	}
	return root
}
