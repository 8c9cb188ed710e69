package coordinator

import (
	"time"

	"github.com/google/uuid"
)

// Screen identifies a navigation destination. Screens are opaque to this
// package: any comparable value works (string, int, small struct). The path
// may contain the same screen more than once.
type Screen any

// Coordinator is the addressable unit of navigation. It owns exactly one
// State and participates in a parent/child presentation graph through modal
// presentation. Coordinators are reference types compared by identity; two
// coordinators with identical state are still distinct nodes.
type Coordinator struct {
	id      string
	appName string
	sched   Scheduler

	replaceDelay time.Duration
	releaseDelay time.Duration

	state *State

	cancelRepresent func()
	cancelRelease   func()
}

// Option configures a Coordinator at construction time.
type Option func(*Coordinator)

// WithScheduler replaces the default timer scheduler. Hosts with a single
// event loop should supply a loop-affine implementation.
func WithScheduler(s Scheduler) Option {
	return func(c *Coordinator) {
		if s != nil {
			c.sched = s
		}
	}
}

// WithAppName sets the fallback title used for alerts raised without one.
func WithAppName(name string) Option {
	return func(c *Coordinator) { c.appName = name }
}

// WithDelays tunes the transition-sequencing delays: replace is the pause
// between dismissing a modal and re-presenting its replacement, release is
// how long a dismissed subtree is kept alive for the close animation.
func WithDelays(replace, release time.Duration) Option {
	return func(c *Coordinator) {
		if replace > 0 {
			c.replaceDelay = replace
		}
		if release > 0 {
			c.releaseDelay = release
		}
	}
}

// New creates a root coordinator with an empty path.
func New(opts ...Option) *Coordinator {
	c := &Coordinator{
		id:           uuid.NewString(),
		sched:        timerScheduler{},
		replaceDelay: defaultReplaceDelay,
		releaseDelay: defaultReleaseDelay,
	}
	c.state = newState(c)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the coordinator's stable identifier, used for persistence keys
// and rendering-list diffing. Identity for equality purposes is the pointer.
func (c *Coordinator) ID() string {
	return c.id
}

// State exposes the owned navigation state.
func (c *Coordinator) State() *State {
	return c.state
}

// Subscribe registers a hook invoked synchronously after every state change
// on this coordinator. It returns an unsubscribe func.
func (c *Coordinator) Subscribe(h Hook) func() {
	return c.state.subscribe(h)
}

// Push appends a screen to the path. Duplicates are permitted.
func (c *Coordinator) Push(s Screen) {
	c.state.path = append(c.state.path, s)
	c.state.emitPath()
}

// Pop removes the top of the path. Popping an empty path is a no-op and
// returns false.
func (c *Coordinator) Pop() bool {
	if len(c.state.path) == 0 {
		return false
	}
	c.state.path = c.state.path[:len(c.state.path)-1]
	c.state.emitPath()
	return true
}

// PopToRoot clears the path.
func (c *Coordinator) PopToRoot() {
	if len(c.state.path) == 0 {
		return
	}
	c.state.path = c.state.path[:0]
	c.state.emitPath()
}

// PopTo truncates the path so the first screen (front to back) satisfying
// match becomes the new top, and returns true. When no screen matches the
// path is left untouched and PopTo returns false.
func (c *Coordinator) PopTo(match func(Screen) bool) bool {
	for i, s := range c.state.path {
		if !match(s) {
			continue
		}
		if i+1 != len(c.state.path) {
			c.state.path = c.state.path[:i+1]
			c.state.emitPath()
		}
		return true
	}
	return false
}

// PopToScreen is the equality special case of PopTo.
func (c *Coordinator) PopToScreen(s Screen) bool {
	return c.PopTo(func(v Screen) bool { return v == s })
}

// Path returns a copy of the current path.
func (c *Coordinator) Path() []Screen {
	out := make([]Screen, len(c.state.path))
	copy(out, c.state.path)
	return out
}

// SetPath replaces the path wholesale. This is the write-back entry point
// for the binding layer when the host's native stack changed underneath us
// (swipe-back, native pop). Structurally equal paths are ignored so that
// state->native->state round trips do not loop.
func (c *Coordinator) SetPath(path []Screen) {
	if pathsEqual(c.state.path, path) {
		return
	}
	c.state.path = append(c.state.path[:0], path...)
	c.state.emitPath()
}

// Close cancels any scheduled transition work on this coordinator and its
// presented descendants. Call before discarding a coordinator so a pending
// re-present cannot mutate released state.
func (c *Coordinator) Close() {
	if c.cancelRepresent != nil {
		c.cancelRepresent()
		c.cancelRepresent = nil
	}
	if c.cancelRelease != nil {
		c.cancelRelease()
		c.cancelRelease = nil
	}
	c.state.retained = nil
	if p := c.state.presented; p != nil {
		p.Coordinator.Close()
	}
}

func pathsEqual(a, b []Screen) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
