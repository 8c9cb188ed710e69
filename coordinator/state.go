package coordinator

// State is the per-coordinator navigation record: the pushed path, the
// currently presented modal (at most one), the back-reference to the
// presenting parent, and the pending alert stack. A State is owned by
// exactly one Coordinator for its whole lifetime and must only be touched
// from the host's UI loop.
type State struct {
	owner *Coordinator

	path        []Screen
	presented   *Presentation
	presentedBy *Coordinator
	alerts      []Alert

	// retained holds the last dismissed presentation until its close
	// animation window has elapsed.
	retained *Presentation

	hooks []Hook
}

func newState(owner *Coordinator) *State {
	return &State{owner: owner}
}

// Presented returns the active modal presentation, or nil.
func (s *State) Presented() *Presentation {
	return s.presented
}

// PresentedBy returns the coordinator that modally presented this one, or
// nil for a root.
func (s *State) PresentedBy() *Coordinator {
	return s.presentedBy
}

// Hook receives change events. Hooks run synchronously on the mutating
// call; they must not re-enter navigation operations.
type Hook func(Event)

// Event is one of PathEvent, PresentEvent, DismissEvent or AlertEvent.
type Event any

// PathEvent reports that a coordinator's path changed.
type PathEvent struct {
	Coordinator *Coordinator
	Path        []Screen
}

// PresentEvent reports a new modal presentation.
type PresentEvent struct {
	Coordinator  *Coordinator
	Presentation *Presentation
}

// DismissEvent reports that a coordinator's presented modal was dismissed.
type DismissEvent struct {
	Coordinator *Coordinator
	Dismissed   *Coordinator
}

// AlertEvent reports a change to a coordinator's alert stack.
type AlertEvent struct {
	Coordinator *Coordinator
	Alerts      []Alert
}

func (s *State) subscribe(h Hook) func() {
	if h == nil {
		return func() {}
	}
	s.hooks = append(s.hooks, h)
	idx := len(s.hooks) - 1
	return func() {
		if idx < len(s.hooks) {
			s.hooks[idx] = nil
		}
	}
}

func (s *State) emit(e Event) {
	for _, h := range s.hooks {
		if h != nil {
			h(e)
		}
	}
}

func (s *State) emitPath() {
	s.emit(PathEvent{Coordinator: s.owner, Path: s.owner.Path()})
}
