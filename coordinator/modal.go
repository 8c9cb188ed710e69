package coordinator

import "github.com/google/uuid"

// Style is how a modal visually occupies the screen.
type Style int

const (
	// StyleSheet presents a card anchored to the bottom of the view.
	StyleSheet Style = iota
	// StyleCover replaces the whole view.
	StyleCover
	// StyleOverlay floats a centered card over the dimmed base view.
	StyleOverlay
)

func (s Style) String() string {
	switch s {
	case StyleCover:
		return "cover"
	case StyleOverlay:
		return "overlay"
	default:
		return "sheet"
	}
}

// Modal describes a presentable flow. Value is the app-defined payload
// handed to the modal resolver; Flow, when non-nil, is the coordinator that
// owns the presented flow's navigation. A nil Flow marks a leaf modal and a
// placeholder coordinator is created at presentation time so every modal,
// leaf or flow, can anchor further nested presentation and upward dismissal.
//
// Modals are compared structurally; Key, when set, is the stable identity
// used for rendering-list diffing. An empty Key derives one at presentation.
type Modal struct {
	Key   string
	Style Style
	Value any
	Flow  *Coordinator
}

// Presentation is a resolved modal: the descriptor paired with the
// coordinator that owns the presented flow.
type Presentation struct {
	id          string
	Modal       Modal
	Coordinator *Coordinator
}

// ID returns the presentation's stable identity: the modal's Key when set,
// otherwise an identifier derived at presentation time.
func (p *Presentation) ID() string {
	return p.id
}

func newPresentation(m Modal, owner *Coordinator) *Presentation {
	id := m.Key
	if id == "" {
		id = uuid.NewString()
	}
	return &Presentation{id: id, Modal: m, Coordinator: owner}
}
