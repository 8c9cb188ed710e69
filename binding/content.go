package binding

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/helmsman/coordinator"
)

// Content is a displayable unit bound to one path entry or one modal. The
// bool result of Update requests a native close: a pop for a pushed screen,
// a dismissal for a modal's base content.
type Content interface {
	Update(msg tea.Msg) (Content, tea.Cmd, bool)
	View(width, height int) string
	Title() string
}

// ScreenResolver produces the content for a path entry. Must be pure: the
// binding calls it whenever the native stack needs content for a screen.
// The coordinator is the one whose path the screen sits on — the explicit
// handle content uses for navigation instead of any ambient lookup.
type ScreenResolver func(c *coordinator.Coordinator, s coordinator.Screen) Content

// ModalResolver produces the base content shown for a modal presentation.
// The coordinator is the presented flow's own (the placeholder, for leaf
// modals), so modal content navigates and dismisses relative to itself.
type ModalResolver func(c *coordinator.Coordinator, m coordinator.Modal) Content
