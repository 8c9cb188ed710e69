package binding

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/helmsman/coordinator"
	"github.com/jask/helmsman/widgets"
)

type stackEntry struct {
	screen  coordinator.Screen
	content Content
}

// Binding mirrors one coordinator's navigation state into a native content
// stack and at most one mounted modal, keeping both directions in sync.
// State-driven changes arrive through the coordinator's hooks; user-driven
// native changes (a screen requesting its own pop) are written back into the
// path. Both directions apply only when the representations differ, so a
// round trip cannot loop.
type Binding struct {
	coord    *coordinator.Coordinator
	base     Content
	screens  ScreenResolver
	modals   ModalResolver
	stack    []stackEntry
	modal    *mountedModal
	appeared bool
	unsub    func()
}

type mountedModal struct {
	presentation *coordinator.Presentation
	child        *Binding
}

// New binds a coordinator to its base content and resolvers. The binding
// stays inert until Appear is called.
func New(c *coordinator.Coordinator, base Content, screens ScreenResolver, modals ModalResolver) *Binding {
	b := &Binding{coord: c, base: base, screens: screens, modals: modals}
	b.unsub = c.Subscribe(b.onEvent)
	return b
}

// Coordinator returns the bound coordinator, the explicit handle content
// implementations use instead of any ambient lookup.
func (b *Binding) Coordinator() *coordinator.Coordinator {
	return b.coord
}

// Appear hydrates the native stack (and any already-presented modal) from
// the coordinator's state. Call it the moment the bound view becomes
// visible: for a flow hosted inside a modal the first path entries must
// reach the native stack before the presentation settles, which is why
// hydration is an explicit hook rather than change propagation.
func (b *Binding) Appear() {
	if b.appeared {
		return
	}
	b.appeared = true
	b.syncToNative(b.coord.Path())
	if p := b.coord.State().Presented(); p != nil && b.modal == nil {
		b.mountModal(p)
	}
}

// Close detaches the binding and its mounted modal chain from coordinator
// hooks.
func (b *Binding) Close() {
	if b.unsub != nil {
		b.unsub()
		b.unsub = nil
	}
	if b.modal != nil {
		b.modal.child.Close()
		b.modal = nil
	}
}

func (b *Binding) onEvent(e coordinator.Event) {
	switch e := e.(type) {
	case coordinator.PathEvent:
		if b.appeared {
			b.syncToNative(e.Path)
		}
	case coordinator.PresentEvent:
		b.mountModal(e.Presentation)
	case coordinator.DismissEvent:
		b.unmountModal()
	}
}

// syncToNative applies the coordinator path to the native stack, reusing
// mounted content for the unchanged prefix. Structurally equal stacks are
// left alone.
func (b *Binding) syncToNative(path []coordinator.Screen) {
	if b.nativeEquals(path) {
		return
	}
	next := make([]stackEntry, 0, len(path))
	for i, s := range path {
		if i < len(b.stack) && b.stack[i].screen == s {
			next = append(next, b.stack[i])
			continue
		}
		next = append(next, stackEntry{screen: s, content: b.screens(b.coord, s)})
	}
	b.stack = next
}

func (b *Binding) nativeEquals(path []coordinator.Screen) bool {
	if len(b.stack) != len(path) {
		return false
	}
	for i := range path {
		if b.stack[i].screen != path[i] {
			return false
		}
	}
	return true
}

func (b *Binding) nativeScreens() []coordinator.Screen {
	out := make([]coordinator.Screen, len(b.stack))
	for i, e := range b.stack {
		out[i] = e.screen
	}
	return out
}

func (b *Binding) mountModal(p *coordinator.Presentation) {
	if b.modal != nil {
		b.modal.child.Close()
	}
	child := New(p.Coordinator, b.modals(p.Coordinator, p.Modal), b.screens, b.modals)
	// Hydrate before the presentation settles so the flow's first pushes
	// animate with it.
	child.Appear()
	b.modal = &mountedModal{presentation: p, child: child}
}

func (b *Binding) unmountModal() {
	if b.modal == nil {
		return
	}
	b.modal.child.Close()
	b.modal = nil
}

// Update routes a message to the foreground representation: deferred
// transition work first, then the mounted modal chain, then the visible
// alert, then the native stack top, then the base content. A content pop
// request mutates the native stack and writes the result back into the
// coordinator path.
func (b *Binding) Update(msg tea.Msg) tea.Cmd {
	if d, ok := msg.(DeferredMsg); ok {
		d.Fn()
		return nil
	}
	if b.modal != nil {
		return b.modal.child.Update(msg)
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		if _, visible := b.coord.VisibleAlert(); visible {
			switch key.String() {
			case "enter", "esc":
				b.coord.DismissAlert()
			}
			return nil
		}
	}
	if top := b.top(); top != nil {
		next, cmd, pop := top.content.Update(msg)
		if pop {
			b.nativePop()
			return cmd
		}
		if next != nil {
			b.stack[len(b.stack)-1].content = next
		}
		return cmd
	}
	if b.base != nil {
		next, cmd, dismiss := b.base.Update(msg)
		if dismiss {
			// Base content closing means the whole flow wants out.
			b.coord.Dismiss()
			return cmd
		}
		if next != nil {
			b.base = next
		}
		return cmd
	}
	return nil
}

// nativePop is the user-driven direction: the native stack shrinks first,
// then the path is written back to match.
func (b *Binding) nativePop() {
	if len(b.stack) == 0 {
		return
	}
	b.stack = b.stack[:len(b.stack)-1]
	b.coord.SetPath(b.nativeScreens())
}

func (b *Binding) top() *stackEntry {
	if len(b.stack) == 0 {
		return nil
	}
	return &b.stack[len(b.stack)-1]
}

// View renders base content under the pushed stack top, composites the
// mounted modal chain with its presentation style, and lays the visible
// alert over everything.
func (b *Binding) View(width, height int) string {
	view := ""
	if top := b.top(); top != nil && top.content != nil {
		view = top.content.View(width, height)
	} else if b.base != nil {
		view = b.base.View(width, height)
	}
	if b.modal != nil {
		inner := b.modal.child.View(width, height)
		switch b.modal.presentation.Modal.Style {
		case coordinator.StyleCover:
			view = widgets.Cover(view, inner, width, height)
		case coordinator.StyleOverlay:
			view = widgets.Overlay(view, inner, width, height)
		default:
			view = widgets.Sheet(view, inner, width, height)
		}
	}
	if a, ok := b.coord.VisibleAlert(); ok {
		view = widgets.AlertCard{Title: a.Title, Message: a.Message, Actions: a.Actions}.Render(view, width, height)
	}
	return view
}

// Title reports the foreground content's title for status lines.
func (b *Binding) Title() string {
	if b.modal != nil {
		return b.modal.child.Title()
	}
	if top := b.top(); top != nil && top.content != nil {
		return top.content.Title()
	}
	if b.base != nil {
		return b.base.Title()
	}
	return ""
}
