package demo

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/helmsman/binding"
	"github.com/jask/helmsman/coordinator"
	"github.com/jask/helmsman/registry"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// Screens returns the demo's screen registry.
func Screens() *registry.Registry {
	r := registry.New()
	for _, name := range []string{"overview", "detail", "settings"} {
		r.Register(name, func(c *coordinator.Coordinator) binding.Content {
			return &screen{coord: c, name: name}
		})
	}
	return r
}

// screen is a pushed path entry. Esc asks the binding for a native pop,
// which writes back into the coordinator path.
type screen struct {
	coord *coordinator.Coordinator
	name  string
}

func (s *screen) Title() string { return s.name }

func (s *screen) Update(msg tea.Msg) (binding.Content, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		return s, nil, true
	}
	return s, nil, false
}

func (s *screen) View(width, height int) string {
	crumbs := make([]string, 0, 4)
	for _, entry := range s.coord.Path() {
		crumbs = append(crumbs, fmt.Sprint(entry))
	}
	lines := []string{
		titleStyle.Render("Screen: " + s.name),
		"",
		"Path: " + strings.Join(crumbs, " > "),
		"",
		dimStyle.Render("esc: back  p: push  s/c/v: present  a: alert  q: quit"),
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(lines, "\n"))
}

// baseContent renders when the path is empty.
type baseContent struct {
	app string
}

func (b baseContent) Title() string { return b.app }

func (b baseContent) Update(tea.Msg) (binding.Content, tea.Cmd, bool) {
	return b, nil, false
}

func (b baseContent) View(width, height int) string {
	lines := []string{
		titleStyle.Render(b.app),
		"",
		"Empty path. Push a screen or present a modal.",
		"",
		dimStyle.Render("p: push  s: sheet  c: cover  v: overlay  x: replace  a: alert  q: quit"),
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(lines, "\n"))
}

// modalResolver builds the base content for a presented modal. The flow
// coordinator arrives explicitly so the modal can dismiss itself.
func modalResolver(_ *coordinator.Coordinator, m coordinator.Modal) binding.Content {
	return modalContent{label: fmt.Sprint(m.Value), style: m.Style}
}

type modalContent struct {
	label string
	style coordinator.Style
}

func (m modalContent) Title() string { return m.label }

// Esc on a modal's base content dismisses the whole presentation.
func (m modalContent) Update(msg tea.Msg) (binding.Content, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		return m, nil, true
	}
	return m, nil, false
}

func (m modalContent) View(width, height int) string {
	return titleStyle.Render(m.label) + "\n\n" +
		"Presented as " + m.style.String() + ".\n" +
		dimStyle.Render("esc: dismiss  s/c/v: nest another  d: dismiss top")
}
