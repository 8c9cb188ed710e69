// Package demo is a small bubbletea program exercising the coordinator,
// binding, registry and store packages together.
package demo

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/helmsman/binding"
	"github.com/jask/helmsman/coordinator"
	"github.com/jask/helmsman/internal/config"
	"github.com/jask/helmsman/registry"
	"github.com/jask/helmsman/store"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 2)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Background(lipgloss.Color("236")).Padding(0, 2)
)

// SessionName is the snapshot slot the demo saves to on quit.
const SessionName = "last"

type keyMap struct {
	Push    key.Binding
	Pop     key.Binding
	PopRoot key.Binding
	Sheet   key.Binding
	Cover   key.Binding
	Overlay key.Binding
	Replace key.Binding
	Dismiss key.Binding
	Alert   key.Binding
	Save    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Push:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "push")),
		Pop:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "pop")),
		PopRoot: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "pop to root")),
		Sheet:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sheet")),
		Cover:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cover")),
		Overlay: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "overlay")),
		Replace: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "replace modal")),
		Dismiss: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dismiss")),
		Alert:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "alert")),
		Save:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "save session")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// App drives the demo. All navigation flows through the root coordinator;
// the binding mirrors it into renderable content.
type App struct {
	ctx    context.Context
	cfg    config.Config
	coord  *coordinator.Coordinator
	bind   *binding.Binding
	reg    *registry.Registry
	st     *store.Store
	keys   keyMap
	width  int
	height int
	status string
	isErr  bool
	pushes int
	modals int
}

// New wires the app. The store may be nil; saving is then disabled.
func New(ctx context.Context, cfg config.Config, coord *coordinator.Coordinator, reg *registry.Registry, st *store.Store) *App {
	a := &App{
		ctx:    ctx,
		cfg:    cfg,
		coord:  coord,
		reg:    reg,
		st:     st,
		keys:   defaultKeys(),
		status: "Ready",
		width:  100,
		height: 32,
	}
	a.bind = binding.New(coord,
		baseContent{app: cfg.UI.AppName},
		reg.ScreenResolver(),
		modalResolver)
	a.bind.Appear()
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case binding.DeferredMsg:
		return a, a.bind.Update(msg)
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			a.save()
			return a, tea.Quit
		}
		// A visible alert owns the keyboard.
		if _, visible := a.coord.Top().VisibleAlert(); visible {
			return a, a.bind.Update(msg)
		}
		if cmd, handled := a.handleKey(msg); handled {
			return a, cmd
		}
	}
	return a, a.bind.Update(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	keys := a.keys
	top := a.coord.Top()
	switch {
	case key.Matches(msg, keys.Push):
		a.pushes++
		top.Push(a.nextScreen())
		a.setStatus(fmt.Sprintf("Pushed onto %s", top.ID()[:8]))
	case key.Matches(msg, keys.Pop):
		if !top.Pop() {
			a.setError("Nothing to pop")
		} else {
			a.setStatus("Popped")
		}
	case key.Matches(msg, keys.PopRoot):
		top.PopToRoot()
		a.setStatus("Popped to root")
	case key.Matches(msg, keys.Sheet):
		a.presentModal(coordinator.StyleSheet, coordinator.OverAll)
	case key.Matches(msg, keys.Cover):
		a.presentModal(coordinator.StyleCover, coordinator.OverAll)
	case key.Matches(msg, keys.Overlay):
		a.presentModal(coordinator.StyleOverlay, coordinator.OverAll)
	case key.Matches(msg, keys.Replace):
		a.presentModal(coordinator.StyleSheet, coordinator.ReplaceCurrent)
	case key.Matches(msg, keys.Dismiss):
		if !top.Dismiss() {
			a.setError("Nothing to dismiss")
		} else {
			a.setStatus("Dismissed")
		}
	case key.Matches(msg, keys.Alert):
		a.coord.Alert(coordinator.Alert{
			Message: fmt.Sprintf("Alert #%d", len(a.coord.Top().Alerts())+1),
			Actions: []string{"enter: ok"},
		})
		a.setStatus("Alert queued on topmost coordinator")
	case key.Matches(msg, keys.Save):
		a.save()
	default:
		return nil, false
	}
	return nil, true
}

func (a *App) presentModal(style coordinator.Style, policy coordinator.Policy) {
	a.modals++
	name := fmt.Sprintf("modal-%d", a.modals)
	a.coord.Present(coordinator.Modal{
		Key:   name,
		Style: style,
		Value: name,
	}, policy)
	a.setStatus(fmt.Sprintf("Presented %s (%s, %s)", name, style, policyName(policy)))
}

func (a *App) nextScreen() coordinator.Screen {
	names := a.reg.Names()
	if len(names) == 0 {
		return "overview"
	}
	return names[a.pushes%len(names)]
}

func (a *App) save() {
	if a.st == nil {
		return
	}
	if err := a.st.Save(a.ctx, SessionName, a.coord); err != nil {
		a.setError(err.Error())
		return
	}
	a.setStatus("Session saved")
}

func (a *App) setStatus(s string) {
	a.status = s
	a.isErr = false
}

func (a *App) setError(s string) {
	a.status = s
	a.isErr = true
}

func (a *App) View() string {
	bar := statusStyle
	if a.isErr {
		bar = errStyle
	}
	body := a.bind.View(a.width, max(1, a.height-1))
	status := bar.Width(a.width).Render(a.bind.Title() + " — " + a.status)
	return body + "\n" + status
}

func policyName(p coordinator.Policy) string {
	if p == coordinator.ReplaceCurrent {
		return "replace"
	}
	return "over all"
}
