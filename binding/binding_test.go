package binding

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/helmsman/coordinator"
)

type fakeContent struct {
	title string
	hits  int
}

func (c *fakeContent) Title() string        { return c.title }
func (c *fakeContent) View(int, int) string { return "[" + c.title + "]" }
func (c *fakeContent) Update(msg tea.Msg) (Content, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		c.hits++
		if km.String() == "esc" {
			return c, nil, true
		}
	}
	return c, nil, false
}

type testHarness struct {
	coord    *coordinator.Coordinator
	binding  *Binding
	resolved []string
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()
	h := &testHarness{}
	h.coord = coordinator.New(WithManualTestScheduler())
	h.binding = New(h.coord,
		&fakeContent{title: "home"},
		func(_ *coordinator.Coordinator, s coordinator.Screen) Content {
			h.resolved = append(h.resolved, s.(string))
			return &fakeContent{title: s.(string)}
		},
		func(_ *coordinator.Coordinator, m coordinator.Modal) Content {
			return &fakeContent{title: "modal:" + m.Value.(string)}
		})
	return h
}

// WithManualTestScheduler keeps scheduled work pending forever; these tests
// never need the replace or release windows to elapse.
func WithManualTestScheduler() coordinator.Option {
	return coordinator.WithScheduler(stuckScheduler{})
}

type stuckScheduler struct{}

func (stuckScheduler) After(_ time.Duration, _ func()) func() { return func() {} }

func keyMsg(s string) tea.KeyMsg {
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAppearHydratesExistingPath(t *testing.T) {
	h := newHarness(t)
	h.coord.Push("a")
	h.coord.Push("b")
	require.Empty(t, h.resolved, "binding is inert before Appear")

	h.binding.Appear()
	require.Equal(t, []string{"a", "b"}, h.resolved)
	require.Equal(t, "b", h.binding.Title())
}

func TestStateToNativePropagation(t *testing.T) {
	h := newHarness(t)
	h.binding.Appear()

	h.coord.Push("a")
	require.Equal(t, []string{"a"}, h.resolved)

	h.coord.Push("b")
	require.Equal(t, []string{"a", "b"}, h.resolved, "unchanged prefix content is reused")

	h.coord.Pop()
	require.Equal(t, "a", h.binding.Title())
	require.Equal(t, []string{"a", "b"}, h.resolved, "pop must not re-resolve the remaining stack")
}

func TestNativeToStateWriteBack(t *testing.T) {
	h := newHarness(t)
	h.binding.Appear()
	h.coord.Push("a")
	h.coord.Push("b")

	h.binding.Update(keyMsg("esc"))

	require.Equal(t, []coordinator.Screen{"a"}, h.coord.Path(), "native pop writes back into the path")
}

func TestFeedbackGuard(t *testing.T) {
	h := newHarness(t)
	h.binding.Appear()
	h.coord.Push("a")
	resolvedBefore := len(h.resolved)

	// Writing back an identical path must not re-enter the sync.
	h.coord.SetPath([]coordinator.Screen{"a"})
	require.Equal(t, resolvedBefore, len(h.resolved))
}

func TestBaseContentHandlesKeysWhenStackEmpty(t *testing.T) {
	h := newHarness(t)
	h.binding.Appear()

	h.binding.Update(keyMsg("x"))
	// base content got the key; no screen was resolved for it
	require.Empty(t, h.resolved)
}

func TestModalMountAndRouting(t *testing.T) {
	h := newHarness(t)
	h.binding.Appear()

	h.coord.Present(coordinator.Modal{Value: "settings", Style: coordinator.StyleOverlay}, coordinator.OverAll)
	require.NotNil(t, h.binding.modal)
	require.Equal(t, "modal:settings", h.binding.Title())

	view := h.binding.View(40, 12)
	require.Contains(t, view, "modal:settings")
	require.Contains(t, view, "[home]", "overlay keeps the base view visible")

	h.coord.DismissPresented()
	require.Nil(t, h.binding.modal)
	require.Equal(t, "home", h.binding.Title())
}

func TestCoverStyleHidesBase(t *testing.T) {
	h := newHarness(t)
	h.binding.Appear()
	h.coord.Present(coordinator.Modal{Value: "full", Style: coordinator.StyleCover}, coordinator.OverAll)

	view := h.binding.View(40, 12)
	require.Contains(t, view, "modal:full")
	require.NotContains(t, view, "[home]")
}

func TestModalFlowHydratesOnMount(t *testing.T) {
	h := newHarness(t)
	h.binding.Appear()

	flow := coordinator.New(WithManualTestScheduler())
	flow.Push("wizard-step-1")
	h.coord.Present(coordinator.Modal{Value: "wizard", Flow: flow}, coordinator.OverAll)

	// The flow's pre-seeded path reached the child's native stack at mount.
	require.Contains(t, h.resolved, "wizard-step-1")
	require.Equal(t, "wizard-step-1", h.binding.Title())
}

func TestNestedModalChainRendering(t *testing.T) {
	h := newHarness(t)
	h.binding.Appear()
	h.coord.Present(coordinator.Modal{Value: "m1", Style: coordinator.StyleOverlay}, coordinator.OverAll)
	h.coord.Present(coordinator.Modal{Value: "m2", Style: coordinator.StyleOverlay}, coordinator.OverAll)

	require.Equal(t, "modal:m2", h.binding.Title(), "routing follows the chain to the foreground")
	view := h.binding.View(60, 16)
	require.Contains(t, view, "modal:m2")
}

func TestAlertConsumesKeysAndDismisses(t *testing.T) {
	h := newHarness(t)
	h.binding.Appear()
	h.coord.Push("a")
	h.coord.Alert(coordinator.Alert{Title: "Oops", Message: "bad"})

	view := h.binding.View(40, 12)
	require.Contains(t, view, "Oops")

	top := h.binding.top().content.(*fakeContent)
	hitsBefore := top.hits
	h.binding.Update(keyMsg("x"))
	require.Equal(t, hitsBefore, top.hits, "keys go to the alert while one is visible")

	h.binding.Update(keyMsg("esc"))
	_, visible := h.coord.VisibleAlert()
	require.False(t, visible)
}

func TestDeferredMsgRunsOnLoop(t *testing.T) {
	h := newHarness(t)
	ran := false
	h.binding.Update(DeferredMsg{Fn: func() { ran = true }})
	require.True(t, ran)
}

func TestForwardEvents(t *testing.T) {
	c := coordinator.New()
	var msgs []tea.Msg
	unsub := ForwardEvents(c, func(m tea.Msg) { msgs = append(msgs, m) })

	c.Push("a")
	require.Len(t, msgs, 1)
	nav, ok := msgs[0].(NavigationMsg)
	require.True(t, ok)
	_, ok = nav.Event.(coordinator.PathEvent)
	require.True(t, ok)

	unsub()
	c.Push("b")
	require.Len(t, msgs, 1, "unsubscribed forwarder must stay silent")
}

func TestViewRendersBaseWhenIdle(t *testing.T) {
	h := newHarness(t)
	h.binding.Appear()
	view := h.binding.View(20, 4)
	require.True(t, strings.Contains(view, "[home]"))
}
