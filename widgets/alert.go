package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	alertTitleStyle  = lipgloss.NewStyle().Bold(true)
	alertActionStyle = lipgloss.NewStyle().Faint(true)
)

// AlertCard renders an alert as a centered card over the base view. Actions
// render as a single hint row under the message.
type AlertCard struct {
	Title   string
	Message string
	Actions []string
}

func (a AlertCard) Render(base string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := []string{alertTitleStyle.Render(a.Title)}
	if a.Message != "" {
		lines = append(lines, "", a.Message)
	}
	if len(a.Actions) > 0 {
		lines = append(lines, "", alertActionStyle.Render(strings.Join(a.Actions, "  ")))
	}
	return Overlay(base, strings.Join(lines, "\n"), width, height)
}
