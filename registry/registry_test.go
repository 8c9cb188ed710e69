package registry

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/helmsman/binding"
	"github.com/jask/helmsman/coordinator"
)

type nullContent struct{ name string }

func (c nullContent) Title() string        { return c.name }
func (c nullContent) View(int, int) string { return c.name }
func (c nullContent) Update(tea.Msg) (binding.Content, tea.Cmd, bool) {
	return c, nil, false
}

func builderFor(name string) Builder {
	return func(*coordinator.Coordinator) binding.Content { return nullContent{name: name} }
}

func TestResolveKnownScreen(t *testing.T) {
	r := New().Register("settings", builderFor("settings"))
	b, err := r.Resolve("settings")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got := b(nil).Title(); got != "settings" {
		t.Fatalf("wrong builder resolved: %q", got)
	}
}

func TestResolveMissSuggestsNearestName(t *testing.T) {
	r := New().
		Register("settings", builderFor("settings")).
		Register("dashboard", builderFor("dashboard"))

	_, err := r.Resolve("setings")
	if err == nil {
		t.Fatalf("expected a miss")
	}
	if want := `did you mean "settings"`; !strings.Contains(err.Error(), want) {
		t.Fatalf("miss should suggest the nearest name, got %q", err.Error())
	}
}

func TestResolveMissWithoutPlausibleSuggestion(t *testing.T) {
	r := New().Register("settings", builderFor("settings"))
	_, err := r.Resolve("zz")
	if err == nil {
		t.Fatalf("expected a miss")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Fatalf("distant names must not be suggested, got %q", err.Error())
	}
}

func TestScreenResolverRendersMissInline(t *testing.T) {
	r := New().Register("home", builderFor("home"))
	resolve := r.ScreenResolver()

	content := resolve(coordinator.New(), "homee")
	if content == nil {
		t.Fatalf("resolver must never return nil")
	}
	if got := content.Title(); got != "Unknown screen" {
		t.Fatalf("miss should resolve to error content, got %q", got)
	}
}

func TestNamesSorted(t *testing.T) {
	r := New().
		Register("b", builderFor("b")).
		Register("a", builderFor("a"))
	names := r.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("names should be sorted, got %v", names)
	}
}
