// Package registry maps screen names to content builders. It backs apps
// that address screens by string, giving resolution misses a nearest-name
// suggestion.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/helmsman/binding"
	"github.com/jask/helmsman/coordinator"
)

// Builder constructs the content for a screen. The coordinator is the
// explicit handle the screen uses for further navigation.
type Builder func(c *coordinator.Coordinator) binding.Content

// Registry is a name -> builder table.
type Registry struct {
	builders map[string]Builder
}

func New() *Registry {
	return &Registry{builders: make(map[string]Builder)}
}

// Register adds or replaces a builder for name.
func (r *Registry) Register(name string, b Builder) *Registry {
	r.builders[name] = b
	return r
}

// Names returns the registered screen names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.builders))
	for name := range r.builders {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Resolve looks up the builder for name. A miss returns an error carrying
// the closest registered name when one is plausibly a typo.
func (r *Registry) Resolve(name string) (Builder, error) {
	if b, ok := r.builders[name]; ok {
		return b, nil
	}
	if hint := r.nearest(name); hint != "" {
		return nil, fmt.Errorf("unknown screen %q (did you mean %q?)", name, hint)
	}
	return nil, fmt.Errorf("unknown screen %q", name)
}

// ScreenResolver adapts the registry to the binding's resolver contract.
// Unknown names render as an inline error so a typo is visible instead of
// crashing the program.
func (r *Registry) ScreenResolver() binding.ScreenResolver {
	return func(c *coordinator.Coordinator, s coordinator.Screen) binding.Content {
		name, ok := s.(string)
		if !ok {
			name = fmt.Sprint(s)
		}
		b, err := r.Resolve(name)
		if err != nil {
			return errContent{err: err}
		}
		return b(c)
	}
}

// nearest returns the registered name closest to name, or "" when nothing
// is close enough to suggest. The cutoff scales with the query so short
// names do not suggest unrelated screens.
func (r *Registry) nearest(name string) string {
	query := strings.ToLower(name)
	best := ""
	bestDist := len(query)/2 + 1
	for _, candidate := range r.Names() {
		dist := levenshtein.ComputeDistance(query, strings.ToLower(candidate))
		if dist < bestDist {
			best = candidate
			bestDist = dist
		}
	}
	return best
}

type errContent struct {
	err error
}

func (e errContent) Title() string        { return "Unknown screen" }
func (e errContent) View(int, int) string { return e.err.Error() }
func (e errContent) Update(tea.Msg) (binding.Content, tea.Cmd, bool) {
	return e, nil, false
}
