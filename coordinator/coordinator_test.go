package coordinator

import "testing"

func TestPushPopAreInverses(t *testing.T) {
	c := New()
	c.Push("a")
	c.Push("b")
	c.Push("b")
	for range 3 {
		if !c.Pop() {
			t.Fatalf("pop should succeed while path is non-empty")
		}
	}
	if got := len(c.Path()); got != 0 {
		t.Fatalf("path should be empty after popping every push, got %d", got)
	}
}

func TestPopEmptyPathIsNoOp(t *testing.T) {
	c := New()
	if c.Pop() {
		t.Fatalf("pop on empty path should report false")
	}
	if got := len(c.Path()); got != 0 {
		t.Fatalf("path should stay empty, got %d", got)
	}
}

func TestPopToRoot(t *testing.T) {
	c := New()
	for _, s := range []Screen{"a", "b", "c", "d"} {
		c.Push(s)
	}
	c.PopToRoot()
	if got := len(c.Path()); got != 0 {
		t.Fatalf("popToRoot should clear the path, got %d entries", got)
	}
}

func TestPopToScenario(t *testing.T) {
	c := New()
	c.Push("screen1")
	c.Push("screen2")
	if got := c.Path(); len(got) != 2 || got[0] != Screen("screen1") || got[1] != Screen("screen2") {
		t.Fatalf("unexpected path after pushes: %v", got)
	}
	if !c.PopToScreen("screen1") {
		t.Fatalf("popTo should find screen1")
	}
	if got := c.Path(); len(got) != 1 || got[0] != Screen("screen1") {
		t.Fatalf("popTo should keep the matched screen as new top, got %v", got)
	}
	if c.PopToScreen("screen9") {
		t.Fatalf("popTo should fail for an absent screen")
	}
	if got := c.Path(); len(got) != 1 || got[0] != Screen("screen1") {
		t.Fatalf("failed popTo must leave the path unchanged, got %v", got)
	}
}

func TestPopToStopsAtFirstMatch(t *testing.T) {
	c := New()
	for _, s := range []Screen{"a", "b", "a", "c"} {
		c.Push(s)
	}
	if !c.PopToScreen("a") {
		t.Fatalf("popTo should match")
	}
	if got := c.Path(); len(got) != 1 || got[0] != Screen("a") {
		t.Fatalf("popTo should truncate at the first match from the front, got %v", got)
	}
}

func TestSetPathIgnoresEqualPaths(t *testing.T) {
	c := New()
	c.Push("a")
	c.Push("b")

	var events int
	c.Subscribe(func(e Event) {
		if _, ok := e.(PathEvent); ok {
			events++
		}
	})

	c.SetPath([]Screen{"a", "b"})
	if events != 0 {
		t.Fatalf("structurally equal path must not re-emit, got %d events", events)
	}
	c.SetPath([]Screen{"a"})
	if events != 1 {
		t.Fatalf("changed path should emit once, got %d events", events)
	}
	if got := c.Path(); len(got) != 1 || got[0] != Screen("a") {
		t.Fatalf("setPath should replace the path, got %v", got)
	}
}

func TestPathReturnsCopy(t *testing.T) {
	c := New()
	c.Push("a")
	p := c.Path()
	p[0] = "mutated"
	if got := c.Path()[0]; got != Screen("a") {
		t.Fatalf("Path must return a copy, got %v", got)
	}
}

func TestCoordinatorIdentity(t *testing.T) {
	a, b := New(), New()
	if a == b {
		t.Fatalf("distinct coordinators must never compare equal")
	}
	if a.ID() == b.ID() {
		t.Fatalf("coordinator IDs should be unique")
	}
}
