package coordinator

// Alert is a pending alert request: a title, message content and action
// labels. An empty Title falls back to the owning coordinator's app name.
type Alert struct {
	Title   string
	Message string
	Actions []string
}

// Alert queues an alert on the topmost coordinator, so it surfaces over the
// foreground content no matter which coordinator in the chain raised it.
// Alerts append at the tail and display from the tail: a flurry of calls
// shows the newest first with the older ones pending behind it.
func (c *Coordinator) Alert(a Alert) {
	top := c.Top()
	if a.Title == "" {
		a.Title = top.appName
	}
	top.state.alerts = append(top.state.alerts, a)
	top.state.emit(AlertEvent{Coordinator: top, Alerts: top.Alerts()})
}

// VisibleAlert returns the alert currently eligible for display, the most
// recently queued one.
func (c *Coordinator) VisibleAlert() (Alert, bool) {
	if len(c.state.alerts) == 0 {
		return Alert{}, false
	}
	return c.state.alerts[len(c.state.alerts)-1], true
}

// DismissAlert removes the visible alert, revealing the next most recent.
// Returns false when no alert is pending.
func (c *Coordinator) DismissAlert() bool {
	if len(c.state.alerts) == 0 {
		return false
	}
	c.state.alerts = c.state.alerts[:len(c.state.alerts)-1]
	c.state.emit(AlertEvent{Coordinator: c, Alerts: c.Alerts()})
	return true
}

// Alerts returns a copy of the pending alert stack, oldest first.
func (c *Coordinator) Alerts() []Alert {
	out := make([]Alert, len(c.state.alerts))
	copy(out, c.state.alerts)
	return out
}
