// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (modal style compositing, alert cards)
//
// Not allowed here:
// - key handling, navigation state transitions, or presentation policy
package widgets
