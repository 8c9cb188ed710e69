// Package binding synchronizes coordinator navigation state with bubbletea.
//
// Allowed here:
// - the Content contract and screen/modal resolver boundaries
// - bidirectional path <-> native stack sync and its feedback guard
// - loop-affine scheduling and message plumbing for deferred transitions
//
// Not allowed here:
// - presentation policy (lives in coordinator)
// - concrete screen implementations (live in the host app)
package binding
