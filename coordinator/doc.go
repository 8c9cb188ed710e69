// Package coordinator contains the navigation state machine.
//
// Allowed here:
// - coordinator graph, navigation state, modal presentation resolution
// - alert stack policy and topmost-coordinator routing
// - change notification hooks and transition sequencing contracts
//
// Not allowed here:
// - bubbletea message plumbing (lives in binding)
// - rendering of any kind (lives in widgets and the host app)
package coordinator
