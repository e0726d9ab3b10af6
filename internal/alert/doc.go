// Package alert plays the bundled sound when a countdown elapses and drives
// the window through its demote/restore sequence around the playback.
//
// Episodes run on a single worker goroutine fed by a one-slot queue: a
// trigger that arrives while another episode is pending is coalesced, and a
// trigger that arrives during playback waits for the running episode to
// restore the window before it demotes it again.
package alert
