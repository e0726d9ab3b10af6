// Package timer implements the countdown state machine: Idle, Running and
// Elapsed. The host feeds it frame deltas through Tick and learns from the
// return value when the alert for an elapsed episode has to be dispatched.
package timer
