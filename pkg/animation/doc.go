// Package animation reveals a solved path one cell at a time.
//
// A Player holds at most one live run. Starting a new run or cancelling the current one
// makes every earlier RunID stale, and a stale run never yields another frame. Shells drive
// a run with their own timer (Step) or let Play tick it.
package animation
