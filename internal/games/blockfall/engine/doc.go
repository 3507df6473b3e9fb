// Package engine is the falling-block simulation: the playfield grid, the
// shape catalog with precomputed rotations and wall kicks, the falling-piece
// controller, line clearing, and the session state machine that sequences
// spawn, fall, lock, clear and game over.
//
// The engine has no notion of time or rendering. An owner drives a Session
// by calling AdvanceOneStep at Session.TickInterval and forwarding player
// intents between ticks, then drains Session.Events to update its display.
package engine
