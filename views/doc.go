// Package views computes derived read-only projections of the stream
// state.
//
// Every projector is a pure function of its inputs: no clocks (Activity
// takes the current time as a parameter), no randomness, no retained
// state. Projections are cheap enough to recompute on every state
// update.
package views
