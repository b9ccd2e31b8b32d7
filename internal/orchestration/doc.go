// Package orchestration coordinates the fork/join execution of trial batches.
//
// Workers share no mutable state: each runs one batch to completion against
// its own random source and delivers a complete, immutable histogram over a
// single results channel. The collector blocks until it has received exactly
// one result per planned batch; that receive loop is the only synchronization
// point in the simulation.
package orchestration
