// Package streak implements the three pure components of the coin-flip
// simulation: splitting a trial count into near-equal worker batches, running
// a sequential batch of fair coin flips into a streak histogram, and merging
// worker histograms into one.
//
// All three are deterministic given their inputs (the runner's randomness
// enters only through its Source), share no state, and are safe to invoke
// from concurrent workers.
package streak
