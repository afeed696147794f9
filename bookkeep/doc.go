// Package bookkeep implements the driver's insertion-ordered state maps and
// transition trace (§4.7): one map each for description length, block-edge
// matrix, and tagged partition, keyed by (K_a, K_b), plus a rollback
// operation that restores the driver's working state from the recorded
// argmin.
package bookkeep
