// Package mergecost scores candidate block merges in O(K) without rebuilding
// the full block-edge matrix or rerunning the partitioning engine (§4.4).
// It is the closed-form approximation package search's MERGE_LOOP samples
// against a pool of candidate pairs before committing to the cheapest one.
package mergecost
