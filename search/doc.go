// Package search implements the agglomerative model-order search driver
// (§4.6): INIT -> CHECK_LOCAL_MIN -> MERGE_LOOP, with an adaptive
// overshoot threshold, a shrinking ratio, Chebyshev-ordered neighborhood
// exploration, and a warm-start heuristic for engine invocations. It is
// the component that actually answers "what (K_a, K_b) minimizes
// description length".
package search
