// Package blocksum assembles the block-level summaries that the description
// length evaluator (package entropy) and the virtual-merge scorer (package
// mergecost) consume: the block-edge matrix e_rs, the block-size vector n_r,
// the global degree histogram n_k, and the degree-by-block histogram eta_rk
// (§4.2).
//
// Every function here is a pure function of its arguments (an *bigraph.EdgeList
// and a *bigraph.Partition), so results can be memoized and tested in
// isolation — there is no hidden, package-level cache.
package blocksum
