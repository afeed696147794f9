// Package entropy computes the microcanonical-Bayesian description length
// (DL) of a bipartite stochastic block model fit, combining four entropy
// terms over integer counts: adjacency, partition, edge-count, and degree
// (§4.3). The combined DL is what package search minimizes over (K_a, K_b).
//
// All arithmetic is natural log; logC(n, k) = lgammaPlus1(n) - lgammaPlus1(k)
// - lgammaPlus1(n-k), and 0*log(0) is taken to be 0 throughout, per §4.3's
// numeric semantics.
package entropy
