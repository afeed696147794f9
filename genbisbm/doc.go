// Package genbisbm generates synthetic planted bipartite stochastic block
// model instances: a ground-truth (K_a, K_b) block assignment plus an edge
// list sampled from a block-pair edge-probability matrix. It exists for
// round-trip testing of the search driver (plant a partition, recover it)
// and backs the command-line "generate" subcommand.
package genbisbm
