// Command bisbm fits a bipartite stochastic block model to an input graph
// by minimum description length, with automatic selection of the block
// counts K_a and K_b.
package main

import "github.com/katalvlaran/bisbm/cmd/bisbm/cmd"

func main() {
	cmd.Execute()
}
