package search

import "github.com/katalvlaran/bisbm/engine"

// Config bundles the driver's tuning parameters (§4.6's "State variables").
type Config struct {
	// Rho is the shrink ratio applied to the adaptive threshold on
	// overshoot; default 0.9.
	Rho float64
	// Kappa is the neighborhood radius CHECK_LOCAL_MIN explores around
	// the current (K_a, K_b); default 2.
	Kappa int
	// NM is the merge-candidate pool size sampled per block index;
	// default 10.
	NM int
	// Engine is the configuration handed to every engine invocation.
	Engine engine.Config
	// InitialKa0, InitialKb0 seed INIT when the engine does not support
	// (or is configured not to run) natural merge.
	InitialKa0, InitialKb0 int
	// UseNaturalMerge, when true (the default), asks the engine for its
	// own (K_a, K_b) at startup (§4.6 INIT step 1).
	UseNaturalMerge bool
}

// DefaultConfig returns the spec-documented defaults.
func DefaultConfig() Config {
	return Config{
		Rho:             0.9,
		Kappa:           2,
		NM:              10,
		Engine:          engine.DefaultConfig(),
		InitialKa0:      1,
		InitialKb0:      1,
		UseNaturalMerge: true,
	}
}
