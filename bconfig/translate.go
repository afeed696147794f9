package bconfig

import (
	"fmt"

	"github.com/katalvlaran/bisbm/engine"
	"github.com/katalvlaran/bisbm/search"
)

// ToSearchConfig builds a search.Config from the loaded configuration.
func (c *Config) ToSearchConfig() search.Config {
	return search.Config{
		Rho:             c.Search.Rho,
		Kappa:           c.Search.Kappa,
		NM:              c.Search.NM,
		Engine:          c.ToEngineConfig(),
		InitialKa0:      c.Search.InitialKa0,
		InitialKb0:      c.Search.InitialKb0,
		UseNaturalMerge: c.Search.UseNaturalMerge,
	}
}

// ToEngineConfig builds an engine.Config from the loaded configuration.
func (c *Config) ToEngineConfig() engine.Config {
	return engine.Config{
		NSweeps: c.Engine.NSweeps,
		Cooling: engine.Cooling{
			Kind: coolingKindOf(c.Engine.CoolingKind),
			P1:   c.Engine.CoolingP1,
			P2:   c.Engine.CoolingP2,
		},
		Epsilon: c.Engine.Epsilon,
	}
}

func coolingKindOf(name string) engine.CoolingKind {
	switch name {
	case "logarithmic":
		return engine.Logarithmic
	case "linear":
		return engine.Linear
	case "constant":
		return engine.Constant
	case "abrupt_cool":
		return engine.AbruptCool
	default:
		return engine.Exponential
	}
}

// CoolingKindName renders a CoolingKind's configuration name, the inverse of
// coolingKindOf, for round-tripping through config files.
func CoolingKindName(k engine.CoolingKind) string {
	switch k {
	case engine.Logarithmic:
		return "logarithmic"
	case engine.Linear:
		return "linear"
	case engine.Constant:
		return "constant"
	case engine.AbruptCool:
		return "abrupt_cool"
	case engine.Exponential:
		return "exponential"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}
