// Package telemetry provides OpenTelemetry tracing for the search driver
// and engine invocations, configured from bconfig.TelemetryConfig.
package telemetry

import "github.com/katalvlaran/bisbm/bconfig"

// Config is the resolved telemetry configuration for one Init call.
type Config struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Insecure       bool
}

// FromBConfig adapts a bconfig.TelemetryConfig into a telemetry.Config.
func FromBConfig(tc bconfig.TelemetryConfig, version string) Config {
	name := tc.ServiceName
	if name == "" {
		name = "bisbm"
	}
	return Config{
		Enabled:        tc.Enabled,
		ServiceName:    name,
		ServiceVersion: version,
		Endpoint:       tc.Endpoint,
	}
}
