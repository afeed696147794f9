// Package bconfig loads this module's configuration: search-driver tuning
// parameters, the partitioning engine's annealing schedule, the storage
// backend for exported artifacts, the checkpoint database, and telemetry
// export settings. It is viper-backed so a YAML file, environment
// variables, or in-memory defaults can all populate the same struct.
package bconfig
