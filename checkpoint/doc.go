// Package checkpoint persists a finished search run's search.Summary (the
// chosen (K_a, K_b), its DL components, graph statistics) and its transition
// trace to a relational database (sqlite, postgres, or mysql), keyed by run
// ID. The per-(K_a, K_b) bookkeeping maps are not stored, and nothing here
// resumes an interrupted search.
package checkpoint
