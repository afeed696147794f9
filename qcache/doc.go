// Package qcache computes log q(m, n), the log-count of restricted integer
// partitions of m into at most n positive parts, as used by the degree term
// of the description-length evaluator (package entropy).
//
// Entries near (m, n) ~= (|E|, |E|) are pre-tabulated in a dense Cache built
// by Init; anything beyond the table's bound falls back to an analytic
// (asymptotic) approximation, bounding memory while keeping accuracy for the
// very large m that show up once blocks get small and e_r grows (§4.1).
package qcache
