// Package ioformat reads and writes the wire formats described in §6: a
// delimited edge-list file (tab, falling back to comma then space) and a
// one-type-per-line types file. It also owns the scoped temp-file resource
// the external engine adapter reads from.
package ioformat
