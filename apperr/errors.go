// Package apperr defines the error taxonomy surfaced by the driver and its
// supporting packages (§7): a typed code, a message, and an optional wrapped
// cause, with the offending (K_a, K_b) attached where applicable.
package apperr

import (
	"errors"
	"fmt"
)

// Code classifies an Error per §7's error kinds.
type Code string

const (
	// CodeInvalidInput covers malformed caller input: empty side, a
	// bipartite-violating edge, out-of-range K_a/K_b, or an out-of-range
	// tuning parameter (i_0, rho).
	CodeInvalidInput Code = "INVALID_INPUT"
	// CodeEngineFailure covers a nonzero engine exit or malformed output.
	CodeEngineFailure Code = "ENGINE_FAILURE"
	// CodeInconsistency covers an invariant violation (asymmetric e_rs,
	// wrong partition cardinality, edge-count mismatch) — a bug in this
	// implementation, never a consequence of bad user data.
	CodeInconsistency Code = "INCONSISTENCY"
	// CodeResource covers a fatal resource failure, e.g. temp-file
	// creation.
	CodeResource Code = "RESOURCE"
)

// Error is the application error type for expected failure modes (package
// bigraph's sentinel errors are returned without it); Code lets callers
// branch without string matching, and Unwrap preserves the original cause
// for errors.Is/As.
type Error struct {
	Code    Code
	Message string
	Ka, Kb  int // offending block counts; zero value means "not applicable"
	Err     error
}

func (e *Error) Error() string {
	loc := ""
	if e.Ka != 0 || e.Kb != 0 {
		loc = fmt.Sprintf(" (Ka=%d, Kb=%d)", e.Ka, e.Kb)
	}
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s%s: %v", e.Code, e.Message, loc, e.Err)
	}
	return fmt.Sprintf("[%s] %s%s", e.Code, e.Message, loc)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates an Error with no wrapped cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates an Error wrapping an existing cause.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// WithBlocks attaches the offending (K_a, K_b) to an Error and returns it,
// for the driver's "surfaces InvalidInput/EngineFailure with the offending
// (K_a, K_b)" propagation rule (§7).
func (e *Error) WithBlocks(ka, kb int) *Error {
	e.Ka, e.Kb = ka, kb
	return e
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInput Error.
func IsInvalidInput(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeInvalidInput
}

// IsEngineFailure reports whether err is (or wraps) an EngineFailure Error.
func IsEngineFailure(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeEngineFailure
}

// IsInconsistency reports whether err is (or wraps) an Inconsistency Error.
func IsInconsistency(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeInconsistency
}
