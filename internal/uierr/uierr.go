// Package uierr classifies the error kinds the controller needs to
// apply its propagation policy uniformly: recoverable errors never
// abort the controller loop, fatal errors tear down terminal state
// before the process exits. Grounded on github.com/grailbio/base/errors,
// an upspin-style kind-classified error type.
package uierr

import (
	"github.com/grailbio/base/errors"
)

// Kinds used by biodiff, layered onto errors.Kind's existing
// enumeration (errors.Invalid, errors.NotExist, ...).
const (
	// QueryCompile: a search query failed to compile; no state change.
	// biodiff logs the failure; no modal message is shown.
	QueryCompile = errors.Invalid
	// UnmappedAddress: goto requested an address with no row (yet).
	// Carries "address does not (yet) exist"; view unchanged. The
	// controller loop logs it; it is not shown in the terminal view.
	UnmappedAddress = errors.NotExist
	// TerminalIO: the terminal back-end failed. Fatal: tear down and exit.
	TerminalIO = errors.Fatal
)

// QueryCompileError wraps a query compilation failure for modal display.
func QueryCompileError(text string, cause error) error {
	return errors.E(QueryCompile, "query", text, cause)
}

// UnmappedAddressError reports that side/addr has no mapped row yet.
func UnmappedAddressError(side string, addr int) error {
	return errors.E(UnmappedAddress, "address does not (yet) exist", "side", side, "addr", addr)
}

// TerminalIOError wraps a fatal terminal back-end failure.
func TerminalIOError(cause error) error {
	return errors.E(TerminalIO, "terminal I/O failure", cause)
}

// IsFatal reports whether err requires tearing down the terminal
// before the process exits.
func IsFatal(err error) bool {
	return err != nil && errors.Is(TerminalIO, err)
}
