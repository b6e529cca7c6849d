package spreadsheet

import "errors"

// Engine errors.
//
// These sentinel errors can be checked with errors.Is.
var (
	// ErrInvalidAddress is returned when a cell address is not a letter run
	// followed by a digit run (with optional '$' markers).
	ErrInvalidAddress = errors.New("spreadsheet: invalid cell address")

	// ErrBadFormula is returned by SetCell when formula text fails to
	// parse. The prior cell state is left unchanged.
	ErrBadFormula = errors.New("spreadsheet: malformed formula")

	// ErrBadSaveData is returned by Load when the stream contains a
	// malformed record. The sheet is left unchanged.
	ErrBadSaveData = errors.New("spreadsheet: malformed save data")
)
