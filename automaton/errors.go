package automaton

import "github.com/pkg/errors"

var (
	// Build-time validation.
	ErrIncompleteAlphabet = errors.New("incomplete alphabet")
	ErrDuplicateSymbol    = errors.New("duplicate symbol")

	// Editing.
	ErrInvalidDimension = errors.New("dimension must be positive")
	ErrSymbolIndex      = errors.New("symbol index out of range")
	ErrNoSymbol         = errors.New("transition needs a named symbol")

	// Loading.
	ErrMalformedDocument = errors.New("malformed document")
	ErrInvalidFileType   = errors.New("invalid file type")
)

func malformed(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedDocument, format, args...)
}
