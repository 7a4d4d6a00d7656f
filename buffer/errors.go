package buffer

import "errors"

var (
	// ErrShortRead indicates fewer bytes remain than the read requires.
	// The cursor does not move on this failure.
	ErrShortRead = errors.New("buffer: not enough data remaining")

	// ErrNoTerminator indicates no NUL byte was found before the end of
	// data. The cursor is restored to its pre-call position.
	ErrNoTerminator = errors.New("buffer: no null terminator before end of data")
)
