package kiri

import "errors"

// Rule violations: recoverable, returned with no side effects on the
// Position. The caller may retry with a different move.
var (
	ErrKoForbidden       = errors.New("kiri: move forbidden by ko")
	ErrSuicide           = errors.New("kiri: move is suicide")
	ErrResignNotPlayable = errors.New("kiri: resign is not executed by play")
)

// Input errors: recoverable, originate from the coordinate/text codecs.
var (
	ErrInvalidVertex = errors.New("kiri: invalid vertex")
	ErrWrongRows     = errors.New("kiri: wrong number of rows")
	ErrWrongColumns  = errors.New("kiri: wrong number of columns")
)
