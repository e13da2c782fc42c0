package ubidi

import "errors"

// Errors returned by operations on Bidi handles. Call sites wrap these with
// additional detail; match with errors.Is.
var (
	// ErrInvalidArgument flags bad input: negative or mismatched lengths,
	// sub-ranges outside the paragraph, or malformed embedding level entries.
	ErrInvalidArgument = errors.New("ubidi: invalid argument")

	// ErrIllegalState flags use of a handle in the wrong lifecycle state,
	// e.g. querying levels before a paragraph has been set, or double-close.
	ErrIllegalState = errors.New("ubidi: illegal state")

	// ErrTooLong flags paragraphs exceeding the engine's positional counters.
	ErrTooLong = errors.New("ubidi: paragraph too long")

	// ErrInternal flags a violated algorithm invariant. Should be
	// unreachable; it is surfaced rather than swallowed.
	ErrInternal = errors.New("ubidi: internal error")
)
