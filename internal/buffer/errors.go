package buffer

import "errors"

// Errors returned by buffer operations. Both indicate a caller contract
// violation rather than an expected run-time condition.
var (
	// ErrOutOfBounds indicates a line or column outside the document extents.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrMalformedEdit indicates an edit that would break the line structure,
	// such as a negative delete length or a newline inside a single-line insert.
	ErrMalformedEdit = errors.New("malformed edit")
)
