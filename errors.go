package md2txt

import "errors"

// MaxInputSize is the maximum accepted input length in bytes (10 MiB).
// Convert rejects larger inputs before any processing starts.
const MaxInputSize = 10 << 20

// Sentinel errors for library operations.
var (
	ErrSizeLimitExceeded = errors.New("input exceeds maximum size")
)
