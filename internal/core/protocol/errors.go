package protocol

import "errors"

// Bridge errors
var (
	ErrClosed       = errors.New("bridge connection is closed")
	ErrTimeout      = errors.New("bridge call timed out")
	ErrInvalidFrame = errors.New("invalid bridge frame")
	ErrUnknownOp    = errors.New("unknown bridge operation")
)
