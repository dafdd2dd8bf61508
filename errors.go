package seqpipe

import "errors"

const Namespace = "seqpipe"

var (
	ErrInvalidState   = errors.New(Namespace + ": pipeline can only be run once")
	ErrInvalidConfig  = errors.New(Namespace + ": invalid configuration")
	ErrNilFunc        = errors.New(Namespace + ": produce and consume functions are required")
	ErrPanicked       = errors.New(Namespace + ": item function panicked")
	ErrOrderViolation = errors.New(Namespace + ": item consumed out of order")
)
