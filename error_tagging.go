package seqpipe

import (
	"errors"
	"fmt"
)

// ItemMetaError exposes which item and which producer a failure concerns.
type ItemMetaError interface {
	error
	Unwrap() error
	Seq() int
	Producer() (int, bool)
}

// consumerRole marks errors raised on the consumer side.
const consumerRole = -1

type itemError struct {
	err      error
	seq      int
	producer int
}

func newItemError(err error, seq, producer int) error {
	if err == nil {
		return nil
	}
	return &itemError{err: err, seq: seq, producer: producer}
}

func (e *itemError) Error() string { return e.err.Error() }
func (e *itemError) Unwrap() error { return e.err }
func (e *itemError) Seq() int      { return e.seq }

func (e *itemError) Producer() (int, bool) {
	if e.producer == consumerRole {
		return 0, false
	}
	return e.producer, true
}

func (e *itemError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			if e.producer == consumerRole {
				_, _ = fmt.Fprintf(s, "item(seq=%d,consumer): %+v", e.seq, e.err)
			} else {
				_, _ = fmt.Fprintf(s, "item(seq=%d,producer=%d): %+v", e.seq, e.producer, e.err)
			}
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// ExtractSeq returns the sequence number err is tagged with, if any.
func ExtractSeq(err error) (int, bool) {
	var ime ItemMetaError
	if errors.As(err, &ime) {
		return ime.Seq(), true
	}
	return 0, false
}

// ExtractProducer returns the index of the producer that raised err, if it was a producer.
func ExtractProducer(err error) (int, bool) {
	var ime ItemMetaError
	if errors.As(err, &ime) {
		return ime.Producer()
	}
	return 0, false
}
