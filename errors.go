package chronoberry

import (
	"errors"
	"fmt"
	"time"
)

// NegativeDurationError signals that a Duration denotes a negative
// span where a non-negative host value was required.
//
// Magnitude is how far below zero the span lies, as a non-negative
// time.Duration, clamped to the representable range for extreme
// spans. Callers that accept negative spans recover the magnitude
// from this error instead of a sentinel value.
type NegativeDurationError struct {
	Magnitude time.Duration
}

func (e *NegativeDurationError) Error() string {
	return fmt.Sprintf("duration is negative by %v", e.Magnitude)
}

// PreEpochError signals that a Timestamp denotes an instant before the
// Unix epoch on a conversion that only covers the epoch and later.
//
// Offset is how far before the epoch the conversion reports the
// instant to lie, as a non-negative time.Duration, clamped to the
// representable range for extreme instants.
type PreEpochError struct {
	Offset time.Duration
}

func (e *PreEpochError) Error() string {
	return fmt.Sprintf("timestamp precedes the Unix epoch by %v", e.Offset)
}

// IsNegativeDuration checks whether an error is a
// NegativeDurationError and returns it.
func IsNegativeDuration(err error) (*NegativeDurationError, bool) {
	var e *NegativeDurationError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsPreEpoch checks whether an error is a PreEpochError and returns it.
func IsPreEpoch(err error) (*PreEpochError, bool) {
	var e *PreEpochError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
