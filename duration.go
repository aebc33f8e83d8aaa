package chronoberry

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Duration is the wire-safe representation of a signed span of time.
// Seconds and a nanosecond remainder travel as separate fields,
// ensuring deterministic serialization across languages.
//
// A Duration is canonical when Nanos lies strictly within one second
// of zero and shares the sign of Seconds unless either field is zero.
// [Duration.Normalized] produces the canonical form; every operation
// on Duration normalizes internally, so denormal pairs behave by
// value.
type Duration struct {
	Seconds int64 `cramberry:"1"`
	Nanos   int32 `cramberry:"2"`
}

// DurationFromGo converts a time.Duration to a Duration. The
// conversion is total and exact: every time.Duration fits the pair.
func DurationFromGo(d time.Duration) Duration {
	return Duration{
		Seconds: int64(d / time.Second),
		Nanos:   int32(d % time.Second),
	}.Normalized()
}

// ToGo converts a Duration to a time.Duration.
//
// Negative spans do not convert: they fail with a
// [NegativeDurationError] carrying the non-negative magnitude, and
// callers that accept negative spans must take that error path
// explicitly. Spans beyond the time.Duration range (about 292 years)
// saturate silently to the nearest bound.
func (d Duration) ToGo() (time.Duration, error) {
	d = d.Normalized()
	if d.Seconds < 0 || d.Nanos < 0 {
		return 0, &NegativeDurationError{Magnitude: d.magnitude()}
	}
	return goDuration(d.Seconds, d.Nanos), nil
}

// magnitude is the absolute value of a canonical non-positive pair as
// a host duration, clamped to the representable range.
func (d Duration) magnitude() time.Duration {
	if d.Seconds == math.MinInt64 {
		return math.MaxInt64
	}
	return goDuration(-d.Seconds, -d.Nanos)
}

// Normalized returns the canonical form of d: whole seconds are folded
// out of Nanos, then a second is borrowed across the fields if their
// signs disagree. When Seconds is zero there is no second to borrow
// from and the nanos keep their sign.
func (d Duration) Normalized() Duration {
	s, n := foldNanos(d.Seconds, d.Nanos)
	if s < 0 && n > 0 {
		s++
		n -= nanosPerSecond
	} else if s > 0 && n < 0 {
		s--
		n += nanosPerSecond
	}
	return Duration{Seconds: s, Nanos: n}
}

// IsNormalized reports whether d is already in canonical form.
func (d Duration) IsNormalized() bool {
	if d.Nanos <= -nanosPerSecond || d.Nanos >= nanosPerSecond {
		return false
	}
	return d.Seconds == 0 || d.Nanos == 0 || (d.Seconds < 0) == (d.Nanos < 0)
}

// Sign returns -1 if the span is negative, +1 if positive, 0 if zero.
func (d Duration) Sign() int {
	d = d.Normalized()
	switch {
	case d.Seconds < 0 || d.Nanos < 0:
		return -1
	case d.Seconds > 0 || d.Nanos > 0:
		return 1
	default:
		return 0
	}
}

// Compare orders two spans: -1 if d is shorter than other, 0 if they
// denote the same span, +1 if longer. Denormal inputs compare by
// value, not by field representation.
func (d Duration) Compare(other Duration) int {
	a, b := d.Normalized(), other.Normalized()
	switch {
	case a.Seconds < b.Seconds:
		return -1
	case a.Seconds > b.Seconds:
		return 1
	case a.Nanos < b.Nanos:
		return -1
	case a.Nanos > b.Nanos:
		return 1
	default:
		return 0
	}
}

// Add returns the canonical sum of d and other. Seconds saturate at
// the int64 bounds rather than wrapping.
func (d Duration) Add(other Duration) Duration {
	a, b := d.Normalized(), other.Normalized()
	secs := satAdd(a.Seconds, b.Seconds)
	nanos := a.Nanos + b.Nanos
	if nanos <= -nanosPerSecond || nanos >= nanosPerSecond {
		secs = satAdd(secs, int64(nanos/nanosPerSecond))
		nanos %= nanosPerSecond
	}
	if secs < 0 && nanos > 0 {
		secs++
		nanos -= nanosPerSecond
	} else if secs > 0 && nanos < 0 {
		secs--
		nanos += nanosPerSecond
	}
	return Duration{Seconds: secs, Nanos: nanos}
}

// String renders the span as decimal seconds, such as "5.5s" or
// "-0.25s". Debug formatting only; the wire form is the field pair.
func (d Duration) String() string {
	d = d.Normalized()
	neg := d.Seconds < 0 || d.Nanos < 0
	secs, nanos := uint64(d.Seconds), uint32(d.Nanos)
	if neg {
		secs, nanos = -secs, -nanos
	}
	s := fmt.Sprintf("%d", secs)
	if nanos != 0 {
		s += strings.TrimRight(fmt.Sprintf(".%09d", nanos), "0")
	}
	if neg {
		s = "-" + s
	}
	return s + "s"
}
