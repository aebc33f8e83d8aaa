package chronoberry

import (
	"math"
	"time"
)

// Timestamp is the wire-safe representation of a point in time,
// independent of any time zone or calendar: seconds since the Unix
// epoch plus a nanosecond offset counting forward from that second.
// The fields travel separately, ensuring deterministic serialization
// across languages.
//
// A Timestamp is canonical when Nanos lies in [0, 999_999_999]. That
// holds even before the epoch: half a second before the epoch is
// {Seconds: -1, Nanos: 500_000_000}. [Timestamp.Normalized] produces
// the canonical form; every operation on Timestamp normalizes
// internally, so denormal pairs behave by value.
type Timestamp struct {
	Seconds int64 `cramberry:"1"`
	Nanos   int32 `cramberry:"2"`
}

// Now returns the current instant in canonical form.
func Now() Timestamp {
	return TimeToTimestamp(time.Now())
}

// TimeToTimestamp converts a time.Time to a Timestamp. The conversion
// is total. The location of t affects nothing: two times denoting the
// same instant convert to the same Timestamp.
func TimeToTimestamp(t time.Time) Timestamp {
	return Timestamp{
		Seconds: t.Unix(),
		Nanos:   int32(t.Nanosecond()),
	}.Normalized()
}

// ToTime converts a Timestamp to a time.Time in UTC.
//
// Instants before the epoch do not convert: they fail with a
// [PreEpochError] carrying how far before the epoch the instant lies.
// [Timestamp.In] is the total alternative that covers the full range.
func (ts Timestamp) ToTime() (time.Time, error) {
	ts = ts.Normalized()
	if ts.Seconds < 0 {
		return time.Time{}, &PreEpochError{Offset: ts.epochOffset()}
	}
	return time.Unix(ts.Seconds, int64(ts.Nanos)).UTC(), nil
}

// epochOffset is the carried distance before the epoch for a canonical
// pre-epoch pair: the duration (-Seconds, Nanos) in canonical
// symmetric form, clamped to the host range.
func (ts Timestamp) epochOffset() time.Duration {
	if ts.Seconds == math.MinInt64 {
		return math.MaxInt64
	}
	m := Duration{Seconds: -ts.Seconds, Nanos: ts.Nanos}.Normalized()
	return goDuration(m.Seconds, m.Nanos)
}

// In returns the calendar view of the instant in the given location.
// Unlike [Timestamp.ToTime] this conversion is total: pre-epoch
// instants convert like any other. It panics if loc is nil, as
// time.Time.In does.
func (ts Timestamp) In(loc *time.Location) time.Time {
	ts = ts.Normalized()
	return time.Unix(ts.Seconds, int64(ts.Nanos)).In(loc)
}

// Normalized returns the canonical form of ts: whole seconds are
// folded out of Nanos, then a second is borrowed if the nanos are
// negative, so that Nanos always counts forward from the second mark.
func (ts Timestamp) Normalized() Timestamp {
	s, n := foldNanos(ts.Seconds, ts.Nanos)
	if n < 0 {
		s--
		n += nanosPerSecond
	}
	return Timestamp{Seconds: s, Nanos: n}
}

// IsNormalized reports whether ts is already in canonical form.
func (ts Timestamp) IsNormalized() bool {
	return ts.Nanos >= 0 && ts.Nanos < nanosPerSecond
}

// Add returns the instant shifted by d, in canonical form. Seconds
// saturate at the int64 bounds rather than wrapping.
func (ts Timestamp) Add(d Duration) Timestamp {
	a, b := ts.Normalized(), d.Normalized()
	secs := satAdd(a.Seconds, b.Seconds)
	nanos := a.Nanos + b.Nanos
	if nanos >= nanosPerSecond {
		secs = satAdd(secs, 1)
		nanos -= nanosPerSecond
	} else if nanos < 0 {
		secs = satAdd(secs, -1)
		nanos += nanosPerSecond
	}
	return Timestamp{Seconds: secs, Nanos: nanos}
}

// Sub returns the span from other to ts (receiver minus argument), in
// canonical symmetric form. Seconds saturate at the int64 bounds.
func (ts Timestamp) Sub(other Timestamp) Duration {
	a, b := ts.Normalized(), other.Normalized()
	secs := satSub(a.Seconds, b.Seconds)
	nanos := a.Nanos - b.Nanos
	if secs < 0 && nanos > 0 {
		secs++
		nanos -= nanosPerSecond
	} else if secs > 0 && nanos < 0 {
		secs--
		nanos += nanosPerSecond
	}
	return Duration{Seconds: secs, Nanos: nanos}
}

// Compare orders two instants: -1 if ts is before other, 0 if they
// denote the same instant, +1 if after. Denormal inputs compare by
// value, not by field representation.
func (ts Timestamp) Compare(other Timestamp) int {
	a, b := ts.Normalized(), other.Normalized()
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

// Before reports whether ts is strictly before other.
func (ts Timestamp) Before(other Timestamp) bool {
	return ts.Compare(other) < 0
}

// After reports whether ts is strictly after other.
func (ts Timestamp) After(other Timestamp) bool {
	return ts.Compare(other) > 0
}

// Equal reports whether ts and other denote the same instant. Unlike
// ==, Equal treats denormal representations of one instant as equal.
func (ts Timestamp) Equal(other Timestamp) bool {
	return ts.Compare(other) == 0
}

// String renders the instant as RFC 3339 in UTC. Debug formatting
// only; the wire form is the field pair.
func (ts Timestamp) String() string {
	return ts.In(time.UTC).Format(time.RFC3339Nano)
}
