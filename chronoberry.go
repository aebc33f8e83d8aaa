// Package chronoberry implements the two wire-format time values used
// across blockberries protocols: [Duration], a signed span, and
// [Timestamp], an instant relative to the Unix epoch. Both are
// seconds/nanos pairs with cramberry field tags, so they serialize
// deterministically across languages.
//
// A pair has many field-level representations of the same value.
// Normalization rewrites a pair into its unique canonical form: nanos
// within one second of zero, reconciled to the sign convention of the
// type (matching signs for Duration, forward-counting nanos for
// Timestamp). Conversions, comparisons, and arithmetic normalize
// internally, so callers may hold denormal pairs and still get
// canonical answers.
//
// Everything here is a pure function of its inputs. Values are inert:
// no registry, no locks, no background goroutines, safe for any number
// of concurrent callers.
package chronoberry

import (
	"math"
	"time"
)

// nanosPerSecond is the nanos field's carry unit. A canonical pair
// keeps nanos strictly within one second of zero.
const nanosPerSecond = 1_000_000_000

// foldNanos moves whole seconds out of the nanos field. Truncated
// division keeps the remainder's sign, so the result still needs the
// per-type sign pass. The seconds carry is not range-checked.
func foldNanos(seconds int64, nanos int32) (int64, int32) {
	if nanos <= -nanosPerSecond || nanos >= nanosPerSecond {
		seconds += int64(nanos / nanosPerSecond)
		nanos %= nanosPerSecond
	}
	return seconds, nanos
}

// satAdd returns a+b, clamped to the int64 range instead of wrapping.
func satAdd(a, b int64) int64 {
	sum := a + b
	if a > 0 && b > 0 && sum < 0 {
		return math.MaxInt64
	}
	if a < 0 && b < 0 && sum >= 0 {
		return math.MinInt64
	}
	return sum
}

// satSub returns a-b with the same clamping.
func satSub(a, b int64) int64 {
	if b == math.MinInt64 {
		// -b is unrepresentable; a - MinInt64 == a + MaxInt64 + 1.
		return satAdd(satAdd(a, math.MaxInt64), 1)
	}
	return satAdd(a, -b)
}

// goDuration converts a seconds/nanos pair to a time.Duration,
// clamping to the representable range of about ±292 years.
func goDuration(seconds int64, nanos int32) time.Duration {
	const (
		maxSeconds = math.MaxInt64 / nanosPerSecond
		minSeconds = math.MinInt64 / nanosPerSecond
	)
	if seconds > maxSeconds ||
		(seconds == maxSeconds && int64(nanos) > math.MaxInt64-maxSeconds*nanosPerSecond) {
		return math.MaxInt64
	}
	if seconds < minSeconds ||
		(seconds == minSeconds && int64(nanos) < math.MinInt64-minSeconds*nanosPerSecond) {
		return math.MinInt64
	}
	return time.Duration(seconds)*time.Second + time.Duration(nanos)
}
