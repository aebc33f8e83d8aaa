package chronoberry_test

import (
	"math"
	"testing"
	"time"

	"github.com/blockberries/chronoberry"
)

func TestDurationNormalized(t *testing.T) {
	cases := []struct {
		name string
		in   chronoberry.Duration
		want chronoberry.Duration
	}{
		{"zero", chronoberry.Duration{}, chronoberry.Duration{}},
		{"canonical positive", chronoberry.Duration{Seconds: 1, Nanos: 1}, chronoberry.Duration{Seconds: 1, Nanos: 1}},
		{"canonical negative", chronoberry.Duration{Seconds: -1, Nanos: -1}, chronoberry.Duration{Seconds: -1, Nanos: -1}},
		{"nanos carry up", chronoberry.Duration{Seconds: 1, Nanos: 1_500_000_000}, chronoberry.Duration{Seconds: 2, Nanos: 500_000_000}},
		{"nanos carry down", chronoberry.Duration{Seconds: -1, Nanos: -1_500_000_000}, chronoberry.Duration{Seconds: -2, Nanos: -500_000_000}},
		{"borrow from positive seconds", chronoberry.Duration{Seconds: 1, Nanos: -500_000_000}, chronoberry.Duration{Seconds: 0, Nanos: 500_000_000}},
		{"borrow from negative seconds", chronoberry.Duration{Seconds: -1, Nanos: 500_000_000}, chronoberry.Duration{Seconds: 0, Nanos: -500_000_000}},
		{"zero seconds keeps nanos sign", chronoberry.Duration{Seconds: 0, Nanos: -500_000_000}, chronoberry.Duration{Seconds: 0, Nanos: -500_000_000}},
		{"max nanos folds", chronoberry.Duration{Seconds: 0, Nanos: math.MaxInt32}, chronoberry.Duration{Seconds: 2, Nanos: 147_483_647}},
		{"min nanos folds", chronoberry.Duration{Seconds: 0, Nanos: math.MinInt32}, chronoberry.Duration{Seconds: -2, Nanos: -147_483_648}},
		{"fold then borrow", chronoberry.Duration{Seconds: 1, Nanos: -2_000_000_001}, chronoberry.Duration{Seconds: -1, Nanos: -1}},
	}
	for _, tc := range cases {
		got := tc.in.Normalized()
		if got != tc.want {
			t.Errorf("%s: got %+v, want %+v", tc.name, got, tc.want)
		}
		if again := got.Normalized(); again != got {
			t.Errorf("%s: not idempotent: %+v -> %+v", tc.name, got, again)
		}
		if !got.IsNormalized() {
			t.Errorf("%s: IsNormalized false for canonical %+v", tc.name, got)
		}
	}
}

func TestDurationIsNormalized(t *testing.T) {
	denormal := []chronoberry.Duration{
		{Seconds: 1, Nanos: 1_000_000_000},
		{Seconds: 1, Nanos: -1},
		{Seconds: -1, Nanos: 1},
		{Seconds: 0, Nanos: -1_000_000_000},
	}
	for _, d := range denormal {
		if d.IsNormalized() {
			t.Errorf("IsNormalized true for denormal %+v", d)
		}
	}
}

func TestDurationFromGo(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want chronoberry.Duration
	}{
		{0, chronoberry.Duration{}},
		{24 * time.Hour, chronoberry.Duration{Seconds: 86400, Nanos: 0}},
		{1500 * time.Millisecond, chronoberry.Duration{Seconds: 1, Nanos: 500_000_000}},
		{-1500 * time.Millisecond, chronoberry.Duration{Seconds: -1, Nanos: -500_000_000}},
		{-time.Nanosecond, chronoberry.Duration{Seconds: 0, Nanos: -1}},
		{math.MaxInt64, chronoberry.Duration{Seconds: 9_223_372_036, Nanos: 854_775_807}},
		{math.MinInt64, chronoberry.Duration{Seconds: -9_223_372_036, Nanos: -854_775_808}},
	}
	for _, tc := range cases {
		got := chronoberry.DurationFromGo(tc.in)
		if got != tc.want {
			t.Errorf("DurationFromGo(%v): got %+v, want %+v", tc.in, got, tc.want)
		}
		if !got.IsNormalized() {
			t.Errorf("DurationFromGo(%v) not canonical: %+v", tc.in, got)
		}
	}
}

func TestDurationToGo(t *testing.T) {
	// Non-negative spans round-trip exactly.
	for _, d := range []time.Duration{0, time.Nanosecond, 42 * time.Second, 1500 * time.Millisecond, 24 * time.Hour, math.MaxInt64} {
		got, err := chronoberry.DurationFromGo(d).ToGo()
		if err != nil {
			t.Fatalf("ToGo(%v) failed: %v", d, err)
		}
		if got != d {
			t.Errorf("round-trip of %v: got %v", d, got)
		}
	}

	// Denormal input converts by value.
	got, err := chronoberry.Duration{Seconds: 1, Nanos: -500_000_000}.ToGo()
	if err != nil {
		t.Fatalf("ToGo failed: %v", err)
	}
	if got != 500*time.Millisecond {
		t.Errorf("denormal ToGo: got %v, want 500ms", got)
	}

	// A span beyond the host range saturates silently.
	got, err = chronoberry.Duration{Seconds: math.MaxInt64, Nanos: 0}.ToGo()
	if err != nil {
		t.Fatalf("ToGo failed: %v", err)
	}
	if got != math.MaxInt64 {
		t.Errorf("saturating ToGo: got %v, want max", got)
	}
}

func TestDurationToGoNegative(t *testing.T) {
	cases := []struct {
		name string
		in   chronoberry.Duration
		mag  time.Duration
	}{
		{"whole and fractional", chronoberry.Duration{Seconds: -5, Nanos: -500_000_000}, 5500 * time.Millisecond},
		{"fraction only", chronoberry.Duration{Seconds: 0, Nanos: -500_000_000}, 500 * time.Millisecond},
		{"denormal negative", chronoberry.Duration{Seconds: -1, Nanos: -1_500_000_000}, 2500 * time.Millisecond},
		{"beyond host range", chronoberry.Duration{Seconds: math.MinInt64, Nanos: 0}, math.MaxInt64},
	}
	for _, tc := range cases {
		got, err := tc.in.ToGo()
		if err == nil {
			t.Fatalf("%s: expected error, got %v", tc.name, got)
		}
		if got != 0 {
			t.Errorf("%s: non-zero value %v alongside error", tc.name, got)
		}
		e, ok := chronoberry.IsNegativeDuration(err)
		if !ok {
			t.Fatalf("%s: expected NegativeDurationError, got %v", tc.name, err)
		}
		if e.Magnitude != tc.mag {
			t.Errorf("%s: magnitude %v, want %v", tc.name, e.Magnitude, tc.mag)
		}
	}

	// Negative host inputs come back out through the error path.
	_, err := chronoberry.DurationFromGo(-1500 * time.Millisecond).ToGo()
	e, ok := chronoberry.IsNegativeDuration(err)
	if !ok {
		t.Fatalf("expected NegativeDurationError, got %v", err)
	}
	if e.Magnitude != 1500*time.Millisecond {
		t.Errorf("magnitude %v, want 1.5s", e.Magnitude)
	}
}

func TestDurationSign(t *testing.T) {
	cases := []struct {
		in   chronoberry.Duration
		want int
	}{
		{chronoberry.Duration{}, 0},
		{chronoberry.Duration{Seconds: 5}, 1},
		{chronoberry.Duration{Nanos: 1}, 1},
		{chronoberry.Duration{Seconds: -5}, -1},
		{chronoberry.Duration{Nanos: -1}, -1},
		{chronoberry.Duration{Seconds: 1, Nanos: -1_000_000_000}, 0},
		{chronoberry.Duration{Seconds: -1, Nanos: 1_500_000_000}, 1},
	}
	for _, tc := range cases {
		if got := tc.in.Sign(); got != tc.want {
			t.Errorf("Sign(%+v): got %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestDurationCompare(t *testing.T) {
	cases := []struct {
		a, b chronoberry.Duration
		want int
	}{
		{chronoberry.Duration{}, chronoberry.Duration{}, 0},
		{chronoberry.Duration{Seconds: 1}, chronoberry.Duration{Seconds: 2}, -1},
		{chronoberry.Duration{Seconds: 2}, chronoberry.Duration{Seconds: 1}, 1},
		{chronoberry.Duration{Seconds: 1, Nanos: 1}, chronoberry.Duration{Seconds: 1, Nanos: 2}, -1},
		{chronoberry.Duration{Seconds: -1, Nanos: -1}, chronoberry.Duration{Seconds: -1}, -1},
		{chronoberry.Duration{Nanos: -1}, chronoberry.Duration{}, -1},
		// Denormal representations of one span compare equal.
		{chronoberry.Duration{Seconds: 1, Nanos: -500_000_000}, chronoberry.Duration{Seconds: 0, Nanos: 500_000_000}, 0},
		{chronoberry.Duration{Seconds: 0, Nanos: 1_500_000_000}, chronoberry.Duration{Seconds: 1, Nanos: 500_000_000}, 0},
	}
	for _, tc := range cases {
		if got := tc.a.Compare(tc.b); got != tc.want {
			t.Errorf("Compare(%+v, %+v): got %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDurationAdd(t *testing.T) {
	cases := []struct {
		name string
		a, b chronoberry.Duration
		want chronoberry.Duration
	}{
		{"zeros", chronoberry.Duration{}, chronoberry.Duration{}, chronoberry.Duration{}},
		{"nanos carry", chronoberry.Duration{Seconds: 1, Nanos: 500_000_000}, chronoberry.Duration{Seconds: 1, Nanos: 700_000_000}, chronoberry.Duration{Seconds: 3, Nanos: 200_000_000}},
		{"crossing zero", chronoberry.Duration{Seconds: -1, Nanos: -500_000_000}, chronoberry.Duration{Seconds: 2}, chronoberry.Duration{Seconds: 0, Nanos: 500_000_000}},
		{"sign reconciled", chronoberry.Duration{Seconds: 1}, chronoberry.Duration{Seconds: 0, Nanos: -500_000_000}, chronoberry.Duration{Seconds: 0, Nanos: 500_000_000}},
		{"denormal inputs", chronoberry.Duration{Seconds: 0, Nanos: 1_500_000_000}, chronoberry.Duration{Seconds: 0, Nanos: 1_500_000_000}, chronoberry.Duration{Seconds: 3, Nanos: 0}},
		{"saturates high", chronoberry.Duration{Seconds: math.MaxInt64 - 1}, chronoberry.Duration{Seconds: 5}, chronoberry.Duration{Seconds: math.MaxInt64}},
		{"saturates low", chronoberry.Duration{Seconds: math.MinInt64 + 1}, chronoberry.Duration{Seconds: -5}, chronoberry.Duration{Seconds: math.MinInt64}},
	}
	for _, tc := range cases {
		got := tc.a.Add(tc.b)
		if got != tc.want {
			t.Errorf("%s: got %+v, want %+v", tc.name, got, tc.want)
		}
		if !got.IsNormalized() {
			t.Errorf("%s: sum not canonical: %+v", tc.name, got)
		}
	}
}

func TestDurationString(t *testing.T) {
	cases := []struct {
		in   chronoberry.Duration
		want string
	}{
		{chronoberry.Duration{}, "0s"},
		{chronoberry.Duration{Seconds: 5, Nanos: 500_000_000}, "5.5s"},
		{chronoberry.Duration{Seconds: -5, Nanos: -500_000_000}, "-5.5s"},
		{chronoberry.Duration{Seconds: 0, Nanos: -250_000_000}, "-0.25s"},
		{chronoberry.Duration{Seconds: 1, Nanos: 1}, "1.000000001s"},
		{chronoberry.Duration{Seconds: 2, Nanos: -500_000_000}, "1.5s"},
		{chronoberry.Duration{Seconds: 0, Nanos: 12}, "0.000000012s"},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("String(%+v): got %q, want %q", tc.in, got, tc.want)
		}
	}
}
