// Package chronotest provides a conformance suite and test harness
// for ChronoService implementations.
//
// The same suite runs against the in-process [Local] implementation
// and against a dialed gRPC client, keeping the library and its
// transports in agreement on canonical forms.
package chronotest

import (
	"context"
	"sync"
	"testing"

	"github.com/blockberries/chronoberry"
)

// Implementation is the operation surface a conformant ChronoService
// exposes. Both Local and the gRPC client satisfy it. Every operation
// must accept denormal pairs and answer in canonical form.
type Implementation interface {
	NormalizeDuration(ctx context.Context, d chronoberry.Duration) (chronoberry.Duration, error)
	NormalizeTimestamp(ctx context.Context, ts chronoberry.Timestamp) (chronoberry.Timestamp, error)
	Elapsed(ctx context.Context, from, to chronoberry.Timestamp) (chronoberry.Duration, error)
	Shift(ctx context.Context, base chronoberry.Timestamp, offset chronoberry.Duration) (chronoberry.Timestamp, error)
}

// RunConformanceSuite drives denormal pairs through every operation of
// an Implementation and checks the answers field-for-field, so
// independent implementations can be cross-checked against the same
// vectors.
func RunConformanceSuite(t *testing.T, impl Implementation) {
	t.Helper()
	ctx := context.Background()

	t.Run("duration_fold_carries", func(t *testing.T) {
		cases := []struct{ in, want chronoberry.Duration }{
			{chronoberry.Duration{Seconds: 1, Nanos: 1_500_000_000}, chronoberry.Duration{Seconds: 2, Nanos: 500_000_000}},
			{chronoberry.Duration{Seconds: -1, Nanos: -1_500_000_000}, chronoberry.Duration{Seconds: -2, Nanos: -500_000_000}},
			{chronoberry.Duration{Seconds: 0, Nanos: 2_000_000_000}, chronoberry.Duration{Seconds: 2, Nanos: 0}},
			{chronoberry.Duration{Seconds: 0, Nanos: -2_000_000_000}, chronoberry.Duration{Seconds: -2, Nanos: 0}},
		}
		for _, tc := range cases {
			got, err := impl.NormalizeDuration(ctx, tc.in)
			if err != nil {
				t.Fatalf("NormalizeDuration(%+v): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("NormalizeDuration(%+v): got %+v, want %+v", tc.in, got, tc.want)
			}
		}
	})

	t.Run("duration_sign_reconciliation", func(t *testing.T) {
		cases := []struct{ in, want chronoberry.Duration }{
			{chronoberry.Duration{Seconds: 1, Nanos: -500_000_000}, chronoberry.Duration{Seconds: 0, Nanos: 500_000_000}},
			{chronoberry.Duration{Seconds: -1, Nanos: 500_000_000}, chronoberry.Duration{Seconds: 0, Nanos: -500_000_000}},
			{chronoberry.Duration{Seconds: 2, Nanos: -500_000_000}, chronoberry.Duration{Seconds: 1, Nanos: 500_000_000}},
			// No owning second to borrow from: the sign stays on nanos.
			{chronoberry.Duration{Seconds: 0, Nanos: -500_000_000}, chronoberry.Duration{Seconds: 0, Nanos: -500_000_000}},
		}
		for _, tc := range cases {
			got, err := impl.NormalizeDuration(ctx, tc.in)
			if err != nil {
				t.Fatalf("NormalizeDuration(%+v): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("NormalizeDuration(%+v): got %+v, want %+v", tc.in, got, tc.want)
			}
		}
	})

	t.Run("duration_normalize_idempotent", func(t *testing.T) {
		in := chronoberry.Duration{Seconds: 1, Nanos: 1_500_000_000}
		once, err := impl.NormalizeDuration(ctx, in)
		if err != nil {
			t.Fatalf("NormalizeDuration: %v", err)
		}
		twice, err := impl.NormalizeDuration(ctx, once)
		if err != nil {
			t.Fatalf("NormalizeDuration: %v", err)
		}
		if twice != once {
			t.Errorf("not idempotent: %+v -> %+v", once, twice)
		}
	})

	t.Run("timestamp_nanos_count_forward", func(t *testing.T) {
		cases := []struct{ in, want chronoberry.Timestamp }{
			{chronoberry.Timestamp{Seconds: 1, Nanos: 1_500_000_000}, chronoberry.Timestamp{Seconds: 2, Nanos: 500_000_000}},
			{chronoberry.Timestamp{Seconds: 1, Nanos: -500_000_000}, chronoberry.Timestamp{Seconds: 0, Nanos: 500_000_000}},
			{chronoberry.Timestamp{Seconds: 0, Nanos: -500_000_000}, chronoberry.Timestamp{Seconds: -1, Nanos: 500_000_000}},
			{chronoberry.Timestamp{Seconds: -1, Nanos: -1_500_000_000}, chronoberry.Timestamp{Seconds: -3, Nanos: 500_000_000}},
		}
		for _, tc := range cases {
			got, err := impl.NormalizeTimestamp(ctx, tc.in)
			if err != nil {
				t.Fatalf("NormalizeTimestamp(%+v): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("NormalizeTimestamp(%+v): got %+v, want %+v", tc.in, got, tc.want)
			}
			if got.Nanos < 0 || got.Nanos > 999_999_999 {
				t.Errorf("NormalizeTimestamp(%+v): nanos out of range: %d", tc.in, got.Nanos)
			}
		}
	})

	t.Run("timestamp_normalize_idempotent", func(t *testing.T) {
		in := chronoberry.Timestamp{Seconds: 0, Nanos: -500_000_000}
		once, err := impl.NormalizeTimestamp(ctx, in)
		if err != nil {
			t.Fatalf("NormalizeTimestamp: %v", err)
		}
		twice, err := impl.NormalizeTimestamp(ctx, once)
		if err != nil {
			t.Fatalf("NormalizeTimestamp: %v", err)
		}
		if twice != once {
			t.Errorf("not idempotent: %+v -> %+v", once, twice)
		}
	})

	t.Run("elapsed_measures_span", func(t *testing.T) {
		cases := []struct {
			from, to chronoberry.Timestamp
			want     chronoberry.Duration
		}{
			{chronoberry.Timestamp{Seconds: 1, Nanos: 900_000_000}, chronoberry.Timestamp{Seconds: 2, Nanos: 100_000_000}, chronoberry.Duration{Seconds: 0, Nanos: 200_000_000}},
			{chronoberry.Timestamp{Seconds: 2, Nanos: 100_000_000}, chronoberry.Timestamp{Seconds: 1, Nanos: 900_000_000}, chronoberry.Duration{Seconds: 0, Nanos: -200_000_000}},
			{chronoberry.Timestamp{Seconds: -1, Nanos: 500_000_000}, chronoberry.Timestamp{Seconds: 1, Nanos: 0}, chronoberry.Duration{Seconds: 1, Nanos: 500_000_000}},
			// Denormal endpoints measure by value.
			{chronoberry.Timestamp{Seconds: 2, Nanos: -1_000_000_000}, chronoberry.Timestamp{Seconds: 0, Nanos: 3_000_000}, chronoberry.Duration{Seconds: 0, Nanos: -997_000_000}},
		}
		for _, tc := range cases {
			got, err := impl.Elapsed(ctx, tc.from, tc.to)
			if err != nil {
				t.Fatalf("Elapsed(%+v, %+v): %v", tc.from, tc.to, err)
			}
			if got != tc.want {
				t.Errorf("Elapsed(%+v, %+v): got %+v, want %+v", tc.from, tc.to, got, tc.want)
			}
		}
	})

	t.Run("shift_lands_canonical", func(t *testing.T) {
		cases := []struct {
			base   chronoberry.Timestamp
			offset chronoberry.Duration
			want   chronoberry.Timestamp
		}{
			{chronoberry.Timestamp{Seconds: 100, Nanos: 900_000_000}, chronoberry.Duration{Seconds: 0, Nanos: 200_000_000}, chronoberry.Timestamp{Seconds: 101, Nanos: 100_000_000}},
			{chronoberry.Timestamp{Seconds: 0, Nanos: 0}, chronoberry.Duration{Seconds: 0, Nanos: -500_000_000}, chronoberry.Timestamp{Seconds: -1, Nanos: 500_000_000}},
			// Denormal base and offset shift by value.
			{chronoberry.Timestamp{Seconds: 101, Nanos: -100_000_000}, chronoberry.Duration{Seconds: -1, Nanos: 1_200_000_000}, chronoberry.Timestamp{Seconds: 101, Nanos: 100_000_000}},
		}
		for _, tc := range cases {
			got, err := impl.Shift(ctx, tc.base, tc.offset)
			if err != nil {
				t.Fatalf("Shift(%+v, %+v): %v", tc.base, tc.offset, err)
			}
			if got != tc.want {
				t.Errorf("Shift(%+v, %+v): got %+v, want %+v", tc.base, tc.offset, got, tc.want)
			}
		}
	})

	t.Run("shift_inverts_elapsed", func(t *testing.T) {
		from := chronoberry.Timestamp{Seconds: -10, Nanos: 750_000_000}
		to := chronoberry.Timestamp{Seconds: 31, Nanos: 250_000_000}

		span, err := impl.Elapsed(ctx, from, to)
		if err != nil {
			t.Fatalf("Elapsed: %v", err)
		}
		back, err := impl.Shift(ctx, from, span)
		if err != nil {
			t.Fatalf("Shift: %v", err)
		}
		if back != to {
			t.Errorf("Shift(from, Elapsed(from, to)): got %+v, want %+v", back, to)
		}
	})

	t.Run("concurrent_callers", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				in := chronoberry.Duration{Seconds: 1, Nanos: 1_500_000_000}
				got, err := impl.NormalizeDuration(ctx, in)
				if err != nil {
					t.Errorf("concurrent NormalizeDuration failed: %v", err)
					return
				}
				if got != (chronoberry.Duration{Seconds: 2, Nanos: 500_000_000}) {
					t.Errorf("concurrent NormalizeDuration: got %+v", got)
				}
			}()
		}
		wg.Wait()
	})
}
