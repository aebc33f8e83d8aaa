package chronotest

import (
	"context"

	"github.com/blockberries/chronoberry"
)

// Compile-time interface check.
var _ Implementation = Local{}

// Local is the in-process Implementation: the library called
// directly, with no serialization in between. It is the reference the
// remote transports are checked against.
type Local struct{}

func (Local) NormalizeDuration(_ context.Context, d chronoberry.Duration) (chronoberry.Duration, error) {
	return d.Normalized(), nil
}

func (Local) NormalizeTimestamp(_ context.Context, ts chronoberry.Timestamp) (chronoberry.Timestamp, error) {
	return ts.Normalized(), nil
}

func (Local) Elapsed(_ context.Context, from, to chronoberry.Timestamp) (chronoberry.Duration, error) {
	return to.Sub(from), nil
}

func (Local) Shift(_ context.Context, base chronoberry.Timestamp, offset chronoberry.Duration) (chronoberry.Timestamp, error) {
	return base.Add(offset), nil
}
