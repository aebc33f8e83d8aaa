package chronogrpc

import "github.com/blockberries/chronoberry"

// Transport-specific wrapper types for RPC methods whose signatures
// take more than one value. Responses are the wire types themselves.

// ElapsedRequest wraps the two instants for ChronoService.Elapsed.
type ElapsedRequest struct {
	From chronoberry.Timestamp `cramberry:"1"`
	To   chronoberry.Timestamp `cramberry:"2"`
}

// ShiftRequest wraps the instant and offset for ChronoService.Shift.
type ShiftRequest struct {
	Base   chronoberry.Timestamp `cramberry:"1"`
	Offset chronoberry.Duration  `cramberry:"2"`
}
