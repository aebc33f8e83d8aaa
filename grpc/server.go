package chronogrpc

import (
	"context"
	"net"

	"github.com/blockberries/chronoberry"

	"google.golang.org/grpc"
)

// Compile-time interface check.
var _ ChronoServiceServer = (*Server)(nil)

// Server answers ChronoService calls with the canonical forms the
// library computes. It is stateless: every call is a pure function of
// its request, so a single Server handles any number of concurrent
// connections.
type Server struct{}

// NewServer creates a ChronoService server.
func NewServer() *Server {
	return &Server{}
}

// Register adds the ChronoService to a gRPC server.
func (s *Server) Register(gs *grpc.Server) {
	RegisterChronoServiceServer(gs, s)
}

// Serve starts a gRPC server with the service registered on the given
// listener.
func (s *Server) Serve(lis net.Listener, opts ...grpc.ServerOption) error {
	gs := grpc.NewServer(opts...)
	s.Register(gs)
	return gs.Serve(lis)
}

func (s *Server) NormalizeDuration(ctx context.Context, d *chronoberry.Duration) (*chronoberry.Duration, error) {
	out := d.Normalized()
	return &out, nil
}

func (s *Server) NormalizeTimestamp(ctx context.Context, ts *chronoberry.Timestamp) (*chronoberry.Timestamp, error) {
	out := ts.Normalized()
	return &out, nil
}

func (s *Server) Elapsed(ctx context.Context, req *ElapsedRequest) (*chronoberry.Duration, error) {
	out := req.To.Sub(req.From)
	return &out, nil
}

func (s *Server) Shift(ctx context.Context, req *ShiftRequest) (*chronoberry.Timestamp, error) {
	out := req.Base.Add(req.Offset)
	return &out, nil
}
