package chronogrpc

import (
	"context"
	"fmt"

	"github.com/blockberries/chronoberry"

	"google.golang.org/grpc"
)

const serviceName = "chronoberry.v1.ChronoService"

// ChronoServiceServer is the server-side interface for the chronoberry
// gRPC service. Implementations must accept denormal pairs and answer
// in canonical form.
type ChronoServiceServer interface {
	NormalizeDuration(context.Context, *chronoberry.Duration) (*chronoberry.Duration, error)
	NormalizeTimestamp(context.Context, *chronoberry.Timestamp) (*chronoberry.Timestamp, error)
	Elapsed(context.Context, *ElapsedRequest) (*chronoberry.Duration, error)
	Shift(context.Context, *ShiftRequest) (*chronoberry.Timestamp, error)
}

// RegisterChronoServiceServer registers the ChronoServiceServer on a
// gRPC server.
func RegisterChronoServiceServer(s *grpc.Server, srv ChronoServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

// --- Handler functions ---

func handlerNormalizeDuration(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(chronoberry.Duration)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(ChronoServiceServer).NormalizeDuration(ctx, req)
}

func handlerNormalizeTimestamp(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(chronoberry.Timestamp)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(ChronoServiceServer).NormalizeTimestamp(ctx, req)
}

func handlerElapsed(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(ElapsedRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(ChronoServiceServer).Elapsed(ctx, req)
}

func handlerShift(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(ShiftRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(ChronoServiceServer).Shift(ctx, req)
}

// fullMethod builds the full gRPC method path.
func fullMethod(method string) string {
	return fmt.Sprintf("/%s/%s", serviceName, method)
}

// serviceDesc is the manual gRPC service descriptor for ChronoService.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ChronoServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "NormalizeDuration", Handler: handlerNormalizeDuration},
		{MethodName: "NormalizeTimestamp", Handler: handlerNormalizeTimestamp},
		{MethodName: "Elapsed", Handler: handlerElapsed},
		{MethodName: "Shift", Handler: handlerShift},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "chronoberry/v1/service.cram",
}
