package chronotest

import (
	"context"
	"net"
	"testing"
	"time"

	chronogrpc "github.com/blockberries/chronoberry/grpc"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Compile-time interface check: the gRPC client exposes the same
// surface as Local, so the conformance suite runs against either.
var _ Implementation = (*chronogrpc.Client)(nil)

// StartLocalService starts a ChronoService over a real TCP listener
// on a random port and returns a connected client. The server and the
// connection are torn down with t.Cleanup.
func StartLocalService(t *testing.T) *chronogrpc.Client {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	gs := grpc.NewServer()
	chronogrpc.NewServer().Register(gs)
	go func() {
		_ = gs.Serve(lis)
	}()
	t.Cleanup(gs.GracefulStop)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := chronogrpc.Dial(ctx, lis.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}
