package chronogrpc

import (
	"context"
	"fmt"

	"github.com/blockberries/chronoberry"

	"google.golang.org/grpc"
)

// Client calls a remote ChronoService over gRPC using cramberry
// serialization. Requests go over the wire exactly as the caller
// holds them, denormal or not; responses are whatever canonical forms
// the remote side computed.
type Client struct {
	cc *grpc.ClientConn
}

// Dial connects to a remote ChronoService.
func Dial(ctx context.Context, addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append(opts, grpc.WithDefaultCallOptions(
		grpc.ForceCodec(CramberryCodec{}),
	))
	cc, err := grpc.DialContext(ctx, addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("chronoberry client: dial %s: %w", addr, err)
	}
	return &Client{cc: cc}, nil
}

func (c *Client) Close() error {
	return c.cc.Close()
}

// NormalizeDuration returns the remote side's canonical form of d.
func (c *Client) NormalizeDuration(ctx context.Context, d chronoberry.Duration) (chronoberry.Duration, error) {
	resp := new(chronoberry.Duration)
	if err := c.cc.Invoke(ctx, fullMethod("NormalizeDuration"), &d, resp); err != nil {
		return chronoberry.Duration{}, err
	}
	return *resp, nil
}

// NormalizeTimestamp returns the remote side's canonical form of ts.
func (c *Client) NormalizeTimestamp(ctx context.Context, ts chronoberry.Timestamp) (chronoberry.Timestamp, error) {
	resp := new(chronoberry.Timestamp)
	if err := c.cc.Invoke(ctx, fullMethod("NormalizeTimestamp"), &ts, resp); err != nil {
		return chronoberry.Timestamp{}, err
	}
	return *resp, nil
}

// Elapsed returns the remote side's canonical span from one instant to
// another.
func (c *Client) Elapsed(ctx context.Context, from, to chronoberry.Timestamp) (chronoberry.Duration, error) {
	req := &ElapsedRequest{From: from, To: to}
	resp := new(chronoberry.Duration)
	if err := c.cc.Invoke(ctx, fullMethod("Elapsed"), req, resp); err != nil {
		return chronoberry.Duration{}, err
	}
	return *resp, nil
}

// Shift returns the remote side's canonical instant for base moved by
// offset.
func (c *Client) Shift(ctx context.Context, base chronoberry.Timestamp, offset chronoberry.Duration) (chronoberry.Timestamp, error) {
	req := &ShiftRequest{Base: base, Offset: offset}
	resp := new(chronoberry.Timestamp)
	if err := c.cc.Invoke(ctx, fullMethod("Shift"), req, resp); err != nil {
		return chronoberry.Timestamp{}, err
	}
	return *resp, nil
}
