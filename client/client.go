// Package client is a thin gRPC client for the sorter service.
package client

import (
	"context"
	"fmt"
	"sync/atomic"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding/gzip"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/maxpoletaev/sorter/rpc"
)

type Client struct {
	conn   *grpc.ClientConn
	closed uint32
}

// Dial connects to a sorter server. Extra options are appended to the
// defaults, so they can override the transport (e.g. in tests).
func Dial(ctx context.Context, addr string, opts ...grpc.DialOption) (*Client, error) {
	defaults := []grpc.DialOption{
		grpc.WithBlock(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.UseCompressor(gzip.Name)),
	}

	conn, err := grpc.DialContext(ctx, addr, append(defaults, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("grpc dial failed: %w", err)
	}

	return &Client{conn: conn}, nil
}

func (c *Client) SortNumbers(ctx context.Context, values []float64, ascending bool) ([]float64, error) {
	resp := new(structpb.ListValue)

	if err := c.conn.Invoke(ctx, rpc.MethodSortNumbers, rpc.NumbersRequest(values, ascending), resp); err != nil {
		return nil, err
	}

	return rpc.NumbersResponse(resp)
}

func (c *Client) SortStrings(ctx context.Context, values []string, ascending bool) ([]string, error) {
	resp := new(structpb.ListValue)

	if err := c.conn.Invoke(ctx, rpc.MethodSortStrings, rpc.StringsRequest(values, ascending), resp); err != nil {
		return nil, err
	}

	return rpc.StringsResponse(resp)
}

func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closed, 0, 1) {
		return nil // already closed
	}

	return c.conn.Close()
}

func (c *Client) IsClosed() bool {
	return atomic.LoadUint32(&c.closed) == 1
}
