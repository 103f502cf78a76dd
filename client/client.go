// Package client talks to a Resembla similarity search server over gRPC.
package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	resemblapb "github.com/tuem/resembla/pb/resembla/server"
)

// DefaultAddress is where a Resembla server listens out of the box.
const DefaultAddress = "localhost:50051"

var (
	// ErrNoAddress is returned by New when Config.Address is empty.
	ErrNoAddress         = errors.New("server address is empty")
	// ErrSecureUnsupported is returned by New when Config.Insecure is false.
	ErrSecureUnsupported = errors.New("only insecure (plaintext) channels are supported")
	// ErrClientClosed is returned by Close on a client already closed.
	ErrClientClosed      = errors.New("client is closed")
)

// Config describes how to reach the server.
type Config struct {
	Address string
	// Insecure selects a plaintext channel without credentials. It is the
	// only mode the server supports.
	Insecure bool
	// Timeout bounds each call. Zero means no deadline.
	Timeout time.Duration
	// NormalizeQuery applies Unicode NFKC normalization to query and
	// candidate text before it is sent.
	NormalizeQuery bool
}

// DefaultConfig returns the configuration of a stock local server.
func DefaultConfig() Config {
	return Config{
		Address:  DefaultAddress,
		Insecure: true,
	}
}

// Client holds one channel to the server and reuses it for every call.
type Client struct {
	cfg     Config
	conn    *grpc.ClientConn
	service resemblapb.ResemblaServiceClient
	logger  *zap.SugaredLogger
}

// New creates the channel. No connection is attempted until the first call,
// so constructing a client for an empty workload never touches the network.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.Address == "" {
		return nil, ErrNoAddress
	}
	if !cfg.Insecure {
		return nil, ErrSecureUnsupported
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(LoggingInterceptor(o.logger)),
	}
	dialOpts = append(dialOpts, o.dialOptions...)

	conn, err := grpc.NewClient(cfg.Address, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create channel to %s: %w", cfg.Address, err)
	}
	o.logger.Debugf("Created channel to %s", cfg.Address)

	return &Client{
		cfg:     cfg,
		conn:    conn,
		service: resemblapb.NewResemblaServiceClient(conn),
		logger:  o.logger,
	}, nil
}

// Find returns the server's matches for query in the order they were sent.
func (c *Client) Find(ctx context.Context, query string) ([]*resemblapb.ResemblaResult, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.service.Find(ctx, &resemblapb.ResemblaRequest{Query: c.normalize(query)})
	if err != nil {
		return nil, fmt.Errorf("find %q: %w", query, err)
	}
	return resp.GetResults(), nil
}

// Eval asks the server to score candidates against query.
func (c *Client) Eval(ctx context.Context, query string, candidates []string) ([]*resemblapb.ResemblaResult, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	req := &resemblapb.ResemblaOnDemandRequest{
		Query:      c.normalize(query),
		Candidates: make([]string, 0, len(candidates)),
	}
	for _, candidate := range candidates {
		req.Candidates = append(req.Candidates, c.normalize(candidate))
	}

	resp, err := c.service.Eval(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("eval %q: %w", query, err)
	}
	return resp.GetResults(), nil
}

// Close releases the channel.
func (c *Client) Close() error {
	if c.conn == nil {
		return ErrClientClosed
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, c.cfg.Timeout)
	}
	return ctx, func() {}
}

func (c *Client) normalize(s string) string {
	if !c.cfg.NormalizeQuery {
		return s
	}
	return norm.NFKC.String(s)
}
