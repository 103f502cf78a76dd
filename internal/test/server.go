package test

import (
	"context"
	"net"
	"sync"
	"testing"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	resemblapb "github.com/tuem/resembla/pb/resembla/server"
)

// BufnetTarget is the dial target to use together with the dialer returned
// by Serve.
const BufnetTarget = "passthrough:///bufnet"

const bufSize = 1024 * 1024

// FakeServer is an in-memory ResemblaService. Find and Eval answer from
// Results keyed by query, or fail with the error in Errors.
type FakeServer struct {
	resemblapb.UnimplementedResemblaServiceServer

	Results map[string][]*resemblapb.ResemblaResult
	Errors  map[string]error

	mu         sync.Mutex
	queries    []string
	candidates [][]string
}

var _ resemblapb.ResemblaServiceServer = (*FakeServer)(nil)

func NewFakeServer() *FakeServer {
	return &FakeServer{
		Results: make(map[string][]*resemblapb.ResemblaResult),
		Errors:  make(map[string]error),
	}
}

func (s *FakeServer) Find(_ context.Context, req *resemblapb.ResemblaRequest) (*resemblapb.ResemblaResponse, error) {
	s.record(req.GetQuery(), nil)
	return s.respond(req.GetQuery())
}

func (s *FakeServer) Eval(_ context.Context, req *resemblapb.ResemblaOnDemandRequest) (*resemblapb.ResemblaResponse, error) {
	s.record(req.GetQuery(), req.GetCandidates())
	return s.respond(req.GetQuery())
}

// Queries returns the query text of every request received so far.
func (s *FakeServer) Queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

// Candidates returns the candidate lists of every Eval request received.
func (s *FakeServer) Candidates() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]string(nil), s.candidates...)
}

func (s *FakeServer) record(query string, candidates []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, query)
	if candidates != nil {
		s.candidates = append(s.candidates, candidates)
	}
}

func (s *FakeServer) respond(query string) (*resemblapb.ResemblaResponse, error) {
	if err, ok := s.Errors[query]; ok {
		return nil, err
	}
	return &resemblapb.ResemblaResponse{Results: s.Results[query]}, nil
}

// Serve runs srv on an in-memory listener for the duration of the test and
// returns the dial option that connects to it.
func Serve(t *testing.T, srv resemblapb.ResemblaServiceServer) grpc.DialOption {
	t.Helper()

	lis := bufconn.Listen(bufSize)
	s := grpc.NewServer()
	resemblapb.RegisterResemblaServiceServer(s, srv)

	var g errgroup.Group
	g.Go(func() error {
		return s.Serve(lis)
	})
	t.Cleanup(func() {
		s.Stop()
		if err := g.Wait(); err != nil {
			t.Errorf("fake server: %v", err)
		}
	})

	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})
}

// Unreachable returns a dial option whose every connection attempt fails,
// as if nothing listened at the target.
func Unreachable(t *testing.T) grpc.DialOption {
	t.Helper()

	lis := bufconn.Listen(bufSize)
	if err := lis.Close(); err != nil {
		t.Fatalf("closing listener: %v", err)
	}

	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})
}
