package client

import (
	"bytes"
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tuem/resembla/internal/test"
	resemblapb "github.com/tuem/resembla/pb/resembla/server"
)

func TestLoggingInterceptor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		description string
		given       error
		want        *regexp.Regexp
	}{
		{
			"successful call",
			nil,
			regexp.MustCompile(`RPC\s{"Method": "/resembla.server.ResemblaService/find", "Code": "OK", "Duration": \d+}`),
		},
		{
			"failed call",
			status.Error(codes.NotFound, "no index"),
			regexp.MustCompile(`RPC\s{"Method": "/resembla.server.ResemblaService/find", "Code": "NotFound", "Duration": \d+, "Error": "rpc error: code = NotFound desc = no index"}`),
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			var output bytes.Buffer
			interceptor := LoggingInterceptor(test.DummyLogger(&output).Sugar())

			invoked := false
			invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
				invoked = true
				return tc.given
			}

			err := interceptor(context.Background(), resemblapb.ResemblaService_Find_FullMethodName,
				&resemblapb.ResemblaRequest{Query: "cats"}, &resemblapb.ResemblaResponse{}, nil, invoker)

			assert.True(t, invoked)
			assert.Equal(t, tc.given, err)
			assert.Regexp(t, tc.want, output.String())
		})
	}
}
