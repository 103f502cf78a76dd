package client

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// LoggingInterceptor logs every unary call with its status code and latency.
// Failures are logged at debug level; reporting them is left to the caller.
func LoggingInterceptor(logger *zap.SugaredLogger) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		elapsed := time.Since(start)

		if err != nil {
			logger.Debugw("RPC",
				"Method", method,
				"Code", status.Code(err).String(),
				"Duration", elapsed,
				"Error", err,
			)
			return err
		}

		logger.Debugw("RPC",
			"Method", method,
			"Code", status.Code(err).String(),
			"Duration", elapsed,
		)
		return nil
	}
}
