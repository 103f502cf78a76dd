package client

import (
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// Option customizes a Client.
type Option func(*options)

type options struct {
	logger      *zap.SugaredLogger
	dialOptions []grpc.DialOption
}

func defaultOptions() *options {
	return &options{logger: zap.NewNop().Sugar()}
}

// WithLogger sets the logger used for channel and call diagnostics.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithDialOptions appends extra dial options, e.g. a custom dialer.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(o *options) {
		o.dialOptions = append(o.dialOptions, opts...)
	}
}
