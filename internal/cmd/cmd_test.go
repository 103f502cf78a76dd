package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tuem/resembla/client"
	"github.com/tuem/resembla/internal/config"
	"github.com/tuem/resembla/internal/test"
	resemblapb "github.com/tuem/resembla/pb/resembla/server"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerAddress: test.BufnetTarget,
		Insecure:      true,
		LogLevel:      "debug",
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	server := test.NewFakeServer()
	server.Results["cats"] = []*resemblapb.ResemblaResult{{Text: "feline"}, {Text: "kitten"}}
	server.Results["dogs"] = []*resemblapb.ResemblaResult{}

	var output bytes.Buffer
	logger := test.DummyLogger(io.Discard).Sugar()

	err := Find(context.Background(), testConfig(), logger, &output, []string{"cats", "dogs"},
		client.WithDialOptions(test.Serve(t, server)))

	require.NoError(t, err)
	assert.Equal(t, "query: cats\n  text: feline\n  text: kitten\nquery: dogs\n", output.String())
}

func TestFindWithoutQueriesNeverCallsServer(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	logger := test.DummyLogger(io.Discard).Sugar()

	err := Find(context.Background(), testConfig(), logger, &output, nil,
		client.WithDialOptions(test.Unreachable(t)))

	require.NoError(t, err)
	assert.Empty(t, output.String())
}

func TestFindUnreachableServer(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	logger := test.DummyLogger(io.Discard).Sugar()

	err := Find(context.Background(), testConfig(), logger, &output, []string{"cats", "dogs"},
		client.WithDialOptions(test.Unreachable(t)))

	require.Error(t, err)
	assert.Equal(t, codes.Unavailable, status.Code(err))
	assert.Empty(t, output.String())
}

func TestFindStopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	server := test.NewFakeServer()
	server.Results["cats"] = []*resemblapb.ResemblaResult{{Text: "feline"}}
	server.Errors["dogs"] = status.Error(codes.Internal, "boom")

	var output bytes.Buffer
	logger := test.DummyLogger(io.Discard).Sugar()

	err := Find(context.Background(), testConfig(), logger, &output, []string{"cats", "dogs", "birds"},
		client.WithDialOptions(test.Serve(t, server)))

	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Equal(t, "query: cats\n  text: feline\n", output.String())
	assert.Equal(t, []string{"cats", "dogs"}, server.Queries())
}

func TestFindInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Insecure = false

	err := Find(context.Background(), cfg, test.DummyLogger(io.Discard).Sugar(), io.Discard, []string{"cats"})

	require.ErrorIs(t, err, client.ErrSecureUnsupported)
	assert.Contains(t, err.Error(), "unable to configure client")
}

func TestEval(t *testing.T) {
	t.Parallel()

	server := test.NewFakeServer()
	server.Results["サトー"] = []*resemblapb.ResemblaResult{{Text: "サトウ", Score: 0.5}}

	var output bytes.Buffer
	logger := test.DummyLogger(io.Discard).Sugar()

	err := Eval(context.Background(), testConfig(), logger, &output, []string{"サトー", "サトウ", "セト"},
		client.WithDialOptions(test.Serve(t, server)))

	require.NoError(t, err)
	assert.Equal(t, "query: サトー\ncandidates: サトウ, セト\n  text: サトウ\n  score: 0.500000\n", output.String())
	assert.Equal(t, [][]string{{"サトウ", "セト"}}, server.Candidates())
}

func TestEvalRequiresQuery(t *testing.T) {
	t.Parallel()

	err := Eval(context.Background(), testConfig(), test.DummyLogger(io.Discard).Sugar(), io.Discard, nil)

	assert.ErrorIs(t, err, ErrNoQuery)
}

func TestExitCodes(t *testing.T) {
	t.Parallel()

	serving := func(t *testing.T) grpc.DialOption {
		server := test.NewFakeServer()
		server.Results["cats"] = []*resemblapb.ResemblaResult{{Text: "feline"}}
		return test.Serve(t, server)
	}

	cases := []struct {
		description string
		run         func(*config.Config, []string, io.Writer, io.Writer, ...client.Option) int
		args        []string
		dialer      func(t *testing.T) grpc.DialOption
		code        int
		stdout      string
		stderr      string
	}{
		{
			"no queries exit cleanly without output",
			RunFind,
			nil,
			test.Unreachable,
			ExitOK,
			"",
			"",
		},
		{
			"queries answered by the server",
			RunFind,
			[]string{"cats"},
			serving,
			ExitOK,
			"query: cats\n  text: feline\n",
			"",
		},
		{
			"unreachable server fails with one diagnostic",
			RunFind,
			[]string{"cats", "dogs"},
			test.Unreachable,
			ExitFailure,
			"",
			"could not query passthrough:///bufnet",
		},
		{
			"ondemand without arguments prints usage",
			RunEval,
			nil,
			test.Unreachable,
			ExitUsage,
			"",
			EvalUsage,
		},
		{
			"ondemand with unreachable server",
			RunEval,
			[]string{"サトー", "サトウ"},
			test.Unreachable,
			ExitFailure,
			"",
			"could not evaluate candidates on passthrough:///bufnet",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig()
			cfg.LogLevel = "info"

			var stdout, stderr bytes.Buffer
			code := tc.run(cfg, tc.args, &stdout, &stderr, client.WithDialOptions(tc.dialer(t)))

			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.stdout, stdout.String())
			if tc.stderr == "" {
				assert.Empty(t, stderr.String())
				return
			}
			assert.Contains(t, stderr.String(), tc.stderr)
			assert.Equal(t, 1, strings.Count(stderr.String(), "\n"))
		})
	}
}

func TestRunFindReportsOnStderrWhenLoggingToFile(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.LogLevel = "info"
	cfg.LogFile = filepath.Join(t.TempDir(), "client.log")

	var stdout, stderr bytes.Buffer
	code := RunFind(cfg, []string{"cats"}, &stdout, &stderr, client.WithDialOptions(test.Unreachable(t)))

	assert.Equal(t, ExitFailure, code)
	assert.Empty(t, stdout.String())
	assert.True(t, strings.HasPrefix(stderr.String(), "resembla-client: could not query"))

	content, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "could not query")
}
