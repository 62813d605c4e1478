package awscli

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os/exec"
	"time"
)

// CallTimeout bounds every single CLI invocation. There is no overall
// request deadline; a slow backend degrades one sub-call at a time.
const CallTimeout = 15 * time.Second

// Runner issues one external CLI call and reports the outcome as a Result.
// Implementations never return transport errors; everything collapses to
// the unavailable sentinel.
type Runner interface {
	Run(ctx context.Context, service, action string, extraArgs ...string) Result
}

// CLIRunner shells out to the aws CLI, one process per call. When an
// endpoint override is set (LocalStack mode) it is injected ahead of the
// service arguments; real-AWS mode relies on the CLI's own credential
// resolution.
type CLIRunner struct {
	bin      string
	endpoint string
	timeout  time.Duration
}

// NewCLIRunner returns a runner targeting the given endpoint. An empty
// endpoint means real AWS.
func NewCLIRunner(endpoint string) *CLIRunner {
	return &CLIRunner{
		bin:      "aws",
		endpoint: endpoint,
		timeout:  CallTimeout,
	}
}

func (r *CLIRunner) Run(ctx context.Context, service, action string, extraArgs ...string) Result {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	args := make([]string, 0, len(extraArgs)+6)
	if r.endpoint != "" {
		args = append(args, "--endpoint-url", r.endpoint)
	}
	args = append(args, service, action, "--output", "json")
	args = append(args, extraArgs...)

	out, err := exec.CommandContext(ctx, r.bin, args...).Output()
	if err != nil {
		slog.Debug("aws cli call failed",
			slog.String("service", service),
			slog.String("action", action),
			slog.Any("error", err))
		return Unavailable()
	}

	out = bytes.TrimSpace(out)
	if len(out) == 0 {
		// Some actions print nothing on success; treat as an empty document.
		return OK(nil)
	}
	if !json.Valid(out) {
		slog.Debug("aws cli returned malformed JSON",
			slog.String("service", service),
			slog.String("action", action))
		return Unavailable()
	}
	return OK(out)
}
