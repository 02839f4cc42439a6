package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"time"

	"tetramod/internal/pkg/errors"
)

// DefaultBin is where the image installs the engine CLI.
const DefaultBin = "/opt/engine/bin/engine"

// ExecClient drives the engine binary. Each call runs one subcommand
// with a JSON request on stdin and, for align, a JSON result on stdout.
// The engine's own diagnostics go to our stderr.
type ExecClient struct {
	bin     string
	timeout time.Duration
}

func NewExecClient(bin string) *ExecClient {
	return &ExecClient{
		bin:     bin,
		timeout: 10 * time.Minute,
	}
}

func (c *ExecClient) Align(ctx context.Context, req AlignRequest) (*AlignResult, error) {
	out, err := c.run(ctx, "align", req)
	if err != nil {
		return nil, err
	}

	var res AlignResult
	if err := json.Unmarshal(out, &res); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeEngine, "engine.align", "malformed align result")
	}
	return &res, nil
}

func (c *ExecClient) Generate(ctx context.Context, req GenerateRequest) error {
	_, err := c.run(ctx, "model", req)
	return err
}

func (c *ExecClient) run(ctx context.Context, sub string, req any) ([]byte, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "engine."+sub, "marshal request")
	}

	runCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, c.bin, sub)
	cmd.Stdin = bytes.NewReader(body)
	cmd.Stderr = os.Stderr

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return nil, errors.WrapWithCode(err, errors.CodeTimeout, "engine."+sub, "engine timed out")
		}
		return nil, errors.WrapWithCode(err, errors.CodeEngine, "engine."+sub, "engine invocation failed")
	}

	return stdout.Bytes(), nil
}
