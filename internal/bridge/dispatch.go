package bridge

import (
	"context"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"tetramod/internal/pkg/errors"
	"tetramod/internal/pkg/logger"
)

// DefaultWorkerBin is where the image installs the worker executable.
const DefaultWorkerBin = "/app/worker"

// WorkerRunner launches the modeling worker and blocks until it exits.
type WorkerRunner interface {
	Run(ctx context.Context, input, output, bucket string) error
}

// Dispatcher runs the worker as a child process, forwarding stop signals
// and reporting its exit status. The container's lifetime is this
// process's lifetime, so the dispatch is strictly synchronous.
type Dispatcher struct {
	Bin    string
	Stdout io.Writer
	Stderr io.Writer
	Log    *logger.Logger
}

func NewDispatcher(bin string, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		Bin:    bin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Log:    log,
	}
}

// Run invokes the worker with argv exactly [input, output, bucket].
// A worker that cannot be started is LAUNCH_FAILED; a worker that runs
// and exits non-zero is WORKER_FAILED carrying its status.
func (d *Dispatcher) Run(ctx context.Context, input, output, bucket string) error {
	cmd := exec.CommandContext(ctx, d.Bin, input, output, bucket)
	cmd.Stdin = os.Stdin
	cmd.Stdout = d.Stdout
	cmd.Stderr = d.Stderr

	if d.Log != nil {
		d.Log.Info("dispatching worker", "bin", d.Bin, "input", input, "output", output, "bucket", bucket)
	}

	if err := cmd.Start(); err != nil {
		return errors.LaunchFailed(err, d.Bin)
	}

	// Forward stop signals so the host's notion of "stop the container"
	// reaches the process doing the work.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	waitDone := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigChan:
				_ = cmd.Process.Signal(sig)
			case <-waitDone:
				return
			}
		}
	}()

	err := cmd.Wait()
	close(waitDone)

	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return errors.WorkerFailed(exitErr.ExitCode())
	}
	return errors.Wrap(err, "dispatch", "waiting on worker")
}
