package main

import (
	"context"
	"fmt"
	"os"

	"tetramod/internal/bridge"
	"tetramod/internal/pkg/errors"
	"tetramod/internal/pkg/logger"
	"tetramod/internal/worker/util"
)

func main() {
	ctx := context.Background()
	log := logger.NewDefault()

	deps := bridge.Deps{
		ConfigPath: util.Env("MODELING_CONFIG_PATH", bridge.DefaultConfigPath),
		WorkerBin:  util.Env("WORKER_BIN", bridge.DefaultWorkerBin),
		Log:        log,
	}

	if err := bridge.Run(ctx, deps); err != nil {
		fmt.Fprintln(os.Stderr, "bridge:", err)
		os.Exit(errors.ExitCode(err))
	}
}
