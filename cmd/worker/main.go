package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"tetramod/internal/config"
	"tetramod/internal/pkg/errors"
	"tetramod/internal/pkg/logger"
	"tetramod/internal/pkg/shutdown"
	"tetramod/internal/storage"
	"tetramod/internal/worker"
	"tetramod/internal/worker/engine"
	"tetramod/internal/worker/processor"
	"tetramod/internal/worker/util"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: worker <INPUT> <OUTPUT> <BUCKET>")
		os.Exit(2)
	}

	log := logger.NewDefault()

	shut := shutdown.NewManager(log, 30*time.Second)
	ctx, cancel := shut.Notify(context.Background())
	defer cancel()

	cfg, err := config.Load(util.Env("WORKER_CONFIG_PATH", config.DefaultFile))
	if err != nil {
		fatal(err)
	}

	sp, err := storage.NewProvider(ctx)
	if err != nil {
		fatal(err)
	}

	eng := engine.NewExecClient(util.Env("MODELING_ENGINE_BIN", engine.DefaultBin))

	job := processor.Job{
		InputKey:  os.Args[1],
		OutputKey: os.Args[2],
		Bucket:    os.Args[3],
		Species:   util.Env("MODEL_SPECIES", ""),
	}

	deps := worker.Deps{
		SP:          sp,
		Engine:      eng,
		Cfg:         cfg,
		KeepScratch: util.BoolEnv("KEEP_SCRATCH", false),
		Shutdown:    shut,
		Log:         log,
	}

	runErr := worker.Run(ctx, deps, job)
	shut.Shutdown()

	if runErr != nil {
		fatal(runErr)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "worker:", err)
	os.Exit(errors.ExitCode(err))
}
