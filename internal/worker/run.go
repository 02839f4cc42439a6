package worker

import (
	"context"
	"time"

	"tetramod/internal/pkg/logger"
	"tetramod/internal/worker/processor"
)

// Run executes exactly one modeling job. The container runs one job per
// invocation; there is no queue and no retry.
func Run(ctx context.Context, d Deps, job processor.Job) error {
	log := d.Log
	if log == nil {
		log = logger.NewDefault()
	}
	log = log.WithComponent("worker")

	p := processor.New(processor.Deps{
		SP:          d.SP,
		Engine:      d.Engine,
		Cfg:         d.Cfg,
		KeepScratch: d.KeepScratch,
		Log:         log,
	})

	if d.Shutdown != nil {
		d.Shutdown.RegisterSimple("scratch", p.Scratch().Remove)
	}

	jobCtx := logger.ContextWithJobID(ctx, job.InputKey)
	jobLog := log.WithJobID(job.InputKey)

	jobLog.Info("processing job", "bucket", job.Bucket, "output", job.OutputKey)
	startTime := time.Now()

	if err := p.ProcessJob(jobCtx, job); err != nil {
		jobLog.Error("job failed",
			"error", err.Error(),
			"duration_ms", time.Since(startTime).Milliseconds(),
		)
		return err
	}

	jobLog.Info("job completed",
		"duration_ms", time.Since(startTime).Milliseconds(),
	)
	return nil
}
