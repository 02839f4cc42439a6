// Package bridge is the container startup path: it licenses the vendored
// modeling engine, validates the job parameters arriving through the
// environment, and hands the container over to the worker process.
package bridge

import (
	"context"

	"tetramod/internal/pkg/logger"
)

// Deps carries the bridge's collaborators. Zero fields get defaults.
type Deps struct {
	ConfigPath  string
	Placeholder string
	LicenseKey  string
	WorkerBin   string

	// Env overrides the process environment snapshot (tests).
	Env Snapshot
	// Worker overrides the exec dispatcher (tests).
	Worker WorkerRunner

	Log *logger.Logger
}

// Run executes the fixed startup sequence:
//
//  1. patch the license into the engine config (fatal if missing)
//  2. snapshot and log the job environment (never fatal)
//  3. validate INPUT/OUTPUT/BUCKET and dispatch the worker, propagating
//     its exit status
func Run(ctx context.Context, d Deps) error {
	log := d.Log
	if log == nil {
		log = logger.NewDefault()
	}
	log = log.WithComponent("bridge")

	if d.ConfigPath == "" {
		d.ConfigPath = DefaultConfigPath
	}
	if d.Placeholder == "" {
		d.Placeholder = DefaultPlaceholder
	}
	if d.LicenseKey == "" {
		d.LicenseKey = licenseKey
	}
	if d.WorkerBin == "" {
		d.WorkerBin = DefaultWorkerBin
	}

	log.Info("patching engine license", "config", d.ConfigPath)
	if err := PatchLicense(d.ConfigPath, d.Placeholder, d.LicenseKey); err != nil {
		return err
	}

	env := d.Env
	if env == nil {
		env = TakeSnapshot()
	}
	env.LogJobVars(log)

	if err := env.Require(EnvInput, EnvOutput, EnvBucket); err != nil {
		return err
	}

	worker := d.Worker
	if worker == nil {
		worker = NewDispatcher(d.WorkerBin, log)
	}

	return worker.Run(ctx, env.Get(EnvInput), env.Get(EnvOutput), env.Get(EnvBucket))
}
