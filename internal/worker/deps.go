package worker

import (
	"tetramod/internal/config"
	"tetramod/internal/pkg/logger"
	"tetramod/internal/pkg/shutdown"
	"tetramod/internal/ports"
	"tetramod/internal/worker/engine"
)

type Deps struct {
	SP          ports.StorageProvider
	Engine      engine.Client
	Cfg         *config.Config
	KeepScratch bool
	// Shutdown, when set, gets the scratch-dir removal registered so an
	// interrupted run still cleans its staging area.
	Shutdown *shutdown.Manager
	Log      *logger.Logger
}
