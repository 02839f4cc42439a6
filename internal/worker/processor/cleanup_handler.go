package processor

import (
	"os"

	"tetramod/internal/pkg/logger"
)

// Scratch manages the per-job temp directory the worker stages files in.
type Scratch struct {
	keep bool
	log  *logger.Logger

	dir string
}

func NewScratch(keep bool, log *logger.Logger) *Scratch {
	return &Scratch{keep: keep, log: log}
}

// Create makes the scratch directory. Calling it twice replaces the
// tracked directory without removing the previous one.
func (s *Scratch) Create() (string, error) {
	dir, err := os.MkdirTemp("", "tetramod-job-*")
	if err != nil {
		return "", err
	}
	s.dir = dir
	return dir, nil
}

// Remove deletes the scratch directory unless keep was requested.
// Safe to call multiple times and from a shutdown handler.
func (s *Scratch) Remove() {
	if s.dir == "" || s.keep {
		return
	}
	if err := os.RemoveAll(s.dir); err != nil {
		s.log.Warn("failed to remove scratch dir", "dir", s.dir, "error", err.Error())
		return
	}
	s.dir = ""
}
