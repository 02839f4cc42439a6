package bridge

import (
	"os"
	"sort"
	"strings"

	"tetramod/internal/pkg/errors"
	"tetramod/internal/pkg/logger"
)

// Required environment variables for a job run.
const (
	EnvInput  = "INPUT"
	EnvOutput = "OUTPUT"
	EnvBucket = "BUCKET"
)

// jobVarPatterns select which env var names are worth echoing to the
// operator before dispatch.
var jobVarPatterns = []string{"INPUT", "OUTPUT", "BUCKET"}

// Snapshot is an immutable view of the process environment, read once
// at startup.
type Snapshot map[string]string

// TakeSnapshot reads the full process environment.
func TakeSnapshot() Snapshot {
	s := make(Snapshot)
	for _, kv := range os.Environ() {
		if i := strings.IndexByte(kv, '='); i > 0 {
			s[kv[:i]] = kv[i+1:]
		}
	}
	return s
}

// JobVars returns the subset of the snapshot whose names match the
// input/output/bucket patterns.
func (s Snapshot) JobVars() Snapshot {
	out := make(Snapshot)
	for name, value := range s {
		upper := strings.ToUpper(name)
		for _, p := range jobVarPatterns {
			if strings.Contains(upper, p) {
				out[name] = value
				break
			}
		}
	}
	return out
}

// LogJobVars echoes the filtered environment for diagnostics. This is
// observability only; validation happens in Require.
func (s Snapshot) LogJobVars(log *logger.Logger) {
	vars := s.JobVars()
	if len(vars) == 0 {
		log.Info("no job-related environment variables set")
		return
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		log.Info("job environment", "name", name, "value", vars[name])
	}
}

// Get returns the trimmed value for name.
func (s Snapshot) Get(name string) string {
	return strings.TrimSpace(s[name])
}

// Require fails with MISSING_PARAMETER on the first name that is unset
// or empty.
func (s Snapshot) Require(names ...string) error {
	for _, name := range names {
		if s.Get(name) == "" {
			return errors.MissingParameter(name)
		}
	}
	return nil
}
