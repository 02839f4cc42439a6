package bridge

import (
	"bytes"
	"strings"
	"testing"

	"tetramod/internal/pkg/errors"
	"tetramod/internal/pkg/logger"
)

func TestJobVarsFiltering(t *testing.T) {
	snap := Snapshot{
		"INPUT_PATH":  "/a",
		"OUTPUT_PATH": "/b",
		"BUCKET_NAME": "c",
		"UNRELATED":   "d",
		"PATH":        "/usr/bin",
	}

	vars := snap.JobVars()

	for _, want := range []string{"INPUT_PATH", "OUTPUT_PATH", "BUCKET_NAME"} {
		if _, ok := vars[want]; !ok {
			t.Errorf("expected %s in filtered vars", want)
		}
	}
	for _, unwanted := range []string{"UNRELATED", "PATH"} {
		if _, ok := vars[unwanted]; ok {
			t.Errorf("did not expect %s in filtered vars", unwanted)
		}
	}
}

func TestJobVarsCaseInsensitive(t *testing.T) {
	snap := Snapshot{"job_input_key": "x"}
	if _, ok := snap.JobVars()["job_input_key"]; !ok {
		t.Error("expected lower-case name to match the INPUT pattern")
	}
}

func TestLogJobVars(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "debug", Format: "json", Output: &buf})

	snap := Snapshot{
		"INPUT":     "in1",
		"UNRELATED": "d",
	}
	snap.LogJobVars(log)

	out := buf.String()
	if !strings.Contains(out, "INPUT") {
		t.Errorf("expected INPUT to be logged, got %q", out)
	}
	if strings.Contains(out, "UNRELATED") {
		t.Errorf("did not expect UNRELATED to be logged, got %q", out)
	}
}

func TestLogJobVarsEmpty(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "debug", Format: "json", Output: &buf})

	Snapshot{"HOME": "/root"}.LogJobVars(log)

	if !strings.Contains(buf.String(), "no job-related") {
		t.Errorf("expected empty-subset log line, got %q", buf.String())
	}
}

func TestRequire(t *testing.T) {
	tests := []struct {
		name    string
		snap    Snapshot
		wantErr bool
		missing string
	}{
		{
			name:    "all present",
			snap:    Snapshot{"INPUT": "a", "OUTPUT": "b", "BUCKET": "c"},
			wantErr: false,
		},
		{
			name:    "input unset",
			snap:    Snapshot{"OUTPUT": "b", "BUCKET": "c"},
			wantErr: true,
			missing: "INPUT",
		},
		{
			name:    "bucket empty string",
			snap:    Snapshot{"INPUT": "a", "OUTPUT": "b", "BUCKET": ""},
			wantErr: true,
			missing: "BUCKET",
		},
		{
			name:    "output whitespace only",
			snap:    Snapshot{"INPUT": "a", "OUTPUT": "   ", "BUCKET": "c"},
			wantErr: true,
			missing: "OUTPUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.snap.Require(EnvInput, EnvOutput, EnvBucket)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.IsCode(err, errors.CodeMissingParameter) {
				t.Errorf("expected MISSING_PARAMETER, got %v", errors.GetCode(err))
			}
			if !strings.Contains(err.Error(), tt.missing) {
				t.Errorf("expected error to name %s, got %q", tt.missing, err.Error())
			}
		})
	}
}
