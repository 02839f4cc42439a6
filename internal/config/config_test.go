package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tetramod/internal/pkg/errors"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeYAML(t, "Models:\n  human_model: templates/human.pdb\n  mouse_model: templates/mouse.pdb\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Models.Human != "templates/human.pdb" {
		t.Errorf("expected human model path, got %q", cfg.Models.Human)
	}
	if cfg.Models.Mouse != "templates/mouse.pdb" {
		t.Errorf("expected mouse model path, got %q", cfg.Models.Mouse)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.IsCode(err, errors.CodeMissingResource) {
		t.Errorf("expected MISSING_RESOURCE, got %v", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeYAML(t, "Models: [unterminated\n")

	_, err := Load(path)
	if !errors.IsCode(err, errors.CodeValidation) {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestTemplateFor(t *testing.T) {
	cfg := &Config{Models: Models{Human: "/t/human.pdb", Mouse: "/t/mouse.pdb"}}

	tests := []struct {
		species string
		want    string
		wantErr bool
	}{
		{species: "human", want: "/t/human.pdb"},
		{species: "mouse", want: "/t/mouse.pdb"},
		{species: "rat", wantErr: true},
		{species: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("species "+tt.species, func(t *testing.T) {
			got, err := cfg.TemplateFor(tt.species)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.IsCode(err, errors.CodeValidation) {
					t.Errorf("expected VALIDATION_ERROR, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTemplateForRelativePath(t *testing.T) {
	cfg := &Config{Models: Models{Human: "templates/human.pdb"}}

	got, err := cfg.TemplateFor("human")
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %q", got)
	}
	if !strings.HasSuffix(got, filepath.Join("templates", "human.pdb")) {
		t.Errorf("expected resolved relative path, got %q", got)
	}
}

func TestTemplateForUnconfigured(t *testing.T) {
	cfg := &Config{}
	if _, err := cfg.TemplateFor("mouse"); err == nil {
		t.Error("expected error for unconfigured template")
	}
}
