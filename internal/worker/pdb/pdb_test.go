package pdb

import (
	"os"
	"path/filepath"
	"testing"

	"tetramod/internal/pkg/errors"
)

// Minimal but structurally valid PDB fragment.
const validPDB = `ATOM      1  N   ALA B   1      11.104   6.134  -6.504  1.00  0.00           N
ATOM      2  CA  ALA B   1      11.639   6.071  -5.147  1.00  0.00           C
ATOM      3  C   ALA B   1      10.729   6.768  -4.123  1.00  0.00           C
ATOM      4  O   ALA B   1       9.581   7.095  -4.423  1.00  0.00           O
TER       5      ALA B   1
END
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateAcceptsRealModel(t *testing.T) {
	path := writeFile(t, "model_1.pdb", validPDB)

	if err := Validate(path); err != nil {
		t.Fatalf("expected valid PDB to pass, got %v", err)
	}
}

func TestValidateMissingFile(t *testing.T) {
	err := Validate(filepath.Join(t.TempDir(), "model_1.pdb"))
	if !errors.IsCode(err, errors.CodeMissingResource) {
		t.Errorf("expected MISSING_RESOURCE, got %v", err)
	}
}

func TestValidateEmptyFile(t *testing.T) {
	path := writeFile(t, "model_1.pdb", "")

	if err := Validate(path); err == nil {
		t.Error("expected error for atom-less model file")
	}
}
