// Package pdb sanity-checks model files produced by the engine before
// they are published.
package pdb

import (
	"os"

	chem "github.com/rmera/gochem"

	"tetramod/internal/pkg/errors"
)

// Validate confirms path exists, parses as PDB and contains atoms.
// The engine reports success through its exit status only, so an empty
// or truncated model file would otherwise be uploaded as-is.
func Validate(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return errors.MissingResource("model file", path)
		}
		return errors.Wrapf(err, "pdb.validate", "stat %s", path)
	}

	mol, err := chem.PDBFileRead(path, true)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeValidation, "pdb.validate", "model file is not a readable PDB")
	}

	if mol.Len() == 0 {
		return errors.Validationf("model file %s contains no atoms", path)
	}

	return nil
}
