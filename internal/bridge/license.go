package bridge

import (
	"bytes"
	"os"

	"tetramod/internal/pkg/errors"
)

const (
	// DefaultConfigPath is where the vendored modeling engine keeps the
	// configuration file carrying the license placeholder.
	DefaultConfigPath = "/usr/lib/modeller/modlib/modeller/config.py"

	// DefaultPlaceholder is the marker the engine ships in place of a key.
	DefaultPlaceholder = "XXXX"
)

// licenseKey is provisioned at build time for the image this binary ships in.
const licenseKey = "TETRAMOD-ENGINE-2024"

// PatchLicense replaces every occurrence of placeholder in the file at
// path with key, rewriting the file in place. A file that no longer
// contains the placeholder is left untouched, so container restarts are
// safe. A missing file is a MISSING_RESOURCE error: the engine cannot be
// licensed and the job must not start.
func PatchLicense(path, placeholder, key string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.MissingResource("engine config", path)
		}
		return errors.Wrapf(err, "bridge.patch", "read engine config %s", path)
	}

	if !bytes.Contains(data, []byte(placeholder)) {
		// Already patched on a previous start.
		return nil
	}

	mode := os.FileMode(0o644)
	if fi, statErr := os.Stat(path); statErr == nil {
		mode = fi.Mode().Perm()
	}

	patched := bytes.ReplaceAll(data, []byte(placeholder), []byte(key))
	if err := os.WriteFile(path, patched, mode); err != nil {
		return errors.Wrapf(err, "bridge.patch", "rewrite engine config %s", path)
	}

	return nil
}
