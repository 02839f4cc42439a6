// Package config loads the worker's config.yaml, which names the
// template structures the modeling engine builds against.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tetramod/internal/pkg/errors"
)

// DefaultFile is resolved relative to the working directory, matching
// where the image bakes it.
const DefaultFile = "config.yaml"

type Config struct {
	Models Models `yaml:"Models"`
}

// Models maps species to template structure files shipped in the image.
type Models struct {
	Human string `yaml:"human_model"`
	Mouse string `yaml:"mouse_model"`
}

// Load reads and parses the YAML config at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.MissingResource("config file", path)
		}
		return nil, errors.Wrapf(err, "config.load", "read %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeValidation, "config.load", fmt.Sprintf("parse %s", path))
	}

	return &cfg, nil
}

// TemplateFor returns the absolute path of the template structure for
// species. Only human and mouse are supported.
func (c *Config) TemplateFor(species string) (string, error) {
	var rel string
	switch species {
	case "human":
		rel = c.Models.Human
	case "mouse":
		rel = c.Models.Mouse
	default:
		return "", errors.Validationf("invalid species %q, supported: human, mouse", species)
	}

	if rel == "" {
		return "", errors.Validationf("no template model configured for species %q", species)
	}

	if filepath.IsAbs(rel) {
		return rel, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "config.template", "resolve working directory")
	}
	return filepath.Join(wd, rel), nil
}
