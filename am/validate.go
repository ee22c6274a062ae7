package am

import (
	"github.com/Masterminds/semver/v3"
	"github.com/teranos/girgen/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Library.Path == "" {
		return errors.New("library.path cannot be empty")
	}

	if c.Library.UniversalBase == "" {
		return errors.WithHint(
			errors.New("library.universal_base cannot be empty"),
			"omit the key to use GObject.Object")
	}

	// Workers: at least one, emission is sequential with 1
	if c.Codegen.Workers < 1 {
		return errors.Newf("codegen.workers must be >= 1, got %d", c.Codegen.Workers)
	}

	if c.Codegen.MinCfgVersion != "" {
		if _, err := semver.NewVersion(c.Codegen.MinCfgVersion); err != nil {
			return errors.Wrapf(err, "codegen.min_cfg_version %q is not a version", c.Codegen.MinCfgVersion)
		}
	}

	return nil
}
