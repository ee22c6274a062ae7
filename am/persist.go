package am

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/teranos/girgen/errors"
)

// Defaults returns the configuration produced by SetDefaults alone
func Defaults() *Config {
	return &Config{
		Library: LibraryConfig{Path: "library.yaml", UniversalBase: DefaultUniversalBase},
		Status:  StatusConfig{Path: "Gir.toml"},
		Codegen: CodegenConfig{
			CrateRoot:   DefaultCrateRoot,
			DocsFeature: DefaultDocsFeature,
			Workers:     DefaultWorkers,
		},
	}
}

// Save writes config as TOML. An existing file is only replaced when
// overwrite is set.
func Save(config *Config, path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return errors.WithHint(
			errors.Newf("%s already exists", path),
			"pass --force to overwrite it")
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
			return errors.Wrapf(err, "failed to create %s", dir)
		}
	}

	if err := os.WriteFile(path, data, DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
