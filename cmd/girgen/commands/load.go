package commands

import (
	"github.com/spf13/cobra"
	"github.com/teranos/girgen/am"
	"github.com/teranos/girgen/env"
	"github.com/teranos/girgen/errors"
	"github.com/teranos/girgen/library"
	"github.com/teranos/girgen/logger"
)

// loadConfig honors --config and falls back to the nearest girgen.toml.
func loadConfig(cmd *cobra.Command) (*am.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return am.LoadFromFile(path)
	}
	return am.Load()
}

// loadEnv loads the configuration and everything it points at.
func loadEnv(cmd *cobra.Command) (*env.Env, *am.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Log.JSON && !logger.JSONOutput {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(true, verbosity); err != nil {
			return nil, nil, errors.Wrap(err, "failed to initialize logger")
		}
	}

	e, err := env.FromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}

	logger.Named("load").Infow("Loaded library",
		"namespace", e.Library.Namespace(library.MainNamespace).Name,
		"snapshot", cfg.Library.Path,
		"status", cfg.Status.Path)
	return e, cfg, nil
}

// generatedTypes lists the main-namespace types marked generate, in
// snapshot order.
func generatedTypes(e *env.Env) []library.TypeID {
	var ids []library.TypeID
	for _, id := range e.Library.TypeIDs(library.MainNamespace) {
		if e.TypeStatus(id.FullName(e.Library)).NeedGenerate() {
			ids = append(ids, id)
		}
	}
	return ids
}

// resolveType finds a type by bare (main namespace) or dotted name.
func resolveType(e *env.Env, name string) (library.TypeID, error) {
	id, ok := e.Library.FindType(library.MainNamespace, name)
	if !ok {
		return library.TidNone(), errors.WithHint(
			errors.NewNotFoundError("type %s", name),
			"use Namespace.Type for types outside the main namespace")
	}
	return id, nil
}
