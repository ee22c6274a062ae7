// Package env bundles the read-only inputs of one generation run.
package env

import (
	"github.com/teranos/girgen/am"
	"github.com/teranos/girgen/analysis/rusttype"
	"github.com/teranos/girgen/errors"
	"github.com/teranos/girgen/library"
	"github.com/teranos/girgen/logger"
	"github.com/teranos/girgen/status"
)

// Config is the codegen-facing subset of am.Config, already parsed.
type Config struct {
	// CrateRoot prefixes imports of main-namespace types
	CrateRoot string
	// UniversalBase names the implicit ancestor of every class
	UniversalBase string
	// MinCfgVersion is the baseline below which no version guard is needed
	MinCfgVersion *library.Version
	// DocsFeature is OR-ed into every version guard, empty to omit
	DocsFeature string
}

// DefaultConfig mirrors the am defaults.
func DefaultConfig() Config {
	return Config{
		CrateRoot:     am.DefaultCrateRoot,
		UniversalBase: am.DefaultUniversalBase,
		DocsFeature:   am.DefaultDocsFeature,
	}
}

// Env holds everything the analyzers and generators read. It is built once
// and never mutated, so it may be shared across goroutines.
type Env struct {
	Library   *library.Library
	Hierarchy *library.Hierarchy
	Status    *status.Registry
	Config    Config
	RustTypes *rusttype.Deriver
}

// New builds an Env, deriving the class hierarchy from lib.
func New(lib *library.Library, registry *status.Registry, cfg Config) (*Env, error) {
	deriver, err := rusttype.NewDeriver(lib, registry, rusttype.DefaultCacheSize)
	if err != nil {
		return nil, err
	}
	return &Env{
		Library:   lib,
		Hierarchy: library.NewHierarchy(lib),
		Status:    registry,
		Config:    cfg,
		RustTypes: deriver,
	}, nil
}

// FromConfig loads the library snapshot and status file named by c.
func FromConfig(c *am.Config) (*Env, error) {
	lib, err := library.LoadSnapshot(c.Library.Path)
	if err != nil {
		return nil, err
	}
	if c.Library.Namespace != "" {
		if main := lib.Namespace(library.MainNamespace).Name; main != c.Library.Namespace {
			return nil, errors.WithHint(
				errors.NewInvalidRequestError("snapshot main namespace is %s, config expects %s", main, c.Library.Namespace),
				"fix library.namespace or regenerate the snapshot")
		}
	}

	registry, err := status.LoadFile(c.Status.Path)
	if err != nil {
		return nil, err
	}

	cfg := Config{
		CrateRoot:     c.Codegen.CrateRoot,
		UniversalBase: c.Library.UniversalBase,
		DocsFeature:   c.Codegen.DocsFeature,
	}
	if c.Codegen.MinCfgVersion != "" {
		if cfg.MinCfgVersion, err = library.ParseVersion(c.Codegen.MinCfgVersion); err != nil {
			return nil, errors.Wrap(err, "codegen.min_cfg_version")
		}
	}

	e, err := New(lib, registry, cfg)
	if err != nil {
		return nil, err
	}
	e.warnUnknownNames()
	return e, nil
}

// warnUnknownNames logs status entries that name no type in the library.
// They are usually typos or types removed from the snapshot.
func (e *Env) warnUnknownNames() {
	log := logger.Named("env")
	for _, name := range e.Status.Names() {
		if _, ok := e.Library.FindType(library.MainNamespace, name); !ok {
			log.Warnw("Status file names unknown type", "name", name)
		}
	}
}

// TypeStatus returns the configured status of a fully qualified name.
func (e *Env) TypeStatus(fullName string) status.Status {
	return e.Status.TypeStatus(fullName)
}

// UniversalBase resolves the configured universal base. When the library
// does not define it the sentinel library.TidNone() is returned, which
// matches no real ancestor.
func (e *Env) UniversalBase() library.TypeID {
	id, ok := e.Library.FindType(library.InternalNamespace, e.Config.UniversalBase)
	if !ok {
		return library.TidNone()
	}
	return id
}
