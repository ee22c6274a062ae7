// Package supertypes resolves a type's ancestor chain for generation.
package supertypes

import (
	"github.com/teranos/girgen/analysis/imports"
	"github.com/teranos/girgen/env"
	"github.com/teranos/girgen/library"
	"github.com/teranos/girgen/logger"
	"github.com/teranos/girgen/status"
)

// StatusedTypeID is one resolved ancestor.
type StatusedTypeID struct {
	TypeID library.TypeID
	Name   string
	Status status.Status
}

// Analyze returns the ancestors of typeID nearest first, without the
// universal base, which every class inherits implicitly.
//
// Ancestors that are handled and live in the main namespace contribute
// their used types to imps, prefixed with the crate root. An ancestor
// whose used types cannot be derived is still returned.
func Analyze(e *env.Env, typeID library.TypeID, imps *imports.Imports) []StatusedTypeID {
	log := logger.Named("supertypes")
	base := e.UniversalBase()

	var parents []StatusedTypeID
	for _, superID := range e.Hierarchy.Supertypes(typeID) {
		if superID == base {
			continue
		}

		st := e.TypeStatus(superID.FullName(e.Library))
		name := ""
		if typ := e.Library.Type(superID); typ != nil {
			name = typ.Name
		}
		parents = append(parents, StatusedTypeID{TypeID: superID, Name: name, Status: st})

		if st.Ignored() || superID.NS != library.MainNamespace {
			continue
		}
		used, err := e.RustTypes.UsedTypes(superID)
		if err != nil {
			log.Debugw("Skipping imports for ancestor",
				"type", typeID.FullName(e.Library),
				"ancestor", superID.FullName(e.Library),
				"error", err)
			continue
		}
		for _, u := range used {
			imps.Add(e.Config.CrateRoot + "::" + u)
		}
	}

	return parents
}

// Dependencies returns the ancestors of typeID this run generates, nearest
// first and without the universal base.
func Dependencies(e *env.Env, typeID library.TypeID) []library.TypeID {
	base := e.UniversalBase()

	var deps []library.TypeID
	for _, superID := range e.Hierarchy.Supertypes(typeID) {
		if superID == base {
			continue
		}
		if e.TypeStatus(superID.FullName(e.Library)).NeedGenerate() {
			deps = append(deps, superID)
		}
	}
	return deps
}
