package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/teranos/girgen/analysis/functions"
	"github.com/teranos/girgen/analysis/imports"
	"github.com/teranos/girgen/analysis/special"
	"github.com/teranos/girgen/analysis/supertypes"
	"github.com/teranos/girgen/env"
	"github.com/teranos/girgen/errors"
	"github.com/teranos/girgen/internal/casing"
	"github.com/teranos/girgen/library"
)

// ObjectInfo is everything generation needs to know about one type.
type ObjectInfo struct {
	TypeID     library.TypeID
	Name       string
	FullName   string
	Supertypes []supertypes.StatusedTypeID
	Imports    *imports.Imports
	Functions  []functions.Info
	Specials   special.Infos
	// TraitName is set when methods live on an extension trait
	TraitName string
}

// AnalyzeObject gathers the ancestors, imports, functions and special
// operations of typeID.
func AnalyzeObject(e *env.Env, typeID library.TypeID) (*ObjectInfo, error) {
	typ := e.Library.Type(typeID)
	if typ == nil {
		return nil, errors.NewNotFoundError("type %d:%d", typeID.NS, typeID.ID)
	}

	imps := imports.New()
	imps.AddDefined(typ.Name)

	info := &ObjectInfo{
		TypeID:   typeID,
		Name:     typ.Name,
		FullName: typeID.FullName(e.Library),
		Imports:  imps,
	}
	info.Supertypes = supertypes.Analyze(e, typeID, imps)
	info.Functions = functions.Analyze(e, typeID)
	info.Specials = special.Extract(info.Functions)
	actionable := special.NewInfos()
	for _, sp := range info.Specials.Traits() {
		if _, ok := functions.Lookup(info.Functions, sp.CName); ok {
			actionable.Add(sp)
		}
	}
	for _, std := range actionable.StdImports() {
		imps.Add(std)
	}

	// Interfaces and subclassable classes expose their methods through
	// an extension trait
	if typ.Kind == library.KindInterface || (typ.Kind == library.KindClass && e.Hierarchy.HasSubtypes(typeID)) {
		info.TraitName = casing.TraitName(typ.Name)
	}

	return info, nil
}

// GenerateObject writes the use block and trait impls for typeID.
// Nothing is written when the type needs neither.
func GenerateObject(w io.Writer, e *env.Env, typeID library.TypeID) error {
	info, err := AnalyzeObject(e, typeID)
	if err != nil {
		return err
	}
	return WriteObject(w, e, info)
}

// WriteObject is GenerateObject for an already analyzed type.
func WriteObject(w io.Writer, e *env.Env, info *ObjectInfo) error {
	if names := info.Imports.Names(); len(names) > 0 {
		var sb strings.Builder
		for _, name := range names {
			fmt.Fprintf(&sb, "use %s;\n", name)
		}
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return GenerateTraitImpls(w, e, info.Name, info.Functions, info.Specials, info.TraitName)
}
