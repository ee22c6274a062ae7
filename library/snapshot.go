package library

import (
	"os"

	"github.com/teranos/girgen/errors"
	"gopkg.in/yaml.v3"
)

// Snapshot is the YAML form of an already materialized library model.
//
//	namespace: Gtk
//	namespaces:
//	  - name: Gtk
//	    types:
//	      - name: Widget
//	        kind: class
//	        parent: GObject.InitiallyUnowned
//	        implements: [Buildable]
//	        functions:
//	          - name: compare
//	            c_identifier: gtk_widget_compare
//	            version: "3.4"
//	            parameters: 1
type Snapshot struct {
	Namespace  string              `yaml:"namespace"`
	Namespaces []SnapshotNamespace `yaml:"namespaces"`
}

type SnapshotNamespace struct {
	Name  string         `yaml:"name"`
	Types []SnapshotType `yaml:"types"`
}

type SnapshotType struct {
	Name       string             `yaml:"name"`
	Kind       string             `yaml:"kind"`
	Parent     string             `yaml:"parent,omitempty"`
	Implements []string           `yaml:"implements,omitempty"`
	Version    string             `yaml:"version,omitempty"`
	Functions  []SnapshotFunction `yaml:"functions,omitempty"`
}

type SnapshotFunction struct {
	Name        string `yaml:"name"`
	CIdentifier string `yaml:"c_identifier"`
	Version     string `yaml:"version,omitempty"`
	Throws      bool   `yaml:"throws,omitempty"`
	Parameters  int    `yaml:"parameters,omitempty"`
}

// LoadSnapshot reads a YAML snapshot from path.
func LoadSnapshot(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read library snapshot %s", path)
	}
	lib, err := ParseSnapshot(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load library snapshot %s", path)
	}
	return lib, nil
}

// ParseSnapshot builds a Library from YAML. Types are registered in a first
// pass so parents and interfaces may refer to types declared later.
func ParseSnapshot(data []byte) (*Library, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidRequest, err.Error())
	}
	if snap.Namespace == "" {
		return nil, errors.NewInvalidRequestError("snapshot has no main namespace")
	}

	lib := New(snap.Namespace)

	var err error
	type pending struct {
		id  TypeID
		src SnapshotType
	}
	var all []pending

	for _, ns := range snap.Namespaces {
		nsID := lib.AddNamespace(ns.Name)
		for _, st := range ns.Types {
			if prev, dup := lib.FindType(nsID, st.Name); dup {
				return nil, errors.WithDetailf(
					errors.NewInvalidRequestError("type %s.%s declared twice", ns.Name, st.Name),
					"first declared as %s", lib.Type(prev).Kind)
			}
			kind, ok := ParseKind(st.Kind)
			if !ok {
				return nil, errors.NewInvalidRequestError("type %s.%s has unknown kind %q", ns.Name, st.Name, st.Kind)
			}
			typ := &Type{Name: st.Name, Kind: kind}
			if typ.Version, err = parseOptionalVersion(st.Version); err != nil {
				return nil, errors.Wrapf(err, "type %s.%s", ns.Name, st.Name)
			}
			for _, sf := range st.Functions {
				fn := Function{
					Name:        sf.Name,
					CIdentifier: sf.CIdentifier,
					Throws:      sf.Throws,
					Parameters:  sf.Parameters,
				}
				if fn.Version, err = parseOptionalVersion(sf.Version); err != nil {
					return nil, errors.Wrapf(err, "function %s", sf.CIdentifier)
				}
				typ.Functions = append(typ.Functions, fn)
			}
			all = append(all, pending{id: lib.AddType(nsID, typ), src: st})
		}
	}

	for _, p := range all {
		typ := lib.Type(p.id)
		if p.src.Parent != "" {
			parent, ok := lib.FindType(p.id.NS, p.src.Parent)
			if !ok {
				return nil, errors.NewNotFoundError("parent %q of %s", p.src.Parent, p.id.FullName(lib))
			}
			typ.Parent = &parent
		}
		for _, name := range p.src.Implements {
			iface, ok := lib.FindType(p.id.NS, name)
			if !ok {
				return nil, errors.NewNotFoundError("interface %q of %s", name, p.id.FullName(lib))
			}
			typ.Implements = append(typ.Implements, iface)
		}
	}

	return lib, nil
}

func parseOptionalVersion(s string) (*Version, error) {
	if s == "" {
		return nil, nil
	}
	return ParseVersion(s)
}
