package status

import (
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/teranos/girgen/errors"
	"github.com/teranos/girgen/logger"
)

// Object is the configured policy for one type.
type Object struct {
	Name   string
	Status Status
	// IgnoredFunctions lists function names excluded from this type
	IgnoredFunctions map[string]bool
}

// Registry maps fully qualified names to their policy.
type Registry struct {
	objects map[string]Object
}

// NewRegistry builds a registry from already parsed objects.
func NewRegistry(objects ...Object) *Registry {
	r := &Registry{objects: make(map[string]Object, len(objects))}
	for _, obj := range objects {
		r.objects[obj.Name] = obj
	}
	return r
}

// TypeStatus returns the status configured for fullName, Ignore when absent.
func (r *Registry) TypeStatus(fullName string) Status {
	if r == nil {
		return Ignore
	}
	return r.objects[fullName].Status
}

// FunctionIgnored reports whether the type's configuration excludes the
// named function.
func (r *Registry) FunctionIgnored(typeFullName, function string) bool {
	if r == nil {
		return false
	}
	return r.objects[typeFullName].IgnoredFunctions[function]
}

// Names returns every configured name, sorted.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.objects))
	for name := range r.objects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type fileFunction struct {
	Name   string `toml:"name"`
	Ignore bool   `toml:"ignore"`
}

type fileObject struct {
	Name      string         `toml:"name"`
	Status    string         `toml:"status"`
	Functions []fileFunction `toml:"function"`
}

type fileOptions struct {
	Generate []string `toml:"generate"`
	Manual   []string `toml:"manual"`
	Ignore   []string `toml:"ignore"`
}

type file struct {
	Options fileOptions  `toml:"options"`
	Objects []fileObject `toml:"object"`
}

// LoadFile reads a status file from path.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read status file %s", path)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse status file %s", path)
	}
	return r, nil
}

// Parse reads the TOML status format:
//
//	[options]
//	generate = ["Gtk.Widget"]
//	manual = ["GObject.Object"]
//	ignore = ["Gtk.Plug"]
//
//	[[object]]
//	name = "Gtk.TreePath"
//	status = "generate"
//	    [[object.function]]
//	    name = "to_string"
//	    ignore = true
//
// A name may only be declared once across objects and shorthands. An
// unrecognized status string is logged and treated as Ignore.
func Parse(data []byte) (*Registry, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidRequest, err.Error())
	}

	log := logger.Named("status")
	r := &Registry{objects: make(map[string]Object)}

	add := func(obj Object, origin string) error {
		if _, dup := r.objects[obj.Name]; dup {
			return errors.WithHint(
				errors.NewInvalidRequestError("%s: %s already defined", origin, obj.Name),
				"declare each object once, either in [[object]] or in an [options] list")
		}
		r.objects[obj.Name] = obj
		return nil
	}

	for _, fo := range f.Objects {
		if fo.Name == "" {
			return nil, errors.NewInvalidRequestError("object without name")
		}
		st, ok := FromString(fo.Status)
		if !ok && fo.Status != "" {
			log.Warnw("Unknown object status, treating as ignore", "object", fo.Name, "status", fo.Status)
		}
		obj := Object{Name: fo.Name, Status: st}
		for _, fn := range fo.Functions {
			if !fn.Ignore {
				continue
			}
			if obj.IgnoredFunctions == nil {
				obj.IgnoredFunctions = make(map[string]bool)
			}
			obj.IgnoredFunctions[fn.Name] = true
		}
		if err := add(obj, "object"); err != nil {
			return nil, err
		}
	}

	shorthands := []struct {
		origin string
		status Status
		names  []string
	}{
		{"options.generate", Generate, f.Options.Generate},
		{"options.manual", Manual, f.Options.Manual},
		{"options.ignore", Ignore, f.Options.Ignore},
	}
	for _, sh := range shorthands {
		for _, name := range sh.names {
			if err := add(Object{Name: name, Status: sh.status}, sh.origin); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}
