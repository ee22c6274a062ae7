package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/girgen/errors"
)

func TestLoadSnapshot(t *testing.T) {
	lib, err := LoadSnapshot("testdata/gtk.yaml")
	require.NoError(t, err)

	widget, ok := lib.FindType(MainNamespace, "Widget")
	require.True(t, ok)
	object, ok := lib.FindType(MainNamespace, "GObject.Object")
	require.True(t, ok)
	unowned, _ := lib.FindType(MainNamespace, "GObject.InitiallyUnowned")
	buildable, _ := lib.FindType(MainNamespace, "Buildable")

	h := NewHierarchy(lib)
	assert.Equal(t, []TypeID{unowned, object, buildable}, h.Supertypes(widget))

	path, ok := lib.FindType(MainNamespace, "TreePath")
	require.True(t, ok)
	fns := lib.Type(path).Functions
	require.Len(t, fns, 2)
	assert.Equal(t, "gtk_tree_path_compare", fns[0].CIdentifier)
	assert.Equal(t, 1, fns[0].Parameters)
	assert.Nil(t, fns[0].Version)
	assert.Equal(t, "3.4", fns[1].Version.String())

	container, _ := lib.FindType(MainNamespace, "Container")
	assert.Equal(t, "2.0", lib.Type(container).Version.String())
}

func TestParseSnapshot_Errors(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		notFound bool
	}{
		{name: "missing main namespace", yaml: "namespaces: []"},
		{name: "bad kind", yaml: "namespace: A\nnamespaces:\n  - name: A\n    types:\n      - {name: X, kind: union}"},
		{name: "bad version", yaml: "namespace: A\nnamespaces:\n  - name: A\n    types:\n      - {name: X, kind: class, version: soon}"},
		{name: "unknown parent", yaml: "namespace: A\nnamespaces:\n  - name: A\n    types:\n      - {name: X, kind: class, parent: Y}", notFound: true},
		{name: "unknown interface", yaml: "namespace: A\nnamespaces:\n  - name: A\n    types:\n      - {name: X, kind: class, implements: [B.Y]}", notFound: true},
		{name: "not yaml", yaml: "namespace: [unterminated"},
		{name: "duplicate type", yaml: "namespace: A\nnamespaces:\n  - name: A\n    types:\n      - {name: X, kind: class}\n      - {name: X, kind: interface}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSnapshot([]byte(tt.yaml))
			require.Error(t, err)
			if tt.notFound {
				assert.True(t, errors.IsNotFoundError(err))
			} else {
				assert.True(t, errors.IsInvalidRequestError(err))
			}
		})
	}
}

func TestParseSnapshot_DuplicateType(t *testing.T) {
	data := `
namespace: Gtk
namespaces:
  - name: Gtk
    types:
      - {name: Buildable, kind: interface}
      - {name: Widget, kind: class, implements: [Buildable]}
  - name: Gtk
    types:
      - {name: Widget, kind: class, implements: [Buildable]}
`
	_, err := ParseSnapshot([]byte(data))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidRequestError(err))
	assert.Contains(t, err.Error(), "type Gtk.Widget declared twice")
	assert.Equal(t, []string{"first declared as class"}, errors.GetAllDetails(err))
}

func TestLoadSnapshot_MissingFile(t *testing.T) {
	_, err := LoadSnapshot("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}
