package functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/girgen/env"
	"github.com/teranos/girgen/library"
	"github.com/teranos/girgen/status"
)

func newEnv(t *testing.T) (*env.Env, library.TypeID) {
	t.Helper()
	lib := library.New("Gtk")
	path := lib.AddType(library.MainNamespace, &library.Type{
		Name: "TreePath",
		Kind: library.KindRecord,
		Functions: []library.Function{
			{Name: "compare", CIdentifier: "gtk_tree_path_compare", Parameters: 1},
			{Name: "to_string", CIdentifier: "gtk_tree_path_to_string", Version: library.MustParseVersion("3.2"), Throws: true},
		},
	})
	registry := status.NewRegistry(status.Object{
		Name:             "Gtk.TreePath",
		Status:           status.Generate,
		IgnoredFunctions: map[string]bool{"to_string": true},
	})
	e, err := env.New(lib, registry, env.DefaultConfig())
	require.NoError(t, err)
	return e, path
}

func TestAnalyze(t *testing.T) {
	e, path := newEnv(t)

	infos := Analyze(e, path)
	require.Len(t, infos, 2)

	assert.Equal(t, Info{Name: "compare", CName: "gtk_tree_path_compare", Parameters: 1, Status: status.Generate}, infos[0])
	assert.Equal(t, status.Ignore, infos[1].Status)
	assert.True(t, infos[1].Throws)
	assert.Equal(t, "3.2", infos[1].Version.String())
}

func TestAnalyze_UnknownType(t *testing.T) {
	e, _ := newEnv(t)
	assert.Nil(t, Analyze(e, library.TypeID{NS: library.MainNamespace, ID: 42}))
}

func TestLookup(t *testing.T) {
	e, path := newEnv(t)
	infos := Analyze(e, path)

	fn, ok := Lookup(infos, "gtk_tree_path_compare")
	require.True(t, ok)
	assert.Equal(t, "compare", fn.Name)

	_, ok = Lookup(infos, "gtk_tree_path_to_string")
	assert.False(t, ok, "ignored functions are not found")

	_, ok = Lookup(infos, "gtk_tree_path_free")
	assert.False(t, ok)
}
