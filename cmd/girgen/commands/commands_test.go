package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/girgen/am"
	"github.com/teranos/girgen/errors"
)

const testConfig = "testdata/girgen.toml"

var (
	rootOnce sync.Once
	testRoot *cobra.Command
)

// execute runs args against a root command shaped like girgen's.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootOnce.Do(func() {
		testRoot = &cobra.Command{Use: "girgen", SilenceUsage: true, SilenceErrors: true}
		testRoot.PersistentFlags().CountP("verbose", "v", "")
		testRoot.PersistentFlags().StringP("config", "c", "", "")
		testRoot.AddCommand(GenerateCmd, SupertypesCmd, DepsCmd, ConfigCmd, VersionCmd)
	})

	var out bytes.Buffer
	testRoot.SetOut(&out)
	testRoot.SetErr(&out)
	testRoot.SetArgs(args)
	err := testRoot.Execute()
	return out.String(), err
}

func TestGenerate_Stdout(t *testing.T) {
	out, err := execute(t, "generate", "--config", testConfig, "--output", "")
	require.NoError(t, err)

	assert.Contains(t, out, "// Gtk.Widget\nuse crate::Buildable;\n")
	assert.Contains(t, out, "// Gtk.Container\nuse crate::Buildable;\nuse crate::Widget;\n")
	assert.Contains(t, out, "// Gtk.TreePath\nuse std::cmp;\nuse std::fmt;\n")
	assert.Contains(t, out, "impl Ord for TreePath")
	assert.Contains(t, out, `#[cfg(any(feature = "v3_4", feature = "dox"))]`)

	// Dependencies first
	assert.Less(t, bytes.Index([]byte(out), []byte("// Gtk.Widget")), bytes.Index([]byte(out), []byte("// Gtk.Container")))
}

func TestGenerate_Files(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "auto")
	_, err := execute(t, "generate", "--config", testConfig, "--output", dir)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	assert.ElementsMatch(t, []string{"container.rs", "tree_path.rs", "widget.rs"}, names)

	data, err := os.ReadFile(filepath.Join(dir, "tree_path.rs"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "impl PartialEq for TreePath")
}

func TestSupertypes(t *testing.T) {
	out, err := execute(t, "supertypes", "--config", testConfig, "Container")
	require.NoError(t, err)

	assert.Contains(t, out, "Gtk.Container\n")
	assert.Regexp(t, `Gtk\.Widget\s+generate\s+direct`, out)
	assert.Regexp(t, `GObject\.InitiallyUnowned\s+manual\s+inherited`, out)
	assert.Regexp(t, `Gtk\.Buildable\s+manual\s+inherited`, out)
	assert.NotContains(t, out, "GObject.Object")
	assert.Contains(t, out, "use crate::Widget;")
}

func TestSupertypes_UnknownType(t *testing.T) {
	_, err := execute(t, "supertypes", "--config", testConfig, "Nope")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestDeps(t *testing.T) {
	out, err := execute(t, "deps", "--config", testConfig)
	require.NoError(t, err)
	assert.Equal(t, "Gtk.Widget\nGtk.Container <- Gtk.Widget\nGtk.TreePath\n", out)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), am.DefaultConfigFile)

	out, err := execute(t, "config", "init", path, "--force=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")

	cfg, err := am.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, am.DefaultUniversalBase, cfg.Library.UniversalBase)

	_, err = execute(t, "config", "init", path, "--force=false")
	assert.Error(t, err, "existing file is kept without --force")

	_, err = execute(t, "config", "init", path, "--force")
	assert.NoError(t, err)
}

func TestShowConfig(t *testing.T) {
	cfg := am.Defaults()

	for _, format := range []string{"toml", "json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, showConfig(&buf, cfg, format))
			assert.Contains(t, buf.String(), "GObject.Object")
		})
	}

	err := showConfig(&bytes.Buffer{}, cfg, "xml")
	assert.True(t, errors.IsInvalidRequestError(err))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version", "--config", testConfig, "--json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "girgen ")
	assert.Contains(t, out, "Baseline: Gtk any version (docs feature dox)\n")

	out, err = execute(t, "version", "--config", testConfig, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"go_version"`)
	assert.Contains(t, out, `"namespace": "Gtk"`)

	out, err = execute(t, "version", "--config", filepath.Join(t.TempDir(), "missing.toml"), "--json=false")
	require.NoError(t, err, "version works without a configuration")
	assert.NotContains(t, out, "Baseline:")
}
