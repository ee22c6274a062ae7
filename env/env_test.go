package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/girgen/am"
	"github.com/teranos/girgen/errors"
	"github.com/teranos/girgen/library"
	"github.com/teranos/girgen/logger"
	"github.com/teranos/girgen/status"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const snapshot = `
namespace: Gtk
namespaces:
  - name: GObject
    types:
      - {name: Object, kind: class}
  - name: Gtk
    types:
      - {name: Widget, kind: class, parent: GObject.Object}
`

func writeInputs(t *testing.T) *am.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := am.Defaults()
	cfg.Library.Path = filepath.Join(dir, "library.yaml")
	cfg.Status.Path = filepath.Join(dir, "Gir.toml")
	require.NoError(t, os.WriteFile(cfg.Library.Path, []byte(snapshot), 0644))
	require.NoError(t, os.WriteFile(cfg.Status.Path, []byte("[options]\ngenerate = [\"Gtk.Widget\"]\n"), 0644))
	return cfg
}

func TestFromConfig(t *testing.T) {
	cfg := writeInputs(t)
	cfg.Codegen.MinCfgVersion = "3.0"

	e, err := FromConfig(cfg)
	require.NoError(t, err)

	widget, ok := e.Library.FindType(library.MainNamespace, "Widget")
	require.True(t, ok)
	object, _ := e.Library.FindType(library.MainNamespace, "GObject.Object")

	assert.Equal(t, status.Generate, e.TypeStatus("Gtk.Widget"))
	assert.Equal(t, object, e.UniversalBase())
	assert.Equal(t, []library.TypeID{object}, e.Hierarchy.Supertypes(widget))
	assert.Equal(t, "3.0", e.Config.MinCfgVersion.String())
	assert.Equal(t, "crate", e.Config.CrateRoot)
}

func TestFromConfig_NamespaceMismatch(t *testing.T) {
	cfg := writeInputs(t)
	cfg.Library.Namespace = "Gdk"

	_, err := FromConfig(cfg)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidRequestError(err))
}

func TestFromConfig_MissingStatusFile(t *testing.T) {
	cfg := writeInputs(t)
	cfg.Status.Path = filepath.Join(t.TempDir(), "missing.toml")

	_, err := FromConfig(cfg)
	assert.Error(t, err)
}

func TestUniversalBase_Missing(t *testing.T) {
	e, err := New(library.New("Gtk"), status.NewRegistry(), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, library.TidNone(), e.UniversalBase())
}

func TestFromConfig_WarnsOnUnknownStatusNames(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	prev := logger.Logger
	logger.Logger = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Logger = prev })

	cfg := writeInputs(t)
	require.NoError(t, os.WriteFile(cfg.Status.Path,
		[]byte("[options]\ngenerate = [\"Gtk.Widget\", \"Gtk.Wdiget\"]\nmanual = [\"GObject.Object\"]\n"), 0644))

	_, err := FromConfig(cfg)
	require.NoError(t, err)

	warned := logs.FilterMessage("Status file names unknown type").All()
	require.Len(t, warned, 1)
	assert.Equal(t, "Gtk.Wdiget", warned[0].ContextMap()["name"])
}
