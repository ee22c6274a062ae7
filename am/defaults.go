package am

import "github.com/spf13/viper"

// Default values
const (
	DefaultUniversalBase = "GObject.Object"
	DefaultCrateRoot     = "crate"
	DefaultDocsFeature   = "dox"
	DefaultWorkers       = 4
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("library.path", "library.yaml")
	v.SetDefault("library.namespace", "")
	v.SetDefault("library.universal_base", DefaultUniversalBase)

	v.SetDefault("status.path", "Gir.toml")

	v.SetDefault("codegen.crate_root", DefaultCrateRoot)
	v.SetDefault("codegen.min_cfg_version", "")
	v.SetDefault("codegen.docs_feature", DefaultDocsFeature)
	v.SetDefault("codegen.workers", DefaultWorkers)

	v.SetDefault("output.dir", "")
	v.SetDefault("log.json", false)
}
