// Package am holds girgen's run configuration ("I am"): where the library
// snapshot and status file live, and how generated code is shaped.
package am

// Config represents the girgen configuration
type Config struct {
	Library LibraryConfig `mapstructure:"library" toml:"library"`
	Status  StatusConfig  `mapstructure:"status" toml:"status"`
	Codegen CodegenConfig `mapstructure:"codegen" toml:"codegen"`
	Output  OutputConfig  `mapstructure:"output" toml:"output"`
	Log     LogConfig     `mapstructure:"log" toml:"log"`
}

// LibraryConfig locates the library model
type LibraryConfig struct {
	Path          string `mapstructure:"path" toml:"path"`                     // YAML snapshot
	Namespace     string `mapstructure:"namespace" toml:"namespace"`           // main namespace, empty = snapshot's own
	UniversalBase string `mapstructure:"universal_base" toml:"universal_base"` // implicit common ancestor (default: GObject.Object)
}

// StatusConfig locates the inclusion policy
type StatusConfig struct {
	Path string `mapstructure:"path" toml:"path"` // TOML status file
}

// CodegenConfig shapes generated code
type CodegenConfig struct {
	CrateRoot     string `mapstructure:"crate_root" toml:"crate_root"`           // import prefix for main-namespace types (default: crate)
	MinCfgVersion string `mapstructure:"min_cfg_version" toml:"min_cfg_version"` // versions at or below need no guard, empty = guard every version
	DocsFeature   string `mapstructure:"docs_feature" toml:"docs_feature"`       // feature always enabling guarded items (default: dox)
	Workers       int    `mapstructure:"workers" toml:"workers"`                 // parallel per-type emission (default: 4)
}

// OutputConfig controls where generated code goes
type OutputConfig struct {
	Dir string `mapstructure:"dir" toml:"dir"` // one <type>.rs per type, empty = stdout
}

// LogConfig controls log formatting
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json"`
}

// File system constants
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// DefaultConfigFile is the project config file name searched for by Load
const DefaultConfigFile = "girgen.toml"
