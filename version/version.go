// Package version reports which girgen build is running and, when a
// configuration is loaded, which library baseline it generates for.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/teranos/girgen/am"
)

// Stamped at build time via -ldflags "-X github.com/teranos/girgen/version.Commit=...".
// Left unset, Get falls back to the VCS data embedded by the go tool.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// Info describes a build and, optionally, the generation settings in effect.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`

	// Set by WithCodegen
	Namespace     string `json:"namespace,omitempty"`
	MinCfgVersion string `json:"min_cfg_version,omitempty"`
	DocsFeature   string `json:"docs_feature,omitempty"`
}

// Get returns the running build's information.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildInfo(&info, bi)
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	if info.BuildTime == "" {
		info.BuildTime = "unknown"
	}
	return info
}

// fillFromBuildInfo completes fields the linker did not stamp.
func fillFromBuildInfo(info *Info, bi *debug.BuildInfo) {
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
}

// WithCodegen adds the namespace and version baseline of cfg.
func (i Info) WithCodegen(cfg *am.Config) Info {
	i.Namespace = cfg.Library.Namespace
	i.MinCfgVersion = cfg.Codegen.MinCfgVersion
	i.DocsFeature = cfg.Codegen.DocsFeature
	return i
}

// String is the one-line form printed by "girgen version".
func (i Info) String() string {
	commit := i.Short()
	if i.Modified {
		commit += "+dirty"
	}
	return fmt.Sprintf("girgen %s (commit %s, built %s)", i.Version, commit, i.BuildTime)
}

// Short returns the abbreviated commit hash.
func (i Info) Short() string {
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}
	return i.Commit
}

// Baseline describes the guard settings, e.g. "Gtk >= 3.4 (docs feature dox)".
// Empty when no configuration was attached.
func (i Info) Baseline() string {
	if i.Namespace == "" && i.MinCfgVersion == "" {
		return ""
	}
	ns := i.Namespace
	if ns == "" {
		ns = "library"
	}
	floor := "any version"
	if i.MinCfgVersion != "" {
		floor = ">= " + i.MinCfgVersion
	}
	if i.DocsFeature == "" {
		return fmt.Sprintf("%s %s", ns, floor)
	}
	return fmt.Sprintf("%s %s (docs feature %s)", ns, floor, i.DocsFeature)
}
