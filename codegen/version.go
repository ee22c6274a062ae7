package codegen

import (
	"fmt"

	"github.com/teranos/girgen/env"
	"github.com/teranos/girgen/library"
)

// VersionCondition returns the #[cfg] line gating an item that needs
// version, or "" when version is nil or not newer than the configured
// baseline.
func VersionCondition(e *env.Env, version *library.Version) string {
	if version == nil || !version.NewerThan(e.Config.MinCfgVersion) {
		return ""
	}
	if e.Config.DocsFeature == "" {
		return fmt.Sprintf("#[cfg(feature = %q)]\n", version.FeatureName())
	}
	return fmt.Sprintf("#[cfg(any(feature = %q, feature = %q))]\n", version.FeatureName(), e.Config.DocsFeature)
}
