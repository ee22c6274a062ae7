// Package status holds the per-entity inclusion policy: whether a type or
// function is generated, hand-written, commented out or ignored.
package status

import "strings"

// Status is the inclusion decision for one entity. The zero value is Ignore,
// so anything without an explicit assignment is left out.
type Status int

const (
	Ignore Status = iota
	Manual
	Generate
	Comment
)

var statusNames = [...]string{
	Ignore:   "ignore",
	Manual:   "manual",
	Generate: "generate",
	Comment:  "comment",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "ignore"
	}
	return statusNames[s]
}

// FromString converts a status name. Unknown names report ok=false and Ignore.
func FromString(name string) (Status, bool) {
	for s, n := range statusNames {
		if n == strings.ToLower(strings.TrimSpace(name)) {
			return Status(s), true
		}
	}
	return Ignore, false
}

// Ignored reports whether the entity is excluded entirely.
func (s Status) Ignored() bool {
	return s != Manual && s != Generate && s != Comment
}

// NeedGenerate reports whether the entity is produced by this run and so
// counts as a build dependency.
func (s Status) NeedGenerate() bool {
	return s == Generate
}
