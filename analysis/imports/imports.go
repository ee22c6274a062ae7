// Package imports collects the `use` paths a generated file needs.
package imports

import (
	"sort"
	"strings"
)

// Imports is a set of fully qualified paths such as "crate::Widget".
// Names defined by the file itself are never recorded.
type Imports struct {
	names   map[string]struct{}
	defined map[string]struct{}
}

// New returns an empty collector.
func New() *Imports {
	return &Imports{
		names:   make(map[string]struct{}),
		defined: make(map[string]struct{}),
	}
}

// AddDefined marks name as defined locally so paths ending in it are
// skipped by Add.
func (i *Imports) AddDefined(name string) {
	i.defined[name] = struct{}{}
}

// Add records a path. Duplicates collapse.
func (i *Imports) Add(path string) {
	if path == "" {
		return
	}
	last := path
	if idx := strings.LastIndex(path, "::"); idx >= 0 {
		last = path[idx+2:]
	}
	if _, ok := i.defined[last]; ok {
		return
	}
	i.names[path] = struct{}{}
}

// Merge adds every path of other.
func (i *Imports) Merge(other *Imports) {
	for name := range other.names {
		i.Add(name)
	}
}

// Names returns the recorded paths sorted.
func (i *Imports) Names() []string {
	names := make([]string, 0, len(i.names))
	for name := range i.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of recorded paths.
func (i *Imports) Len() int {
	return len(i.names)
}
