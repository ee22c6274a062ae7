// Package rusttype maps library types to the Rust names generated code
// refers to them by.
package rusttype

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/teranos/girgen/errors"
	"github.com/teranos/girgen/library"
	"github.com/teranos/girgen/status"
)

// DefaultCacheSize bounds the number of memoized derivations
const DefaultCacheSize = 1024

// ErrUnsupported is returned for types that have no Rust counterpart
var ErrUnsupported = errors.New("type has no rust representation")

// ErrIgnored is returned for types excluded by the status file
var ErrIgnored = errors.New("type is ignored")

type derived struct {
	used []string
	err  error
}

// Deriver computes the set of type names a type's Rust form uses. Results
// are memoized; the library and registry are read-only so entries never go
// stale within a run.
type Deriver struct {
	lib    *library.Library
	status *status.Registry
	cache  *lru.Cache[library.TypeID, derived]
}

// NewDeriver creates a deriver with a cache of size entries.
func NewDeriver(lib *library.Library, registry *status.Registry, size int) (*Deriver, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[library.TypeID, derived](size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create rust type cache")
	}
	return &Deriver{lib: lib, status: registry, cache: cache}, nil
}

// UsedTypes returns the names the Rust form of id refers to, relative to
// the crate that defines it ("Widget" in the main namespace,
// "gio::File" elsewhere).
func (d *Deriver) UsedTypes(id library.TypeID) ([]string, error) {
	if hit, ok := d.cache.Get(id); ok {
		return hit.used, hit.err
	}
	used, err := d.derive(id)
	d.cache.Add(id, derived{used: used, err: err})
	return used, err
}

func (d *Deriver) derive(id library.TypeID) ([]string, error) {
	typ := d.lib.Type(id)
	if typ == nil {
		return nil, errors.NewNotFoundError("type %d:%d", id.NS, id.ID)
	}
	if typ.Kind == library.KindFundamental || id.NS == library.InternalNamespace {
		return nil, errors.Wrapf(ErrUnsupported, "%s", id.FullName(d.lib))
	}
	if d.status.TypeStatus(id.FullName(d.lib)).Ignored() {
		return nil, errors.Wrapf(ErrIgnored, "%s", id.FullName(d.lib))
	}

	if id.NS == library.MainNamespace {
		return []string{typ.Name}, nil
	}
	crate := strings.ToLower(d.lib.Namespace(id.NS).Name)
	return []string{crate + "::" + typ.Name}, nil
}
