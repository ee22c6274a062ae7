// Package special recognizes native functions that correspond to Rust's
// comparison, equality, display and hashing traits (plus the memory
// management functions other generators care about).
package special

import (
	"sort"
	"strings"

	"github.com/teranos/girgen/analysis/functions"
	"github.com/teranos/girgen/library"
	"github.com/teranos/girgen/status"
)

// Kind is a recognized special operation. The order of the constants is the
// order Traits reports them in.
type Kind int

const (
	Compare Kind = iota
	Equal
	Display
	Hash
	Copy
	Free
	Ref
	Unref
)

var kindNames = map[Kind]string{
	Compare: "compare",
	Equal:   "equal",
	Display: "to_string",
	Hash:    "hash",
	Copy:    "copy",
	Free:    "free",
	Ref:     "ref",
	Unref:   "unref",
}

func (k Kind) String() string {
	return kindNames[k]
}

// arity is the number of parameters after the receiver each kind takes.
var arity = map[Kind]int{
	Compare: 1,
	Equal:   1,
}

// Info describes the function implementing a special operation.
type Info struct {
	Kind Kind
	// CName is the native symbol
	CName   string
	Version *library.Version
	// Status is the inclusion decision of the native function
	Status status.Status
	// Fallible marks operations that can fail instead of returning a value
	Fallible bool
}

// Infos holds at most one Info per Kind.
type Infos struct {
	byKind map[Kind]Info
}

// NewInfos builds Infos; a later Info for an already present kind is dropped.
func NewInfos(infos ...Info) Infos {
	s := Infos{byKind: make(map[Kind]Info)}
	for _, info := range infos {
		s.Add(info)
	}
	return s
}

// Add records info unless its kind is already present.
func (s *Infos) Add(info Info) bool {
	if s.byKind == nil {
		s.byKind = make(map[Kind]Info)
	}
	if _, ok := s.byKind[info.Kind]; ok {
		return false
	}
	s.byKind[info.Kind] = info
	return true
}

// Traits returns the recorded infos ordered by kind.
func (s Infos) Traits() []Info {
	infos := make([]Info, 0, len(s.byKind))
	for _, info := range s.byKind {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Kind < infos[j].Kind })
	return infos
}

// Get returns the info for kind.
func (s Infos) Get(kind Kind) (Info, bool) {
	info, ok := s.byKind[kind]
	return info, ok
}

// HasTrait reports whether kind was recognized for the type.
func (s Infos) HasTrait(kind Kind) bool {
	_, ok := s.byKind[kind]
	return ok
}

// Extract recognizes special functions by method name and parameter count.
// The first matching function per kind wins.
func Extract(fns []functions.Info) Infos {
	s := NewInfos()
	for _, fn := range fns {
		kind, ok := recognize(fn)
		if !ok {
			continue
		}
		s.Add(Info{
			Kind:     kind,
			CName:    fn.CName,
			Version:  fn.Version,
			Status:   fn.Status,
			Fallible: fn.Throws,
		})
	}
	return s
}

func recognize(fn functions.Info) (Kind, bool) {
	name := strings.TrimSuffix(fn.Name, "_full")
	for kind, kindName := range kindNames {
		if name == kindName && fn.Parameters == arity[kind] {
			return kind, true
		}
	}
	return 0, false
}

// StdImports lists the std modules the synthesized impls refer to.
func (s Infos) StdImports() []string {
	var imports []string
	if s.HasTrait(Compare) {
		imports = append(imports, "std::cmp")
	}
	if s.HasTrait(Display) {
		imports = append(imports, "std::fmt")
	}
	if s.HasTrait(Hash) {
		imports = append(imports, "std::hash")
	}
	return imports
}
