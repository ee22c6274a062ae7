// Package library holds the in-memory model of a library's object system:
// namespaces, types, their functions and the class hierarchy.
//
// A Library is built once per generation run (usually from a snapshot, see
// LoadSnapshot) and treated as read-only afterwards. Every accessor is safe
// for concurrent use once construction is finished.
package library

import (
	"fmt"
	"strings"
)

// Namespace ids with fixed meaning.
const (
	// InternalNamespace holds fundamental types; TidNone lives here
	InternalNamespace uint16 = 0
	// MainNamespace is the namespace currently being generated
	MainNamespace uint16 = 1
)

const internalNamespaceName = "*"

// TypeID is an opaque handle for a type: namespace id plus index within it.
type TypeID struct {
	NS uint16
	ID uint32
}

// TidNone returns the sentinel "no type" id.
func TidNone() TypeID {
	return TypeID{NS: InternalNamespace, ID: 0}
}

// IsNone reports whether t is the sentinel returned by TidNone.
func (t TypeID) IsNone() bool {
	return t == TidNone()
}

// FullName returns the fully qualified name, e.g. "Gtk.Widget".
// Internal types have no namespace prefix.
func (t TypeID) FullName(lib *Library) string {
	typ := lib.Type(t)
	if typ == nil {
		return fmt.Sprintf("<unknown %d:%d>", t.NS, t.ID)
	}
	if t.NS == InternalNamespace {
		return typ.Name
	}
	return lib.Namespace(t.NS).Name + "." + typ.Name
}

// Kind classifies a type.
type Kind int

const (
	KindFundamental Kind = iota
	KindClass
	KindInterface
	KindRecord
	KindEnumeration
	KindBitfield
	KindAlias
)

var kindNames = map[Kind]string{
	KindFundamental: "fundamental",
	KindClass:       "class",
	KindInterface:   "interface",
	KindRecord:      "record",
	KindEnumeration: "enumeration",
	KindBitfield:    "bitfield",
	KindAlias:       "alias",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts a snapshot kind name.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == strings.ToLower(s) {
			return k, true
		}
	}
	return KindFundamental, false
}

// Function is a native function attached to a type.
type Function struct {
	// Name is the binding-side method name, e.g. "compare"
	Name string
	// CIdentifier is the native symbol, e.g. "gtk_widget_compare"
	CIdentifier string
	// Version is the minimum library version, nil when undeclared
	Version *Version
	// Throws marks functions that report failure through a GError
	Throws bool
	// Parameters counts arguments after the receiver
	Parameters int
}

// Type is a single entity in a namespace.
type Type struct {
	Name string
	Kind Kind
	// Parent is the direct parent class, nil for roots, interfaces and records
	Parent *TypeID
	// Implements lists implemented interfaces (prerequisites for interfaces)
	Implements []TypeID
	Functions  []Function
	Version    *Version
}

// Namespace is a named group of types.
type Namespace struct {
	Name  string
	Types []*Type
	index map[string]uint32
}

// Library stores namespaces and resolves names to type ids.
type Library struct {
	namespaces []*Namespace
	nsIndex    map[string]uint16
}

// New creates a library with the internal namespace and the main namespace.
func New(mainNamespace string) *Library {
	lib := &Library{nsIndex: make(map[string]uint16)}
	internal := lib.AddNamespace(internalNamespaceName)
	lib.AddType(internal, &Type{Name: "none", Kind: KindFundamental})
	lib.AddNamespace(mainNamespace)
	return lib
}

// AddNamespace registers a namespace and returns its id.
// Adding an existing name returns the existing id.
func (l *Library) AddNamespace(name string) uint16 {
	if ns, ok := l.nsIndex[name]; ok {
		return ns
	}
	ns := uint16(len(l.namespaces))
	l.namespaces = append(l.namespaces, &Namespace{Name: name, index: make(map[string]uint32)})
	l.nsIndex[name] = ns
	return ns
}

// AddType registers typ in namespace ns. A type with the same name is
// replaced in place and keeps its id.
func (l *Library) AddType(ns uint16, typ *Type) TypeID {
	namespace := l.namespaces[ns]
	if id, ok := namespace.index[typ.Name]; ok {
		namespace.Types[id] = typ
		return TypeID{NS: ns, ID: id}
	}
	id := uint32(len(namespace.Types))
	namespace.Types = append(namespace.Types, typ)
	namespace.index[typ.Name] = id
	return TypeID{NS: ns, ID: id}
}

// Namespace returns the namespace with id ns, nil when out of range.
func (l *Library) Namespace(ns uint16) *Namespace {
	if int(ns) >= len(l.namespaces) {
		return nil
	}
	return l.namespaces[ns]
}

// NamespaceID looks up a namespace by name.
func (l *Library) NamespaceID(name string) (uint16, bool) {
	ns, ok := l.nsIndex[name]
	return ns, ok
}

// Type returns the type for id, nil when id does not resolve.
func (l *Library) Type(id TypeID) *Type {
	namespace := l.Namespace(id.NS)
	if namespace == nil || int(id.ID) >= len(namespace.Types) {
		return nil
	}
	return namespace.Types[id.ID]
}

// FindType resolves a name to a type id. Dotted names ("GObject.Object")
// resolve in the named namespace, bare names in currentNS.
func (l *Library) FindType(currentNS uint16, name string) (TypeID, bool) {
	ns := currentNS
	local := name
	if i := strings.LastIndex(name, "."); i >= 0 {
		var ok bool
		if ns, ok = l.nsIndex[name[:i]]; !ok {
			return TidNone(), false
		}
		local = name[i+1:]
	}

	namespace := l.Namespace(ns)
	if namespace == nil {
		return TidNone(), false
	}
	id, ok := namespace.index[local]
	if !ok {
		return TidNone(), false
	}
	return TypeID{NS: ns, ID: id}, true
}

// TypeIDs lists every type of namespace ns in registration order.
func (l *Library) TypeIDs(ns uint16) []TypeID {
	namespace := l.Namespace(ns)
	if namespace == nil {
		return nil
	}
	ids := make([]TypeID, len(namespace.Types))
	for i := range namespace.Types {
		ids[i] = TypeID{NS: ns, ID: uint32(i)}
	}
	return ids
}

// AllTypeIDs lists the types of every namespace, internal one excluded.
func (l *Library) AllTypeIDs() []TypeID {
	var ids []TypeID
	for ns := range l.namespaces {
		if uint16(ns) == InternalNamespace {
			continue
		}
		ids = append(ids, l.TypeIDs(uint16(ns))...)
	}
	return ids
}
