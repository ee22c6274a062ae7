package library

// Hierarchy is the class hierarchy as an explicit directed graph.
//
// Edges point from a type to its direct supertypes: the parent class first,
// then implemented interfaces (prerequisites for interfaces). The transitive
// supertype list of every type is computed once when the graph is built.
type Hierarchy struct {
	parent     map[TypeID]TypeID
	interfaces map[TypeID][]TypeID
	subtypes   map[TypeID][]TypeID
	supertypes map[TypeID][]TypeID
}

// NewHierarchy derives the hierarchy from the Parent and Implements fields
// of every type in lib.
func NewHierarchy(lib *Library) *Hierarchy {
	b := NewHierarchyBuilder()
	for _, id := range lib.AllTypeIDs() {
		typ := lib.Type(id)
		if typ.Parent != nil {
			b.SetParent(id, *typ.Parent)
		}
		b.AddInterfaces(id, typ.Implements...)
	}
	return b.Build()
}

// HierarchyBuilder collects edges before the graph is frozen.
type HierarchyBuilder struct {
	h     *Hierarchy
	order []TypeID
	seen  map[TypeID]bool
}

// NewHierarchyBuilder returns an empty builder.
func NewHierarchyBuilder() *HierarchyBuilder {
	return &HierarchyBuilder{
		h: &Hierarchy{
			parent:     make(map[TypeID]TypeID),
			interfaces: make(map[TypeID][]TypeID),
			subtypes:   make(map[TypeID][]TypeID),
			supertypes: make(map[TypeID][]TypeID),
		},
		seen: make(map[TypeID]bool),
	}
}

func (b *HierarchyBuilder) touch(ids ...TypeID) {
	for _, id := range ids {
		if !b.seen[id] {
			b.seen[id] = true
			b.order = append(b.order, id)
		}
	}
}

// SetParent records child's direct parent class.
func (b *HierarchyBuilder) SetParent(child, parent TypeID) *HierarchyBuilder {
	b.touch(child, parent)
	b.h.parent[child] = parent
	b.h.subtypes[parent] = append(b.h.subtypes[parent], child)
	return b
}

// AddInterfaces records interfaces implemented by child, in order.
func (b *HierarchyBuilder) AddInterfaces(child TypeID, ifaces ...TypeID) *HierarchyBuilder {
	if len(ifaces) == 0 {
		return b
	}
	b.touch(child)
	b.touch(ifaces...)
	b.h.interfaces[child] = append(b.h.interfaces[child], ifaces...)
	for _, iface := range ifaces {
		b.h.subtypes[iface] = append(b.h.subtypes[iface], child)
	}
	return b
}

// Build computes transitive supertypes and returns the frozen graph.
func (b *HierarchyBuilder) Build() *Hierarchy {
	for _, id := range b.order {
		b.h.supertypes[id] = b.h.collect(id)
	}
	return b.h
}

// collect walks the parent chain nearest-first, then the interfaces of the
// type and each ancestor (with their prerequisites) in first-seen order.
func (h *Hierarchy) collect(id TypeID) []TypeID {
	var result []TypeID
	seen := map[TypeID]bool{id: true}

	chain := []TypeID{id}
	for cur := id; ; {
		parent, ok := h.parent[cur]
		if !ok || seen[parent] {
			break
		}
		seen[parent] = true
		result = append(result, parent)
		chain = append(chain, parent)
		cur = parent
	}

	queue := make([]TypeID, 0)
	for _, t := range chain {
		queue = append(queue, h.interfaces[t]...)
	}
	for len(queue) > 0 {
		iface := queue[0]
		queue = queue[1:]
		if seen[iface] {
			continue
		}
		seen[iface] = true
		result = append(result, iface)
		queue = append(queue, h.interfaces[iface]...)
	}

	return result
}

// Supertypes returns every ancestor of id in native order, nearest first.
// The returned slice is shared and must not be modified.
func (h *Hierarchy) Supertypes(id TypeID) []TypeID {
	return h.supertypes[id]
}

// DirectSupertypes returns the adjacency of id: parent first, then
// interfaces.
func (h *Hierarchy) DirectSupertypes(id TypeID) []TypeID {
	var direct []TypeID
	if parent, ok := h.parent[id]; ok {
		direct = append(direct, parent)
	}
	return append(direct, h.interfaces[id]...)
}

// HasSubtypes reports whether any type derives from or implements id.
func (h *Hierarchy) HasSubtypes(id TypeID) bool {
	return len(h.subtypes[id]) > 0
}
