package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHierarchy_ParentChainThenInterfaces(t *testing.T) {
	lib := New("Test")
	base := lib.AddType(MainNamespace, &Type{Name: "Base", Kind: KindClass})
	object := lib.AddType(MainNamespace, &Type{Name: "Object", Kind: KindClass})
	container := lib.AddType(MainNamespace, &Type{Name: "Container", Kind: KindInterface})
	widget := lib.AddType(MainNamespace, &Type{Name: "Widget", Kind: KindClass})

	h := NewHierarchyBuilder().
		SetParent(widget, base).
		SetParent(base, object).
		AddInterfaces(widget, container).
		Build()

	assert.Equal(t, []TypeID{base, object, container}, h.Supertypes(widget))
	assert.Equal(t, []TypeID{object}, h.Supertypes(base))
	assert.Empty(t, h.Supertypes(object))
	assert.Equal(t, []TypeID{base, container}, h.DirectSupertypes(widget))
	assert.True(t, h.HasSubtypes(base))
	assert.False(t, h.HasSubtypes(widget))
}

func TestHierarchy_NoDuplicates(t *testing.T) {
	b := NewHierarchyBuilder()
	object := TypeID{NS: 1, ID: 1}
	iface := TypeID{NS: 1, ID: 2}
	parent := TypeID{NS: 1, ID: 3}
	child := TypeID{NS: 1, ID: 4}

	b.AddInterfaces(iface, object)
	b.SetParent(parent, object)
	b.AddInterfaces(parent, iface)
	b.SetParent(child, parent)
	b.AddInterfaces(child, iface)
	h := b.Build()

	assert.Equal(t, []TypeID{parent, object, iface}, h.Supertypes(child))
}

func TestHierarchy_CycleTerminates(t *testing.T) {
	a := TypeID{NS: 1, ID: 1}
	b := TypeID{NS: 1, ID: 2}

	h := NewHierarchyBuilder().SetParent(a, b).SetParent(b, a).Build()

	assert.Equal(t, []TypeID{b}, h.Supertypes(a))
	assert.Equal(t, []TypeID{a}, h.Supertypes(b))
}

func TestHierarchy_UnknownType(t *testing.T) {
	h := NewHierarchyBuilder().Build()
	assert.Empty(t, h.Supertypes(TypeID{NS: 1, ID: 7}))
}
