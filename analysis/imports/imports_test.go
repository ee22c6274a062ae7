package imports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImports_AddDeduplicatesAndSorts(t *testing.T) {
	imps := New()
	imps.Add("crate::Widget")
	imps.Add("std::fmt")
	imps.Add("crate::Widget")
	imps.Add("")

	assert.Equal(t, []string{"crate::Widget", "std::fmt"}, imps.Names())
	assert.Equal(t, 2, imps.Len())
}

func TestImports_SkipsDefined(t *testing.T) {
	imps := New()
	imps.AddDefined("Label")
	imps.Add("crate::Label")
	imps.Add("Label")
	imps.Add("crate::LabelExt")

	assert.Equal(t, []string{"crate::LabelExt"}, imps.Names())
}

func TestImports_Merge(t *testing.T) {
	a := New()
	a.AddDefined("Widget")
	a.Add("std::cmp")

	b := New()
	b.Add("crate::Widget")
	b.Add("crate::Container")

	a.Merge(b)
	assert.Equal(t, []string{"crate::Container", "std::cmp"}, a.Names())
}
