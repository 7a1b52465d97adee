package doc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kdy1/go-oxc-core/internal/format/doc"
)

func TestJoinCollapsesSingleElement(t *testing.T) {
	d := doc.Join(doc.Tok("a"))
	assert.Equal(t, doc.Tok("a"), d)
}

func TestJoinWrapsMultipleElements(t *testing.T) {
	d := doc.Join(doc.Tok("a"), doc.Tok("b"))
	concat, ok := d.(doc.Concat)
	assert.True(t, ok)
	assert.Len(t, concat.Parts, 2)
}

func TestJoinWithInterleavesSeparator(t *testing.T) {
	d := doc.JoinWith(doc.Tok(","), doc.Tok("a"), doc.Tok("b"), doc.Tok("c"))
	concat, ok := d.(doc.Concat)
	assert.True(t, ok)
	assert.Equal(t, []doc.Doc{doc.Tok("a"), doc.Tok(","), doc.Tok("b"), doc.Tok(","), doc.Tok("c")}, concat.Parts)
}

func TestJoinWithEmptyPartsYieldsEmptyConcat(t *testing.T) {
	d := doc.JoinWith(doc.Tok(","))
	concat, ok := d.(doc.Concat)
	assert.True(t, ok)
	assert.Empty(t, concat.Parts)
}

func TestTxtComputesRuneWidth(t *testing.T) {
	d := doc.Txt("café")
	text, ok := d.(doc.Text)
	assert.True(t, ok)
	assert.Equal(t, 4, text.Width)
}

func TestTxtWidthUsesExplicitWidth(t *testing.T) {
	d := doc.TxtWidth("wide", 8)
	text, ok := d.(doc.Text)
	assert.True(t, ok)
	assert.Equal(t, 8, text.Width)
}

func TestIfBreakBuildsBothConditionalBranches(t *testing.T) {
	d := doc.IfBreak(doc.Tok(","), doc.Tok(""))
	concat, ok := d.(doc.Concat)
	assert.True(t, ok)
	assert.Len(t, concat.Parts, 2)

	broken, ok := concat.Parts[0].(doc.ConditionalContent)
	assert.True(t, ok)
	assert.Equal(t, doc.GroupExpanded, broken.Mode)
	assert.Equal(t, doc.NoGroupID, broken.GroupId)

	flat, ok := concat.Parts[1].(doc.ConditionalContent)
	assert.True(t, ok)
	assert.Equal(t, doc.GroupFlat, flat.Mode)
}

func TestIfGroupBreaksModeTargetsExplicitGroup(t *testing.T) {
	gid := doc.GroupID(7)
	d := doc.IfGroupBreaksMode(gid, doc.GroupExpanded, doc.Tok("x"))
	cc, ok := d.(doc.ConditionalContent)
	assert.True(t, ok)
	assert.Equal(t, gid, cc.GroupId)
	assert.Equal(t, doc.GroupExpanded, cc.Mode)
}

func TestGroupWithIdCarriesId(t *testing.T) {
	gid := doc.GroupID(3)
	d := doc.GroupWithId(gid, doc.Tok("x"))
	g, ok := d.(doc.Group)
	assert.True(t, ok)
	assert.Equal(t, gid, g.Id)
	assert.Equal(t, doc.GroupAuto, g.Mode)
}

func TestForceFlatAndForceExpandPinGroupMode(t *testing.T) {
	flat := doc.ForceFlat(doc.Tok("x")).(doc.Group)
	assert.Equal(t, doc.GroupFlat, flat.Mode)

	expanded := doc.ForceExpand(doc.Tok("x")).(doc.Group)
	assert.Equal(t, doc.GroupExpanded, expanded.Mode)
}

func TestFillOfPreservesEntryOrder(t *testing.T) {
	d := doc.FillOf(doc.Tok("a"), doc.SoftLineOrSpace(), doc.Tok("b"))
	fill, ok := d.(doc.Fill)
	assert.True(t, ok)
	assert.Len(t, fill.Entries, 3)
}

func TestBestFittingOfPreservesVariantOrder(t *testing.T) {
	d := doc.BestFittingOf(doc.Tok("a"), doc.Tok("b"), doc.Tok("c"))
	bf, ok := d.(doc.BestFitting)
	assert.True(t, ok)
	assert.Len(t, bf.Variants, 3)
}

func TestNoGroupIDIsZeroValue(t *testing.T) {
	var zero doc.GroupID
	assert.Equal(t, doc.NoGroupID, zero)
}
