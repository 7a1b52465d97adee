// Package doc defines the document language a formatter builds and a
// printer consumes: a closed alphabet of elements (tokens, conditional
// line breaks, groups, fills, best-fitting alternatives) rather than
// raw strings, so the printer alone decides where a line actually
// breaks.
package doc

// Doc is any node in the document tree. The alphabet is closed: every
// concrete type below is the only thing a printer needs to handle.
type Doc interface {
	docNode()
}

// LineMode selects how a Line element behaves when its enclosing group
// prints flat.
type LineMode uint8

const (
	// Soft is omitted entirely when flat.
	Soft LineMode = iota
	// SoftOrSpace becomes a single space when flat.
	SoftOrSpace
	// Hard always breaks, forcing the enclosing group to expand.
	Hard
	// Empty always breaks and produces a blank line, forcing expansion.
	Empty
)

// Token is ASCII-only, newline-free literal text.
type Token struct{ Text string }

// Text is arbitrary text with a precomputed display width; it may
// itself contain newlines (e.g. a multi-line template literal chunk).
type Text struct {
	Value string
	Width int
}

// Space is a conditional space: emitted only if the current line
// already has content.
type Space struct{}

// HardSpace is an unconditional space counted against line width.
type HardSpace struct{}

// Line is a line break whose behavior under a flat-printing group
// depends on Mode.
type Line struct{ Mode LineMode }

// LineSuffixBoundary forces any pending line suffix to flush before
// continuing.
type LineSuffixBoundary struct{}

// ExpandParent is an inert marker that forces the nearest enclosing
// group to expand; it prints nothing itself.
type ExpandParent struct{}

// BestFitting holds ordered variants, each a self-contained
// sub-document. The printer selects the first that fits flat, or the
// last (most expanded) variant if none do.
type BestFitting struct{ Variants []Doc }

// Interned references a shared sub-document so it can be reused
// without duplicating the tree (e.g. a comment attached to many call
// sites of the same node shape).
type Interned struct{ Content Doc }

// GroupID names a group so IndentIfGroupBreaks/ConditionalContent
// elsewhere in the document can condition on whether it expanded.
type GroupID uint32

// NoGroupID marks the absence of a group id.
const NoGroupID GroupID = 0

// GroupMode optionally forces a group's print mode instead of letting
// the printer measure whether it fits.
type GroupMode uint8

const (
	// GroupAuto lets the printer measure fit (the default).
	GroupAuto GroupMode = iota
	GroupFlat
	GroupExpanded
)

// Group delimits a region that prints flat if it fits on the
// remaining line, else expanded. An Id of NoGroupID means anonymous.
type Group struct {
	Id       GroupID
	Mode     GroupMode
	Contents Doc
}

// Indent pushes one indent level on Contents.
type Indent struct{ Contents Doc }

// DedentMode selects how far a Dedent pops.
type DedentMode uint8

const (
	// DedentLevel pops back to the indent saved on entry.
	DedentLevel DedentMode = iota
	// DedentRoot forces zero indent.
	DedentRoot
)

// Dedent reduces the indent of Contents per Mode.
type Dedent struct {
	Mode     DedentMode
	Contents Doc
}

// Align adds N spaces of alignment to Contents, interacting with
// Indent per the printer's indent semantics.
type Align struct {
	N        int
	Contents Doc
}

// IndentIfGroupBreaks indents Contents iff the referenced group
// printed expanded.
type IndentIfGroupBreaks struct {
	GroupId  GroupID
	Contents Doc
}

// ConditionalContent emits Contents only if the surrounding print
// mode (or the referenced group's mode, when GroupId is set) matches
// Mode.
type ConditionalContent struct {
	Mode     GroupMode
	GroupId  GroupID
	Contents Doc
}

// Fill is a sequence of entries separated by fill separators, packed
// greedily left-to-right (printer §4.F.4 rules).
type Fill struct {
	// Entries alternates item, separator, item, separator, ..., item —
	// always an odd length (or zero) with items at even indices.
	Entries []Doc
}

// LineSuffix buffers Contents and flushes it at the end of the
// current line, at the point the next Line element would otherwise
// print a break.
type LineSuffix struct{ Contents Doc }

// Labelled is an opaque debugging marker around Contents; it has no
// effect on printing.
type Labelled struct {
	Label    string
	Contents Doc
}

// Concat is a flat sequence of sibling documents. Not part of the
// spec's element alphabet itself, but the natural Go way to build a
// "sequence of elements" without every builder call threading a
// slice by hand — every formatter in practice needs to join many
// pieces, and the printer treats it exactly like an inline slice.
type Concat struct{ Parts []Doc }

func (Token) docNode()               {}
func (Text) docNode()                {}
func (Space) docNode()                {}
func (HardSpace) docNode()            {}
func (Line) docNode()                 {}
func (LineSuffixBoundary) docNode()   {}
func (ExpandParent) docNode()         {}
func (BestFitting) docNode()          {}
func (Interned) docNode()             {}
func (Group) docNode()                {}
func (Indent) docNode()               {}
func (Dedent) docNode()               {}
func (Align) docNode()                {}
func (IndentIfGroupBreaks) docNode()  {}
func (ConditionalContent) docNode()   {}
func (Fill) docNode()                 {}
func (LineSuffix) docNode()           {}
func (Labelled) docNode()             {}
func (Concat) docNode()               {}
