package printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kdy1/go-oxc-core/internal/format/doc"
	"github.com/kdy1/go-oxc-core/internal/format/printer"
)

func print(t *testing.T, opts printer.Options, d doc.Doc) string {
	t.Helper()
	out, err := printer.New(opts).Print(d)
	assert.NoError(t, err)
	return out
}

func narrow() printer.Options {
	opts := printer.DefaultOptions()
	opts.PrintWidth = 20
	return opts
}

func TestGroupPrintsFlatWhenItFits(t *testing.T) {
	d := doc.GroupOf(doc.Join(
		doc.Tok("("),
		doc.IndentOf(doc.Join(doc.SoftLine(), doc.Tok("a"), doc.Tok(","), doc.SoftLineOrSpace(), doc.Tok("b"))),
		doc.SoftLine(),
		doc.Tok(")"),
	))
	out := print(t, printer.DefaultOptions(), d)
	assert.Equal(t, "(a, b)", out)
}

func TestGroupExpandsWhenItDoesNotFit(t *testing.T) {
	d := doc.GroupOf(doc.Join(
		doc.Tok("("),
		doc.IndentOf(doc.Join(doc.SoftLine(), doc.Tok("firstArgument"), doc.Tok(","), doc.SoftLineOrSpace(), doc.Tok("secondArgument"))),
		doc.SoftLine(),
		doc.Tok(")"),
	))
	out := print(t, narrow(), d)
	assert.Equal(t, "(\n  firstArgument,\n  secondArgument\n)", out)
}

func TestHardLineForcesEnclosingGroupToExpand(t *testing.T) {
	d := doc.GroupOf(doc.Join(doc.Tok("{"), doc.IndentOf(doc.Join(doc.HardLine(), doc.Tok("x"))), doc.HardLine(), doc.Tok("}")))
	out := print(t, printer.DefaultOptions(), d)
	assert.Equal(t, "{\n  x\n}", out)
}

func TestNestedGroupFitsIndependentlyOfOuterHardLine(t *testing.T) {
	// A hard line in the outer group must not force the nested, clearly
	// short, inner group to expand too: fits() stops at the first line
	// break it reaches and reports fits=true without over-expanding
	// unrelated nested groups.
	inner := doc.GroupOf(doc.Join(doc.Tok("("), doc.Tok("x"), doc.Tok(")")))
	d := doc.GroupOf(doc.Join(doc.Tok("a"), doc.HardLine(), inner))
	out := print(t, printer.DefaultOptions(), d)
	assert.Equal(t, "a\n(x)", out)
}

func TestSpaceOnlyEmittedWhenLineHasContent(t *testing.T) {
	d := doc.Join(doc.Space{}, doc.Tok("a"), doc.Space{}, doc.Tok("b"))
	out := print(t, printer.DefaultOptions(), d)
	assert.Equal(t, "a b", out)
}

func TestEmptyLineProducesBlankLineOnce(t *testing.T) {
	d := doc.Join(doc.Tok("a"), doc.EmptyLine(), doc.EmptyLine(), doc.Tok("b"))
	out := print(t, printer.DefaultOptions(), d)
	assert.Equal(t, "a\n\nb", out)
}

func TestIfBreakSelectsByGroupMode(t *testing.T) {
	d := doc.GroupOf(doc.Join(
		doc.Tok("["),
		doc.IndentOf(doc.Join(doc.SoftLine(), doc.Tok("a"), doc.IfBreak(doc.Tok(","), doc.Tok("")))),
		doc.SoftLine(),
		doc.Tok("]"),
	))
	assert.Equal(t, "[a]", print(t, printer.DefaultOptions(), d))

	wide := doc.GroupOf(doc.Join(
		doc.Tok("["),
		doc.IndentOf(doc.Join(doc.SoftLine(), doc.Tok("firstElementIsTooLong"), doc.IfBreak(doc.Tok(","), doc.Tok("")))),
		doc.SoftLine(),
		doc.Tok("]"),
	))
	assert.Equal(t, "[\n  firstElementIsTooLong,\n]", print(t, narrow(), wide))
}

func TestLineSuffixFlushesAtEndOfLine(t *testing.T) {
	d := doc.Join(
		doc.Tok("code"),
		doc.LineSuffixOf(doc.Tok(" // trailing")),
		doc.HardLine(),
		doc.Tok("next"),
	)
	out := print(t, printer.DefaultOptions(), d)
	assert.Equal(t, "code // trailing\nnext", out)
}

func TestLineSuffixBoundaryForcesFlushWithoutExplicitLine(t *testing.T) {
	d := doc.Join(
		doc.Tok("code"),
		doc.LineSuffixOf(doc.Tok(" // trailing")),
		doc.LineSuffixBoundary{},
		doc.Tok("more"),
	)
	out := print(t, printer.DefaultOptions(), d)
	assert.Equal(t, "code // trailing\nmore", out)
}

func TestFillPacksPairsGreedily(t *testing.T) {
	entries := []doc.Doc{
		doc.Tok("aaaa"), doc.SoftLineOrSpace(),
		doc.Tok("bbbb"), doc.SoftLineOrSpace(),
		doc.Tok("cccccccccccccccccccc"),
	}
	out := print(t, narrow(), doc.FillOf(entries...))
	assert.Equal(t, "aaaa bbbb\ncccccccccccccccccccc", out)
}

func TestBestFittingPicksFirstFittingVariant(t *testing.T) {
	b := doc.BestFittingOf(
		doc.Tok("short"),
		doc.Tok("much much longer variant that will not be used"),
	)
	out := print(t, printer.DefaultOptions(), b)
	assert.Equal(t, "short", out)
}

func TestBestFittingFallsBackToLastVariant(t *testing.T) {
	b := doc.BestFittingOf(
		doc.Tok("way too long to fit in the narrow width given"),
		doc.Join(doc.Tok("fallback"), doc.HardLine(), doc.Tok("variant")),
	)
	out := print(t, narrow(), b)
	assert.Equal(t, "fallback\nvariant", out)
}

func TestIndentAndAlignCompose(t *testing.T) {
	// The break that lands "b" on its own line must itself be inside the
	// Indent: a line's indentation reflects the indent scope active when
	// the break was encountered, not wherever the next token happens to
	// sit in the tree.
	d := doc.Join(doc.Tok("a"), doc.IndentOf(doc.Join(doc.HardLine(), doc.Tok("b"), doc.AlignOf(2, doc.Join(doc.HardLine(), doc.Tok("c"))))))
	out := print(t, printer.DefaultOptions(), d)
	assert.Equal(t, "a\n  b\n    c", out)
}

func TestIndentIfGroupBreaksIndentsOnlyWhenExpanded(t *testing.T) {
	gid := doc.GroupID(1)
	flat := doc.GroupWithId(gid, doc.Join(doc.Tok("a")))
	d := doc.Join(flat, doc.IfGroupBreaks(gid, doc.Join(doc.HardLine(), doc.Tok("x"))))
	out := print(t, printer.DefaultOptions(), d)
	assert.Equal(t, "a\nx", out)

	expanded := doc.GroupWithId(gid, doc.Join(doc.Tok("a"), doc.HardLine(), doc.Tok("b")))
	d2 := doc.Join(expanded, doc.IfGroupBreaks(gid, doc.Join(doc.HardLine(), doc.Tok("x"))))
	out2 := print(t, printer.DefaultOptions(), d2)
	assert.Equal(t, "a\nb\n  x", out2)
}
