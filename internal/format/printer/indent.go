package printer

import "strings"

// indent is the printer's notion of current indentation: a level
// (one unit per Indent tag) plus an alignment padding in spaces
// (accumulated by Align tags). Passed by value through the recursive
// print calls, so entering/leaving an Indent/Dedent/Align region is
// just a different value handed to the recursive call — no explicit
// save/restore stack is needed the way a flattened tag stream would
// require.
type indent struct {
	level int
	align int
}

// increment pushes one indent level. Under tabs, indentation never
// interleaves with spaces: any pending alignment is converted into an
// extra level instead of being preserved as trailing spaces.
func (in indent) increment(style IndentStyle) indent {
	if style == IndentTab && in.align > 0 {
		return indent{level: in.level + 1}
	}
	return indent{level: in.level + 1, align: in.align}
}

// withAlign adds n spaces of alignment on top of the current indent.
func (in indent) withAlign(n int) indent {
	return indent{level: in.level, align: in.align + n}
}

func (p *Printer) renderIndent(in indent) string {
	if p.options.IndentStyle == IndentTab {
		return strings.Repeat("\t", in.level) + strings.Repeat(" ", in.align)
	}
	return strings.Repeat(" ", in.level*p.options.IndentWidth+in.align)
}
