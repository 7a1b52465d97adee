// Package printer turns a format/doc document into text: the
// constraint-directed printer of spec.md §4.F, deciding where every
// group breaks by measuring whether its content fits the remaining
// line width.
package printer

import (
	"strings"

	"github.com/kdy1/go-oxc-core/internal/format/doc"
)

// suffixEntry is one buffered LineSuffix, captured with the mode and
// indent active at the point it was encountered so it prints
// correctly once flushed at end of line.
type suffixEntry struct {
	content doc.Doc
	mode    printMode
	indent  indent
}

// Printer prints a single document. Not safe for concurrent use or
// reuse across documents — construct a fresh one per Print call.
type Printer struct {
	options Options

	sb  strings.Builder
	col int

	pendingIndent *indent
	pendingSpace  bool
	hasEmptyLine  bool

	groupModes map[doc.GroupID]bool
	suffixes   []suffixEntry
}

// New creates a Printer configured with opts.
func New(opts Options) *Printer {
	return &Printer{
		options:    opts,
		groupModes: make(map[doc.GroupID]bool),
	}
}

// Print renders d to text. Per spec §4.F.7, a malformed document
// (mismatched tags) would be reported as an error; representing the
// alphabet as a Go tree of struct fields rather than a flat
// start/end-tagged stream makes that class of error structurally
// impossible here, so Print never fails — the error return is kept
// for interface parity with the spec's printer contract.
func (p *Printer) Print(d doc.Doc) (string, error) {
	d = propagateExpand(d)
	p.print(d, modeExpanded, indent{})
	p.flushSuffixes()
	return p.sb.String(), nil
}

func (p *Printer) print(d doc.Doc, mode printMode, ind indent) {
	switch n := d.(type) {
	case nil:
		return
	case doc.Token:
		p.writeText(n.Text, len(n.Text))
	case doc.Text:
		p.writeText(n.Value, n.Width)
	case doc.Space:
		if p.col > 0 {
			p.pendingSpace = true
		}
	case doc.HardSpace:
		p.writeText(" ", 1)
	case doc.Line:
		p.printLine(n, mode, ind)
	case doc.LineSuffixBoundary:
		if len(p.suffixes) > 0 {
			p.print(doc.Line{Mode: doc.Hard}, mode, ind)
		}
	case doc.ExpandParent:
		// Handled entirely by propagateExpand before printing starts.
	case doc.Interned:
		p.print(n.Content, mode, ind)
	case doc.Labelled:
		p.print(n.Contents, mode, ind)
	case doc.Concat:
		for _, part := range n.Parts {
			p.print(part, mode, ind)
		}
	case doc.Indent:
		p.print(n.Contents, mode, ind.increment(p.options.IndentStyle))
	case doc.Dedent:
		switch n.Mode {
		case doc.DedentRoot:
			p.print(n.Contents, mode, indent{})
		default: // DedentLevel
			restored := ind
			if restored.level > 0 {
				restored.level--
			}
			restored.align = 0
			p.print(n.Contents, mode, restored)
		}
	case doc.Align:
		p.print(n.Contents, mode, ind.withAlign(n.N))
	case doc.IndentIfGroupBreaks:
		if p.groupModes[n.GroupId] {
			p.print(n.Contents, mode, ind.increment(p.options.IndentStyle))
		} else {
			p.print(n.Contents, mode, ind)
		}
	case doc.ConditionalContent:
		groupMode := mode
		if n.GroupId != doc.NoGroupID {
			groupMode = groupModeFromBool(p.groupModes[n.GroupId])
		}
		if groupModeMatches(n.Mode, groupMode) {
			p.print(n.Contents, mode, ind)
		}
	case doc.LineSuffix:
		p.suffixes = append(p.suffixes, suffixEntry{content: n.Contents, mode: mode, indent: ind})
	case doc.Group:
		p.printGroup(n, ind)
	case doc.Fill:
		p.printFill(n.Entries, mode, ind)
	case doc.BestFitting:
		p.printBestFitting(n.Variants, mode, ind)
	}
}

func (p *Printer) printGroup(n doc.Group, ind indent) {
	groupMode := modeFlat
	switch n.Mode {
	case doc.GroupFlat:
		groupMode = modeFlat
	case doc.GroupExpanded:
		groupMode = modeExpanded
	default:
		if p.fitsFlat(n.Contents) {
			groupMode = modeFlat
		} else {
			groupMode = modeExpanded
		}
	}
	if n.Id != doc.NoGroupID {
		p.groupModes[n.Id] = groupMode == modeExpanded
	}
	p.print(n.Contents, groupMode, ind)
}

func (p *Printer) printLine(n doc.Line, mode printMode, ind indent) {
	if mode == modeFlat {
		switch n.Mode {
		case doc.Soft:
			return
		case doc.SoftOrSpace:
			if p.col > 0 {
				p.pendingSpace = true
			}
			return
		}
		// Hard and Empty always break, even while flat.
	}

	if len(p.suffixes) > 0 {
		p.flushSuffixes()
		p.print(n, mode, ind)
		return
	}

	if p.col > 0 {
		p.writeNewline()
		p.hasEmptyLine = false
	}
	if n.Mode == doc.Empty && !p.hasEmptyLine {
		p.writeNewline()
		p.hasEmptyLine = true
	}
	p.pendingSpace = false
	captured := ind
	p.pendingIndent = &captured
}

func (p *Printer) flushSuffixes() {
	if len(p.suffixes) == 0 {
		return
	}
	pending := p.suffixes
	p.suffixes = nil
	for _, e := range pending {
		p.print(e.content, e.mode, e.indent)
	}
}

func (p *Printer) writeText(s string, width int) {
	p.flushPending()
	p.sb.WriteString(s)
	p.col += width
}

func (p *Printer) flushPending() {
	if p.pendingIndent != nil {
		rendered := p.renderIndent(*p.pendingIndent)
		p.sb.WriteString(rendered)
		p.col += len(rendered)
		p.pendingIndent = nil
	}
	if p.pendingSpace {
		p.sb.WriteByte(' ')
		p.col++
		p.pendingSpace = false
	}
}

func (p *Printer) writeNewline() {
	p.sb.WriteString(p.options.LineEnding.string())
	p.col = 0
	p.pendingSpace = false
}

func (p *Printer) printBestFitting(variants []doc.Doc, mode printMode, ind indent) {
	if len(variants) == 0 {
		return
	}
	for i, variant := range variants {
		if i == len(variants)-1 {
			p.print(variant, modeExpanded, ind)
			return
		}
		if p.fitsFlat(variant) {
			p.print(variant, modeFlat, ind)
			return
		}
	}
}
