package printer

import "github.com/kdy1/go-oxc-core/internal/format/doc"

type printMode uint8

const (
	modeFlat printMode = iota
	modeExpanded
)

// fitsResult carries both the running verdict and whether the walk
// can stop early: reaching a line break that will actually print (a
// Hard/Empty line, or any line while simulating Expanded mode) means
// everything after it starts a fresh line budget, so there's no need
// to keep measuring — the prefix fits, full stop.
type fitsResult struct {
	done bool
	fits bool
}

// fitsFlat reports whether d would fit printed flat starting at the
// printer's current column, per spec §4.F.3: simulate in Flat mode,
// counting columns until either a hard line break is reached (fits)
// or the width is exceeded (doesn't fit).
func (p *Printer) fitsFlat(d doc.Doc) bool {
	remaining := p.options.PrintWidth - p.col
	return p.fits(d, modeFlat, &remaining).fits
}

// fitsWithin reports whether d fits within an explicit remaining
// column budget. Nothing in the package calls it; Fill measures with
// fitsFlat.
func (p *Printer) fitsWithin(d doc.Doc, remaining int) bool {
	return p.fits(d, modeFlat, &remaining).fits
}

func (p *Printer) fits(d doc.Doc, mode printMode, remaining *int) fitsResult {
	switch n := d.(type) {
	case nil:
		return fitsResult{fits: true}
	case doc.Token:
		*remaining -= len(n.Text)
		return fitsResult{done: *remaining < 0, fits: *remaining >= 0}
	case doc.Text:
		*remaining -= n.Width
		return fitsResult{done: *remaining < 0, fits: *remaining >= 0}
	case doc.Space:
		*remaining--
		return fitsResult{done: *remaining < 0, fits: *remaining >= 0}
	case doc.HardSpace:
		*remaining--
		return fitsResult{done: *remaining < 0, fits: *remaining >= 0}
	case doc.ExpandParent, doc.LineSuffixBoundary:
		return fitsResult{fits: true}
	case doc.LineSuffix:
		return fitsResult{fits: true}
	case doc.Line:
		return p.fitsLine(n, mode, remaining)
	case doc.Interned:
		return p.fits(n.Content, mode, remaining)
	case doc.Labelled:
		return p.fits(n.Contents, mode, remaining)
	case doc.Indent:
		return p.fits(n.Contents, mode, remaining)
	case doc.Dedent:
		return p.fits(n.Contents, mode, remaining)
	case doc.Align:
		return p.fits(n.Contents, mode, remaining)
	case doc.IndentIfGroupBreaks:
		return p.fits(n.Contents, mode, remaining)
	case doc.ConditionalContent:
		groupMode := mode
		if n.GroupId != doc.NoGroupID {
			if expanded, ok := p.groupModes[n.GroupId]; ok {
				groupMode = groupModeFromBool(expanded)
			}
		}
		if groupModeMatches(n.Mode, groupMode) {
			return p.fits(n.Contents, mode, remaining)
		}
		return fitsResult{fits: true}
	case doc.Fill:
		return p.fitsSeq(n.Entries, mode, remaining)
	case doc.Concat:
		return p.fitsSeq(n.Parts, mode, remaining)
	case doc.Group:
		childMode := mode
		switch n.Mode {
		case doc.GroupFlat:
			childMode = modeFlat
		case doc.GroupExpanded:
			childMode = modeExpanded
		}
		return p.fits(n.Contents, childMode, remaining)
	case doc.BestFitting:
		if len(n.Variants) == 0 {
			return fitsResult{fits: true}
		}
		// An ancestor group measuring through a BestFitting assumes the
		// most-flat variant, matching oxc's use of most_flat() whenever
		// an enclosing fits check has already decided to continue flat.
		return p.fits(n.Variants[0], mode, remaining)
	default:
		return fitsResult{fits: true}
	}
}

func (p *Printer) fitsLine(n doc.Line, mode printMode, remaining *int) fitsResult {
	if mode == modeFlat {
		switch n.Mode {
		case doc.Soft:
			return fitsResult{fits: true}
		case doc.SoftOrSpace:
			*remaining--
			return fitsResult{done: *remaining < 0, fits: *remaining >= 0}
		default: // Hard, Empty
			return fitsResult{done: true, fits: true}
		}
	}
	// In Expanded mode every Line actually breaks the line.
	return fitsResult{done: true, fits: true}
}

func (p *Printer) fitsSeq(parts []doc.Doc, mode printMode, remaining *int) fitsResult {
	for _, part := range parts {
		r := p.fits(part, mode, remaining)
		if r.done {
			return r
		}
	}
	return fitsResult{fits: true}
}

func groupModeFromBool(expanded bool) printMode {
	if expanded {
		return modeExpanded
	}
	return modeFlat
}

func groupModeMatches(want doc.GroupMode, actual printMode) bool {
	switch want {
	case doc.GroupFlat:
		return actual == modeFlat
	case doc.GroupExpanded:
		return actual == modeExpanded
	default:
		return false
	}
}
