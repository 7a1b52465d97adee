package printer

import "github.com/kdy1/go-oxc-core/internal/format/doc"

// printFill packs entries (item, separator, item, separator, ..., item)
// greedily left-to-right per spec §4.F.4's four cases. For each
// (item, separator, next-item) triple:
//
//  1. item+separator+next-item all fit flat: print item and separator flat.
//  2. item+separator fit flat but next-item doesn't: item flat, separator
//     expanded.
//  3. item fits flat but separator doesn't (with or without a next item):
//     item flat, separator expanded.
//  4. item doesn't fit at all: both expanded.
func (p *Printer) printFill(entries []doc.Doc, mode printMode, ind indent) {
	for i := 0; i < len(entries); i += 2 {
		item := entries[i]
		if i+1 >= len(entries) {
			if p.fitsFlat(item) {
				p.print(item, modeFlat, ind)
			} else {
				p.print(item, modeExpanded, ind)
			}
			return
		}

		sep := entries[i+1]
		var hasNext bool
		var next doc.Doc
		if i+2 < len(entries) {
			hasNext = true
			next = entries[i+2]
		}

		itemFits := p.fitsFlat(item)
		itemSepFits := itemFits && p.fitsFlat(doc.Concat{Parts: []doc.Doc{item, sep}})
		itemSepNextFits := hasNext && itemSepFits && p.fitsFlat(doc.Concat{Parts: []doc.Doc{item, sep, next}})

		switch {
		case hasNext && itemSepNextFits:
			p.print(item, modeFlat, ind)
			p.print(sep, modeFlat, ind)
		case itemSepFits:
			p.print(item, modeFlat, ind)
			p.print(sep, modeExpanded, ind)
		case itemFits:
			p.print(item, modeFlat, ind)
			p.print(sep, modeExpanded, ind)
		default:
			p.print(item, modeExpanded, ind)
			p.print(sep, modeExpanded, ind)
		}
	}
}
