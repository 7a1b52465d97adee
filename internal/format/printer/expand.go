package printer

import "github.com/kdy1/go-oxc-core/internal/format/doc"

// propagateExpand walks d once before printing and pins any Group
// whose contents directly contain a Hard/Empty line or an
// ExpandParent marker to Expanded mode, so the later fits measurement
// for that group never has to run (and its own Soft lines correctly
// expand alongside the forced hard break). A Group absorbs the force:
// it does not bubble past its own boundary to an ancestor group,
// mirroring oxc_formatter's Document::propagate_expands — an ancestor
// group is still free to measure and choose Flat for itself, since
// fits() stops (and reports fits=true) the moment it reaches any line
// break, nested or not.
func propagateExpand(d doc.Doc) doc.Doc {
	out, _ := propagate(d)
	return out
}

func propagate(d doc.Doc) (doc.Doc, bool) {
	switch n := d.(type) {
	case nil:
		return nil, false
	case doc.Line:
		return n, n.Mode == doc.Hard || n.Mode == doc.Empty
	case doc.ExpandParent:
		return n, true
	case doc.Concat:
		parts, force := propagateSeq(n.Parts)
		return doc.Concat{Parts: parts}, force
	case doc.Fill:
		entries, force := propagateSeq(n.Entries)
		return doc.Fill{Entries: entries}, force
	case doc.Group:
		contents, force := propagate(n.Contents)
		mode := n.Mode
		if force && mode == doc.GroupAuto {
			mode = doc.GroupExpanded
		}
		return doc.Group{Id: n.Id, Mode: mode, Contents: contents}, false
	case doc.Indent:
		contents, force := propagate(n.Contents)
		return doc.Indent{Contents: contents}, force
	case doc.Dedent:
		contents, force := propagate(n.Contents)
		return doc.Dedent{Mode: n.Mode, Contents: contents}, force
	case doc.Align:
		contents, force := propagate(n.Contents)
		return doc.Align{N: n.N, Contents: contents}, force
	case doc.IndentIfGroupBreaks:
		contents, force := propagate(n.Contents)
		return doc.IndentIfGroupBreaks{GroupId: n.GroupId, Contents: contents}, force
	case doc.ConditionalContent:
		contents, force := propagate(n.Contents)
		return doc.ConditionalContent{Mode: n.Mode, GroupId: n.GroupId, Contents: contents}, force
	case doc.LineSuffix:
		// Deferred content never forces the group it's declared in —
		// it prints later, at end of line, outside this group's fit.
		contents, _ := propagate(n.Contents)
		return doc.LineSuffix{Contents: contents}, false
	case doc.Labelled:
		contents, force := propagate(n.Contents)
		return doc.Labelled{Label: n.Label, Contents: contents}, force
	case doc.Interned:
		contents, force := propagate(n.Content)
		return doc.Interned{Content: contents}, force
	case doc.BestFitting:
		variants := make([]doc.Doc, len(n.Variants))
		for i, v := range n.Variants {
			pv, _ := propagate(v)
			variants[i] = pv
		}
		return doc.BestFitting{Variants: variants}, false
	default:
		return d, false
	}
}

func propagateSeq(parts []doc.Doc) ([]doc.Doc, bool) {
	out := make([]doc.Doc, len(parts))
	force := false
	for i, part := range parts {
		p, f := propagate(part)
		out[i] = p
		force = force || f
	}
	return out, force
}
