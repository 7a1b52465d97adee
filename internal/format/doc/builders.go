package doc

import "unicode/utf8"

// Tok builds a Token from ASCII-only, newline-free text.
func Tok(text string) Doc { return Token{Text: text} }

// Txt builds a Text element, computing its display width from rune
// count (callers with East-Asian-width-sensitive content should use
// TxtWidth instead).
func Txt(value string) Doc { return Text{Value: value, Width: utf8.RuneCountInString(value)} }

// TxtWidth builds a Text element with an explicit precomputed width.
func TxtWidth(value string, width int) Doc { return Text{Value: value, Width: width} }

// SoftLine builds a Line that is omitted when flat.
func SoftLine() Doc { return Line{Mode: Soft} }

// SoftLineOrSpace builds a Line that becomes a space when flat.
func SoftLineOrSpace() Doc { return Line{Mode: SoftOrSpace} }

// HardLine builds a Line that always breaks, forcing its enclosing
// group to expand.
func HardLine() Doc { return Line{Mode: Hard} }

// EmptyLine builds a Line that always breaks and produces a blank
// line, forcing expansion.
func EmptyLine() Doc { return Line{Mode: Empty} }

// Join joins parts into one sequence. A single part is returned
// unwrapped; zero parts yields an empty Concat.
func Join(parts ...Doc) Doc {
	if len(parts) == 1 {
		return parts[0]
	}
	return Concat{Parts: parts}
}

// GroupOf wraps contents in an anonymous group that prints flat if it
// fits, else expanded.
func GroupOf(contents Doc) Doc { return Group{Contents: contents} }

// GroupWithId wraps contents in a group tagged with id, so later
// IndentIfGroupBreaks/ConditionalContent elements can reference its
// resolved mode.
func GroupWithId(id GroupID, contents Doc) Doc {
	return Group{Id: id, Contents: contents}
}

// ForceFlat wraps contents in a group pinned to flat mode regardless
// of fit.
func ForceFlat(contents Doc) Doc { return Group{Mode: GroupFlat, Contents: contents} }

// ForceExpand wraps contents in a group pinned to expanded mode.
func ForceExpand(contents Doc) Doc { return Group{Mode: GroupExpanded, Contents: contents} }

// IndentOf pushes one indent level on contents.
func IndentOf(contents Doc) Doc { return Indent{Contents: contents} }

// DedentOf pops contents back to the indent saved on entry.
func DedentOf(contents Doc) Doc { return Dedent{Mode: DedentLevel, Contents: contents} }

// DedentToRoot forces contents to print at zero indent.
func DedentToRoot(contents Doc) Doc { return Dedent{Mode: DedentRoot, Contents: contents} }

// AlignOf adds n spaces of alignment to contents.
func AlignOf(n int, contents Doc) Doc { return Align{N: n, Contents: contents} }

// IfGroupBreaks indents contents iff the group id printed expanded.
func IfGroupBreaks(id GroupID, contents Doc) Doc {
	return IndentIfGroupBreaks{GroupId: id, Contents: contents}
}

// IfBreak returns whenBroken if the surrounding print mode is
// expanded, whenFlat otherwise — the common two-alternative case of
// ConditionalContent.
func IfBreak(whenBroken, whenFlat Doc) Doc {
	return Concat{Parts: []Doc{
		ConditionalContent{Mode: GroupExpanded, Contents: whenBroken},
		ConditionalContent{Mode: GroupFlat, Contents: whenFlat},
	}}
}

// IfGroupBreaksMode emits contents only when the group id's resolved
// mode equals mode.
func IfGroupBreaksMode(id GroupID, mode GroupMode, contents Doc) Doc {
	return ConditionalContent{Mode: mode, GroupId: id, Contents: contents}
}

// FillOf builds a Fill from alternating item/separator/item/.../item
// entries.
func FillOf(entries ...Doc) Doc { return Fill{Entries: entries} }

// LineSuffixOf defers contents to the end of the current line.
func LineSuffixOf(contents Doc) Doc { return LineSuffix{Contents: contents} }

// LabelledOf wraps contents with an opaque debugging label.
func LabelledOf(label string, contents Doc) Doc {
	return Labelled{Label: label, Contents: contents}
}

// BestFittingOf builds a BestFitting from ordered variants; the
// first variant that fits flat wins, else the last (most expanded)
// one prints.
func BestFittingOf(variants ...Doc) Doc {
	return BestFitting{Variants: variants}
}

// JoinWith joins parts with sep between each one.
func JoinWith(sep Doc, parts ...Doc) Doc {
	if len(parts) == 0 {
		return Concat{}
	}
	out := make([]Doc, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return Concat{Parts: out}
}
