package arena

import "github.com/cespare/xxhash/v2"

// Atom is an interned, immutable identifier string. Two atoms compare equal
// iff they were produced by the same Interner for byte-identical content;
// comparison is by the interned handle (id), not by string content, so
// Equal is O(1) regardless of string length.
type Atom struct {
	id   uint32
	text string
}

// String returns the atom's underlying text.
func (a Atom) String() string { return a.text }

// IsZero reports whether a is the zero Atom (never produced by Intern).
func (a Atom) IsZero() bool { return a.text == "" && a.id == 0 }

// Equal compares two atoms by identity.
func (a Atom) Equal(b Atom) bool { return a.id == b.id }

// Interner deduplicates identifier text. Content hashing (xxhash, chosen
// for the same reason the lci example repo keys its content-addressed cache
// with it: a fast, well-distributed non-cryptographic hash) keeps Intern
// near O(1) instead of a linear scan over previously seen atoms, per
// spec.md §4.A's "Atoms compare by pointer identity after interning" —
// translated here to compare by a stable integer handle instead of a raw
// pointer, since Go strings aren't independently addressable the way Rust's
// interned string handles are.
type Interner struct {
	buckets map[uint64][]uint32
	atoms   []string
}

// NewInterner creates an empty Interner.
func NewInterner() *Interner {
	return &Interner{buckets: make(map[uint64][]uint32)}
}

// Intern returns the Atom for s, allocating a new slot only the first time
// s (by content) is seen.
func (in *Interner) Intern(s string) Atom {
	h := xxhash.Sum64String(s)
	for _, id := range in.buckets[h] {
		if in.atoms[id] == s {
			return Atom{id: id, text: s}
		}
	}
	id := uint32(len(in.atoms))
	in.atoms = append(in.atoms, s)
	in.buckets[h] = append(in.buckets[h], id)
	return Atom{id: id, text: s}
}

// Lookup resolves an atom id back to its text, mainly useful for debugging
// and for consumers that only stored the id.
func (in *Interner) Lookup(id uint32) (string, bool) {
	if int(id) >= len(in.atoms) {
		return "", false
	}
	return in.atoms[id], true
}

// Len returns the number of distinct atoms interned so far.
func (in *Interner) Len() int { return len(in.atoms) }
