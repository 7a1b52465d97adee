package semantic

import "github.com/kdy1/go-oxc-core/internal/ast"

// ReferenceFlags records how a reference's value is used. Per spec.md
// §4.D, compound assignments and update expressions set both.
type ReferenceFlags uint8

const (
	ReferenceRead ReferenceFlags = 1 << iota
	ReferenceWrite
)

// Reference is one occurrence of an identifier in an expression position.
type Reference struct {
	ID       ast.ReferenceID
	Node     ast.NodeID
	Symbol   ast.SymbolID
	Resolved bool
	Flags    ReferenceFlags
}

// ReferenceTable holds every identifier reference in the program.
type ReferenceTable struct {
	refs []Reference
}

func newReferenceTable() *ReferenceTable { return &ReferenceTable{} }

func (t *ReferenceTable) add(r Reference) ast.ReferenceID {
	id := ast.ReferenceID(len(t.refs))
	r.ID = id
	t.refs = append(t.refs, r)
	return id
}

// Get returns the reference for id.
func (t *ReferenceTable) Get(id ast.ReferenceID) Reference { return t.refs[id] }

// Len returns the number of references recorded.
func (t *ReferenceTable) Len() int { return len(t.refs) }
