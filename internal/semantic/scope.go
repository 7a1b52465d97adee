package semantic

import "github.com/kdy1/go-oxc-core/internal/ast"

// ScopeFlags records why a scope exists, mirroring the flag set spec.md
// §3.5 requires scopes to carry (top, function, arrow, strict,
// class-static-block, with, TS-module, get/set/constructor).
type ScopeFlags uint16

const (
	ScopeTop ScopeFlags = 1 << iota
	ScopeFunction
	ScopeArrow
	ScopeStrict
	ScopeClassStaticBlock
	ScopeWith
	ScopeTSModule
	ScopeClassName
	ScopeBlock
	ScopeSwitch
	ScopeFor
	ScopeCatch
	ScopeGetter
	ScopeSetter
	ScopeConstructor
)

// Has reports whether all bits in want are set.
func (f ScopeFlags) Has(want ScopeFlags) bool { return f&want == want }

type scope struct {
	id       ast.ScopeID
	parent   ast.ScopeID
	hasParent bool
	flags    ScopeFlags
	bindings map[string]ast.SymbolID
}

// ScopeTree is the parent-linked tree of lexical scopes built by Builder.
// Immutable once Build returns.
type ScopeTree struct {
	scopes []scope
}

func newScopeTree() *ScopeTree { return &ScopeTree{} }

func (t *ScopeTree) push(flags ScopeFlags, parent ast.ScopeID, hasParent bool) ast.ScopeID {
	id := ast.ScopeID(len(t.scopes))
	t.scopes = append(t.scopes, scope{
		id: id, parent: parent, hasParent: hasParent, flags: flags,
		bindings: make(map[string]ast.SymbolID),
	})
	return id
}

func (t *ScopeTree) bind(id ast.ScopeID, name string, sym ast.SymbolID) {
	t.scopes[id].bindings[name] = sym
}

// Len returns the number of scopes in the tree, including the root.
func (t *ScopeTree) Len() int { return len(t.scopes) }

// Flags returns the flag set for scope id.
func (t *ScopeTree) Flags(id ast.ScopeID) ScopeFlags { return t.scopes[id].flags }

// Parent returns the parent scope id, or false if id is the root.
func (t *ScopeTree) Parent(id ast.ScopeID) (ast.ScopeID, bool) {
	s := t.scopes[id]
	return s.parent, s.hasParent
}

// Lookup resolves name starting at scope id, walking up through parents.
// Returns the symbol id and true if found in id or an ancestor.
func (t *ScopeTree) Lookup(id ast.ScopeID, name string) (ast.SymbolID, bool) {
	cur := id
	for {
		if sym, ok := t.scopes[cur].bindings[name]; ok {
			return sym, true
		}
		parent, ok := t.Parent(cur)
		if !ok {
			return 0, false
		}
		cur = parent
	}
}

// OwnBindings returns the name->symbol map declared directly in scope id
// (not inherited from ancestors).
func (t *ScopeTree) OwnBindings(id ast.ScopeID) map[string]ast.SymbolID {
	return t.scopes[id].bindings
}
