package semantic

import "github.com/kdy1/go-oxc-core/internal/ast"

// SymbolKind classifies how a symbol entered scope.
type SymbolKind string

const (
	SymbolVar            SymbolKind = "var"
	SymbolLet            SymbolKind = "let"
	SymbolConst          SymbolKind = "const"
	SymbolUsing          SymbolKind = "using"
	SymbolFunction        SymbolKind = "function"
	SymbolClass          SymbolKind = "class"
	SymbolImport         SymbolKind = "import"
	SymbolParameter      SymbolKind = "parameter"
	SymbolCatch          SymbolKind = "catch"
	SymbolTSInterface    SymbolKind = "ts-interface"
	SymbolTSTypeAlias    SymbolKind = "ts-type-alias"
	SymbolTSEnum         SymbolKind = "ts-enum"
	SymbolTSEnumMember   SymbolKind = "ts-enum-member"
	SymbolTSModule       SymbolKind = "ts-module"
	SymbolTSImportEquals SymbolKind = "ts-import-equals"
)

// Symbol is one declared binding.
type Symbol struct {
	ID          ast.SymbolID
	Name        string
	Scope       ast.ScopeID
	Declaration ast.NodeID
	Kind        SymbolKind
	Exported    bool
	References  []ast.ReferenceID
}

// SymbolTable holds every symbol declared in the program, read-only once
// Builder.Build returns.
type SymbolTable struct {
	symbols []Symbol
}

func newSymbolTable() *SymbolTable { return &SymbolTable{} }

func (t *SymbolTable) add(s Symbol) ast.SymbolID {
	id := ast.SymbolID(len(t.symbols))
	s.ID = id
	t.symbols = append(t.symbols, s)
	return id
}

func (t *SymbolTable) addReference(id ast.SymbolID, ref ast.ReferenceID) {
	t.symbols[id].References = append(t.symbols[id].References, ref)
}

// Get returns the symbol for id.
func (t *SymbolTable) Get(id ast.SymbolID) Symbol { return t.symbols[id] }

// Len returns the number of declared symbols.
func (t *SymbolTable) Len() int { return len(t.symbols) }
