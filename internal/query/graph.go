// Package query exposes the AST and its semantic tables as a small
// read-only graph: a thin projection over internal/ast and
// internal/semantic, not a second source of truth. Every method here
// reads fields already published by the parser and semantic.Builder;
// nothing in this package mutates a node, a table, or the parent index
// it builds. Safe for concurrent readers, per spec.md §4.G/§5.
package query

import (
	"github.com/kdy1/go-oxc-core/internal/ast"
	"github.com/kdy1/go-oxc-core/internal/semantic"
)

// Graph wraps one file's AST and (optional) semantic tables behind a
// read-only query surface. The zero value is not usable; construct
// with New.
type Graph struct {
	program *ast.Program
	tables  *semantic.Tables
	parents *parentIndex
}

// New builds a Graph over program. tables may be nil if the caller only
// needs AST-shaped queries (Class/Import/JSXElement views, ancestry) and
// never ran semantic.Build — scope/symbol/reference methods panic with a
// clear message in that case rather than silently returning zero values.
func New(program *ast.Program, tables *semantic.Tables) *Graph {
	return &Graph{
		program: program,
		tables:  tables,
		parents: buildParentIndex(program),
	}
}

// Program returns the root node the graph was built over.
func (g *Graph) Program() *ast.Program { return g.program }

// Parent returns n's immediate parent in the tree, or false for the
// root program node or a node the graph wasn't built from.
func (g *Graph) Parent(n ast.Node) (ast.Node, bool) {
	p, ok := g.parents.byNode[n]
	return p, ok
}

// Ancestors returns n's ancestor chain, closest first, root last.
func (g *Graph) Ancestors(n ast.Node) []ast.Node {
	var out []ast.Node
	cur := n
	for {
		p, ok := g.Parent(cur)
		if !ok {
			return out
		}
		out = append(out, p)
		cur = p
	}
}

// Span returns n's [start, end) byte offsets.
func (g *Graph) Span(n ast.Node) (int, int) {
	return n.Pos(), n.End()
}

func (g *Graph) requireTables() *semantic.Tables {
	if g.tables == nil {
		panic("query: Graph built without semantic tables; pass the result of semantic.Build to query.New")
	}
	return g.tables
}

// LookupSymbol resolves name starting at scope, walking up through
// parent scopes. Mirrors the semantic query surface of spec.md §6.
func (g *Graph) LookupSymbol(scope ast.ScopeID, name string) (ast.SymbolID, bool) {
	return g.requireTables().Scopes.Lookup(scope, name)
}

// Symbol returns the declared symbol for id.
func (g *Graph) Symbol(id ast.SymbolID) semantic.Symbol {
	return g.requireTables().Symbols.Get(id)
}

// References returns every reference recorded against symbol id.
func (g *Graph) References(id ast.SymbolID) []semantic.Reference {
	sym := g.Symbol(id)
	refs := make([]semantic.Reference, 0, len(sym.References))
	for _, rid := range sym.References {
		refs = append(refs, g.requireTables().References.Get(rid))
	}
	return refs
}

// ScopeFlags returns the flag set for a scope.
func (g *Graph) ScopeFlags(id ast.ScopeID) semantic.ScopeFlags {
	return g.requireTables().Scopes.Flags(id)
}
