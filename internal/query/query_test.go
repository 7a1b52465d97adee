package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdy1/go-oxc-core/internal/ast"
	"github.com/kdy1/go-oxc-core/internal/parser"
	"github.com/kdy1/go-oxc-core/internal/query"
	"github.com/kdy1/go-oxc-core/internal/semantic"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	n, err := parser.New(src).Parse()
	require.NoError(t, err)
	prog, ok := n.(*ast.Program)
	require.True(t, ok)
	return prog
}

func parseJSX(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := parser.New(src)
	p.SetJSXEnabled(true)
	n, err := p.Parse()
	require.NoError(t, err)
	prog, ok := n.(*ast.Program)
	require.True(t, ok)
	return prog
}

func TestGraphParentAndAncestors(t *testing.T) {
	prog := parseProgram(t, "function foo() { return 1; }")
	g := query.New(prog, nil)

	fn := prog.Body[0].(*ast.FunctionDeclaration)
	parent, ok := g.Parent(fn)
	require.True(t, ok)
	assert.Same(t, ast.Node(prog), parent)

	ret := fn.Body.Body[0]
	ancestors := g.Ancestors(ret)
	require.Len(t, ancestors, 3)
	assert.Same(t, ast.Node(fn.Body), ancestors[0])
	assert.Same(t, ast.Node(fn), ancestors[1])
	assert.Same(t, ast.Node(prog), ancestors[2])

	_, hasParent := g.Parent(prog)
	assert.False(t, hasParent)
}

func TestGraphSemanticQuerySurfacePanicsWithoutTables(t *testing.T) {
	prog := parseProgram(t, "const x = 1;")
	g := query.New(prog, nil)
	assert.Panics(t, func() { g.LookupSymbol(0, "x") })
}

func TestGraphSemanticQuerySurface(t *testing.T) {
	prog := parseProgram(t, "let x = 1; x += 2;")
	tables := semantic.Build(prog)
	g := query.New(prog, tables)

	require.Equal(t, 1, tables.Symbols.Len())
	sym := g.Symbol(0)
	assert.Equal(t, "x", sym.Name)

	resolved, ok := g.LookupSymbol(sym.Scope, "x")
	require.True(t, ok)
	assert.Equal(t, ast.SymbolID(0), resolved)

	refs := g.References(0)
	require.Len(t, refs, 1)
	assert.Equal(t, semantic.ReferenceRead|semantic.ReferenceWrite, refs[0].Flags)
}

func TestClassViewProjectsMembers(t *testing.T) {
	prog := parseProgram(t, `
		class Point {
			x = 0;
			static count = 0;
			constructor(x) { this.x = x; }
			get value() { return this.x; }
			set value(v) { this.x = v; }
			distance() { return this.x; }
		}
	`)
	decl := prog.Body[0].(*ast.ClassDeclaration)
	cv, ok := query.ClassOf(decl)
	require.True(t, ok)

	assert.Equal(t, "Point", cv.Name())
	assert.Len(t, cv.Properties(), 2)
	assert.Len(t, cv.Methods(), 1)
	assert.Len(t, cv.Getters(), 1)
	assert.Len(t, cv.Setters(), 1)

	ctor, ok := cv.Constructor()
	require.True(t, ok)
	assert.Equal(t, "constructor", ctor.Kind)
}

func TestImportViewProjectsSpecifiers(t *testing.T) {
	prog := parseProgram(t, `import def, { a, b as c } from "mod";`)
	decl := prog.Body[0].(*ast.ImportDeclaration)
	iv := query.ImportOf(decl)

	assert.Equal(t, "mod", iv.Source())

	def, ok := iv.DefaultImport()
	require.True(t, ok)
	assert.Equal(t, "def", def.Local.Name)

	named := iv.NamedImports()
	require.Len(t, named, 2)
	assert.Equal(t, "a", named[0].Imported.Name)
	assert.Equal(t, "c", named[1].Local.Name)

	_, hasNS := iv.NamespaceImport()
	assert.False(t, hasNS)
}

func TestImportViewNamespaceImport(t *testing.T) {
	prog := parseProgram(t, `import * as ns from "mod";`)
	decl := prog.Body[0].(*ast.ImportDeclaration)
	iv := query.ImportOf(decl)

	ns, ok := iv.NamespaceImport()
	require.True(t, ok)
	assert.Equal(t, "ns", ns.Local.Name)
}

func TestJSXElementViewProjectsChildren(t *testing.T) {
	prog := parseJSX(t, `const el = <div>hello {name}<span/></div>;`)
	decl := prog.Body[0].(*ast.VariableDeclaration)
	init := decl.Declarations[0].Init.(*ast.JSXElement)
	jv := query.JSXElementOf(init)

	assert.Len(t, jv.Children(), 3)
	assert.Len(t, jv.ChildExpressions(), 1)
	assert.Len(t, jv.ChildElements(), 1)
	text := jv.ChildText()
	require.Len(t, text, 1)
	assert.Contains(t, text[0], "hello")
}
