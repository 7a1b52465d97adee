package semantic

import (
	"go.uber.org/zap"

	"github.com/kdy1/go-oxc-core/internal/ast"
	"github.com/kdy1/go-oxc-core/internal/visitor"
)

// Tables bundles the three semantic tables produced by one Build call.
// Read-only once returned.
type Tables struct {
	Scopes     *ScopeTree
	Symbols    *SymbolTable
	References *ReferenceTable
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger attaches a zap logger that traces scope enter/exit and symbol
// declarations, the same scope the rajajisai-bot-go visitor example logs
// at while walking a JS/TS AST.
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) { b.log = l }
}

// Builder implements visitor.Visitor and is the sole writer of the
// decoration cells (spec.md §3.3): exactly one call to Build assigns every
// NodeID/ScopeID/ReferenceID/SymbolID in a program.
type Builder struct {
	visitor.Base

	tables     *Tables
	scopeStack []ast.ScopeID
	nextNodeID uint32

	bound        map[*ast.Identifier]bool
	pendingFlags map[*ast.Identifier]ReferenceFlags

	// varDeclKindStack tracks the Kind ("var"/"let"/"const"/"using") of
	// whichever VariableDeclaration is currently open, as a stack rather
	// than a single field: a declarator's initializer can itself contain
	// another, unrelated VariableDeclaration (e.g. an IIFE with its own
	// locals), and that nested declaration's kind must not leak back to
	// sibling declarators once it's left.
	varDeclKindStack []string

	moduleProgram bool

	log *zap.Logger
}

// NewBuilder creates a Builder ready for a single Build call.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		tables: &Tables{
			Scopes:     newScopeTree(),
			Symbols:    newSymbolTable(),
			References: newReferenceTable(),
		},
		bound:        make(map[*ast.Identifier]bool),
		pendingFlags: make(map[*ast.Identifier]ReferenceFlags),
		log:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build runs the single post-parse traversal over program and returns the
// resulting tables.
func Build(program *ast.Program, opts ...Option) *Tables {
	b := NewBuilder(opts...)
	b.moduleProgram = program.SourceType == "module"
	visitor.Walk(program, b)
	return b.tables
}

func (b *Builder) currentScope() (ast.ScopeID, bool) {
	if len(b.scopeStack) == 0 {
		return 0, false
	}
	return b.scopeStack[len(b.scopeStack)-1], true
}

type nodeIDSetter interface{ SetNodeID(ast.NodeID) }
type scopeIDSetter interface{ SetScopeID(ast.ScopeID) }

// EnterNode assigns the node's dense id and, for the handful of node kinds
// that introduce a binding or a reference directly (rather than through a
// nested generic Identifier), registers it immediately.
func (b *Builder) EnterNode(n ast.Node) {
	id := ast.NodeID(b.nextNodeID)
	b.nextNodeID++
	if s, ok := n.(nodeIDSetter); ok {
		s.SetNodeID(id)
	}

	switch x := n.(type) {
	case *ast.FunctionDeclaration:
		if x.ID != nil {
			b.declareInEnclosingScope(x.ID, SymbolFunction, id)
		}
	case *ast.ClassDeclaration:
		if x.ID != nil {
			b.declareInEnclosingScope(x.ID, SymbolClass, id)
		}
	case *ast.VariableDeclarator:
		if len(b.varDeclKindStack) > 0 {
			kind := b.varDeclKindStack[len(b.varDeclKindStack)-1]
			b.declarePattern(x.ID, symbolKindForVarKind(kind), id)
		}
	case *ast.VariableDeclaration:
		b.varDeclKindStack = append(b.varDeclKindStack, x.Kind)
	case *ast.CatchClause:
		if x.Param != nil {
			b.declarePattern(x.Param, SymbolCatch, id)
		}
	case *ast.ImportSpecifier:
		if x.Local != nil {
			b.declareInEnclosingScope(x.Local, SymbolImport, id)
		}
	case *ast.ImportDefaultSpecifier:
		if x.Local != nil {
			b.declareInEnclosingScope(x.Local, SymbolImport, id)
		}
	case *ast.ImportNamespaceSpecifier:
		if x.Local != nil {
			b.declareInEnclosingScope(x.Local, SymbolImport, id)
		}
	case *ast.TSInterfaceDeclaration:
		if x.ID != nil {
			b.declareInEnclosingScope(x.ID, SymbolTSInterface, id)
		}
	case *ast.TSTypeAliasDeclaration:
		if x.ID != nil {
			b.declareInEnclosingScope(x.ID, SymbolTSTypeAlias, id)
		}
	case *ast.TSEnumDeclaration:
		if x.ID != nil {
			b.declareInEnclosingScope(x.ID, SymbolTSEnum, id)
		}
	case *ast.TSImportEqualsDeclaration:
		if x.ID != nil {
			b.declareInEnclosingScope(x.ID, SymbolTSImportEquals, id)
		}

	case *ast.AssignmentExpression:
		b.markTargetFlags(x.Left, assignmentFlags(x.Operator))
	case *ast.UpdateExpression:
		b.markTargetFlags(x.Argument, ReferenceRead|ReferenceWrite)

	case *ast.Identifier:
		if !b.bound[x] {
			flags, ok := b.pendingFlags[x]
			if !ok {
				flags = ReferenceRead
			}
			delete(b.pendingFlags, x)
			b.reference(x, id, flags)
		}
	}
}

// LeaveNode pops per-node state pushed by EnterNode. Only
// VariableDeclaration pushes anything onto varDeclKindStack, so it is the
// only case that needs to pop here.
func (b *Builder) LeaveNode(n ast.Node) {
	if _, ok := n.(*ast.VariableDeclaration); ok {
		b.varDeclKindStack = b.varDeclKindStack[:len(b.varDeclKindStack)-1]
	}
}

// EnterScope pushes a new scope, tagging it with flags derived from the
// node kind that introduced it.
func (b *Builder) EnterScope(n ast.Node) {
	flags := scopeFlagsFor(n, len(b.scopeStack) == 0)
	parent, hasParent := b.currentScope()
	if hasParent && b.tables.Scopes.Flags(parent).Has(ScopeStrict) {
		flags |= ScopeStrict
	}
	id := b.tables.Scopes.push(flags, parent, hasParent)
	if s, ok := n.(scopeIDSetter); ok {
		s.SetScopeID(id)
	}
	b.scopeStack = append(b.scopeStack, id)

	// A named function expression binds its own name inside its own scope,
	// not the enclosing one. fe's NodeID is already assigned: EnterNode(fe)
	// ran before EnterScope(fe) in the walk that introduced this scope.
	if fe, ok := n.(*ast.FunctionExpression); ok && fe.ID != nil {
		feNodeID, _ := fe.NodeID()
		b.declareInScope(fe.ID, SymbolFunction, id, feNodeID)
	}

	b.log.Debug("enter scope", zap.String("kind", n.Type()), zap.Uint32("scope_id", uint32(id)))
}

func (b *Builder) LeaveScope(n ast.Node) {
	b.log.Debug("leave scope", zap.String("kind", n.Type()))
	b.scopeStack = b.scopeStack[:len(b.scopeStack)-1]
}
