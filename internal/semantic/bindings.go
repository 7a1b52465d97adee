package semantic

import (
	"strings"

	"go.uber.org/zap"

	"github.com/kdy1/go-oxc-core/internal/ast"
)

func symbolKindForVarKind(kind string) SymbolKind {
	switch kind {
	case "let":
		return SymbolLet
	case "const":
		return SymbolConst
	case "using", "await using":
		return SymbolUsing
	default:
		return SymbolVar
	}
}

// declareInEnclosingScope binds ident in the scope that is current at the
// moment of the call (the scope that was active before any scope this
// node itself might introduce was pushed). declNodeID is the NodeID of the
// declaring construct (the FunctionDeclaration, VariableDeclarator, and so
// on) — ident's own NodeID is not yet assigned at this point in the walk,
// since its EnterNode call happens later, when the generic traversal
// recurses into it as a child.
func (b *Builder) declareInEnclosingScope(ident *ast.Identifier, kind SymbolKind, declNodeID ast.NodeID) {
	scope, ok := b.currentScope()
	if !ok {
		scope = b.tables.Scopes.push(ScopeTop, 0, false)
		b.scopeStack = append(b.scopeStack, scope)
	}
	b.declareInScope(ident, kind, scope, declNodeID)
}

func (b *Builder) declareInScope(ident *ast.Identifier, kind SymbolKind, scope ast.ScopeID, declNodeID ast.NodeID) {
	b.bound[ident] = true
	symID := b.tables.Symbols.add(Symbol{
		Name:        ident.Name,
		Scope:       scope,
		Declaration: declNodeID,
		Kind:        kind,
	})
	ident.SetSymbolID(symID)
	b.tables.Scopes.bind(scope, ident.Name, symID)
	b.log.Debug("declare symbol", zap.String("name", ident.Name), zap.String("kind", string(kind)))
}

// declarePattern recursively declares every binding identifier inside a
// destructuring pattern (array/object pattern, default value, rest, or a
// plain identifier) in the current scope. declNodeID identifies the
// declaring construct that owns the whole pattern (see
// declareInEnclosingScope).
func (b *Builder) declarePattern(pat ast.Pattern, kind SymbolKind, declNodeID ast.NodeID) {
	switch p := pat.(type) {
	case nil:
		return
	case *ast.Identifier:
		b.declareInEnclosingScope(p, kind, declNodeID)
	case *ast.ArrayPattern:
		for _, el := range p.Elements {
			b.declarePattern(el, kind, declNodeID)
		}
	case *ast.ObjectPattern:
		for _, prop := range p.Properties {
			switch pr := prop.(type) {
			case *ast.Property:
				if asPat, ok := pr.Value.(ast.Pattern); ok {
					b.declarePattern(asPat, kind, declNodeID)
				}
			case *ast.RestElement:
				b.declarePattern(pr.Argument, kind, declNodeID)
			}
		}
	case *ast.RestElement:
		b.declarePattern(p.Argument, kind, declNodeID)
	case *ast.AssignmentPattern:
		b.declarePattern(p.Left, kind, declNodeID)
	}
}

func (b *Builder) reference(ident *ast.Identifier, nodeID ast.NodeID, flags ReferenceFlags) {
	symID, resolved := ast.SymbolID(0), false
	if scope, ok := b.currentScope(); ok {
		symID, resolved = b.tables.Scopes.Lookup(scope, ident.Name)
	}
	refID := b.tables.References.add(Reference{
		Node: nodeID, Symbol: symID, Resolved: resolved, Flags: flags,
	})
	ident.SetReferenceID(refID)
	if resolved {
		b.tables.Symbols.addReference(symID, refID)
	}
}

// markTargetFlags records read/write flags for the simple-identifier case
// of an assignment or update target, ahead of the generic walk reaching
// that Identifier node. Member-expression and pattern targets carry their
// own identifier references (the object, or each binding inside the
// pattern) which keep the default read flag — only the bound name itself
// changes meaning under assignment.
func (b *Builder) markTargetFlags(target ast.Node, flags ReferenceFlags) {
	if id, ok := target.(*ast.Identifier); ok {
		b.pendingFlags[id] = flags
	}
}

func assignmentFlags(operator string) ReferenceFlags {
	if operator == "=" {
		return ReferenceWrite
	}
	return ReferenceRead | ReferenceWrite
}

func scopeFlagsFor(n ast.Node, isRoot bool) ScopeFlags {
	var flags ScopeFlags
	if isRoot {
		flags |= ScopeTop
	}
	switch x := n.(type) {
	case *ast.Program:
		if x.SourceType == "module" {
			flags |= ScopeStrict
		}
	case *ast.FunctionDeclaration:
		flags |= ScopeFunction
		if hasUseStrict(x.Body) {
			flags |= ScopeStrict
		}
	case *ast.FunctionExpression:
		flags |= ScopeFunction
		if hasUseStrict(x.Body) {
			flags |= ScopeStrict
		}
	case *ast.ArrowFunctionExpression:
		flags |= ScopeFunction | ScopeArrow
	case *ast.TSDeclareFunction:
		flags |= ScopeFunction
	case *ast.CatchClause:
		flags |= ScopeCatch
	case *ast.StaticBlock:
		flags |= ScopeClassStaticBlock
	case *ast.TSModuleDeclaration:
		flags |= ScopeTSModule
	case *ast.SwitchStatement:
		flags |= ScopeSwitch
	case *ast.ForStatement, *ast.ForInStatement, *ast.ForOfStatement:
		flags |= ScopeFor
	case *ast.ClassExpression:
		flags |= ScopeClassName
	case *ast.BlockStatement:
		flags |= ScopeBlock
	}
	return flags
}

func hasUseStrict(body *ast.BlockStatement) bool {
	if body == nil || len(body.Body) == 0 {
		return false
	}
	stmt, ok := body.Body[0].(*ast.ExpressionStatement)
	if !ok || stmt.Directive == nil {
		return false
	}
	return strings.TrimSpace(*stmt.Directive) == "use strict"
}
