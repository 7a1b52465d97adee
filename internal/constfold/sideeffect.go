package constfold

import "github.com/kdy1/go-oxc-core/internal/ast"

// isSideEffectFree reports whether evaluating e can be skipped without
// observably changing program behavior. It is deliberately conservative:
// anything that can call user code (member access through a getter,
// calls, assignments, updates, await/yield) is treated as effectful even
// though many instances in practice are not, since the folder only runs
// off the AST and semantic tables, with no type information to rule out
// a getter on an arbitrary object.
func isSideEffectFree(e ast.Expression) bool {
	switch n := e.(type) {
	case nil:
		return true
	case *ast.Literal, *ast.Identifier, *ast.ThisExpression:
		return true
	case *ast.UnaryExpression:
		if n.Operator == "delete" {
			return false
		}
		return isSideEffectFree(n.Argument)
	case *ast.BinaryExpression:
		return isSideEffectFree(n.Left) && isSideEffectFree(n.Right)
	case *ast.LogicalExpression:
		return isSideEffectFree(n.Left) && isSideEffectFree(n.Right)
	case *ast.ConditionalExpression:
		return isSideEffectFree(n.Test) && isSideEffectFree(n.Consequent) && isSideEffectFree(n.Alternate)
	case *ast.SequenceExpression:
		for _, ex := range n.Expressions {
			if !isSideEffectFree(ex) {
				return false
			}
		}
		return true
	case *ast.ArrayExpression:
		for _, el := range n.Elements {
			if el != nil && !isSideEffectFree(el) {
				return false
			}
		}
		return true
	default:
		// MemberExpression, CallExpression, NewExpression,
		// AssignmentExpression, UpdateExpression, AwaitExpression,
		// YieldExpression, template literals with substitutions, object
		// literals (possible computed-key/getter side effects), and
		// everything else the folder doesn't special-case.
		return false
	}
}
