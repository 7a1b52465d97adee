package constfold

import "github.com/kdy1/go-oxc-core/internal/ast"

// foldLogical implements try_fold_and_or / try_fold_coalesce: when the
// left operand's truthiness (or, for ??, nullishness) is known, the
// expression's value is determined without ever evaluating the side
// that's skipped at runtime.
//
// The side not taken is never silently dropped when it might have a
// side effect (the motivating example being `0 && (module.exports = {})`
// — deleting the right side there would delete an assignment an external
// CJS-aware tool depends on being lexically present). Concretely:
//   - when the expression's value is simply the kept side's own value
//     (left falsy for &&, left truthy for ||, left non-nullish for ??),
//     the Replacement is just that side, verbatim — nothing is dropped,
//     the whole point of short-circuiting is that the other side never
//     runs;
//   - when the expression's value is the *other* side's value but the
//     left side must still run for its effects, the Replacement is a
//     SequenceExpression (left, right) if left isn't side-effect-free,
//     or bare `right` if it is.
func (f *folder) foldLogical(e *ast.LogicalExpression) (Value, ast.Expression) {
	left := f.valueOf(e.Left)
	if left.Kind == NotConstant || left.Kind == BigIntUnknown {
		return notConstant(), nil
	}

	var takeLeft bool
	switch e.Operator {
	case "&&":
		takeLeft = !left.ToBoolean()
	case "||":
		takeLeft = left.ToBoolean()
	case "??":
		takeLeft = !(left.Kind == Null || left.Kind == Undefined)
	default:
		return notConstant(), nil
	}

	if takeLeft {
		return left, e.Left
	}

	right := f.valueOf(e.Right)
	if isSideEffectFree(e.Left) {
		return right, e.Right
	}
	return right, sequenceOf(e.Left, e.Right)
}

func sequenceOf(exprs ...ast.Expression) *ast.SequenceExpression {
	return &ast.SequenceExpression{
		BaseNode:    ast.BaseNode{NodeType: ast.KindSequenceExpression.String()},
		Expressions: exprs,
	}
}
