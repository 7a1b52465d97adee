package constfold

import "github.com/kdy1/go-oxc-core/internal/ast"

// foldUnary evaluates a unary expression's Value only — it never emits a
// Replacement. That mirrors fold_constants.rs's try_fold_unary_expr,
// which deliberately leaves `!0`/`!1` and `void 0` untouched even though
// their value is known: those forms are already the minifier's preferred
// canonical encoding of `true`/`false`/`undefined`, so rewriting them
// would be churn, not a win.
func (f *folder) foldUnary(e *ast.UnaryExpression) Value {
	arg := f.valueOf(e.Argument)

	switch e.Operator {
	case "void":
		// void always yields undefined, independent of whether its
		// operand's own value is determinable.
		return undefinedVal()

	case "!":
		if arg.Kind == NotConstant {
			return notConstant()
		}
		return boolVal(!arg.ToBoolean())

	case "typeof":
		return foldTypeof(e.Argument, arg)

	case "-":
		// BigInt negation bails: -(1n) needs BigInt arithmetic the
		// folder doesn't implement, not Number negation.
		if arg.Kind == BigIntUnknown {
			return notConstant()
		}
		if n, ok := toNumberVal(arg); ok {
			return numberVal(-n)
		}
		return notConstant()

	case "+":
		if arg.Kind == BigIntUnknown {
			return notConstant()
		}
		if n, ok := toNumberVal(arg); ok {
			return numberVal(n)
		}
		return notConstant()

	case "~":
		if arg.Kind == BigIntUnknown {
			return notConstant()
		}
		if n, ok := toNumberVal(arg); ok {
			return numberVal(float64(^toInt32(n)))
		}
		return notConstant()

	default: // "delete"
		return notConstant()
	}
}

// foldTypeof handles the cases typeof can determine without a runtime:
// an operand whose own constant Value is already known, and a function or
// arrow function expression operand ("function"). An unresolved
// identifier's typeof is safe to evaluate in the language (no
// ReferenceError), but the folder has no type information for it, so it
// bails same as any other NotConstant operand.
func foldTypeof(arg ast.Expression, val Value) Value {
	switch val.Kind {
	case Number:
		return stringVal("number")
	case String:
		return stringVal("string")
	case Bool:
		return stringVal("boolean")
	case Undefined:
		return stringVal("undefined")
	case Null:
		return stringVal("object")
	case BigIntUnknown:
		return stringVal("bigint")
	default:
		if _, ok := arg.(*ast.FunctionExpression); ok {
			return stringVal("function")
		}
		if _, ok := arg.(*ast.ArrowFunctionExpression); ok {
			return stringVal("function")
		}
		return notConstant()
	}
}
