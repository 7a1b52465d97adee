package constfold

import (
	"math"

	"github.com/kdy1/go-oxc-core/internal/ast"
)

// foldBinary evaluates a binary expression's Value only. Like foldUnary,
// it never emits a Replacement — synthesizing a fresh Literal node for
// the result would need arena access this package doesn't have, and
// spec.md §4.H's Replacement-worthy case (preserving a side effect that
// would otherwise be dropped) only arises for &&/||/??/?: .
func (f *folder) foldBinary(e *ast.BinaryExpression) Value {
	left := f.valueOf(e.Left)
	right := f.valueOf(e.Right)

	// Number/BigInt mixing throws a TypeError at runtime; BigInt/BigInt
	// arithmetic is correct but unimplemented here. Either way, bail.
	if left.Kind == BigIntUnknown || right.Kind == BigIntUnknown {
		return notConstant()
	}

	switch e.Operator {
	case "+":
		return foldAdd(left, right)
	case "-":
		return foldArith(left, right, func(a, b float64) float64 { return a - b })
	case "*":
		return foldArith(left, right, func(a, b float64) float64 { return a * b })
	case "/":
		return foldArith(left, right, func(a, b float64) float64 { return a / b })
	case "%":
		return foldArith(left, right, math.Mod)
	case "**":
		return foldArith(left, right, math.Pow)

	case "<", "<=", ">", ">=":
		return foldRelational(e.Operator, left, right)

	case "==":
		if b, ok := abstractEquals(left, right); ok {
			return boolVal(b)
		}
		return notConstant()
	case "!=":
		if b, ok := abstractEquals(left, right); ok {
			return boolVal(!b)
		}
		return notConstant()
	case "===":
		if b, ok := strictEquals(left, right); ok {
			return boolVal(b)
		}
		return notConstant()
	case "!==":
		if b, ok := strictEquals(left, right); ok {
			return boolVal(!b)
		}
		return notConstant()

	case "&", "|", "^", "<<", ">>":
		ln, ok1 := toNumberVal(left)
		rn, ok2 := toNumberVal(right)
		if !ok1 || !ok2 {
			return notConstant()
		}
		a, b := toInt32(ln), toInt32(rn)
		switch e.Operator {
		case "&":
			return numberVal(float64(a & b))
		case "|":
			return numberVal(float64(a | b))
		case "^":
			return numberVal(float64(a ^ b))
		case "<<":
			return numberVal(float64(a << (uint32(b) & 0x1f)))
		default: // ">>"
			return numberVal(float64(a >> (uint32(b) & 0x1f)))
		}
	case ">>>":
		ln, ok1 := toNumberVal(left)
		rn, ok2 := toNumberVal(right)
		if !ok1 || !ok2 {
			return notConstant()
		}
		return numberVal(float64(toUint32(ln) >> (toUint32(rn) & 0x1f)))

	default: // "instanceof", "in"
		return notConstant()
	}
}

func foldAdd(left, right Value) Value {
	if left.Kind == String || right.Kind == String {
		ls, ok1 := toStringVal(left)
		rs, ok2 := toStringVal(right)
		if !ok1 || !ok2 {
			return notConstant()
		}
		return stringVal(ls + rs)
	}
	return foldArith(left, right, func(a, b float64) float64 { return a + b })
}

func foldArith(left, right Value, op func(a, b float64) float64) Value {
	ln, ok1 := toNumberVal(left)
	rn, ok2 := toNumberVal(right)
	if !ok1 || !ok2 {
		return notConstant()
	}
	return numberVal(op(ln, rn))
}

func foldRelational(op string, left, right Value) Value {
	if left.Kind == String && right.Kind == String {
		switch op {
		case "<":
			return boolVal(left.Str < right.Str)
		case "<=":
			return boolVal(left.Str <= right.Str)
		case ">":
			return boolVal(left.Str > right.Str)
		default:
			return boolVal(left.Str >= right.Str)
		}
	}
	ln, ok1 := toNumberVal(left)
	rn, ok2 := toNumberVal(right)
	if !ok1 || !ok2 {
		return notConstant()
	}
	// NaN compares false against everything except Go's native "!=",
	// which relational operators never use, so math.IsNaN checks are
	// unnecessary: Go's float comparisons already have IEEE-754 NaN
	// semantics.
	switch op {
	case "<":
		return boolVal(ln < rn)
	case "<=":
		return boolVal(ln <= rn)
	case ">":
		return boolVal(ln > rn)
	default:
		return boolVal(ln >= rn)
	}
}

func strictEquals(left, right Value) (bool, bool) {
	if left.Kind == NotConstant || right.Kind == NotConstant {
		return false, false
	}
	if left.Kind != right.Kind {
		return false, true
	}
	switch left.Kind {
	case Undefined, Null:
		return true, true
	case Bool:
		return left.Bln == right.Bln, true
	case Number:
		return left.Num == right.Num, true
	case String:
		return left.Str == right.Str, true
	default: // BigIntUnknown: digits not parsed, can't compare
		return false, false
	}
}

func abstractEquals(left, right Value) (bool, bool) {
	if left.Kind == NotConstant || right.Kind == NotConstant {
		return false, false
	}
	if left.Kind == right.Kind {
		return strictEquals(left, right)
	}
	bothNullish := func(v Value) bool { return v.Kind == Null || v.Kind == Undefined }
	if bothNullish(left) && bothNullish(right) {
		return true, true
	}
	if bothNullish(left) || bothNullish(right) {
		return false, true
	}
	if left.Kind == BigIntUnknown || right.Kind == BigIntUnknown {
		return false, false
	}
	// Differing primitive types (Number/String/Bool combinations):
	// ToNumber both sides per the abstract equality algorithm.
	ln, ok1 := toNumberVal(left)
	rn, ok2 := toNumberVal(right)
	if !ok1 || !ok2 {
		return false, false
	}
	return ln == rn, true
}
