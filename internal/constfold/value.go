package constfold

import (
	"math"
	"strconv"
)

// Kind classifies a folded Value. The zero Kind, NotConstant, is also the
// zero value of Value itself, so a map lookup miss on Result.Values reads
// back as "undetermined" without an explicit sentinel.
type Kind uint8

const (
	NotConstant Kind = iota
	Undefined
	Null
	Bool
	Number
	String
	// BigIntUnknown marks a BigInt-typed operand. Per the folder's
	// contract, BigInt values are never evaluated — only tracked so
	// binary/unary folds touching one can bail instead of silently
	// mixing Number and BigInt arithmetic (which throws at runtime).
	BigIntUnknown
)

// Value is the folder's evaluation result for one expression: one of the
// six ECMAScript language types the folder supports (no Object/Symbol —
// those are never compile-time constant), or NotConstant when the
// expression's value could not be determined ahead of time.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
	Bln  bool
}

func notConstant() Value { return Value{} }
func undefinedVal() Value { return Value{Kind: Undefined} }
func nullVal() Value      { return Value{Kind: Null} }
func boolVal(b bool) Value { return Value{Kind: Bool, Bln: b} }
func numberVal(n float64) Value { return Value{Kind: Number, Num: n} }
func stringVal(s string) Value  { return Value{Kind: String, Str: s} }
func bigIntVal() Value          { return Value{Kind: BigIntUnknown} }

// ToBoolean applies the ECMAScript ToBoolean abstract operation. Callers
// must only call this when Kind is one of the five determinable kinds
// (never NotConstant/BigIntUnknown — BigInt truthiness depends on its
// exact digit string, which the folder does not parse).
func (v Value) ToBoolean() bool {
	switch v.Kind {
	case Undefined, Null:
		return false
	case Bool:
		return v.Bln
	case Number:
		return v.Num != 0 && !math.IsNaN(v.Num)
	case String:
		return v.Str != ""
	default:
		return false
	}
}

// toNumberVal applies ToNumber for the kinds the folder is willing to
// coerce (Number/Bool/Null/Undefined/String). BigInt and NotConstant
// always fail — BigInt because Number/BigInt mixing is a TypeError, not
// a coercion, and NotConstant because there is nothing to coerce.
func toNumberVal(v Value) (float64, bool) {
	switch v.Kind {
	case Number:
		return v.Num, true
	case Bool:
		if v.Bln {
			return 1, true
		}
		return 0, true
	case Null:
		return 0, true
	case Undefined:
		return math.NaN(), true
	case String:
		s := trimJSWhitespace(v.Str)
		if s == "" {
			return 0, true
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN(), true
		}
		return n, true
	default:
		return 0, false
	}
}

// toStringVal applies ToString for the kinds the folder is willing to
// coerce. BigInt is excluded: ToString(BigInt) is well defined in the
// language but the folder never parses a BigInt's digits, so it cannot
// produce the result.
func toStringVal(v Value) (string, bool) {
	switch v.Kind {
	case String:
		return v.Str, true
	case Number:
		return numberToString(v.Num), true
	case Bool:
		if v.Bln {
			return "true", true
		}
		return "false", true
	case Null:
		return "null", true
	case Undefined:
		return "undefined", true
	default:
		return "", false
	}
}

// numberToString is a practical approximation of ECMAScript's
// Number::toString — exact for integers and for the common decimal
// cases a minifier actually sees; it does not reproduce the spec's
// shortest-round-trip exponent notation rules for extreme magnitudes.
func numberToString(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		// +0 and -0 both print "0" — ToString erases the sign that
		// arithmetic preserves.
		return "0"
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

func trimJSWhitespace(s string) string {
	start, end := 0, len(s)
	for start < end && isJSSpace(s[start]) {
		start++
	}
	for end > start && isJSSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isJSSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func toInt32(n float64) int32 {
	return int32(toUint32(n))
}

func toUint32(n float64) uint32 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	trunc := math.Trunc(n)
	const twoPow32 = 4294967296
	m := math.Mod(trunc, twoPow32)
	if m < 0 {
		m += twoPow32
	}
	return uint32(m)
}
