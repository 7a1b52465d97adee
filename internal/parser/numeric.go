package parser

import (
	"strconv"
	"strings"

	"github.com/kdy1/go-oxc-core/internal/arena"
	"github.com/kdy1/go-oxc-core/internal/ast"
	"github.com/kdy1/go-oxc-core/internal/lexer"
)

// parseNumericLiteralText converts raw numeric source text, exactly as
// scanned by the lexer (underscore digit separators and a trailing
// BigInt "n" suffix included), into its float64 value. For a BigInt
// literal it also returns the decimal digit string for the BigInt
// field; ordinary numbers return a nil second value.
func parseNumericLiteralText(raw string) (value float64, bigint *string) {
	text := strings.ReplaceAll(raw, "_", "")
	isBigInt := strings.HasSuffix(text, "n")
	if isBigInt {
		text = text[:len(text)-1]
	}

	var parsed float64
	switch {
	case strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X"):
		if n, err := strconv.ParseUint(text[2:], 16, 64); err == nil {
			parsed = float64(n)
		}
	case strings.HasPrefix(text, "0b") || strings.HasPrefix(text, "0B"):
		if n, err := strconv.ParseUint(text[2:], 2, 64); err == nil {
			parsed = float64(n)
		}
	case strings.HasPrefix(text, "0o") || strings.HasPrefix(text, "0O"):
		if n, err := strconv.ParseUint(text[2:], 8, 64); err == nil {
			parsed = float64(n)
		}
	case len(text) > 1 && text[0] == '0' && isAllOctalDigits(text[1:]):
		// Legacy (non-strict) octal literal: 0777.
		if n, err := strconv.ParseUint(text[1:], 8, 64); err == nil {
			parsed = float64(n)
		}
	default:
		if n, err := strconv.ParseFloat(text, 64); err == nil {
			parsed = n
		}
	}

	if isBigInt {
		digits := text
		return parsed, &digits
	}
	return parsed, nil
}

func isAllOctalDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '7' {
			return false
		}
	}
	return true
}

// newPropertyKeyLiteral builds the Literal node for a string- or
// number-keyed property/parameter (`{ "a": 1 }`, `{ 2: "b" }`),
// distinguishing the two so IsNumberLiteral/IsStringLiteral in
// internal/ast see a real float64 rather than both kinds sharing an
// indistinguishable raw-text string.
func newPropertyKeyLiteral(a *arena.Arena, tokType lexer.TokenType, raw string, rng *ast.Range) *ast.Literal {
	lit := arena.New(a, ast.Literal{
		BaseNode: ast.BaseNode{NodeType: ast.KindLiteral.String(), Range: rng},
		Raw:      raw,
	})
	if tokType == lexer.NUMBER {
		num, bigint := parseNumericLiteralText(raw)
		lit.Value = num
		lit.BigInt = bigint
	} else {
		lit.Value = raw
	}
	return lit
}
