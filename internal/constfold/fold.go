// Package constfold implements the exit-time constant-folding visitor:
// a read-only pass over an already-parsed, already-decorated AST that
// attempts to evaluate expressions under ECMAScript abstract operations,
// without ever mutating the tree it walks.
package constfold

import (
	"github.com/kdy1/go-oxc-core/internal/ast"
	"github.com/kdy1/go-oxc-core/internal/semantic"
	"github.com/kdy1/go-oxc-core/internal/visitor"
)

// Result collects the outcome of folding every expression reachable from
// the node Fold was called on. Both maps are sidecars keyed by node
// identity; the input AST is never mutated, matching the
// immutable-after-construction contract semantic construction hands off.
type Result struct {
	// Values holds the fully evaluated constant value of every expression
	// the folder could determine.
	Values map[ast.Expression]Value
	// Replacements holds an existing subexpression (never a synthesized
	// node) that a caller could substitute for the keyed expression
	// without changing observable behavior — the short-circuit and
	// dead-branch eliminations of &&/||/??/?: . A BinaryExpression/
	// UnaryExpression that folds to a Value never gets a Replacement
	// entry: the folder only ever points at nodes that already exist in
	// the tree, or a small SequenceExpression built from two of them, so
	// it never needs arena access to synthesize a fresh Literal.
	Replacements map[ast.Expression]ast.Expression
}

func newResult() *Result {
	return &Result{
		Values:       make(map[ast.Expression]Value),
		Replacements: make(map[ast.Expression]ast.Expression),
	}
}

// Value returns the folded value for e, or the zero Value (NotConstant)
// if the folder could not determine one.
func (r *Result) Value(e ast.Expression) Value { return r.Values[e] }

// Fold runs the folding visitor over root (typically an *ast.Program),
// using tables — optional — to recognize globals that have not been
// shadowed by a local declaration (Number, for small-arity Number()
// calls).
func Fold(root ast.Node, tables *semantic.Tables) *Result {
	f := &folder{result: newResult(), tables: tables}
	visitor.Walk(root, f)
	return f.result
}

type folder struct {
	visitor.Base
	result *Result
	tables *semantic.Tables
}

func (f *folder) LeaveNode(n ast.Node) {
	expr, ok := n.(ast.Expression)
	if !ok {
		return
	}
	val, replacement := f.evaluate(expr)
	if val.Kind != NotConstant {
		f.result.Values[expr] = val
	}
	if replacement != nil {
		f.result.Replacements[expr] = replacement
	}
}

func (f *folder) valueOf(e ast.Expression) Value {
	if e == nil {
		return notConstant()
	}
	return f.result.Values[e]
}

// evaluate dispatches one expression to its fold, per spec.md §4.H's
// node list: BinaryExpression, UnaryExpression, LogicalExpression,
// ConditionalExpression, MemberExpression, optional chains (via
// ChainExpression), and small-arity Number() calls.
func (f *folder) evaluate(expr ast.Expression) (Value, ast.Expression) {
	switch e := expr.(type) {
	case *ast.Literal:
		return f.literalValue(e), nil
	case *ast.UnaryExpression:
		return f.foldUnary(e), nil
	case *ast.BinaryExpression:
		return f.foldBinary(e), nil
	case *ast.LogicalExpression:
		return f.foldLogical(e)
	case *ast.ConditionalExpression:
		return f.foldConditional(e)
	case *ast.MemberExpression:
		return f.foldMember(e), nil
	case *ast.ChainExpression:
		return f.valueOf(e.Expression), nil
	case *ast.CallExpression:
		return f.foldNumberCall(e), nil
	default:
		return notConstant(), nil
	}
}

func (f *folder) literalValue(lit *ast.Literal) Value {
	if lit.Regex != nil {
		return notConstant()
	}
	if lit.BigInt != nil {
		return bigIntVal()
	}
	switch v := lit.Value.(type) {
	case float64:
		return numberVal(v)
	case string:
		return stringVal(v)
	case bool:
		return boolVal(v)
	case nil:
		if lit.Raw == "null" {
			return nullVal()
		}
		return notConstant()
	default:
		return notConstant()
	}
}
