package constfold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdy1/go-oxc-core/internal/ast"
	"github.com/kdy1/go-oxc-core/internal/constfold"
	"github.com/kdy1/go-oxc-core/internal/parser"
	"github.com/kdy1/go-oxc-core/internal/semantic"
)

func exprOf(t *testing.T, src string) (*ast.Program, ast.Expression) {
	t.Helper()
	n, err := parser.New(src).Parse()
	require.NoError(t, err)
	prog, ok := n.(*ast.Program)
	require.True(t, ok)
	stmt, ok := prog.Body[0].(*ast.ExpressionStatement)
	require.True(t, ok)
	return prog, stmt.Expression
}

func foldExpr(t *testing.T, src string) (*constfold.Result, ast.Expression) {
	t.Helper()
	prog, expr := exprOf(t, src)
	tables := semantic.Build(prog)
	return constfold.Fold(prog, tables), expr
}

func TestFoldArithmetic(t *testing.T) {
	res, expr := foldExpr(t, "1 + 2 * 3;")
	v := res.Value(expr)
	require.Equal(t, constfold.Number, v.Kind)
	assert.Equal(t, float64(7), v.Num)
}

func TestFoldStringConcat(t *testing.T) {
	res, expr := foldExpr(t, `"a" + "b" + 1;`)
	v := res.Value(expr)
	require.Equal(t, constfold.String, v.Kind)
	assert.Equal(t, "ab1", v.Str)
}

func TestFoldPreservesNaN(t *testing.T) {
	res, expr := foldExpr(t, "0 / 0;")
	v := res.Value(expr)
	require.Equal(t, constfold.Number, v.Kind)
	assert.True(t, v.Num != v.Num, "expected NaN")
}

func TestFoldPreservesNegativeZero(t *testing.T) {
	res, expr := foldExpr(t, "-1 * 0;")
	v := res.Value(expr)
	require.Equal(t, constfold.Number, v.Kind)
	assert.Equal(t, float64(0), v.Num)
	assert.True(t, isNegZero(v.Num))
}

func isNegZero(f float64) bool {
	return f == 0 && 1/f < 0
}

func TestFoldPreservesInfinity(t *testing.T) {
	res, expr := foldExpr(t, "1 / 0;")
	v := res.Value(expr)
	require.Equal(t, constfold.Number, v.Kind)
	assert.True(t, v.Num > 1e300)
}

func TestFoldBailsOnBigIntArithmetic(t *testing.T) {
	res, expr := foldExpr(t, "1n + 2;")
	v := res.Value(expr)
	assert.Equal(t, constfold.NotConstant, v.Kind)
}

func TestFoldBailsOnBigIntNegation(t *testing.T) {
	res, expr := foldExpr(t, "-1n;")
	v := res.Value(expr)
	assert.Equal(t, constfold.NotConstant, v.Kind)
}

func TestFoldStrictEquality(t *testing.T) {
	res, expr := foldExpr(t, `1 === "1";`)
	v := res.Value(expr)
	require.Equal(t, constfold.Bool, v.Kind)
	assert.False(t, v.Bln)
}

func TestFoldLooseEqualityCoerces(t *testing.T) {
	res, expr := foldExpr(t, `1 == "1";`)
	v := res.Value(expr)
	require.Equal(t, constfold.Bool, v.Kind)
	assert.True(t, v.Bln)
}

func TestFoldConditionalPicksTakenBranchAndReplacesWithItVerbatim(t *testing.T) {
	res, expr := foldExpr(t, "true ? 1 : 2;")
	cond := expr.(*ast.ConditionalExpression)

	v := res.Value(expr)
	require.Equal(t, constfold.Number, v.Kind)
	assert.Equal(t, float64(1), v.Num)

	replacement, ok := res.Replacements[expr]
	require.True(t, ok)
	assert.Same(t, ast.Expression(cond.Consequent), replacement)
}

func TestFoldLogicalOrKeepsLeftWhenTruthy(t *testing.T) {
	res, expr := foldExpr(t, "1 || 2;")
	logical := expr.(*ast.LogicalExpression)

	v := res.Value(expr)
	require.Equal(t, constfold.Number, v.Kind)
	assert.Equal(t, float64(1), v.Num)

	replacement, ok := res.Replacements[expr]
	require.True(t, ok)
	assert.Same(t, ast.Expression(logical.Left), replacement)
}

func TestFoldLogicalAndWithUnknownEffectfulLeftIsNotFolded(t *testing.T) {
	res, expr := foldExpr(t, "f() && 2;")

	// The left operand (a call) is effectful and not itself foldable, so
	// the overall expression's value is undetermined...
	v := res.Value(expr)
	assert.Equal(t, constfold.NotConstant, v.Kind)

	// ...and since the left side's truthiness isn't known either, no
	// replacement (bare right, or a sequence) can be produced.
	_, ok := res.Replacements[expr]
	assert.False(t, ok)
}

func TestFoldLogicalAndSequencesKnownTruthyEffectfulLeft(t *testing.T) {
	// "hi".length folds to a known-truthy Number, but a MemberExpression
	// is conservatively never treated as side-effect-free (it might run
	// through a getter), so dropping it would be unsound: the folder
	// must wrap it in a sequence that still evaluates it for effect.
	res, expr := foldExpr(t, `"hi".length && g();`)
	logical := expr.(*ast.LogicalExpression)

	replacement, ok := res.Replacements[expr]
	require.True(t, ok)
	seq, ok := replacement.(*ast.SequenceExpression)
	require.True(t, ok, "expected a SequenceExpression preserving the left side's effect")
	require.Len(t, seq.Expressions, 2)
	assert.Same(t, ast.Expression(logical.Left), seq.Expressions[0])
	assert.Same(t, ast.Expression(logical.Right), seq.Expressions[1])
}

func TestFoldNullishCoalescing(t *testing.T) {
	res, expr := foldExpr(t, "null ?? 5;")
	v := res.Value(expr)
	require.Equal(t, constfold.Number, v.Kind)
	assert.Equal(t, float64(5), v.Num)
}

func TestFoldOptionalChainShortCircuitsOnNullishBase(t *testing.T) {
	res, expr := foldExpr(t, "null?.b;")
	chain := expr.(*ast.ChainExpression)

	v := res.Value(chain)
	require.Equal(t, constfold.Undefined, v.Kind)
}

func TestFoldStringLength(t *testing.T) {
	res, expr := foldExpr(t, `"hello".length;`)
	v := res.Value(expr)
	require.Equal(t, constfold.Number, v.Kind)
	assert.Equal(t, float64(5), v.Num)
}

func TestFoldStringIndex(t *testing.T) {
	res, expr := foldExpr(t, `"hello"[1];`)
	v := res.Value(expr)
	require.Equal(t, constfold.String, v.Kind)
	assert.Equal(t, "e", v.Str)
}

func TestFoldNumberCallOnUnshadowedGlobal(t *testing.T) {
	res, expr := foldExpr(t, `Number("42");`)
	v := res.Value(expr)
	require.Equal(t, constfold.Number, v.Kind)
	assert.Equal(t, float64(42), v.Num)
}

func TestFoldNumberCallBailsWhenShadowed(t *testing.T) {
	prog, err := parser.New("function Number(x) { return x; } Number(\"42\");").Parse()
	require.NoError(t, err)
	program := prog.(*ast.Program)
	tables := semantic.Build(program)

	stmt := program.Body[1].(*ast.ExpressionStatement)
	call := stmt.Expression.(*ast.CallExpression)

	res := constfold.Fold(program, tables)
	v := res.Value(call)
	assert.Equal(t, constfold.NotConstant, v.Kind)
}

func TestFoldNeverEvaluatesModuleExportsAssignmentAway(t *testing.T) {
	res, expr := foldExpr(t, "0 && (module.exports = {});")
	// The left side is known falsy, so the whole expression's value is
	// exactly the left side per short-circuit semantics — the right
	// side (the assignment) is replaced by nothing at all, just as the
	// runtime never evaluates it either. Folding this to "0" never
	// requires deleting the assignment from the tree, only declining to
	// reference it.
	logical := expr.(*ast.LogicalExpression)
	replacement, ok := res.Replacements[expr]
	require.True(t, ok)
	assert.Same(t, ast.Expression(logical.Left), replacement)
}
