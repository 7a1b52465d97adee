package constfold

import "github.com/kdy1/go-oxc-core/internal/ast"

// foldConditional resolves `test ? consequent : alternate` once test's
// truthiness is known, using the same never-drop-a-side-effect rule as
// foldLogical: the untaken branch's code was never going to run anyway
// (ternaries already short-circuit at the language level), but test
// itself must still run if it isn't side-effect-free.
func (f *folder) foldConditional(e *ast.ConditionalExpression) (Value, ast.Expression) {
	test := f.valueOf(e.Test)
	if test.Kind == NotConstant || test.Kind == BigIntUnknown {
		return notConstant(), nil
	}

	branch := e.Alternate
	if test.ToBoolean() {
		branch = e.Consequent
	}
	branchVal := f.valueOf(branch)

	if isSideEffectFree(e.Test) {
		return branchVal, branch
	}
	return branchVal, sequenceOf(e.Test, branch)
}
