package constfold

import "github.com/kdy1/go-oxc-core/internal/ast"

// foldNumberCall covers spec.md §4.H's "small-arity Number() calls":
// Number() and Number(x) where x's own value is determinable. Anything
// else about the callee — reassignment, a local shadowing the global
// `Number`, property access through it — is out of scope for a folder
// with no type information about the runtime value behind an unresolved
// binding.
func (f *folder) foldNumberCall(e *ast.CallExpression) Value {
	ident, ok := e.Callee.(*ast.Identifier)
	if !ok || ident.Name != "Number" || len(e.Arguments) > 1 {
		return notConstant()
	}

	if f.tables != nil {
		if refID, ok := ident.ReferenceIDOf(); ok {
			if ref := f.tables.References.Get(refID); ref.Resolved {
				// `Number` is shadowed by a local declaration — not the
				// global constructor.
				return notConstant()
			}
		}
	}

	if len(e.Arguments) == 0 {
		return numberVal(0)
	}

	arg := f.valueOf(e.Arguments[0])
	if arg.Kind == BigIntUnknown {
		return notConstant()
	}
	if n, ok := toNumberVal(arg); ok {
		return numberVal(n)
	}
	return notConstant()
}
