package constfold

import "github.com/kdy1/go-oxc-core/internal/ast"

// foldMember covers two of spec.md §4.H's cases: optional-chain
// short-circuit on a nullish base, and indexing/`.length` on a
// compile-time-constant string. Object/array element folding is out of
// scope — the folder tracks scalar Values only, not aggregate constants.
func (f *folder) foldMember(e *ast.MemberExpression) Value {
	obj := f.valueOf(e.Object)

	if e.Optional && (obj.Kind == Null || obj.Kind == Undefined) {
		return undefinedVal()
	}

	if obj.Kind != String {
		return notConstant()
	}

	if !e.Computed {
		name, ok := staticPropertyName(e.Property)
		if ok && name == "length" {
			return numberVal(float64(len([]rune(obj.Str))))
		}
		return notConstant()
	}

	prop := f.valueOf(e.Property)
	if prop.Kind == String && prop.Str == "length" {
		return numberVal(float64(len([]rune(obj.Str))))
	}
	if idx, ok := toNumberVal(prop); ok {
		runes := []rune(obj.Str)
		if idx >= 0 && idx == float64(int(idx)) && int(idx) < len(runes) {
			return stringVal(string(runes[int(idx)]))
		}
	}
	return notConstant()
}

func staticPropertyName(prop ast.Expression) (string, bool) {
	switch p := prop.(type) {
	case *ast.Identifier:
		return p.Name, true
	case *ast.Literal:
		if s, ok := p.Value.(string); ok {
			return s, true
		}
	}
	return "", false
}
