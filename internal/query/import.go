package query

import "github.com/kdy1/go-oxc-core/internal/ast"

// ImportView projects an import declaration's specifier union into the
// default/namespace/named edges spec.md §4.G names.
type ImportView struct {
	decl *ast.ImportDeclaration
}

// ImportOf returns an ImportView over decl.
func ImportOf(decl *ast.ImportDeclaration) ImportView { return ImportView{decl: decl} }

// Source returns the string literal module specifier being imported.
func (v ImportView) Source() string {
	if v.decl.Source == nil {
		return ""
	}
	if s, ok := v.decl.Source.Value.(string); ok {
		return s
	}
	return ""
}

// DefaultImport returns the `import x from "m"` default specifier, if
// present.
func (v ImportView) DefaultImport() (*ast.ImportDefaultSpecifier, bool) {
	for _, s := range v.decl.Specifiers {
		if d, ok := s.(*ast.ImportDefaultSpecifier); ok {
			return d, true
		}
	}
	return nil, false
}

// NamespaceImport returns the `import * as ns from "m"` specifier, if
// present.
func (v ImportView) NamespaceImport() (*ast.ImportNamespaceSpecifier, bool) {
	for _, s := range v.decl.Specifiers {
		if n, ok := s.(*ast.ImportNamespaceSpecifier); ok {
			return n, true
		}
	}
	return nil, false
}

// NamedImports returns every `{ a, b as c }` specifier.
func (v ImportView) NamedImports() []*ast.ImportSpecifier {
	var out []*ast.ImportSpecifier
	for _, s := range v.decl.Specifiers {
		if n, ok := s.(*ast.ImportSpecifier); ok {
			out = append(out, n)
		}
	}
	return out
}

// IsTypeOnly reports whether the declaration carries `import type`.
func (v ImportView) IsTypeOnly() bool {
	return v.decl.ImportKind != nil && *v.decl.ImportKind == "type"
}
