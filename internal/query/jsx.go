package query

import "github.com/kdy1/go-oxc-core/internal/ast"

// JSXElementView projects a JSX element's heterogeneous children slice
// into the child_* edges spec.md §4.G names, filtering out the
// interface{} union down to typed JSX content nodes.
type JSXElementView struct {
	el *ast.JSXElement
}

// JSXElementOf returns a JSXElementView over el.
func JSXElementOf(el *ast.JSXElement) JSXElementView { return JSXElementView{el: el} }

// Children returns every child, regardless of kind, as ast.Node.
func (v JSXElementView) Children() []ast.Node {
	return jsxChildren(v.el.Children)
}

// ChildElements returns only <Element>/<Fragment> children.
func (v JSXElementView) ChildElements() []ast.Node {
	var out []ast.Node
	for _, c := range v.el.Children {
		switch c.(type) {
		case *ast.JSXElement, *ast.JSXFragment:
			out = append(out, c.(ast.Node))
		}
	}
	return out
}

// ChildExpressions returns every `{expr}` expression-container child.
func (v JSXElementView) ChildExpressions() []*ast.JSXExpressionContainer {
	var out []*ast.JSXExpressionContainer
	for _, c := range v.el.Children {
		if e, ok := c.(*ast.JSXExpressionContainer); ok {
			out = append(out, e)
		}
	}
	return out
}

// ChildText returns every literal text child's raw string content, in
// document order.
func (v JSXElementView) ChildText() []string {
	var out []string
	for _, c := range v.el.Children {
		if t, ok := c.(*ast.JSXText); ok {
			out = append(out, t.Value)
		}
	}
	return out
}

// Attributes returns the opening tag's attribute/spread-attribute list
// as typed nodes.
func (v JSXElementView) Attributes() []ast.Node {
	if v.el.OpeningElement == nil {
		return nil
	}
	var out []ast.Node
	for _, a := range v.el.OpeningElement.Attributes {
		if n, ok := a.(ast.Node); ok {
			out = append(out, n)
		}
	}
	return out
}

// JSXFragmentView projects a JSX fragment's children the same way
// JSXElementView does for elements.
type JSXFragmentView struct {
	frag *ast.JSXFragment
}

// JSXFragmentOf returns a JSXFragmentView over frag.
func JSXFragmentOf(frag *ast.JSXFragment) JSXFragmentView { return JSXFragmentView{frag: frag} }

// Children returns every child, regardless of kind, as ast.Node.
func (v JSXFragmentView) Children() []ast.Node {
	return jsxChildren(v.frag.Children)
}

func jsxChildren(raw []interface{}) []ast.Node {
	var out []ast.Node
	for _, c := range raw {
		if n, ok := c.(ast.Node); ok {
			out = append(out, n)
		}
	}
	return out
}
