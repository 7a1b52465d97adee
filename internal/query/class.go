package query

import "github.com/kdy1/go-oxc-core/internal/ast"

// ClassView projects a class declaration's body into the member
// families spec.md §4.G names explicitly: method/property/
// constructor/getter/setter edges.
type ClassView struct {
	decl *ast.ClassDeclaration
}

// ClassOf returns a ClassView over decl, or false if decl has no body.
func ClassOf(decl *ast.ClassDeclaration) (ClassView, bool) {
	if decl == nil || decl.Body == nil {
		return ClassView{}, false
	}
	return ClassView{decl: decl}, true
}

// Name returns the class's identifier name, empty for an anonymous
// class expression's declaration-shaped wrapper.
func (c ClassView) Name() string {
	if c.decl.ID == nil {
		return ""
	}
	return c.decl.ID.Name
}

// SuperClass returns the extends clause expression, or nil.
func (c ClassView) SuperClass() ast.Expression { return c.decl.SuperClass }

func (c ClassView) members() []interface{} { return c.decl.Body.Body }

// Methods returns every MethodDefinition whose Kind is "method".
func (c ClassView) Methods() []*ast.MethodDefinition {
	return c.methodsByKind("method")
}

// Getters returns every "get" accessor.
func (c ClassView) Getters() []*ast.MethodDefinition { return c.methodsByKind("get") }

// Setters returns every "set" accessor.
func (c ClassView) Setters() []*ast.MethodDefinition { return c.methodsByKind("set") }

// Constructor returns the class's constructor, if it declares one.
func (c ClassView) Constructor() (*ast.MethodDefinition, bool) {
	ms := c.methodsByKind("constructor")
	if len(ms) == 0 {
		return nil, false
	}
	return ms[0], true
}

func (c ClassView) methodsByKind(kind string) []*ast.MethodDefinition {
	var out []*ast.MethodDefinition
	for _, m := range c.members() {
		if md, ok := m.(*ast.MethodDefinition); ok && md.Kind == kind {
			out = append(out, md)
		}
	}
	return out
}

// Properties returns every field declaration in the class body,
// excluding methods and static blocks.
func (c ClassView) Properties() []*ast.PropertyDefinition {
	var out []*ast.PropertyDefinition
	for _, m := range c.members() {
		if pd, ok := m.(*ast.PropertyDefinition); ok {
			out = append(out, pd)
		}
	}
	return out
}

// StaticBlocks returns every `static { ... }` block in the class body.
func (c ClassView) StaticBlocks() []*ast.StaticBlock {
	var out []*ast.StaticBlock
	for _, m := range c.members() {
		if sb, ok := m.(*ast.StaticBlock); ok {
			out = append(out, sb)
		}
	}
	return out
}
