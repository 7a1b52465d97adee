package visitor

import (
	"reflect"

	"github.com/kdy1/go-oxc-core/internal/ast"
)

// Visitor receives the four traversal hooks. EnterNode/LeaveNode fire for
// every node; EnterScope/LeaveScope additionally bracket nodes that
// introduce a new lexical scope, strictly nested inside that node's own
// EnterNode/LeaveNode pair.
type Visitor interface {
	EnterNode(n ast.Node)
	LeaveNode(n ast.Node)
	EnterScope(n ast.Node)
	LeaveScope(n ast.Node)
}

// Base is a no-op Visitor meant to be embedded so implementations only
// override the hooks they care about.
type Base struct{}

func (Base) EnterNode(ast.Node)  {}
func (Base) LeaveNode(ast.Node)  {}
func (Base) EnterScope(ast.Node) {}
func (Base) LeaveScope(ast.Node) {}

var scopeKinds = map[string]bool{
	"Program":                true,
	"FunctionDeclaration":     true,
	"FunctionExpression":      true,
	"ArrowFunctionExpression": true,
	"TSDeclareFunction":       true,
	"BlockStatement":          true,
	"CatchClause":             true,
	"StaticBlock":             true,
	"TSModuleDeclaration":     true,
}

// fieldAliases covers the handful of visitor-key names that don't match
// their struct field's Go capitalization (ID is all-caps per Go
// convention, not Id) or that drifted from the field actually defined on
// the node (superTypeArguments was renamed from superTypeParameters in a
// later ESTree revision but the node struct kept the old field name).
var fieldAliases = map[string]string{
	"id":                 "ID",
	"superTypeArguments": "SuperTypeParameters",
}

// Walk performs one depth-first traversal of root, invoking every hook on
// v in the order spec'd by the visitor protocol.
func Walk(root ast.Node, v Visitor) {
	walk(root, v)
}

func walk(node ast.Node, v Visitor) {
	if isNilNode(node) {
		return
	}

	v.EnterNode(node)

	typeName := node.Type()
	switch {
	case typeName == "ClassDeclaration":
		// Decorators are visited in the enclosing scope; a class
		// declaration's own id is a binding in that same enclosing scope
		// too (it does not introduce a scope of its own — only a class
		// EXPRESSION does, for its own name binding).
		walkChildren(node, ast.GetVisitorKeys(typeName), v)
	case typeName == "ClassExpression":
		walkSplitScope(node, v, "decorators")
	case typeName == "SwitchStatement":
		walkSplitScope(node, v, "discriminant")
	case isForLoop(typeName):
		walkForLoop(node, typeName, v)
	default:
		scoped := scopeKinds[typeName]
		if scoped {
			v.EnterScope(node)
		}
		walkChildren(node, ast.GetVisitorKeys(typeName), v)
		if scoped {
			v.LeaveScope(node)
		}
	}

	v.LeaveNode(node)
}

// walkSplitScope visits the keys named in outerKeys in the enclosing scope,
// then opens the node's own scope for every remaining key.
func walkSplitScope(node ast.Node, v Visitor, outerKeys ...string) {
	outer := make(map[string]bool, len(outerKeys))
	for _, k := range outerKeys {
		outer[k] = true
	}

	keys := ast.GetVisitorKeys(node.Type())
	rv := reflect.ValueOf(node).Elem()

	for _, key := range keys {
		if outer[key] {
			walkField(lookupField(rv, key), v)
		}
	}

	v.EnterScope(node)
	for _, key := range keys {
		if !outer[key] {
			walkField(lookupField(rv, key), v)
		}
	}
	v.LeaveScope(node)
}

func isForLoop(typeName string) bool {
	return typeName == "ForStatement" || typeName == "ForInStatement" || typeName == "ForOfStatement"
}

// forLoopHasLexicalScope reports whether the loop's own head declares a
// let/const binding, which per-iteration gets a fresh lexical scope wrapping
// the loop head and body; var declarations and bare expressions do not
// introduce one.
func forLoopHasLexicalScope(node ast.Node) bool {
	isLexical := func(decl interface{}) bool {
		vd, ok := decl.(*ast.VariableDeclaration)
		return ok && (vd.Kind == "let" || vd.Kind == "const")
	}
	switch n := node.(type) {
	case *ast.ForStatement:
		return isLexical(n.Init)
	case *ast.ForInStatement:
		return isLexical(n.Left)
	case *ast.ForOfStatement:
		return isLexical(n.Left)
	}
	return false
}

func walkForLoop(node ast.Node, typeName string, v Visitor) {
	scoped := forLoopHasLexicalScope(node)
	if scoped {
		v.EnterScope(node)
	}
	walkChildren(node, ast.GetVisitorKeys(typeName), v)
	if scoped {
		v.LeaveScope(node)
	}
}

func walkChildren(node ast.Node, keys []string, v Visitor) {
	rv := reflect.ValueOf(node)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return
	}
	for _, key := range keys {
		walkField(lookupField(rv, key), v)
	}
}

func lookupField(rv reflect.Value, key string) reflect.Value {
	if name, ok := fieldAliases[key]; ok {
		if f := rv.FieldByName(name); f.IsValid() {
			return f
		}
	}
	return rv.FieldByName(capitalize(key))
}

func walkField(field reflect.Value, v Visitor) {
	if !field.IsValid() {
		return
	}
	switch field.Kind() {
	case reflect.Ptr, reflect.Interface:
		if n, ok := asNode(field); ok {
			walk(n, v)
		}
	case reflect.Slice:
		for i := 0; i < field.Len(); i++ {
			elem := field.Index(i)
			if n, ok := asNode(elem); ok {
				walk(n, v)
			}
		}
	}
}

func asNode(rv reflect.Value) (ast.Node, bool) {
	if !rv.IsValid() {
		return nil, false
	}
	if (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface) && rv.IsNil() {
		return nil, false
	}
	n, ok := rv.Interface().(ast.Node)
	if !ok || isNilNode(n) {
		return nil, false
	}
	return n, true
}

func isNilNode(n ast.Node) bool {
	if n == nil {
		return true
	}
	rv := reflect.ValueOf(n)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
