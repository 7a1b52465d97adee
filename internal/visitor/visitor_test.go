package visitor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdy1/go-oxc-core/internal/ast"
	"github.com/kdy1/go-oxc-core/internal/visitor"
)

type recorder struct {
	visitor.Base
	events []string
}

func (r *recorder) EnterNode(n ast.Node)  { r.events = append(r.events, "enter:"+n.Type()) }
func (r *recorder) LeaveNode(n ast.Node)  { r.events = append(r.events, "leave:"+n.Type()) }
func (r *recorder) EnterScope(n ast.Node) { r.events = append(r.events, "scope-in:"+n.Type()) }
func (r *recorder) LeaveScope(n ast.Node) { r.events = append(r.events, "scope-out:"+n.Type()) }

func program(body ...ast.Statement) *ast.Program {
	return &ast.Program{
		BaseNode: ast.BaseNode{NodeType: "Program"},
		Body:     body,
	}
}

func TestWalkVisitsEveryNodeWithLIFOBracketing(t *testing.T) {
	fn := &ast.FunctionDeclaration{
		BaseNode: ast.BaseNode{NodeType: "FunctionDeclaration"},
		ID:       &ast.Identifier{BaseNode: ast.BaseNode{NodeType: "Identifier"}, Name: "f"},
		Params:   []ast.Pattern{&ast.Identifier{BaseNode: ast.BaseNode{NodeType: "Identifier"}, Name: "x"}},
		Body:     &ast.BlockStatement{BaseNode: ast.BaseNode{NodeType: "BlockStatement"}},
	}
	prog := program(fn)

	r := &recorder{}
	visitor.Walk(prog, r)

	require.NotEmpty(t, r.events)
	assert.Equal(t, "enter:Program", r.events[0])
	assert.Equal(t, "leave:Program", r.events[len(r.events)-1])

	// params (x) must be visited before entering the body block.
	idxParam := indexOf(r.events, "enter:Identifier")
	idxBodyEnter := lastIndexOf(r.events, "enter:BlockStatement")
	require.GreaterOrEqual(t, idxParam, 0)
	require.GreaterOrEqual(t, idxBodyEnter, 0)
	assert.Less(t, idxParam, idxBodyEnter)

	// function introduces a scope, bracketed strictly within its own enter/leave.
	fnEnter := indexOf(r.events, "enter:FunctionDeclaration")
	scopeIn := indexOf(r.events, "scope-in:FunctionDeclaration")
	scopeOut := indexOf(r.events, "scope-out:FunctionDeclaration")
	fnLeave := indexOf(r.events, "leave:FunctionDeclaration")
	assert.True(t, fnEnter < scopeIn && scopeIn < scopeOut && scopeOut < fnLeave)
}

func TestWalkClassExpressionDecoratorsVisitedBeforeClassScope(t *testing.T) {
	class := &ast.ClassExpression{
		BaseNode: ast.BaseNode{NodeType: "ClassExpression"},
		Decorators: []ast.Decorator{
			{BaseNode: ast.BaseNode{NodeType: "Decorator"}, Expression: &ast.Identifier{
				BaseNode: ast.BaseNode{NodeType: "Identifier"}, Name: "sealed",
			}},
		},
		ID: &ast.Identifier{BaseNode: ast.BaseNode{NodeType: "Identifier"}, Name: "C"},
	}

	r := &recorder{}
	visitor.Walk(class, r)

	scopeIn := indexOf(r.events, "scope-in:ClassExpression")
	decoratorEnter := indexOf(r.events, "enter:Decorator")
	require.GreaterOrEqual(t, scopeIn, 0)
	require.GreaterOrEqual(t, decoratorEnter, 0)
	assert.Less(t, decoratorEnter, scopeIn, "decorators must be visited before the class's own scope opens")
}

func TestWalkClassDeclarationIntroducesNoOwnScope(t *testing.T) {
	class := &ast.ClassDeclaration{
		BaseNode: ast.BaseNode{NodeType: "ClassDeclaration"},
		ID:       &ast.Identifier{BaseNode: ast.BaseNode{NodeType: "Identifier"}, Name: "C"},
	}
	r := &recorder{}
	visitor.Walk(class, r)
	assert.NotContains(t, r.events, "scope-in:ClassDeclaration")
}

func TestWalkForLoopLexicalScopeOnlyForLetConst(t *testing.T) {
	letLoop := &ast.ForStatement{
		BaseNode: ast.BaseNode{NodeType: "ForStatement"},
		Init: &ast.VariableDeclaration{
			BaseNode: ast.BaseNode{NodeType: "VariableDeclaration"},
			Kind:     "let",
		},
		Body: &ast.BlockStatement{BaseNode: ast.BaseNode{NodeType: "BlockStatement"}},
	}
	r := &recorder{}
	visitor.Walk(letLoop, r)
	assert.Contains(t, r.events, "scope-in:ForStatement")

	varLoop := &ast.ForStatement{
		BaseNode: ast.BaseNode{NodeType: "ForStatement"},
		Init: &ast.VariableDeclaration{
			BaseNode: ast.BaseNode{NodeType: "VariableDeclaration"},
			Kind:     "var",
		},
		Body: &ast.BlockStatement{BaseNode: ast.BaseNode{NodeType: "BlockStatement"}},
	}
	r2 := &recorder{}
	visitor.Walk(varLoop, r2)
	assert.NotContains(t, r2.events, "scope-in:ForStatement")
}

func indexOf(items []string, target string) int {
	for i, it := range items {
		if it == target {
			return i
		}
	}
	return -1
}

func lastIndexOf(items []string, target string) int {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i] == target {
			return i
		}
	}
	return -1
}
