package query

import (
	"github.com/kdy1/go-oxc-core/internal/ast"
	"github.com/kdy1/go-oxc-core/internal/visitor"
)

// parentIndex maps every node reachable from a program root to its
// immediate parent. Built once per Graph via the same reflective walk
// the semantic builder uses, so it stays correct as node types gain or
// lose visitor keys without needing a second hand-maintained edge list.
type parentIndex struct {
	byNode map[ast.Node]ast.Node
}

type parentTracker struct {
	visitor.Base
	index *parentIndex
	stack []ast.Node
}

func (t *parentTracker) EnterNode(n ast.Node) {
	if len(t.stack) > 0 {
		t.index.byNode[n] = t.stack[len(t.stack)-1]
	}
	t.stack = append(t.stack, n)
}

func (t *parentTracker) LeaveNode(ast.Node) {
	t.stack = t.stack[:len(t.stack)-1]
}

func buildParentIndex(program *ast.Program) *parentIndex {
	idx := &parentIndex{byNode: make(map[ast.Node]ast.Node)}
	if program == nil {
		return idx
	}
	visitor.Walk(program, &parentTracker{index: idx})
	return idx
}
