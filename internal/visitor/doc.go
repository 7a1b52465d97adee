// Package visitor implements the uniform AST traversal protocol: a single
// depth-first walk that reports enter/leave for every node and additionally
// brackets scope-introducing nodes with enter/leave scope events.
//
// The walk itself rides on the same ordered visitor-key tables the original
// parser's reflection-based Walk used (internal/ast's VisitorKeys), since
// those already encode the normative child order (params before body,
// decorators before the rest of a class). What this package adds on top is
// the scope bracketing and the strict LIFO guarantee: every EnterScope has
// exactly one matching LeaveScope, nested correctly inside the EnterNode/
// LeaveNode pair of the node that introduced it.
package visitor
