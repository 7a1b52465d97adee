package ast

// Node is the base interface for all AST nodes.
// All AST node types must implement this interface.
type Node interface {
	// Type returns the type of the node (e.g., "Program", "Identifier").
	Type() string

	// Pos returns the start position of the node in the source.
	Pos() int

	// End returns the end position of the node in the source.
	End() int

	// NodeKind returns the node's Kind tag. The visitor protocol dispatches
	// on this rather than on Type()'s string form.
	NodeKind() Kind
}

// NodeID is a dense index assigned to a node by the semantic pass, in
// traversal order, unique within one arena/program.
type NodeID uint32

// ScopeID indexes into a ScopeTree.
type ScopeID uint32

// SymbolID indexes into a SymbolTable.
type SymbolID uint32

// ReferenceID indexes into a ReferenceTable.
type ReferenceID uint32

// idCell is a write-once decoration cell (spec.md §3.3). Its zero value is
// "unset," so BaseNode composite literals built directly by the parser
// never need to initialize it. Set panics if called a second time, which
// is how the "assigned exactly once" contract is enforced; callers that
// only want to know whether the semantic pass has already run should check
// the second return value of the matching getter rather than assume
// presence.
type idCell struct {
	v *uint32
}

func (c *idCell) set(v uint32) {
	if c.v != nil {
		panic("ast: decoration cell already set")
	}
	val := v
	c.v = &val
}

func (c *idCell) get() (uint32, bool) {
	if c.v == nil {
		return 0, false
	}
	return *c.v, true
}

// BaseNode provides common fields for all AST nodes.
// It should be embedded in all concrete node types.
//
//nolint:govet // Field order optimized for JSON output readability, not memory alignment
type BaseNode struct {
	NodeType string          `json:"type"`
	Loc      *SourceLocation `json:"loc,omitempty"`
	Range    *Range          `json:"range,omitempty"`
	Start    int             `json:"-"` // Internal use, not serialized
	EndPos   int             `json:"-"` // Internal use, not serialized

	// Decoration cells. Only scope-introducing nodes carry a ScopeID, and
	// only identifier nodes carry a ReferenceID or SymbolID, but the field
	// is present on every BaseNode since Go has no per-variant struct
	// layout; an unused cell simply stays unset forever.
	nodeID    idCell
	nodeScope idCell
	nodeRef   idCell
	nodeSym   idCell
}

// Type returns the type of the node.
func (n *BaseNode) Type() string {
	return n.NodeType
}

// Pos returns the start position of the node.
func (n *BaseNode) Pos() int {
	return n.Start
}

// End returns the end position of the node.
func (n *BaseNode) End() int {
	return n.EndPos
}

// NodeKind returns the node's Kind tag, resolved from NodeType.
func (n *BaseNode) NodeKind() Kind {
	return KindFromName(n.NodeType)
}

// NodeID returns the node's id and whether the semantic pass has assigned
// one yet.
func (n *BaseNode) NodeID() (NodeID, bool) {
	v, ok := n.nodeID.get()
	return NodeID(v), ok
}

// SetNodeID assigns the node's id. Exported so package semantic, which
// cannot reach an unexported field across packages, can perform the one
// decoration pass; other callers must not use it.
func (n *BaseNode) SetNodeID(id NodeID) { n.nodeID.set(uint32(id)) }

// ScopeIDOf returns the id of the scope this node introduces, for
// scope-introducing nodes, once the semantic pass has run.
func (n *BaseNode) ScopeIDOf() (ScopeID, bool) {
	v, ok := n.nodeScope.get()
	return ScopeID(v), ok
}

// SetScopeID assigns the node's scope id.
func (n *BaseNode) SetScopeID(id ScopeID) { n.nodeScope.set(uint32(id)) }

// ReferenceIDOf returns the id of the reference this identifier node
// resolves to, once the semantic pass has run.
func (n *BaseNode) ReferenceIDOf() (ReferenceID, bool) {
	v, ok := n.nodeRef.get()
	return ReferenceID(v), ok
}

// SetReferenceID assigns the node's reference id.
func (n *BaseNode) SetReferenceID(id ReferenceID) { n.nodeRef.set(uint32(id)) }

// SymbolIDOf returns the id of the symbol this binding identifier
// introduces, once the semantic pass has run.
func (n *BaseNode) SymbolIDOf() (SymbolID, bool) {
	v, ok := n.nodeSym.get()
	return SymbolID(v), ok
}

// SetSymbolID assigns the node's symbol id.
func (n *BaseNode) SetSymbolID(id SymbolID) { n.nodeSym.set(uint32(id)) }

// SourceLocation represents the location of a node in source code.
// It contains the start and end positions with line and column information.
type SourceLocation struct {
	Start    Position `json:"start"`
	End      Position `json:"end"`
	Filename string   `json:"source,omitempty"`
}

// Position represents a position in source code.
type Position struct {
	Line   int `json:"line"`   // 1-based line number
	Column int `json:"column"` // 0-based column number
}

// Expression is the interface for expression nodes.
// Expressions are nodes that produce a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is the interface for statement nodes.
// Statements are nodes that perform actions.
type Statement interface {
	Node
	statementNode()
}

// Pattern is the interface for pattern nodes (used in destructuring).
// Patterns can appear in variable declarations, function parameters, and assignments.
type Pattern interface {
	Node
	patternNode()
}

// Declaration is the interface for declaration nodes.
// Declarations are a subset of statements that declare variables, functions, or classes.
type Declaration interface {
	Statement
	declarationNode()
}
