package arena

// New allocates a T in a and copies v into it, returning the owned pointer.
// This is the construction-time entry point AST node producers route
// through instead of a bare `&ast.XXX{...}` composite literal: the value is
// built the same way it always was, then handed to the arena so the arena
// actually owns the node rather than merely outliving it by GC coincidence.
func New[T any](a *Arena, v T) *T {
	p := Alloc[T](a)
	*p = v
	return p
}
