// Package arena implements a per-file bump allocator and atom interner for
// the AST in internal/ast. Allocations made through an Arena are owned
// exclusively by that arena: there is no individual free, and every
// allocation made from it becomes eligible for garbage collection together
// when the Arena itself is dropped. Indices handed out by the arena (and by
// the semantic tables that index into it) remain valid for the arena's
// entire lifetime.
package arena
