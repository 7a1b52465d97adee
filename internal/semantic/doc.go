// Package semantic builds the scope tree, symbol table, and reference
// table for a parsed program in a single post-parse traversal, then leaves
// them read-only for every downstream consumer (the query adapter, the
// constant-folding pass, lint-style rules).
package semantic
