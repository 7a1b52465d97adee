// Package lexer implements the lexical analysis (tokenization) phase
// of TypeScript parsing.
//
// The lexer reads TypeScript source code character by character and
// produces a stream of tokens that represent the syntactic elements
// of the language (keywords, identifiers, operators, literals, etc.).
//
// # Features
//
//   - Unicode support for identifiers
//   - Template literal tokenization (see Token Types for its limits)
//   - A JSX mode flag (SetJSXMode); Scan does not consult it and emits
//     no JSX tokens
//   - TypeScript-specific tokens (type annotations, decorators, etc.)
//   - Accurate position tracking for error reporting
//   - Comment preservation (both single-line and multi-line)
//
// # Usage
//
// The lexer is used internally by the parser and should not be used
// directly by external code. The public API is in pkg/typescriptestree.
//
// # Token Types
//
// The lexer recognizes all standard ECMAScript tokens plus TypeScript
// extensions:
//   - Keywords (const, let, var, function, class, etc.)
//   - TypeScript keywords (type, interface, enum, namespace, etc.)
//   - Operators (+, -, *, /, &&, ||, etc.)
//   - TypeScript operators (as, satisfies; "is" scans as IDENT)
//   - Literals (numbers, strings, booleans, null, undefined)
//   - Template literals: a template without substitutions scans as
//     TemplateNoSub; one with a substitution scans as TemplateHead up to
//     its first "${", and the text after the matching "}" scans as
//     ordinary tokens
//   - Comments
//
// Regular expression literals are not recognized: scanRegExp exists,
// but Scan never calls it, and a '/' always scans as QUO or QuoAssign.
//
// This package is internal and should not be imported by external code.
package lexer
