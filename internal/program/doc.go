// Package program provides TypeScript program creation and management utilities.
//
// This package implements TypeScript program creation from tsconfig.json files,
// program caching, and integration with the TypeScript type checker for type-aware
// parsing and linting.
//
// The main components are:
//   - Program creation from tsconfig.json
//   - Program caching for performance optimization
//   - TSConfig parsing and inheritance
//   - Project reference support
//   - Integration with ParserServices for node mapping
package program
