// Package domain defines the core business entities for fbimport.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A game, character or move as held by the document store
//   - Proposal: A candidate document state targeted at a hierarchical id
//   - Plan: The classified outcome of comparing a Proposal to the store
//   - Change: A single field-level difference inside a Plan
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
