// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for planning to function:
//
//   - DocumentReader: Reads documents from the remote document store
//   - DocumentCache: Per-run memoisation of document reads
//   - SourceLoader: Reads raw source data files
//   - ProposalBuilder: Maps raw source data to proposals
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ProposalWriter: Creates and approves proposals. Without it, plans cannot be applied.
//   - ApplyJournal: Records apply outcomes. Without it, history is not kept.
//   - ConfigStore: Application configuration. Without it, flags are the only input.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or importer package
package driven
