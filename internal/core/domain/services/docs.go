// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the dispatch system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - CapabilityIndex: A derived mapping from product category to the logged-in
//     staff who can handle it, fully recomputed from a registry snapshot
//   - CapabilityIndexHolder: The shared, concurrency-safe home of the current index
//   - OrderDispatcher: A domain service that advances queued orders whose every
//     item is covered by available staff
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
