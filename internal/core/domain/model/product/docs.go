// Package product provides the catalog-facing domain model of the dispatch system.
//
// The package includes:
//   - Category: A closed enumeration of product categories that doubles as the
//     staff skill taxonomy
//   - Product: A value object describing a catalog entry (code, description,
//     price, category)
//
// Products are immutable after creation; the catalog owning them is a read-only
// collaborator of the core. A product's category determines which staff skill
// can fulfill order items referencing it.
package product
