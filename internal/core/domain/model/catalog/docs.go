// Package catalog provides the read-only reference data of the ordering
// domain: menu items, their customization groups and options.
//
// Key business rules:
//   - A menu item has a non-negative base price and belongs to one restaurant
//   - A customization group is linked to exactly one menu item by identifier
//     (a weak reference via shared key, not an owned relationship)
//   - Options carry a price delta of any sign; the pricing engine must not
//     assume deltas are non-negative
//
// Catalog objects are immutable once loaded. Lookup is exact-match only; a
// missing identifier is a user-visible "item unavailable" condition surfaced
// as an ObjectNotFoundError by the repository, never a crash.
package catalog
