// Package cart provides the Cart aggregate of the ordering domain: a mutable
// collection of configured, quantified purchase intents (cart lines).
//
// Key business rules:
//   - A cart line always carries a quantity of at least 1; decrementing below
//     1 is rejected with ErrInvalidQuantity, never silently turned into a
//     removal (removal is an explicit, separate operation)
//   - A line selects at most one option per customization group and need not
//     cover every group
//   - The line's unit price is resolved by the pricing engine when the line
//     is created and stored as a snapshot; the line total is always derived,
//     never stored
//
// Pricing totals over a cart are computed by the pricing engine from the
// current lines on every read; the cart itself never holds an order summary.
package cart
