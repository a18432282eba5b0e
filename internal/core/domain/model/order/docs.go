// Package order provides the Order aggregate: the immutable record produced
// at checkout from a cart snapshot.
//
// Key business rules:
//   - An order always carries at least one item
//   - Its totals are computed once by the pricing engine at checkout and
//     stored with the order; subtotal must equal the sum of item line totals
//     and total must equal subtotal + delivery fee + tax
//   - The fulfillment status is supplied by an external system; this package
//     validates membership of the status value only and never computes
//     transitions
package order
