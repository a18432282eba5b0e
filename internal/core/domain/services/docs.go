// Package services contains stateless domain services of the ordering system.
//
// PricingEngine is the single place where cart pricing arithmetic lives: it
// prices one configured line against the catalog and folds priced lines into
// an order summary. Every presentation surface that needs a total consumes
// this service; no screen carries its own arithmetic.
package services
