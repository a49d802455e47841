// Package order holds the Order aggregate: an identity, a delivery location, the
// courier it was handed to and its lifecycle (created, assigned, completed).
//
// Assignment is one-way. Once an order has a courier it cannot be reassigned.
package order
