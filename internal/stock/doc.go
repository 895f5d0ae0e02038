// Package stock notifies customers when the stock status changes.
//
// A Stock keeps its observers in registration order and fans a status
// change out to each of them synchronously, in that order. Customers are
// the observers used by the shop; they print every notification prefixed
// with their name.
package stock
