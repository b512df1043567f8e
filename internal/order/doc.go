// Package order turns raw tag occurrences into the final tag order.
//
// Resolve collapses an occurrence list into unique identities in order of
// first appearance, optionally counting only occurrences that define an item
// as a figure. Reconciler then moves tags that belong to a declared range
// (but were defined elsewhere) right before the range's end tag.
//
// The kind-prefix test used to decide range membership is a heuristic: an
// identity belongs to a range starting at S when it contains S minus its last
// two characters. It is kept exactly as is so that existing manuscripts keep
// their order.
package order
