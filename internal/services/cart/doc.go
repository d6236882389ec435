// Package cart edits the local shopping cart and summarises it against the
// product cache.
//
// The cart holds one line per product id. Adding a product that is already
// in the cart increases that line's quantity; any edit that brings a
// quantity to zero removes the line. Watch streams a fresh summary after
// every change.
package cart
