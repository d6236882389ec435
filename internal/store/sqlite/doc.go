// Package sqlite is the embedded relational store behind the product cache,
// the shopping cart and cached profiles.
//
// The schema is embedded under migrations/ and applied with golang-migrate
// when the database is opened. Product filtering is a dynamic query built by
// BuildProductQuery; sort columns come from a fixed table and every user
// value travels as a bound argument.
//
// Cart writes notify subscribers registered with Changes, which lets callers
// observe the cart the way a reactive query would.
package sqlite
