// Package domain defines the marketplace's records and the contracts between
// its layers.
//
// Plain types (products, cart lines, profiles, settings, the session token)
// live in the types subpackage and store, client and service interfaces in
// the interfaces subpackage. exports.go aliases both so callers import a
// single package.
package domain
