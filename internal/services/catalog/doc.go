// Package catalog keeps the local product cache in step with the store API
// and answers product queries from that cache.
//
// Remote fetches use whatever session token is stored; the product endpoints
// do not require one. Concurrent list refreshes collapse into a single
// request. A single-product fetch that fails for any reason falls back to
// the cached copy when there is one.
package catalog
