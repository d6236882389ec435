// Package api provides an HTTP implementation of the domain.StoreClient
// interface against a fake-store style REST API.
//
// Supported operations:
//   - Registering a new account.
//   - Logging in to obtain a bearer token.
//   - Fetching the product list or a single product.
//   - Fetching a user's profile.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as *StatusError carrying the
// method, URL, status code and the server's message. A circuit breaker sits
// in front of the transport; while it is open calls fail with ErrUnavailable.
package api
