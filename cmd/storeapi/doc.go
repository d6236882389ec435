// Package main runs the in-memory fake-store REST API used by the marketplace
// CLI during development and tests.
//
// HTTP API
//
//	POST /users
//	    Register an account. Returns {"id": N}.
//
//	POST /auth/login
//	    Exchange {"username", "password"} for {"token"}, an HS256 JWT whose
//	    "sub" claim is the user id.
//
//	GET /products
//	    Return every product.
//
//	GET /products/{id}
//	    Return one product, or 200 with an empty body when {id} is unknown.
//
//	GET /users/{id}
//	    Return one profile.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Each remote host is rate limited; excess requests get 429.
//   - An access log records method, path, status, bytes and duration.
//   - Settings come from STOREAPI_* variables; the default listen address is :8080.
package main
