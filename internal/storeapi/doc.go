// Package storeapi is an in-memory implementation of the fake-store REST API.
//
// It serves the endpoints the marketplace client uses (register, login,
// products and users) from seeded data, signs login tokens as HS256 JWTs and
// rate limits each remote address. cmd/storeapi runs it as a standalone
// development server; tests mount it on httptest.
package storeapi
