// Package auth signs users up, in and out of the store API.
//
// Credentials are validated locally before any request is made. A successful
// login stores the bearer token encrypted through the session store; the
// token is a JWT whose "sub" claim carries the numeric user id that the
// profile feature needs. Every other feature reads the session through the
// TokenProvider half of the service.
package auth
