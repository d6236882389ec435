// Package crypto holds the small primitives the client needs around its
// local secrets.
//
// It provides:
//   - Fingerprint, a short display hash of a secret (shown by `whoami`).
//   - NewDeviceKey, the random secret that protects the session token when
//     no passphrase is configured.
//
// Encryption of data at rest lives in package store.
package crypto
