// Package store provides file-based persistence for the client's small
// key-value state.
//
// It contains concrete implementations of the domain storage interfaces that
// do not belong in the product database. All methods are concurrency-safe via
// internal locking, and files are replaced atomically (temp file + rename)
// under the configured home directory.
//
// The package includes:
//   - The session token, encrypted with a scrypt-derived ChaCha20-Poly1305
//     key (SessionFileStore)
//   - App settings as plain JSON (SettingsFileStore)
//   - The secret used for encryption (Keyring): a user passphrase, or a
//     random device key created on first use
//
// Products, cart lines and profiles live in package store/sqlite.
package store
