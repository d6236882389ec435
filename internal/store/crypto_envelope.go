package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"marketplace/internal/util/memzero"
)

// sealedVersion is the newest on-disk format this package writes.
const sealedVersion = 1

const saltSize = 16

// ErrUndecryptable is returned when the key is wrong or the sealed data is
// corrupt or tampered with.
var ErrUndecryptable = errors.New("wrong key or corrupted data")

// kdfParams are the scrypt cost parameters recorded next to the ciphertext.
type kdfParams struct {
	N int `json:"scrypt_N"`
	R int `json:"scrypt_r"`
	P int `json:"scrypt_p"`
}

// Bounds on parameters read back from disk. Anything outside them is
// treated as tampering rather than handed to scrypt.
const (
	maxScryptN      = 1 << 20
	maxScryptR      = 32
	maxScryptP      = 16
	maxScryptMemory = 256 << 20 // 128 * N * r bytes
)

func defaultKDF() kdfParams { return kdfParams{N: 1 << 15, R: 8, P: 1} }

func (k kdfParams) validate() error {
	switch {
	case k.N < 2 || k.N > maxScryptN || k.N&(k.N-1) != 0:
		return fmt.Errorf("scrypt N %d out of range", k.N)
	case k.R < 1 || k.R > maxScryptR:
		return fmt.Errorf("scrypt r %d out of range", k.R)
	case k.P < 1 || k.P > maxScryptP:
		return fmt.Errorf("scrypt p %d out of range", k.P)
	case 128*int64(k.N)*int64(k.R) > maxScryptMemory:
		return fmt.Errorf("scrypt N=%d r=%d needs too much memory", k.N, k.R)
	}
	return nil
}

func (k kdfParams) key(secret string, salt []byte) ([]byte, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	return scrypt.Key([]byte(secret), salt, k.N, k.R, k.P, chacha20poly1305.KeySize)
}

// sealed is the JSON document stored in session.enc.
type sealed struct {
	V    int    `json:"v"`
	Salt []byte `json:"salt"`
	kdfParams
	Cipher []byte `json:"cipher"`
}

// seal encrypts raw under a key derived from secret with ChaCha20-Poly1305.
// Every seal draws a fresh salt, so each derived key is used for one message
// and a fixed nonce is safe. The salt is also bound as associated data.
func seal(secret string, raw []byte, kdf kdfParams) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	key, err := kdf.key(secret, salt)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSize)
	return json.Marshal(sealed{
		V:         sealedVersion,
		Salt:      salt,
		kdfParams: kdf,
		Cipher:    aead.Seal(nil, nonce, raw, salt),
	})
}

// open reverses seal. Malformed documents, out-of-range cost parameters and
// failed authentication all yield ErrUndecryptable.
func open(secret string, b []byte) ([]byte, error) {
	var s sealed
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecryptable, err)
	}
	if s.V < 1 || s.V > sealedVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", ErrUndecryptable, s.V)
	}
	if len(s.Salt) != saltSize {
		return nil, fmt.Errorf("%w: bad salt length %d", ErrUndecryptable, len(s.Salt))
	}
	key, err := s.kdfParams.key(secret, s.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecryptable, err)
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, make([]byte, chacha20poly1305.NonceSize), s.Cipher, s.Salt)
	if err != nil {
		return nil, ErrUndecryptable
	}
	return pt, nil
}
