package crypto

import (
	"crypto/rand"
	"encoding/hex"

	"marketplace/internal/util/memzero"
)

// DeviceKeySize is the length in bytes of a generated device key.
const DeviceKeySize = 32

// NewDeviceKey returns a random hex-encoded secret used to protect local
// data when the user has not configured a passphrase.
func NewDeviceKey() (string, error) {
	var b [DeviceKeySize]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	defer memzero.Zero(b[:])
	return hex.EncodeToString(b[:]), nil
}
