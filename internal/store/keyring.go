package store

import (
	"path/filepath"
	"strings"
	"sync"

	"marketplace/internal/crypto"
)

const deviceKeyFile = "device.key"

// Keyring yields the secret that encrypts local data: the configured
// passphrase if any, otherwise a device key generated once under dir.
type Keyring struct {
	dir        string
	passphrase string
	mu         sync.Mutex
}

// NewKeyring returns a Keyring rooted at dir. An empty passphrase selects the device key.
func NewKeyring(dir, passphrase string) *Keyring {
	return &Keyring{dir: dir, passphrase: passphrase}
}

// Secret returns the encryption secret, creating the device key on first use.
func (k *Keyring) Secret() (string, error) {
	if k.passphrase != "" {
		return k.passphrase, nil
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	path := filepath.Join(k.dir, deviceKeyFile)
	b, err := readFile(path)
	if err != nil {
		return "", err
	}
	if key := strings.TrimSpace(string(b)); key != "" {
		return key, nil
	}

	key, err := crypto.NewDeviceKey()
	if err != nil {
		return "", err
	}
	if err := writeFile(path, []byte(key), 0o600); err != nil {
		return "", err
	}
	return key, nil
}
